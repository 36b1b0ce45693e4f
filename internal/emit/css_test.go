package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

func tok(key string, e tokens.Entry) tokens.Token {
	return tokens.Token{Key: key, Entry: e}
}

// fixtureConfig mirrors a typical design system config: named and unnamed
// entries in preset-capable categories plus every custom category.
func fixtureConfig() *tokens.Config {
	return &tokens.Config{
		Prefix:     "test",
		TokensPath: tokens.DefaultTokensPath,
		OutDir:     tokens.DefaultOutDir,
		Tokens: tokens.NewTokens(
			&tokens.Group{Category: tokens.Color, Tokens: []tokens.Token{
				tok("primary", tokens.Named("#0073aa", "Primary", "primary")),
				tok("primary-hover", tokens.Unnamed("#005a87")),
			}},
			&tokens.Group{Category: tokens.Spacing, Tokens: []tokens.Token{
				tok("md", tokens.Named("1rem", "Medium", "40")),
			}},
			&tokens.Group{Category: tokens.FontFamily, Tokens: []tokens.Token{
				tok("base", tokens.Named("sans-serif", "Sans", "body")),
			}},
			&tokens.Group{Category: tokens.FontSize, Tokens: []tokens.Token{
				tok("sm", tokens.Named("0.875rem", "Small", "small")),
				tok("xs", tokens.Unnamed("0.75rem")),
			}},
			&tokens.Group{Category: tokens.FontWeight, Tokens: []tokens.Token{
				tok("bold", tokens.Unnamed("700")),
			}},
			&tokens.Group{Category: tokens.LineHeight, Tokens: []tokens.Token{
				tok("normal", tokens.Unnamed("1.5")),
			}},
			&tokens.Group{Category: tokens.Radius, Tokens: []tokens.Token{
				tok("md", tokens.Unnamed("4px")),
			}},
			&tokens.Group{Category: tokens.Shadow, Tokens: []tokens.Token{
				tok("sm", tokens.Unnamed("0 1px 2px 0 rgb(0 0 0 / 0.05)")),
			}},
			&tokens.Group{Category: tokens.Transition, Tokens: []tokens.Token{
				tok("fast", tokens.Unnamed("150ms ease")),
			}},
			&tokens.Group{Category: tokens.ZIndex, Tokens: []tokens.Token{
				tok("modal", tokens.Unnamed("300")),
			}},
		),
	}
}

func declarations(css string) []string {
	var out []string
	for _, line := range strings.Split(css, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "--") {
			out = append(out, line)
		}
	}
	return out
}

func TestTokensCSS(t *testing.T) {
	out := TokensCSS(fixtureConfig())

	assert.Equal(t, []string{
		"--test-color-primary: #0073aa;",
		"--test-color-primary-hover: #005a87;",
		"--test-spacing-md: 1rem;",
		"--test-font-family-base: sans-serif;",
		"--test-font-size-sm: 0.875rem;",
		"--test-font-size-xs: 0.75rem;",
		"--test-font-weight-bold: 700;",
		"--test-line-height-normal: 1.5;",
		"--test-radius-md: 4px;",
		"--test-shadow-sm: 0 1px 2px 0 rgb(0 0 0 / 0.05);",
		"--test-transition-fast: 150ms ease;",
		"--test-z-modal: 300;",
	}, declarations(out))

	assert.True(t, strings.HasPrefix(out, tokensCSSHeader+":root {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.NotContains(t, out, "var(")
}

func TestTokensCSS_Empty(t *testing.T) {
	cfg := &tokens.Config{Prefix: "x", TokensPath: "t.css", OutDir: "out"}
	assert.Equal(t, tokensCSSHeader+":root {\n}\n", TokensCSS(cfg))
}

func TestTokensCSS_FollowsDeclarationOrder(t *testing.T) {
	cfg := &tokens.Config{
		Prefix: "o",
		Tokens: tokens.NewTokens(
			&tokens.Group{Category: tokens.ZIndex, Tokens: []tokens.Token{tok("top", tokens.Unnamed("9"))}},
			&tokens.Group{Category: tokens.Color, Tokens: []tokens.Token{
				tok("b", tokens.Unnamed("#b")),
				tok("a", tokens.Unnamed("#a")),
			}},
		),
	}

	assert.Equal(t, []string{
		"--o-z-top: 9;",
		"--o-color-b: #b;",
		"--o-color-a: #a;",
	}, declarations(TokensCSS(cfg)))
}

func TestPlatformCSS(t *testing.T) {
	out := PlatformCSS(fixtureConfig())

	tests := []struct {
		name string
		want string
	}{
		{"named color uses preset", "--test-color-primary: var(--wp--preset--color--primary, #0073aa);"},
		{"unnamed color is literal", "--test-color-primary-hover: #005a87;"},
		{"spacing uses slug", "--test-spacing-md: var(--wp--preset--spacing--40, 1rem);"},
		{"font family uses slug", "--test-font-family-base: var(--wp--preset--font-family--body, sans-serif);"},
		{"named font size uses preset", "--test-font-size-sm: var(--wp--preset--font-size--small, 0.875rem);"},
		{"unnamed font size is literal", "--test-font-size-xs: 0.75rem;"},
		{"font weight is literal", "--test-font-weight-bold: 700;"},
		{"radius is literal", "--test-radius-md: 4px;"},
		{"z-index is literal", "--test-z-modal: 300;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out, tt.want)
		})
	}

	assert.NotContains(t, out, "--wp--preset--font-weight")
	assert.NotContains(t, out, "--wp--preset--radius")
	assert.NotContains(t, out, "--wp--preset--z")
}

func TestPlatformCSS_NamedTokenWithoutPresetCategory(t *testing.T) {
	cfg := &tokens.Config{
		Prefix: "p",
		Tokens: tokens.NewTokens(&tokens.Group{Category: tokens.Radius, Tokens: []tokens.Token{
			tok("pill", tokens.Named("999px", "Pill", "pill")),
		}}),
	}

	require.Equal(t, []string{"--p-radius-pill: 999px;"}, declarations(PlatformCSS(cfg)))
}

func TestPlatformCSS_SameDeclarationsAsTokensCSS(t *testing.T) {
	cfg := fixtureConfig()
	plain := declarations(TokensCSS(cfg))
	platform := declarations(PlatformCSS(cfg))

	require.Len(t, platform, len(plain))
	for i := range plain {
		plainName := strings.SplitN(plain[i], ":", 2)[0]
		platformName := strings.SplitN(platform[i], ":", 2)[0]
		assert.Equal(t, plainName, platformName)
	}
}
