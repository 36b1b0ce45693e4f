package emit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

type tokenSample struct {
	Key   string
	Value string
	Slug  string
	Named bool
}

func genTokenSample() gopter.Gen {
	return gopter.CombineGens(
		gen.RegexMatch(`^[a-z][a-z0-9-]{0,8}$`),
		gen.RegexMatch(`^[a-z0-9#.]{1,10}$`),
		gen.RegexMatch(`^[a-z0-9]{1,6}$`),
		gen.Bool(),
	).Map(func(vals []interface{}) tokenSample {
		return tokenSample{
			Key:   vals[0].(string),
			Value: vals[1].(string),
			Slug:  vals[2].(string),
			Named: vals[3].(bool),
		}
	})
}

// genConfig produces configs with a random token list per category. An empty
// list leaves the category absent.
func genConfig() gopter.Gen {
	categories := tokens.Categories()
	return gen.SliceOfN(len(categories), gen.SliceOf(genTokenSample())).Map(func(samples [][]tokenSample) *tokens.Config {
		var groups []*tokens.Group
		for i, list := range samples {
			if len(list) == 0 {
				continue
			}
			group := &tokens.Group{Category: categories[i]}
			seen := make(map[string]bool)
			for _, s := range list {
				if seen[s.Key] {
					continue
				}
				seen[s.Key] = true
				entry := tokens.Unnamed(s.Value)
				if s.Named {
					entry = tokens.Named(s.Value, strings.ToUpper(s.Slug), s.Slug)
				}
				group.Tokens = append(group.Tokens, tokens.Token{Key: s.Key, Entry: entry})
			}
			groups = append(groups, group)
		}
		return &tokens.Config{
			Prefix:     "gen",
			TokensPath: tokens.DefaultTokensPath,
			OutDir:     tokens.DefaultOutDir,
			Tokens:     tokens.NewTokens(groups...),
		}
	})
}

func containsKey(v any, key string) bool {
	switch node := v.(type) {
	case map[string]any:
		for k, child := range node {
			if k == key || containsKey(child, key) {
				return true
			}
		}
	case []any:
		for _, child := range node {
			if containsKey(child, key) {
				return true
			}
		}
	}
	return false
}

func TestGeneratorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("generators are deterministic", prop.ForAll(
		func(cfg *tokens.Config) bool {
			first, err1 := ThemeJSON(cfg)
			second, err2 := ThemeJSON(cfg)
			return err1 == nil && err2 == nil && first == second &&
				TokensCSS(cfg) == TokensCSS(cfg) &&
				PlatformCSS(cfg) == PlatformCSS(cfg)
		},
		genConfig(),
	))

	properties.Property("one declaration per token", prop.ForAll(
		func(cfg *tokens.Config) bool {
			return len(declarations(TokensCSS(cfg))) == cfg.Tokens.Count() &&
				len(declarations(PlatformCSS(cfg))) == cfg.Tokens.Count()
		},
		genConfig(),
	))

	properties.Property("platform value is either a preset fallback or the literal", prop.ForAll(
		func(cfg *tokens.Config) bool {
			lines := declarations(PlatformCSS(cfg))
			i := 0
			for _, g := range cfg.Tokens.Groups() {
				path, capable := g.Category.PresetPath()
				for _, tk := range g.Tokens {
					name := g.Category.VarName(cfg.Prefix, tk.Key)
					want := name + ": " + tk.Entry.Value + ";"
					if p, named := tk.Entry.Preset(); capable && named {
						want = name + ": var(" + path + "--" + p.Slug + ", " + tk.Entry.Value + ");"
					}
					if lines[i] != want {
						return false
					}
					i++
				}
			}
			return i == len(lines)
		},
		genConfig(),
	))

	properties.Property("theme.json never mentions zIndex and lists only named presets", prop.ForAll(
		func(cfg *tokens.Config) bool {
			out, err := ThemeJSON(cfg)
			if err != nil {
				return false
			}
			var parsed map[string]any
			if err := json.Unmarshal([]byte(out), &parsed); err != nil {
				return false
			}
			if containsKey(parsed, "zIndex") {
				return false
			}

			doc := BuildTheme(cfg)
			named := func(c tokens.Category) int {
				n := 0
				if g := cfg.Tokens.Group(c); g != nil {
					for _, tk := range g.Tokens {
						if tk.Entry.IsNamed() {
							n++
						}
					}
				}
				return n
			}

			palette, sizes, families, fontSizes := 0, 0, 0, 0
			if doc.Settings.Color != nil {
				palette = len(doc.Settings.Color.Palette)
			}
			if doc.Settings.Spacing != nil {
				sizes = len(doc.Settings.Spacing.SpacingSizes)
			}
			if doc.Settings.Typography != nil {
				families = len(doc.Settings.Typography.FontFamilies)
				fontSizes = len(doc.Settings.Typography.FontSizes)
			}
			return palette == named(tokens.Color) &&
				sizes == named(tokens.Spacing) &&
				families == named(tokens.FontFamily) &&
				fontSizes == named(tokens.FontSize)
		},
		genConfig(),
	))

	properties.TestingRun(t)
}
