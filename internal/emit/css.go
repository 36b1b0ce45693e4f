// Package emit renders the artifacts derived from a validated token config:
// the plain token stylesheet, the WordPress stylesheet with preset
// fallbacks, theme.json and the PHP integration snippet.
//
// Every generator is a pure function of its config. They share no state and
// can run in any order.
package emit

import (
	"strings"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

const (
	tokensCSSHeader   = "/* Generated by story-to-block. Do not edit directly. */\n"
	platformCSSHeader = "/* Generated by story-to-block. Do not edit directly.\n" +
		" * Tokens with a WordPress preset read the preset variable first and\n" +
		" * fall back to the literal value. */\n"
)

// TokensCSS renders one custom property per token, in category then
// declaration order, inside a :root block.
func TokensCSS(cfg *tokens.Config) string {
	return renderRoot(tokensCSSHeader, cfg, func(_ tokens.Category, e tokens.Entry) string {
		return e.Value
	})
}

// PlatformCSS renders the same properties as TokensCSS, but a named token in
// a preset-capable category reads var(--wp--preset--{category}--{slug},
// value) so the platform's preset wins when defined.
func PlatformCSS(cfg *tokens.Config) string {
	return renderRoot(platformCSSHeader, cfg, PlatformValue)
}

// PlatformValue returns the declared value PlatformCSS uses for an entry.
func PlatformValue(c tokens.Category, e tokens.Entry) string {
	path, ok := c.PresetPath()
	if !ok {
		return e.Value
	}
	preset, named := e.Preset()
	if !named {
		return e.Value
	}
	return "var(" + path + "--" + preset.Slug + ", " + e.Value + ")"
}

func renderRoot(header string, cfg *tokens.Config, value func(tokens.Category, tokens.Entry) string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString(":root {\n")
	for _, g := range cfg.Tokens.Groups() {
		for _, tok := range g.Tokens {
			b.WriteString("  ")
			b.WriteString(g.Category.VarName(cfg.Prefix, tok.Key))
			b.WriteString(": ")
			b.WriteString(value(g.Category, tok.Entry))
			b.WriteString(";\n")
		}
	}
	b.WriteString("}\n")
	return b.String()
}
