package emit

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

// Fixed theme.json header values.
const (
	ThemeSchema  = "https://schemas.wp.org/trunk/theme.json"
	ThemeVersion = 3
)

// customCategories land in settings.custom, keyed by category name. zIndex
// is deliberately absent: theme.json has no consumer for it.
var customCategories = []tokens.Category{
	tokens.FontWeight,
	tokens.LineHeight,
	tokens.Radius,
	tokens.Shadow,
	tokens.Transition,
}

// ThemeDocument is the theme.json structure written by ThemeJSON.
type ThemeDocument struct {
	Schema   string        `json:"$schema"`
	Version  int           `json:"version"`
	Settings ThemeSettings `json:"settings"`
}

// ThemeSettings holds the optional settings sections. Empty sections are
// omitted.
type ThemeSettings struct {
	Color      *ColorSettings      `json:"color,omitempty"`
	Spacing    *SpacingSettings    `json:"spacing,omitempty"`
	Typography *TypographySettings `json:"typography,omitempty"`
	Custom     *CustomSettings     `json:"custom,omitempty"`
}

// ColorSettings is settings.color.
type ColorSettings struct {
	Palette []PaletteEntry `json:"palette"`
}

// PaletteEntry is one named color.
type PaletteEntry struct {
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Name  string `json:"name"`
}

// SpacingSettings is settings.spacing.
type SpacingSettings struct {
	SpacingSizes []SizeEntry `json:"spacingSizes"`
}

// SizeEntry is one named spacing or font size.
type SizeEntry struct {
	Slug string `json:"slug"`
	Size string `json:"size"`
	Name string `json:"name"`
}

// TypographySettings is settings.typography.
type TypographySettings struct {
	FontFamilies []FontFamilyEntry `json:"fontFamilies,omitempty"`
	FontSizes    []SizeEntry       `json:"fontSizes,omitempty"`
}

// FontFamilyEntry is one named font family.
type FontFamilyEntry struct {
	Slug       string `json:"slug"`
	FontFamily string `json:"fontFamily"`
	Name       string `json:"name"`
}

// CustomSettings maps category name to token key to value, both in
// declaration order.
type CustomSettings struct {
	*orderedmap.OrderedMap[string, *orderedmap.OrderedMap[string, string]]
}

// MarshalJSON writes the nested maps in order. Keys and values are not
// HTML-escaped, like every other string in the document.
func (c CustomSettings) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if c.OrderedMap != nil {
		for outer := c.Oldest(); outer != nil; outer = outer.Next() {
			if outer != c.Oldest() {
				buf.WriteByte(',')
			}
			if err := writeJSONPair(&buf, outer.Key, nil); err != nil {
				return nil, err
			}
			buf.WriteByte('{')
			for inner := outer.Value.Oldest(); inner != nil; inner = inner.Next() {
				if inner != outer.Value.Oldest() {
					buf.WriteByte(',')
				}
				value := inner.Value
				if err := writeJSONPair(&buf, inner.Key, &value); err != nil {
					return nil, err
				}
			}
			buf.WriteByte('}')
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONPair writes `"key":` and, when value is set, the quoted value.
func writeJSONPair(buf *bytes.Buffer, key string, value *string) error {
	if err := writeJSONString(buf, key); err != nil {
		return err
	}
	buf.WriteByte(':')
	if value == nil {
		return nil
	}
	return writeJSONString(buf, *value)
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoder := json.NewEncoder(buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

// BuildTheme partitions the config into theme.json settings. Only named
// entries reach the preset lists; every entry of a custom category reaches
// settings.custom regardless of name.
func BuildTheme(cfg *tokens.Config) ThemeDocument {
	doc := ThemeDocument{Schema: ThemeSchema, Version: ThemeVersion}
	groups := cfg.Tokens

	if palette := namedEntries(groups.Group(tokens.Color), func(v string, p tokens.Preset) PaletteEntry {
		return PaletteEntry{Slug: p.Slug, Color: v, Name: p.Name}
	}); len(palette) > 0 {
		doc.Settings.Color = &ColorSettings{Palette: palette}
	}

	if sizes := namedEntries(groups.Group(tokens.Spacing), sizeEntry); len(sizes) > 0 {
		doc.Settings.Spacing = &SpacingSettings{SpacingSizes: sizes}
	}

	families := namedEntries(groups.Group(tokens.FontFamily), func(v string, p tokens.Preset) FontFamilyEntry {
		return FontFamilyEntry{Slug: p.Slug, FontFamily: v, Name: p.Name}
	})
	fontSizes := namedEntries(groups.Group(tokens.FontSize), sizeEntry)
	if len(families) > 0 || len(fontSizes) > 0 {
		doc.Settings.Typography = &TypographySettings{FontFamilies: families, FontSizes: fontSizes}
	}

	custom := orderedmap.New[string, *orderedmap.OrderedMap[string, string]]()
	for _, c := range customCategories {
		g := groups.Group(c)
		if g.Len() == 0 {
			continue
		}
		values := orderedmap.New[string, string]()
		for _, tok := range g.Tokens {
			values.Set(tok.Key, tok.Entry.Value)
		}
		custom.Set(c.String(), values)
	}
	if custom.Len() > 0 {
		doc.Settings.Custom = &CustomSettings{custom}
	}

	return doc
}

// ThemeJSON renders BuildTheme's document with two-space indentation and a
// trailing newline.
func ThemeJSON(cfg *tokens.Config) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(BuildTheme(cfg)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func sizeEntry(v string, p tokens.Preset) SizeEntry {
	return SizeEntry{Slug: p.Slug, Size: v, Name: p.Name}
}

func namedEntries[T any](g *tokens.Group, mapper func(value string, p tokens.Preset) T) []T {
	if g == nil {
		return nil
	}
	var out []T
	for _, tok := range g.Tokens {
		if p, ok := tok.Entry.Preset(); ok {
			out = append(out, mapper(tok.Entry.Value, p))
		}
	}
	return out
}
