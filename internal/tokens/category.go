package tokens

import (
	"strconv"
	"strings"
)

// Category identifies a token category. The set is closed: the only valid
// values are the constants below.
type Category int

// Token categories in canonical order.
const (
	Color Category = iota
	Spacing
	FontFamily
	FontSize
	FontWeight
	LineHeight
	Radius
	Shadow
	Transition
	ZIndex

	categoryCount
)

// Categories returns every category in canonical order.
func Categories() []Category {
	all := make([]Category, 0, categoryCount)
	for c := Color; c < categoryCount; c++ {
		all = append(all, c)
	}
	return all
}

// CategoryNames returns the config keys of every category in canonical order.
func CategoryNames() []string {
	names := make([]string, 0, categoryCount)
	for _, c := range Categories() {
		names = append(names, c.String())
	}
	return names
}

// ParseCategory maps a config key ("fontFamily") to its Category.
func ParseCategory(key string) (Category, bool) {
	for _, c := range Categories() {
		if c.String() == key {
			return c, true
		}
	}
	return 0, false
}

// String returns the config key for the category.
func (c Category) String() string {
	switch c {
	case Color:
		return "color"
	case Spacing:
		return "spacing"
	case FontFamily:
		return "fontFamily"
	case FontSize:
		return "fontSize"
	case FontWeight:
		return "fontWeight"
	case LineHeight:
		return "lineHeight"
	case Radius:
		return "radius"
	case Shadow:
		return "shadow"
	case Transition:
		return "transition"
	case ZIndex:
		return "zIndex"
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Segment returns the CSS variable name segment for the category:
// fontFamily -> "font-family", zIndex -> "z".
func (c Category) Segment() string {
	switch c {
	case Color:
		return "color"
	case Spacing:
		return "spacing"
	case FontFamily:
		return "font-family"
	case FontSize:
		return "font-size"
	case FontWeight:
		return "font-weight"
	case LineHeight:
		return "line-height"
	case Radius:
		return "radius"
	case Shadow:
		return "shadow"
	case Transition:
		return "transition"
	case ZIndex:
		return "z"
	}
	return ""
}

// PresetPath returns the WordPress preset variable prefix for the category.
// Only color, spacing, fontFamily and fontSize have one.
func (c Category) PresetPath() (string, bool) {
	switch c {
	case Color:
		return "--wp--preset--color", true
	case Spacing:
		return "--wp--preset--spacing", true
	case FontFamily:
		return "--wp--preset--font-family", true
	case FontSize:
		return "--wp--preset--font-size", true
	}
	return "", false
}

// Label returns a human label derived from the CSS segment ("font family").
func (c Category) Label() string {
	if c == ZIndex {
		return "z index"
	}
	return strings.ReplaceAll(c.Segment(), "-", " ")
}

// VarName returns the custom property name for a token key:
// --{prefix}-{segment}-{key}.
func (c Category) VarName(prefix, key string) string {
	return "--" + prefix + "-" + c.Segment() + "-" + key
}
