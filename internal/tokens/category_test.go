package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryTables(t *testing.T) {
	tests := []struct {
		category Category
		key      string
		segment  string
		preset   string
	}{
		{Color, "color", "color", "--wp--preset--color"},
		{Spacing, "spacing", "spacing", "--wp--preset--spacing"},
		{FontFamily, "fontFamily", "font-family", "--wp--preset--font-family"},
		{FontSize, "fontSize", "font-size", "--wp--preset--font-size"},
		{FontWeight, "fontWeight", "font-weight", ""},
		{LineHeight, "lineHeight", "line-height", ""},
		{Radius, "radius", "radius", ""},
		{Shadow, "shadow", "shadow", ""},
		{Transition, "transition", "transition", ""},
		{ZIndex, "zIndex", "z", ""},
	}

	assert.Len(t, Categories(), len(tests))

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.category.String())
			assert.Equal(t, tt.segment, tt.category.Segment())

			parsed, ok := ParseCategory(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.category, parsed)

			preset, ok := tt.category.PresetPath()
			assert.Equal(t, tt.preset != "", ok)
			assert.Equal(t, tt.preset, preset)
		})
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, ok := ParseCategory("font-family")
	assert.False(t, ok)
}

func TestVarName(t *testing.T) {
	assert.Equal(t, "--ds-font-family-base", FontFamily.VarName("ds", "base"))
	assert.Equal(t, "--ds-z-modal", ZIndex.VarName("ds", "modal"))
}

func TestTokens_SetKeepsFirstPosition(t *testing.T) {
	tokens := NewTokens(
		&Group{Category: Radius, Tokens: []Token{{Key: "sm", Entry: Unnamed("2px")}}},
		&Group{Category: Color},
		&Group{Category: Radius, Tokens: []Token{{Key: "lg", Entry: Unnamed("8px")}}},
	)

	groups := tokens.Groups()
	assert.Len(t, groups, 2)
	assert.Equal(t, Radius, groups[0].Category)
	assert.Equal(t, "lg", groups[0].Tokens[0].Key)
	assert.Equal(t, 1, tokens.Count())
	assert.Nil(t, tokens.Group(Shadow))
}

func TestEntryVariants(t *testing.T) {
	plain := Unnamed("#000")
	_, ok := plain.Preset()
	assert.False(t, ok)
	assert.False(t, plain.IsNamed())

	named := Named("#000", "Black", "black")
	preset, ok := named.Preset()
	assert.True(t, ok)
	assert.Equal(t, Preset{Name: "Black", Slug: "black"}, preset)
}
