// Package tokens defines the design-token configuration model, its static
// naming tables, and the loader that turns a raw config document into a
// validated Config.
package tokens

// Default output locations, relative to the caller's base directory.
const (
	DefaultConfigPath = "stb.config.json"
	DefaultTokensPath = "src/styles/tokens.css"
	DefaultOutDir     = "dist/wp"
)

// Preset carries the editor-facing identity of a named token.
type Preset struct {
	Name string
	Slug string
}

// Entry is a single token value. An entry is either unnamed (CSS only) or
// named (exposed to the host platform's presets). The two states are
// built with Unnamed and Named; there is no way to hold a name without a
// slug or the reverse.
type Entry struct {
	Value  string
	preset *Preset
}

// Unnamed returns an entry that is only emitted as CSS.
func Unnamed(value string) Entry {
	return Entry{Value: value}
}

// Named returns an entry exposed to the platform under name and slug.
func Named(value, name, slug string) Entry {
	return Entry{Value: value, preset: &Preset{Name: name, Slug: slug}}
}

// Preset reports the entry's name and slug, if it is named.
func (e Entry) Preset() (Preset, bool) {
	if e.preset == nil {
		return Preset{}, false
	}
	return *e.preset, true
}

// IsNamed reports whether the entry has a name and slug.
func (e Entry) IsNamed() bool {
	return e.preset != nil
}

// Token is a keyed entry inside a category group.
type Token struct {
	Key   string
	Entry Entry
}

// Group holds the tokens of one category in declaration order.
type Group struct {
	Category Category
	Tokens   []Token
}

// Len returns the number of tokens in the group. A nil group has none.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Tokens)
}

// Tokens is the partial mapping from category to group. Categories keep the
// order in which they were declared.
type Tokens struct {
	groups [categoryCount]*Group
	order  []Category
}

// NewTokens builds a Tokens value from groups in the given order. A later
// group for the same category replaces the earlier one in place.
func NewTokens(groups ...*Group) Tokens {
	var t Tokens
	for _, g := range groups {
		t.Set(g)
	}
	return t
}

// Set adds or replaces the group for g.Category.
func (t *Tokens) Set(g *Group) {
	if g == nil || g.Category < 0 || g.Category >= categoryCount {
		return
	}
	if t.groups[g.Category] == nil {
		t.order = append(t.order, g.Category)
	}
	t.groups[g.Category] = g
}

// Group returns the group for c, or nil when the category is absent.
func (t Tokens) Group(c Category) *Group {
	if c < 0 || c >= categoryCount {
		return nil
	}
	return t.groups[c]
}

// Groups returns the present groups in declaration order.
func (t Tokens) Groups() []*Group {
	out := make([]*Group, 0, len(t.order))
	for _, c := range t.order {
		out = append(out, t.groups[c])
	}
	return out
}

// Count returns the total number of tokens across all categories.
func (t Tokens) Count() int {
	n := 0
	for _, c := range t.order {
		n += t.groups[c].Len()
	}
	return n
}

// Config is a validated token configuration. It is built once per run and
// never mutated afterwards.
type Config struct {
	Prefix     string `validate:"required"`
	TokensPath string `validate:"required"`
	OutDir     string `validate:"required"`
	Tokens     Tokens
}
