package tokens

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func buildEntryJSON(value string, hasName, hasSlug bool, name, slug string) string {
	fields := []string{fmt.Sprintf(`"value": %q`, value)}
	if hasName {
		fields = append(fields, fmt.Sprintf(`"name": %q`, name))
	}
	if hasSlug {
		fields = append(fields, fmt.Sprintf(`"slug": %q`, slug))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// TestValidatorProperties checks the name/slug pairing rule and category
// membership over generated inputs.
func TestValidatorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("name and slug must be both present or both absent", prop.ForAll(
		func(category Category, hasName, hasSlug bool, value, label string) bool {
			doc := fmt.Sprintf(`{"prefix": "p", "tokens": {%q: {"key": %s}}}`,
				category.String(), buildEntryJSON(value, hasName, hasSlug, "N"+label, "s"+label))

			_, err := Parse([]byte(doc), "prop.json")
			if hasName == hasSlug {
				return err == nil
			}

			var ve *ValidationError
			return errors.As(err, &ve) && ve.Kind == MismatchedPreset
		},
		gen.IntRange(0, int(categoryCount)-1).Map(func(i int) Category { return Category(i) }),
		gen.Bool(),
		gen.Bool(),
		gen.RegexMatch(`^[a-z0-9#.]{1,12}$`),
		gen.AlphaString(),
	))

	properties.Property("unknown categories are rejected by name", prop.ForAll(
		func(key string) bool {
			if _, ok := ParseCategory(key); ok {
				return true
			}
			doc := fmt.Sprintf(`{"prefix": "p", "tokens": {%q: {"a": {"value": "1"}}}}`, key)
			_, err := Parse([]byte(doc), "prop.json")

			var ve *ValidationError
			return errors.As(err, &ve) &&
				ve.Kind == UnknownCategory &&
				strings.Contains(err.Error(), fmt.Sprintf("%q", key))
		},
		gen.RegexMatch(`^[a-zA-Z]{1,10}$`),
	))

	properties.TestingRun(t)
}
