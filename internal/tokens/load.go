package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// LoadFile reads and validates the config document at path.
func LoadFile(path string) (*Config, error) {
	// #nosec G304 - path comes from the command line or trusted settings
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	return Parse(content, path)
}

// Parse decodes a JSON (or YAML) config document and validates it. source
// names the document in error messages.
//
// JSON is decoded first. YAML is only tried when that fails, and a syntax
// error is reported against whichever format the document looks like.
// Both decoders produce a node tree so that category and token order
// survive into the generated artifacts.
func Parse(data []byte, source string) (*Config, error) {
	root, jsonLine, jsonErr := decodeJSON(data)
	if jsonErr == nil {
		return Validate(root)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		if looksLikeJSON(data) {
			return nil, NewParseError(source, jsonLine, jsonErr)
		}
		return nil, NewParseError(source, yamlErrorLine(err), err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, NewParseError(source, 0, errors.New("document is empty"))
	}

	return Validate(doc.Content[0])
}

// looksLikeJSON reports whether the first significant byte opens a JSON
// object or array.
func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

// yamlErrorLine pulls the line number out of a yaml.v3 syntax error.
func yamlErrorLine(err error) int {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		err = errors.New(typeErr.Errors[0])
	}
	match := yamlLinePattern.FindStringSubmatch(err.Error())
	if len(match) < 2 {
		return 0
	}
	line, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0
	}
	return line
}

// mappingField is one key/value pair of a mapping node.
type mappingField struct {
	key   string
	line  int
	value *yaml.Node
}

// mappingFields returns the pairs of a mapping node in document order.
// Aliases are resolved.
func mappingFields(n *yaml.Node) []mappingField {
	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	fields := make([]mappingField, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolve(n.Content[i])
		fields = append(fields, mappingField{
			key:   k.Value,
			line:  k.Line,
			value: resolve(n.Content[i+1]),
		})
	}
	return fields
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isMapping(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.MappingNode
}

func isString(n *yaml.Node) bool {
	return n != nil && n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

// isFalsy reports whether a scalar counts as an absent value: null, false,
// zero, or the empty string. The string "0" is not falsy.
func isFalsy(n *yaml.Node) bool {
	if isNull(n) {
		return true
	}
	if n.Kind != yaml.ScalarNode {
		return false
	}
	switch n.ShortTag() {
	case "!!str":
		return n.Value == ""
	case "!!bool":
		var b bool
		return n.Decode(&b) == nil && !b
	case "!!int":
		var i int64
		return n.Decode(&i) == nil && i == 0
	case "!!float":
		var f float64
		return n.Decode(&f) == nil && (f == 0 || f != f)
	}
	return false
}

func nodeLine(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}

func describeField(category, key, field string) string {
	if field == "" {
		return fmt.Sprintf("%s.%s", category, key)
	}
	return fmt.Sprintf("%s.%s.%s", category, key, field)
}
