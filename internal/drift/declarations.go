package drift

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one custom property declaration.
type Declaration struct {
	Name  string
	Value string
}

// Declarations returns the custom property declarations in a stylesheet, in
// source order. Values are whitespace-normalized so formatting differences
// do not count as changes.
func Declarations(content string) []Declaration {
	lexer := css.NewLexer(parse.NewInputString(content))

	var decls []Declaration
	var name string
	var value []string
	inValue := false
	depth := 0

	flush := func() {
		if name != "" && inValue {
			decls = append(decls, Declaration{Name: name, Value: normalize(value)})
		}
		name, value, inValue = "", nil, false
	}

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			flush()
			break
		}

		switch {
		case tt == css.CommentToken:
			continue
		case inValue && (tt == css.FunctionToken || tt == css.LeftParenthesisToken):
			depth++
			value = append(value, string(text))
		case inValue && tt == css.RightParenthesisToken && depth > 0:
			depth--
			value = append(value, string(text))
		case depth == 0 && (tt == css.SemicolonToken || tt == css.RightBraceToken || tt == css.LeftBraceToken):
			flush()
		case !inValue && (tt == css.CustomPropertyNameToken || tt == css.IdentToken):
			name = string(text)
		case !inValue && tt == css.ColonToken && strings.HasPrefix(name, "--"):
			inValue = true
		case inValue:
			value = append(value, string(text))
		case tt != css.WhitespaceToken:
			name = ""
		}
	}

	return decls
}

func normalize(parts []string) string {
	return strings.Join(strings.Fields(strings.Join(parts, "")), " ")
}
