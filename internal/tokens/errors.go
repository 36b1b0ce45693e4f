package tokens

import "fmt"

// NotFoundError reports a config file that does not exist or cannot be read.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("Config file not found: %s", e.Path)
}

// Unwrap exposes the underlying error.
func (e *NotFoundError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents malformed config syntax with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("Invalid syntax in config file: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("Invalid syntax in config file: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationKind classifies a schema violation.
type ValidationKind int

// Validation kinds.
const (
	MissingPrefix ValidationKind = iota
	InvalidTokens
	UnknownCategory
	MissingValue
	InvalidValue
	MismatchedPreset
	InvalidField
	DuplicateKey
)

func (k ValidationKind) String() string {
	switch k {
	case MissingPrefix:
		return "missing prefix"
	case InvalidTokens:
		return "invalid tokens"
	case UnknownCategory:
		return "unknown category"
	case MissingValue:
		return "missing value"
	case InvalidValue:
		return "invalid value"
	case MismatchedPreset:
		return "mismatched name/slug"
	case InvalidField:
		return "invalid field"
	case DuplicateKey:
		return "duplicate key"
	}
	return "unknown"
}

// ValidationError captures a config schema violation. Field is the dotted
// path of the offending element ("color.primary.value").
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Line    int
	Message string
	Err     error
}

func newValidationError(kind ValidationKind, field string, line int, format string, args ...any) error {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return "Config error: " + e.Message
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
