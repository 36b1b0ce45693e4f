package lint

// Issue is a single lint finding, shaped like a golangci-lint issue.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`
	Text        string   `json:"Text"`
	Severity    string   `json:"Severity"`
	SourceLines []string `json:"SourceLines"`
	Pos         IssuePos `json:"Pos"`
}

// IssuePos is a 1-based file location.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"`
}

// LinterName tags every issue produced by this package.
const LinterName = "tokenlint"

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats.
const (
	IssueUnknownToken   = "unknown token variable %q"
	IssueHardcodedValue = "hardcoded value %q should use var(%s)"
)
