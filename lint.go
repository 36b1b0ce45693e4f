package storytoblock

import (
	"github.com/yacobolo/storytoblock/internal/emit"
	"github.com/yacobolo/storytoblock/internal/lint"
	"github.com/yacobolo/storytoblock/internal/logger"
)

// Lint types, re-exported for library users.
type (
	LintResult = lint.Result
	Issue      = lint.Issue
	IssuePos   = lint.IssuePos
)

// Issue severities.
const (
	SeverityError   = lint.SeverityError
	SeverityWarning = lint.SeverityWarning
)

// DefaultLintPaths are scanned when no paths are configured.
var DefaultLintPaths = []string{
	"src/**/*.css",
	"src/**/*.{ts,tsx,js,jsx}",
	"**/*.php",
}

// LintConfig holds linting configuration.
type LintConfig struct {
	ConfigPath string
	BaseDir    string
	Paths      []string

	Strict             bool // warnings fail too
	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited

	PrintIssuedLines bool
	PrintLinterName  bool
	UseColors        bool

	Logger *logger.Logger
}

// Lint loads the config and scans the configured paths for token
// references. The generated artifacts themselves are never scanned.
func Lint(lc LintConfig) (*LintResult, error) {
	cfg, err := LoadConfig(resolveConfigPath(lc.ConfigPath, lc.BaseDir))
	if err != nil {
		return nil, err
	}

	paths := lc.Paths
	if len(paths) == 0 {
		paths = DefaultLintPaths
	}

	return lint.Run(cfg, lint.Config{
		BaseDir:            lc.BaseDir,
		Paths:              paths,
		Exclude:            emit.Paths(cfg),
		MaxIssuesPerLinter: lc.MaxIssuesPerLinter,
		MaxSameIssues:      lc.MaxSameIssues,
	}, lc.Logger)
}
