// Package lint checks stylesheets and templates for references to the
// generated token custom properties.
//
// Two findings are reported:
//
//   - error: var(--{prefix}-...) names a property the config does not produce
//     (a typo or a removed token)
//   - warning: a color token's literal value appears outside a var()
//     expression, where the token should be used instead
//
// Alongside the issues the linter reports how many of the configured tokens
// are referenced at least once.
package lint

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/yacobolo/storytoblock/internal/logger"
	"github.com/yacobolo/storytoblock/internal/tokens"
)

// Config controls a lint run.
type Config struct {
	// BaseDir is the directory Paths and Exclude are relative to.
	BaseDir string
	// Paths are doublestar glob patterns of files to scan.
	Paths []string
	// Exclude lists files never scanned, typically the generated artifacts.
	Exclude []string

	MaxIssuesPerLinter int // 0 = unlimited
	MaxSameIssues      int // 0 = unlimited
}

// UnusedToken is a configured token no scanned file references.
type UnusedToken struct {
	Name     string
	Category tokens.Category
}

// Result holds the issues and usage statistics of a lint run.
type Result struct {
	Issues         []Issue
	TruncatedCount int

	// Totals before truncation.
	ErrorCount   int
	WarningCount int

	Stats ScanStats

	TotalTokens      int
	ReferencedTokens int
	References       int
	HardcodedValues  int
	UsagePercentage  float64
	Unused           []UnusedToken

	Warnings []string
}

// Counts returns the number of error and warning issues left after
// truncation.
func (r *Result) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Failed reports whether the run should fail a build. Errors always fail;
// warnings only in strict mode.
func (r *Result) Failed(strict bool) bool {
	return r.ErrorCount > 0 || (strict && r.WarningCount > 0)
}

// tokenIndex is the lookup table built from a config.
type tokenIndex struct {
	prefix   string
	names    []string
	category map[string]tokens.Category
	colors   []colorLiteral
}

type colorLiteral struct {
	value   string
	name    string
	pattern *regexp.Regexp
}

func newTokenIndex(cfg *tokens.Config) *tokenIndex {
	idx := &tokenIndex{
		prefix:   "--" + cfg.Prefix + "-",
		category: make(map[string]tokens.Category),
	}
	seenValue := make(map[string]bool)
	for _, g := range cfg.Tokens.Groups() {
		for _, tk := range g.Tokens {
			name := g.Category.VarName(cfg.Prefix, tk.Key)
			idx.names = append(idx.names, name)
			idx.category[name] = g.Category

			if g.Category != tokens.Color || tk.Entry.Value == "" || seenValue[tk.Entry.Value] {
				continue
			}
			seenValue[tk.Entry.Value] = true
			idx.colors = append(idx.colors, colorLiteral{
				value:   tk.Entry.Value,
				name:    name,
				pattern: literalPattern(tk.Entry.Value),
			})
		}
	}
	return idx
}

// Run scans the files selected by lc for references to the tokens in cfg.
func Run(cfg *tokens.Config, lc Config, log *logger.Logger) (*Result, error) {
	baseDir := lc.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	files, stats, err := discoverFiles(baseDir, lc.Paths, newFileFilter(baseDir, lc.Exclude))
	if err != nil {
		return nil, fmt.Errorf("expanding lint paths: %w", err)
	}
	log.Debug("discovered files", "scanned", stats.FilesScanned, "skipped", stats.FilesSkipped)

	idx := newTokenIndex(cfg)
	result := &Result{Stats: stats, TotalTokens: len(idx.names)}
	referenced := make(map[string]bool)
	fsys := os.DirFS(baseDir)

	for _, file := range files {
		lines, err := readLines(fsys, file)
		if err != nil {
			log.Warn("skipping unreadable file", "file", file, "error", err.Error())
			result.Warnings = append(result.Warnings, fmt.Sprintf("could not read %s: %v", file, err))
			continue
		}
		for _, line := range lines {
			result.Issues = append(result.Issues, idx.checkLine(line, referenced, result)...)
		}
	}

	result.ReferencedTokens = len(referenced)
	if result.TotalTokens > 0 {
		result.UsagePercentage = float64(result.ReferencedTokens) / float64(result.TotalTokens) * 100
	}
	for _, name := range idx.names {
		if !referenced[name] {
			result.Unused = append(result.Unused, UnusedToken{Name: name, Category: idx.category[name]})
		}
	}

	sortIssues(result.Issues)
	result.ErrorCount, result.WarningCount = result.Counts()
	if lc.MaxIssuesPerLinter > 0 || lc.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, lc)
	}

	return result, nil
}

// checkLine records references on the line and returns its issues.
func (idx *tokenIndex) checkLine(line Line, referenced map[string]bool, result *Result) []Issue {
	if isComment(line.Text) {
		return nil
	}

	var issues []Issue
	for _, ref := range findVarRefs(line.Text, idx.prefix) {
		result.References++
		if _, ok := idx.category[ref.Name]; ok {
			referenced[ref.Name] = true
			continue
		}
		issues = append(issues, newIssue(line, ref.Column, SeverityError, fmt.Sprintf(IssueUnknownToken, ref.Name)))
	}

	if len(idx.colors) == 0 {
		return issues
	}
	spans := varSpans(line.Text)
	for _, c := range idx.colors {
		for _, m := range findLiteral(line.Text, c.pattern) {
			if insideSpan(spans, m[0]) {
				continue
			}
			result.HardcodedValues++
			literal := line.Text[m[0]:m[1]]
			issues = append(issues, newIssue(line, m[0]+1, SeverityWarning, fmt.Sprintf(IssueHardcodedValue, literal, c.name)))
		}
	}
	return issues
}

func newIssue(line Line, column int, severity, text string) Issue {
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{line.Text},
		Pos: IssuePos{
			Filename: line.File,
			Line:     line.Num,
			Column:   column,
		},
	}
}

// sortIssues orders issues by file, line, then column.
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues.
func limitIssues(issues []Issue, lc Config) ([]Issue, int) {
	original := len(issues)

	if lc.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, lc.MaxSameIssues)
	}
	if lc.MaxIssuesPerLinter > 0 && len(issues) > lc.MaxIssuesPerLinter {
		issues = issues[:lc.MaxIssuesPerLinter]
	}

	return issues, original - len(issues)
}

// deduplicateSameIssues keeps at most maxSame issues with identical text.
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	counts := make(map[string]int)
	var filtered []Issue
	for _, issue := range issues {
		if counts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			counts[issue.Text]++
		}
	}
	return filtered
}
