package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/yacobolo/storytoblock/internal/lint"
)

// IssueOptions controls how issues are printed.
type IssueOptions struct {
	UseColors       bool
	PrintLines      bool
	PrintLinterName bool
}

// Reporter prints lint issues in golangci-lint format.
type Reporter struct {
	w    io.Writer
	opts IssueOptions
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, opts IssueOptions) *Reporter {
	return &Reporter{w: w, opts: opts}
}

// UseColors reports whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.opts.UseColors
}

// PrintIssues prints every issue, ordered by file, line, then column.
func (r *Reporter) PrintIssues(issues []lint.Issue) {
	sorted := make([]lint.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue writes "file:line:col: message (linter)" plus the source line
// and a caret under the column.
func (r *Reporter) printIssue(issue lint.Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.opts.PrintLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == lint.SeverityError {
		text = RenderStyle(StyleError, text, r.opts.UseColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleLocation, location, r.opts.UseColors),
		text,
		RenderStyle(StyleMuted, linterSuffix, r.opts.UseColors))

	if r.opts.PrintLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleWarning, caret, r.opts.UseColors))
	}
}

// buildCaretIndicator aligns "^" under column, copying tabs from the source
// line so the caret lines up however the terminal renders them.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary prints the issue count line and the per-linter breakdown.
func (r *Reporter) PrintSummary(result *lint.Result) {
	total := len(result.Issues)
	errors, warnings := result.Counts()

	var detail []string
	if errors > 0 && warnings > 0 {
		detail = append(detail,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}

	header := pluralizeCount(total, "issue", "issues")
	switch {
	case len(detail) > 0 && result.TruncatedCount > 0:
		header = fmt.Sprintf("%s (%s; %s truncated)", header, strings.Join(detail, ", "),
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	case len(detail) > 0:
		header = fmt.Sprintf("%s (%s)", header, strings.Join(detail, ", "))
	case result.TruncatedCount > 0:
		header = fmt.Sprintf("%s (%s truncated)", header,
			pluralizeCount(result.TruncatedCount, "issue", "issues"))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s:\n", header)

	linterCounts := make(map[string]int)
	var linters []string
	for _, issue := range result.Issues {
		if linterCounts[issue.FromLinter] == 0 {
			linters = append(linters, issue.FromLinter)
		}
		linterCounts[issue.FromLinter]++
	}
	for _, name := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", name, linterCounts[name])
	}

	if total > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, RenderStyle(StyleMuted, "Hint: Run with --output-format full to see token usage statistics", r.opts.UseColors))
	}
}
