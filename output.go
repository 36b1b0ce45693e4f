package storytoblock

import (
	"io"

	"github.com/yacobolo/storytoblock/internal/report"
)

// OutputFormat selects how lint results are written.
type OutputFormat string

const (
	// OutputIssues prints issues in golangci-lint format (CI friendly).
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints token usage statistics only.
	OutputSummary OutputFormat = "summary"
	// OutputFull prints issues followed by statistics.
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured JSON.
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat maps the --output-format flag to a format. Quiet
// wins; unknown values fall back to the default.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	}
	return DefaultOutputFormat()
}

// DefaultOutputFormat is issues only, like golangci-lint.
func DefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the given format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, lc LintConfig) error {
	issueOpts := report.IssueOptions{
		UseColors:       lc.UseColors,
		PrintLines:      lc.PrintIssuedLines,
		PrintLinterName: lc.PrintLinterName,
	}

	switch format {
	case OutputSummary:
		writeStats(report.NewStatsReporter(w, lc.UseColors), result)

	case OutputFull:
		reporter := report.NewReporter(w, issueOpts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
		writeStats(report.NewStatsReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		return WriteJSON(w, result)

	default:
		reporter := report.NewReporter(w, issueOpts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}

func writeStats(r *report.StatsReporter, result *LintResult) {
	r.PrintStatistics(result)
	r.PrintUsageProgress(result)
	r.PrintUnused(result)
	r.PrintWarnings(result)
}
