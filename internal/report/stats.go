package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/storytoblock/internal/lint"
	"github.com/yacobolo/storytoblock/internal/tokens"
)

// unusedLimit caps how many unused tokens are listed per category.
const unusedLimit = 10

// StatsReporter prints token usage statistics for a lint run.
type StatsReporter struct {
	w         io.Writer
	useColors bool
}

// NewStatsReporter creates a StatsReporter writing to w.
func NewStatsReporter(w io.Writer, useColors bool) *StatsReporter {
	return &StatsReporter{w: w, useColors: useColors}
}

// PrintStatistics prints the counters of a lint run.
func (r *StatsReporter) PrintStatistics(result *lint.Result) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Token Usage Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------")

	errors, _ := result.Counts()
	fmt.Fprintf(r.w, "Total Tokens:       %d\n", result.TotalTokens)
	fmt.Fprintf(r.w, "Referenced Tokens:  %d (%.1f%%)\n", result.ReferencedTokens, result.UsagePercentage)
	fmt.Fprintf(r.w, "Unused Tokens:      %d\n", len(result.Unused))
	fmt.Fprintf(r.w, "Files Scanned:      %d\n", result.Stats.FilesScanned)
	if result.Stats.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "Files Skipped:      %d\n", result.Stats.FilesSkipped)
	}
	fmt.Fprintf(r.w, "Token References:   %d\n", result.References)
	fmt.Fprintf(r.w, "Hardcoded Values:   %d\n", result.HardcodedValues)
	fmt.Fprintf(r.w, "Unknown Variables:  %d\n", errors)
}

// PrintUsageProgress prints a bar for the referenced-token percentage.
func (r *StatsReporter) PrintUsageProgress(result *lint.Result) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, "Token Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------------")
	fmt.Fprintln(r.w, progressBar(result.UsagePercentage, 20))
}

// PrintUnused lists unused tokens grouped by category, in declaration order.
func (r *StatsReporter) PrintUnused(result *lint.Result) {
	if len(result.Unused) == 0 {
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleWarning, "Unused Tokens", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	var order []tokens.Category
	byCategory := make(map[tokens.Category][]string)
	for _, u := range result.Unused {
		if _, ok := byCategory[u.Category]; !ok {
			order = append(order, u.Category)
		}
		byCategory[u.Category] = append(byCategory[u.Category], u.Name)
	}

	for _, c := range order {
		names := byCategory[c]
		fmt.Fprintf(r.w, "%s (%d)\n", CategoryTitle(c), len(names))
		for i, name := range names {
			if i == unusedLimit {
				fmt.Fprintf(r.w, "  ... and %d more\n", len(names)-unusedLimit)
				break
			}
			fmt.Fprintf(r.w, "  • %s\n", name)
		}
	}
}

// PrintWarnings prints non-fatal problems met while scanning.
func (r *StatsReporter) PrintWarnings(result *lint.Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleWarning, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")
	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// progressBar renders "[████░░░░] 50.0%" with width cells.
func progressBar(percentage float64, width int) string {
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fmt.Sprintf("[%s%s] %.1f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", width-filled),
		percentage)
}
