package storytoblock

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/storytoblock/internal/lint"
	"github.com/yacobolo/storytoblock/internal/tokens"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{"explicit quiet flag", "", true, OutputIssues},
		{"explicit issues format", "issues", false, OutputIssues},
		{"explicit summary format", "summary", false, OutputSummary},
		{"explicit full format", "full", false, OutputFull},
		{"explicit json format", "json", false, OutputJSON},
		{"unknown format falls back", "markdown", false, OutputIssues},
		{"default format is issues", "", false, OutputIssues},
		{"quiet overrides format flag", "full", true, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func sampleLintResult() *LintResult {
	return &LintResult{
		Issues: []Issue{
			{
				FromLinter:  lint.LinterName,
				Text:        `unknown token variable "--x-color-nope"`,
				Severity:    SeverityError,
				SourceLines: []string{"color: var(--x-color-nope);"},
				Pos:         IssuePos{Filename: "a.css", Line: 10, Column: 12},
			},
			{
				FromLinter: lint.LinterName,
				Text:       `hardcoded value "#ff0000" should use var(--x-color-primary)`,
				Severity:   SeverityWarning,
				Pos:        IssuePos{Filename: "a.css", Line: 20, Column: 8},
			},
		},
		TruncatedCount:   2,
		Stats:            lint.ScanStats{FilesDiscovered: 12, FilesScanned: 10, FilesSkipped: 2},
		TotalTokens:      8,
		ReferencedTokens: 6,
		References:       30,
		HardcodedValues:  1,
		UsagePercentage:  75,
		Unused: []lint.UnusedToken{
			{Name: "--x-radius-lg", Category: tokens.Radius},
			{Name: "--x-z-top", Category: tokens.ZIndex},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleLintResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	_, err := time.Parse(time.RFC3339, output.Timestamp)
	assert.NoError(t, err)

	assert.Equal(t, JSONSummary{
		TotalIssues:  2,
		Errors:       1,
		Warnings:     1,
		Truncated:    2,
		FilesScanned: 10,
		FilesSkipped: 2,
	}, output.Summary)

	assert.Equal(t, 8, output.Stats.TotalTokens)
	assert.Equal(t, 6, output.Stats.ReferencedTokens)
	assert.Equal(t, 2, output.Stats.UnusedTokens)
	assert.InDelta(t, 75.0, output.Stats.UsagePercentage, 0.01)
	assert.Equal(t, 30, output.Stats.References)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, JSONIssue{
		File:     "a.css",
		Line:     10,
		Column:   12,
		Severity: "error",
		Message:  `unknown token variable "--x-color-nope"`,
		Linter:   "tokenlint",
		Source:   "color: var(--x-color-nope);",
	}, output.Issues[0])
	assert.Empty(t, output.Issues[1].Source)

	assert.Equal(t, []JSONUnused{
		{Name: "--x-radius-lg", Category: "radius"},
		{Name: "--x-z-top", Category: "zIndex"},
	}, output.Unused)
}

func TestWriteJSON_EmptyResultHasArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &LintResult{}))
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"unused": []`)
}

func TestWriteOutput(t *testing.T) {
	lc := LintConfig{PrintIssuedLines: true, PrintLinterName: true}

	tests := []struct {
		name        string
		format      OutputFormat
		contains    []string
		notContains []string
	}{
		{
			name:   "issues",
			format: OutputIssues,
			contains: []string{
				`a.css:10:12: unknown token variable "--x-color-nope" (tokenlint)`,
				"2 issues (1 error, 1 warning; 2 issues truncated):",
			},
			notContains: []string{"Token Usage Statistics"},
		},
		{
			name:        "summary",
			format:      OutputSummary,
			contains:    []string{"Token Usage Statistics", "Referenced Tokens:  6 (75.0%)", "Radius (1)", "Z Index (1)"},
			notContains: []string{"a.css:10:12"},
		},
		{
			name:     "full",
			format:   OutputFull,
			contains: []string{"a.css:10:12", "Token Usage Statistics", "Token Coverage"},
		},
		{
			name:     "json",
			format:   OutputJSON,
			contains: []string{`"total_tokens": 8`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, sampleLintResult(), tt.format, lc))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
