package storytoblock

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the schema of --output-format json.
type JSONOutput struct {
	Version   string       `json:"version"`
	Timestamp string       `json:"timestamp"`
	Summary   JSONSummary  `json:"summary"`
	Stats     JSONStats    `json:"stats"`
	Issues    []JSONIssue  `json:"issues"`
	Unused    []JSONUnused `json:"unused"`
}

// JSONSummary holds issue counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
	FilesSkipped int `json:"files_skipped"`
}

// JSONStats holds token usage statistics.
type JSONStats struct {
	TotalTokens      int     `json:"total_tokens"`
	ReferencedTokens int     `json:"referenced_tokens"`
	UnusedTokens     int     `json:"unused_tokens"`
	UsagePercentage  float64 `json:"usage_percentage"`
	References       int     `json:"references"`
	HardcodedValues  int     `json:"hardcoded_values"`
}

// JSONIssue is a single lint issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// JSONUnused is a token nothing references.
type JSONUnused struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// WriteJSON writes the lint result as indented JSON.
func WriteJSON(w io.Writer, result *LintResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONOutput(result, time.Now()))
}

func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	errors, warnings := result.Counts()

	issues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	unused := make([]JSONUnused, len(result.Unused))
	for i, u := range result.Unused {
		unused[i] = JSONUnused{Name: u.Name, Category: u.Category.String()}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.Stats.FilesScanned,
			FilesSkipped: result.Stats.FilesSkipped,
		},
		Stats: JSONStats{
			TotalTokens:      result.TotalTokens,
			ReferencedTokens: result.ReferencedTokens,
			UnusedTokens:     len(result.Unused),
			UsagePercentage:  result.UsagePercentage,
			References:       result.References,
			HardcodedValues:  result.HardcodedValues,
		},
		Issues: issues,
		Unused: unused,
	}
}
