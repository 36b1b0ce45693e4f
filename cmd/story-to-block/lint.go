package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/storytoblock"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint design token usage in theme and component sources",
	Long: `Check var(--<prefix>-...) references in CSS, scripts and PHP templates
against the token config. Unknown token variables are errors; hardcoded
color values that have a token are warnings.`,
	RunE: runLint,
}

var errLintFailed = errors.New("lint failed")

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", storytoblock.DefaultLintPaths, "File patterns to scan for token references")
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (tokenlint) suffix on issues")
}

func runLint(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	lc := buildLintConfig(log)
	result, err := storytoblock.Lint(lc)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	q := quiet()
	format := storytoblock.DetermineOutputFormat(
		getStringWithFallback("output-format", "lint.output-format", ""), q)
	if !q {
		if err := storytoblock.WriteOutput(cmd.OutOrStdout(), result, format, lc); err != nil {
			return fmt.Errorf("writing lint output: %w", err)
		}
	}

	// Soft gate: errors fail, warnings only with --strict.
	if result.Failed(lc.Strict) {
		return errLintFailed
	}
	return nil
}
