package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/storytoblock"
	"github.com/yacobolo/storytoblock/internal/report"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate CSS, theme.json and integrate.php from the token config",
	Long: `Validate the token config and write four artifacts:
tokens.css (plain custom properties), tokens.wp.css (WordPress preset
fallbacks), theme.json and integrate.php.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("dry-run", false, "Print the artifacts to stdout instead of writing them")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	opts := buildOptions(cmd, log)
	result, err := storytoblock.Generate(opts)
	if err != nil {
		return err
	}

	if opts.DryRun || quiet() {
		return nil
	}

	r := report.NewGenerateReporter(cmd.OutOrStdout(), useColors())
	for _, f := range result.Files {
		r.PrintFile(f.Path, f.Size)
	}
	r.PrintDone(len(result.Files))
	r.PrintTokenSummary(result.Config)

	log.Info("generate finished", "files", len(result.Files))
	return nil
}
