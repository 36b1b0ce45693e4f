package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/yacobolo/storytoblock"
	"github.com/yacobolo/storytoblock/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated files match the token config",
	Long: `Render all artifacts in memory and compare them with the files on disk.
Custom properties in the CSS files are compared one by one. Exits 1 when
any file is missing or stale.`,
	RunE: runCheck,
}

var errOutOfDate = errors.New("generated files are out of date")

func runCheck(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}

	rep, err := storytoblock.Check(buildOptions(cmd, log))
	if err != nil {
		return err
	}

	if !quiet() {
		report.NewDriftReporter(cmd.OutOrStdout(), useColors()).Print(rep)
	}

	if !rep.Clean() {
		return errOutOfDate
	}
	return nil
}
