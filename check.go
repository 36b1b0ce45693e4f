package storytoblock

import (
	"github.com/yacobolo/storytoblock/internal/drift"
	"github.com/yacobolo/storytoblock/internal/emit"
)

// Drift types, re-exported for library users.
type (
	DriftReport = drift.Report
	DriftFile   = drift.File
	DriftChange = drift.Change
)

// Check renders the artifacts for the config and compares them with the
// files under BaseDir. DryRun and Stdout are ignored.
func Check(opts Options) (*DriftReport, error) {
	log := opts.Logger
	configPath := resolveConfigPath(opts.ConfigPath, opts.BaseDir)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	artifacts, err := emit.Build(cfg)
	if err != nil {
		return nil, err
	}

	report, err := drift.Compare(opts.baseDir(), artifacts)
	if err != nil {
		return nil, err
	}
	for _, f := range report.Files {
		log.Debug("checked artifact", "path", f.Path, "status", string(f.Status), "changes", len(f.Changes))
	}
	return report, nil
}
