package storytoblock

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/yacobolo/storytoblock/internal/emit"
	"github.com/yacobolo/storytoblock/internal/logger"
)

// Options configures Generate and Check.
type Options struct {
	// ConfigPath is the token config; relative paths are resolved against
	// BaseDir. Defaults to stb.config.json.
	ConfigPath string
	// BaseDir is the directory output paths are relative to. Defaults to
	// the working directory.
	BaseDir string
	// DryRun prints the artifacts to Stdout instead of writing them.
	DryRun bool
	// Stdout receives dry-run output. Defaults to os.Stdout.
	Stdout io.Writer
	// Logger receives diagnostics. Nil discards them.
	Logger *logger.Logger
}

func (o Options) baseDir() string {
	if o.BaseDir == "" {
		return "."
	}
	return o.BaseDir
}

// GeneratedFile is one written artifact.
type GeneratedFile struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

// GenerateResult lists the written files in write order.
type GenerateResult struct {
	Config *Config
	Files  []GeneratedFile
}

// Generate loads the config and writes all four artifacts under BaseDir.
// A config error aborts before anything is written. A write failure aborts
// the run; files already written stay in place.
func Generate(opts Options) (*GenerateResult, error) {
	log := opts.Logger
	configPath := resolveConfigPath(opts.ConfigPath, opts.BaseDir)
	log.Debug("loading config", "path", configPath)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	for _, g := range cfg.Tokens.Groups() {
		log.Debug("loaded tokens", "category", g.Category.String(), "count", g.Len())
	}

	artifacts, err := emit.Build(cfg)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Config: cfg}

	if opts.DryRun {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		for _, a := range artifacts {
			if _, err := fmt.Fprintf(w, "=== %s ===\n%s\n", a.Kind, a.Content); err != nil {
				return nil, fmt.Errorf("writing dry-run output: %w", err)
			}
		}
		return result, nil
	}

	for _, a := range artifacts {
		if err := writeArtifact(opts.baseDir(), a); err != nil {
			log.Error(err, "write failed", "path", a.Path)
			return nil, err
		}
		log.Debug("wrote artifact", "path", a.Path, "bytes", len(a.Content))
		result.Files = append(result.Files, GeneratedFile{Path: a.Path, Size: len(a.Content)})
	}

	return result, nil
}

func writeArtifact(baseDir string, a emit.Artifact) error {
	fullPath := filepath.Join(baseDir, filepath.FromSlash(a.Path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", a.Path, err)
	}
	// #nosec G306 - generated assets are meant to be world-readable
	if err := os.WriteFile(fullPath, []byte(a.Content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", a.Path, err)
	}
	return nil
}
