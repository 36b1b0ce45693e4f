package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/storytoblock"
	"github.com/yacobolo/storytoblock/internal/logger"
	"github.com/yacobolo/storytoblock/internal/report"
)

const defaultSettingsPath = ".stb.yaml"

var k = koanf.New(".")

// loadConfig loads tool settings with precedence flags > env > file > defaults.
// It runs after cobra has parsed flags.
func loadConfig(cmd *cobra.Command) error {
	settingsPath, _ := cmd.Flags().GetString("settings")
	if settingsPath == "" {
		settingsPath = defaultSettingsPath
	}

	if err := loadConfigFromPath(settingsPath); err != nil {
		return err
	}

	// Only flags the user changed. Defaults come from the getters below.
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads the settings file, if present, and STB_* env vars.
func loadConfigFromPath(settingsPath string) error {
	if _, err := os.Stat(settingsPath); err == nil {
		if err := k.Load(file.Provider(settingsPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading settings file %s: %w", settingsPath, err)
		}
	}

	// STB_LINT_STRICT -> lint.strict, STB_BASE_DIR -> base.dir
	if err := k.Load(env.Provider("STB_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "STB_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildOptions constructs generate/check options from koanf state.
func buildOptions(cmd *cobra.Command, log *logger.Logger) storytoblock.Options {
	return storytoblock.Options{
		ConfigPath: getStringWithFallback("config", "config", storytoblock.DefaultConfigPath),
		BaseDir:    baseDir(),
		DryRun:     getBoolWithFallback("dry-run", "generate.dry-run", false),
		Stdout:     cmd.OutOrStdout(),
		Logger:     log,
	}
}

// buildLintConfig constructs the library's LintConfig from koanf state.
func buildLintConfig(log *logger.Logger) storytoblock.LintConfig {
	var paths []string
	if p := k.Strings("paths"); len(p) > 0 {
		paths = p
	} else if p := k.Strings("lint.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = storytoblock.DefaultLintPaths
	}

	return storytoblock.LintConfig{
		ConfigPath:         getStringWithFallback("config", "config", storytoblock.DefaultConfigPath),
		BaseDir:            baseDir(),
		Paths:              paths,
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          useColors(),
		Logger:             log,
	}
}

// base-dir comes from a flag or the settings file, base.dir from STB_BASE_DIR.
func baseDir() string {
	return getStringWithFallback("base-dir", "base.dir", ".")
}

func quiet() bool {
	return getBoolWithFallback("quiet", "quiet", false)
}

func useColors() bool {
	return report.ShouldUseColors(getBoolWithFallback("color", "color", false))
}

// newLogger builds the diagnostic logger: --log-level wins, --verbose means
// debug, otherwise warnings and errors only.
func newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	level := getStringWithFallback("log-level", "log-level", "")
	if level == "" && getBoolWithFallback("verbose", "verbose", false) {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:   level,
		Console: true,
		NoColor: !useColors(),
		Writer:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log, nil
}

// getStringWithFallback checks the flag key first, then the settings key,
// then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
