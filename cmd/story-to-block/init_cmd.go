package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter stb.config.json",
	Long: `Write a starter token config with one example of each kind of token.
With --settings-file a default .stb.yaml is written as well.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		withSettings, _ := cmd.Flags().GetBool("settings-file")

		configPath := getStringWithFallback("config", "config", "stb.config.json")
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(baseDir(), configPath)
		}
		if err := writeStarter(cmd, configPath, starterConfig, force); err != nil {
			return err
		}

		if withSettings {
			return writeStarter(cmd, filepath.Join(baseDir(), defaultSettingsPath), defaultSettings, force)
		}
		return nil
	},
}

func writeStarter(cmd *cobra.Command, path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	// #nosec G306 - config files are meant to be world-readable
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if !quiet() {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	}
	return nil
}

const starterConfig = `{
  "prefix": "theme",
  "tokensPath": "src/styles/tokens.css",
  "outDir": "dist/wp",
  "tokens": {
    "color": {
      "primary": { "value": "#0073aa", "name": "Primary", "slug": "primary" },
      "primary-hover": { "value": "#005a87" },
      "text": { "value": "#1e1e1e", "name": "Text", "slug": "text" }
    },
    "spacing": {
      "sm": { "value": "0.5rem", "name": "Small", "slug": "20" },
      "md": { "value": "1rem", "name": "Medium", "slug": "40" }
    },
    "fontFamily": {
      "base": { "value": "system-ui, sans-serif", "name": "Base", "slug": "base" }
    },
    "fontSize": {
      "sm": { "value": "0.875rem", "name": "Small", "slug": "small" },
      "md": { "value": "1rem", "name": "Medium", "slug": "medium" }
    },
    "fontWeight": {
      "bold": { "value": "700" }
    },
    "lineHeight": {
      "normal": { "value": "1.5" }
    },
    "radius": {
      "md": { "value": "4px" }
    },
    "shadow": {
      "sm": { "value": "0 1px 2px 0 rgb(0 0 0 / 0.05)" }
    },
    "transition": {
      "fast": { "value": "150ms ease" }
    },
    "zIndex": {
      "modal": { "value": "300" }
    }
  }
}
`

const defaultSettings = `# story-to-block settings
# Flags override STB_* environment variables, which override this file.

config: stb.config.json
base-dir: .
verbose: false
log-level: warn

lint:
  paths:
    - "src/**/*.css"
    - "src/**/*.{ts,tsx,js,jsx}"
    - "**/*.php"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("settings-file", false, "Also write a default .stb.yaml")
}
