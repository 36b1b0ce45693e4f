package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "story-to-block",
	Short: "Generate WordPress assets from a design token config",
	Long: `story-to-block reads a design token config (stb.config.json) and generates
tokens.css, tokens.wp.css, theme.json and integrate.php for a WordPress
block theme.`,
	// Unknown commands fall through to help instead of failing.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "stb.config.json", "Path to the token config file")
	pf.String("base-dir", ".", "Directory output paths are relative to")
	pf.String("settings", ".stb.yaml", "Path to the tool settings file")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("log-level", "", "Log level: debug|info|warn|error")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
