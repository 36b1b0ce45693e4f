// Package storytoblock turns a design token config into WordPress block
// theme assets.
//
// One config file, stb.config.json by default, lists design tokens grouped
// by category (color, spacing, fontFamily, fontSize, fontWeight, lineHeight,
// radius, shadow, transition, zIndex). Four artifacts are generated from it:
//
//   - tokens.css: every token as a --{prefix}-{segment}-{key} custom property
//   - tokens.wp.css: the same properties, falling back to the editor's preset
//     variables for named color, spacing, font family and font size tokens
//   - theme.json: presets for named tokens plus a custom section
//   - integrate.php: a snippet that merges theme.json and enqueues the CSS
//
// # Generation
//
//	result, err := storytoblock.Generate(storytoblock.Options{
//		ConfigPath: "stb.config.json",
//		BaseDir:    ".",
//	})
//
// # Drift detection
//
// Check renders the artifacts in memory and compares them with the files on
// disk, so CI can fail when generated files were not regenerated:
//
//	report, err := storytoblock.Check(storytoblock.Options{BaseDir: "."})
//	if !report.Clean() { ... }
//
// # Linting
//
// Lint scans stylesheets and templates for var(--{prefix}-...) references
// that no token produces, and for hardcoded color values that have a token:
//
//	result, err := storytoblock.Lint(storytoblock.LintConfig{
//		Paths: []string{"src/**/*.css"},
//	})
//
// # CLI Tool
//
// Install the command line tool with:
//
//	go install github.com/yacobolo/storytoblock/cmd/story-to-block@latest
package storytoblock
