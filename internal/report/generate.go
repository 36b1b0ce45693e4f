package report

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

var titleCaser = cases.Title(language.English)

// CategoryTitle is the display heading of a category, e.g. "Font Family".
func CategoryTitle(c tokens.Category) string {
	return titleCaser.String(c.Label())
}

// GenerateReporter prints the outcome of a generate run.
type GenerateReporter struct {
	w         io.Writer
	useColors bool
}

// NewGenerateReporter creates a GenerateReporter writing to w.
func NewGenerateReporter(w io.Writer, useColors bool) *GenerateReporter {
	return &GenerateReporter{w: w, useColors: useColors}
}

// PrintFile prints one written file and its size.
func (r *GenerateReporter) PrintFile(path string, size int) {
	fmt.Fprintf(r.w, "  %s %s %s\n",
		RenderStyle(StyleSuccess, "✓", r.useColors),
		path,
		RenderStyle(StyleMuted, formatSize(size), r.useColors))
}

// PrintDone prints the closing line after all files were written.
func (r *GenerateReporter) PrintDone(files int) {
	fmt.Fprintf(r.w, "%s\n", RenderStyle(StyleSuccess, "Generated "+pluralizeCount(files, "file", "files"), r.useColors))
}

// PrintTokenSummary prints a table of token and preset counts per category,
// in declaration order.
func (r *GenerateReporter) PrintTokenSummary(cfg *tokens.Config) {
	groups := cfg.Tokens.Groups()
	if len(groups) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleWarning, "No tokens defined", r.useColors))
		return
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, RenderStyle(StyleLocation, fmt.Sprintf("Tokens (prefix %q)", cfg.Prefix), r.useColors))

	total, named := 0, 0
	for _, g := range groups {
		n := 0
		for _, tk := range g.Tokens {
			if tk.Entry.IsNamed() {
				n++
			}
		}
		presets := "-"
		if _, ok := g.Category.PresetPath(); ok {
			presets = fmt.Sprintf("%d preset", n)
			if n != 1 {
				presets += "s"
			}
			named += n
		}
		total += g.Len()
		fmt.Fprintf(r.w, "  %-12s %4d  %s\n", CategoryTitle(g.Category), g.Len(), RenderStyle(StyleMuted, presets, r.useColors))
	}
	fmt.Fprintf(r.w, "  %-12s %4d  %s\n", "Total", total,
		RenderStyle(StyleMuted, pluralizeCount(named, "preset", "presets"), r.useColors))
}

func formatSize(size int) string {
	if size < 1024 {
		return fmt.Sprintf("(%d B)", size)
	}
	return fmt.Sprintf("(%.1f KB)", float64(size)/1024)
}
