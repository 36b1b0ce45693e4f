package report

import (
	"fmt"
	"io"

	"github.com/yacobolo/storytoblock/internal/drift"
)

// DriftReporter prints the result of comparing generated output with disk.
type DriftReporter struct {
	w         io.Writer
	useColors bool
}

// NewDriftReporter creates a DriftReporter writing to w.
func NewDriftReporter(w io.Writer, useColors bool) *DriftReporter {
	return &DriftReporter{w: w, useColors: useColors}
}

// Print writes one line per artifact, the property changes of stale CSS
// files, and a closing summary.
func (r *DriftReporter) Print(rep *drift.Report) {
	for _, f := range rep.Files {
		var status string
		switch f.Status {
		case drift.StatusOK:
			status = RenderStyle(StyleSuccess, "ok     ", r.useColors)
		case drift.StatusMissing:
			status = RenderStyle(StyleError, "missing", r.useColors)
		default:
			status = RenderStyle(StyleWarning, "stale  ", r.useColors)
		}
		fmt.Fprintf(r.w, "%s %s\n", status, f.Path)

		for _, c := range f.Changes {
			switch c.Kind {
			case drift.ChangeAdded:
				fmt.Fprintf(r.w, "    %s %s: %s\n", RenderStyle(StyleSuccess, "+", r.useColors), c.Property, c.Want)
			case drift.ChangeRemoved:
				fmt.Fprintf(r.w, "    %s %s: %s\n", RenderStyle(StyleError, "-", r.useColors), c.Property, c.Got)
			case drift.ChangeChanged:
				fmt.Fprintf(r.w, "    %s %s: %s → %s\n", RenderStyle(StyleWarning, "~", r.useColors), c.Property, c.Got, c.Want)
			}
		}
	}

	fmt.Fprintln(r.w)
	if rep.Clean() {
		fmt.Fprintln(r.w, RenderStyle(StyleSuccess, "Generated files are up to date", r.useColors))
		return
	}
	fmt.Fprintln(r.w, RenderStyle(StyleError, fmt.Sprintf("%s out of date (%d missing, %d stale). Run story-to-block generate.",
		pluralizeCount(len(rep.Files)-rep.Count(drift.StatusOK), "file", "files"),
		rep.Count(drift.StatusMissing), rep.Count(drift.StatusStale)), r.useColors))
}
