// Package drift compares freshly rendered artifacts with the copies on disk.
package drift

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yacobolo/storytoblock/internal/emit"
)

// Status of one artifact on disk.
type Status string

const (
	StatusOK      Status = "ok"
	StatusMissing Status = "missing"
	StatusStale   Status = "stale"
)

// ChangeKind describes how a custom property differs.
type ChangeKind string

const (
	// ChangeAdded: regeneration would add the property.
	ChangeAdded ChangeKind = "added"
	// ChangeRemoved: the file on disk has a property regeneration drops.
	ChangeRemoved ChangeKind = "removed"
	// ChangeChanged: both sides declare the property with different values.
	ChangeChanged ChangeKind = "changed"
)

// Change is a single property-level difference in a CSS artifact.
type Change struct {
	Property string     `json:"property"`
	Kind     ChangeKind `json:"kind"`
	Want     string     `json:"want,omitempty"`
	Got      string     `json:"got,omitempty"`
}

// File is the comparison result for one artifact.
type File struct {
	Kind    string   `json:"kind"`
	Path    string   `json:"path"`
	Status  Status   `json:"status"`
	Changes []Change `json:"changes,omitempty"`
}

// Report lists every artifact in write order.
type Report struct {
	Files []File `json:"files"`
}

// Clean reports whether every artifact is up to date.
func (r *Report) Clean() bool {
	for _, f := range r.Files {
		if f.Status != StatusOK {
			return false
		}
	}
	return true
}

// Count returns how many artifacts have the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}

// Compare reads each artifact's path under baseDir and compares it with the
// rendered content. A missing file is reported, not returned as an error.
func Compare(baseDir string, artifacts []emit.Artifact) (*Report, error) {
	report := &Report{}
	for _, a := range artifacts {
		file := File{Kind: a.Kind, Path: a.Path, Status: StatusOK}

		data, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(a.Path)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			file.Status = StatusMissing
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", a.Path, err)
		case string(data) != a.Content:
			file.Status = StatusStale
			if a.IsCSS() {
				file.Changes = DiffCSS(a.Content, string(data))
			}
		}

		report.Files = append(report.Files, file)
	}
	return report, nil
}

// DiffCSS compares the custom properties declared in want and got. Added and
// changed properties follow want's order; removed ones follow got's order
// and come last.
func DiffCSS(want, got string) []Change {
	gotDecls := Declarations(got)
	gotValues := make(map[string]string, len(gotDecls))
	for _, d := range gotDecls {
		gotValues[d.Name] = d.Value
	}

	var changes []Change
	wantNames := make(map[string]bool)
	for _, d := range Declarations(want) {
		wantNames[d.Name] = true
		value, ok := gotValues[d.Name]
		switch {
		case !ok:
			changes = append(changes, Change{Property: d.Name, Kind: ChangeAdded, Want: d.Value})
		case value != d.Value:
			changes = append(changes, Change{Property: d.Name, Kind: ChangeChanged, Want: d.Value, Got: value})
		}
	}

	for _, d := range gotDecls {
		if !wantNames[d.Name] {
			changes = append(changes, Change{Property: d.Name, Kind: ChangeRemoved, Got: d.Value})
		}
	}

	return changes
}
