package emit

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

// SnippetTemplate is the path of the bundled PHP integration template.
const SnippetTemplate = "templates/integrate.php.tpl"

// ErrResourceMissing reports a bundled resource that is not available. It
// indicates a packaging defect, not a user error.
var ErrResourceMissing = errors.New("bundled resource missing")

//go:embed templates/*
var templateFS embed.FS

// resources is swapped in tests.
var resources fs.FS = templateFS

// Snippet returns the PHP integration snippet verbatim. It takes no config:
// the template reads the generated theme.json at runtime.
func Snippet() (string, error) {
	data, err := fs.ReadFile(resources, SnippetTemplate)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrResourceMissing, SnippetTemplate, err)
	}
	return string(data), nil
}
