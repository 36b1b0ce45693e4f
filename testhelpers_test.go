package storytoblock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
  "prefix": "inttest",
  "tokens": {
    "color": {
      "primary": { "value": "#ff0000", "name": "Primary", "slug": "primary" },
      "muted": { "value": "#999999" }
    },
    "zIndex": {
      "modal": { "value": "300" }
    }
  }
}
`

func writeTestFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	return full
}

func readTestFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}
