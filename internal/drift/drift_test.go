package drift

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/storytoblock/internal/emit"
)

func TestDeclarations(t *testing.T) {
	css := `/* header */
:root {
  --x-color-primary: #ff0000;
  --x-color-link: var(--wp--preset--color--primary,   #ff0000);
  --x-shadow-sm: 0 1px 2px 0 rgb(0 0 0 / 0.05);
  color: red;
  --x-z-top: 10
}
`
	assert.Equal(t, []Declaration{
		{Name: "--x-color-primary", Value: "#ff0000"},
		{Name: "--x-color-link", Value: "var(--wp--preset--color--primary, #ff0000)"},
		{Name: "--x-shadow-sm", Value: "0 1px 2px 0 rgb(0 0 0 / 0.05)"},
		{Name: "--x-z-top", Value: "10"},
	}, Declarations(css))
}

func TestDeclarations_Empty(t *testing.T) {
	assert.Empty(t, Declarations(""))
	assert.Empty(t, Declarations(":root {\n}\n"))
}

func TestDiffCSS(t *testing.T) {
	want := ":root {\n  --x-a: 1px;\n  --x-b: 2px;\n  --x-c: 3px;\n}\n"
	got := ":root {\n  --x-a: 1px;\n  --x-b: 5px;\n  --x-old: 9px;\n}\n"

	assert.Equal(t, []Change{
		{Property: "--x-b", Kind: ChangeChanged, Want: "2px", Got: "5px"},
		{Property: "--x-c", Kind: ChangeAdded, Want: "3px"},
		{Property: "--x-old", Kind: ChangeRemoved, Got: "9px"},
	}, DiffCSS(want, got))
}

func TestDiffCSS_FormattingOnly(t *testing.T) {
	want := ":root {\n  --x-a: 1px;\n}\n"
	got := "/* edited */ :root{--x-a:1px}"
	assert.Empty(t, DiffCSS(want, got))
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	artifacts := []emit.Artifact{
		{Kind: emit.KindTokensCSS, Path: "src/tokens.css", Content: ":root {\n  --x-a: 1px;\n}\n"},
		{Kind: emit.KindPlatformCSS, Path: "dist/tokens.wp.css", Content: ":root {\n  --x-a: 1px;\n}\n"},
		{Kind: emit.KindThemeJSON, Path: "dist/theme.json", Content: "{}\n"},
		{Kind: emit.KindSnippet, Path: "dist/integrate.php", Content: "<?php\n"},
	}

	write := func(rel, content string) {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	write("src/tokens.css", ":root {\n  --x-a: 1px;\n}\n")
	write("dist/tokens.wp.css", ":root {\n  --x-a: 2px;\n}\n")
	write("dist/theme.json", "{ }\n")

	report, err := Compare(dir, artifacts)
	require.NoError(t, err)
	require.Len(t, report.Files, 4)

	assert.Equal(t, StatusOK, report.Files[0].Status)
	assert.Equal(t, StatusStale, report.Files[1].Status)
	assert.Equal(t, []Change{{Property: "--x-a", Kind: ChangeChanged, Want: "1px", Got: "2px"}}, report.Files[1].Changes)
	assert.Equal(t, StatusStale, report.Files[2].Status)
	assert.Empty(t, report.Files[2].Changes)
	assert.Equal(t, StatusMissing, report.Files[3].Status)

	assert.False(t, report.Clean())
	assert.Equal(t, 1, report.Count(StatusOK))
	assert.Equal(t, 2, report.Count(StatusStale))
	assert.Equal(t, 1, report.Count(StatusMissing))
}

func TestCompare_Clean(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte("{}\n"), 0o644))

	report, err := Compare(dir, []emit.Artifact{{Kind: emit.KindThemeJSON, Path: "theme.json", Content: "{}\n"}})
	require.NoError(t, err)
	assert.True(t, report.Clean())
}
