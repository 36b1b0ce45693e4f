package emit

import (
	"path"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

// Artifact kinds, in write order.
const (
	KindTokensCSS   = "tokens.css"
	KindPlatformCSS = "tokens.wp.css"
	KindThemeJSON   = "theme.json"
	KindSnippet     = "integrate.php"
)

// Artifact is one generated output and the path, relative to the caller's
// base directory, it belongs at.
type Artifact struct {
	Kind    string
	Path    string
	Content string
}

// IsCSS reports whether the artifact is one of the two stylesheets.
func (a Artifact) IsCSS() bool {
	return a.Kind == KindTokensCSS || a.Kind == KindPlatformCSS
}

// Paths returns the output path of every artifact for cfg, in write order.
func Paths(cfg *tokens.Config) []string {
	return []string{
		cfg.TokensPath,
		path.Join(cfg.OutDir, KindPlatformCSS),
		path.Join(cfg.OutDir, KindThemeJSON),
		path.Join(cfg.OutDir, KindSnippet),
	}
}

// Build renders all four artifacts. It stops at the first failure.
func Build(cfg *tokens.Config) ([]Artifact, error) {
	theme, err := ThemeJSON(cfg)
	if err != nil {
		return nil, err
	}
	snippet, err := Snippet()
	if err != nil {
		return nil, err
	}

	paths := Paths(cfg)
	return []Artifact{
		{Kind: KindTokensCSS, Path: paths[0], Content: TokensCSS(cfg)},
		{Kind: KindPlatformCSS, Path: paths[1], Content: PlatformCSS(cfg)},
		{Kind: KindThemeJSON, Path: paths[2], Content: theme},
		{Kind: KindSnippet, Path: paths[3], Content: snippet},
	}, nil
}
