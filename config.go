package storytoblock

import (
	"path/filepath"

	"github.com/yacobolo/storytoblock/internal/tokens"
)

// Core model, re-exported for library users.
type (
	Config          = tokens.Config
	Category        = tokens.Category
	Group           = tokens.Group
	Token           = tokens.Token
	Entry           = tokens.Entry
	Preset          = tokens.Preset
	NotFoundError   = tokens.NotFoundError
	ParseError      = tokens.ParseError
	ValidationError = tokens.ValidationError
)

// DefaultConfigPath is used when no config path is given.
const DefaultConfigPath = tokens.DefaultConfigPath

// LoadConfig reads and validates the config at path.
func LoadConfig(path string) (*Config, error) {
	return tokens.LoadFile(path)
}

// ParseConfig validates an in-memory config document.
func ParseConfig(data []byte) (*Config, error) {
	return tokens.Parse(data, DefaultConfigPath)
}

// resolveConfigPath applies the default config path and makes relative
// paths relative to baseDir.
func resolveConfigPath(configPath, baseDir string) string {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if filepath.IsAbs(configPath) || baseDir == "" {
		return configPath
	}
	return filepath.Join(baseDir, configPath)
}
