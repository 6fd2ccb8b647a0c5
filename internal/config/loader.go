package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the config file name looked up in every search location.
const ConfigFile = "match3.yaml"

// Load loads match-3 configuration.
// Search order: customPath -> ~/.match3/configs/match3.yaml -> ./configs/match3.yaml -> embedded default
func Load(customPath string) (Match3Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMatch3YAML)
	if err != nil {
		return DefaultMatch3Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so partial files
// only override the keys they set.
func Parse(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Match3Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges the game cannot recover from.
func (c Match3Config) Validate() error {
	b := c.Board
	if b.Width < 1 || b.Height < 1 {
		return fmt.Errorf("board size %dx%d must be positive", b.Width, b.Height)
	}
	if b.Colors < 2 || b.Colors > maxPalette {
		return fmt.Errorf("board colors %d must be within 2..%d", b.Colors, maxPalette)
	}
	if b.TileW < 1 || b.TileH < 1 {
		return fmt.Errorf("tile size %dx%d must be positive", b.TileW, b.TileH)
	}
	if len(b.Layout) > 0 && len(b.Layout) != b.Height {
		return fmt.Errorf("layout has %d rows, board height is %d", len(b.Layout), b.Height)
	}
	switch c.Difficulty.Progression.Type {
	case "", "score", "moves", "none":
	default:
		return fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".match3", "configs", filename)
}
