// Package config provides YAML-based game configuration loading and
// difficulty management for match3.
package config

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board      BoardConfig             `yaml:"board"`
	Rules      RulesConfig             `yaml:"rules"`
	Scoring    ScoringConfig           `yaml:"scoring"`
	Mode       ModeConfig              `yaml:"mode"`
	Animation  AnimationConfig         `yaml:"animation"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
	Modes      map[string]ModeOverride `yaml:"modes"`
}

// BoardConfig defines board shape, palette and world transform.
type BoardConfig struct {
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Colors  int      `yaml:"colors"`
	Marks   int      `yaml:"marks"`
	MinRun  int      `yaml:"min_run"`
	TileW   int      `yaml:"tile_w"` // Terminal columns per tile
	TileH   int      `yaml:"tile_h"` // Terminal rows per tile
	OriginX float64  `yaml:"origin_x"`
	OriginY float64  `yaml:"origin_y"`
	Layout  []string `yaml:"layout"` // Optional literal board, top row first
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	RevertNoMatch    bool `yaml:"revert_no_match"`
	ShuffleWhenStuck bool `yaml:"shuffle_when_stuck"`
	MaxSettleCycles  int  `yaml:"max_settle_cycles"`
	MaxRerollPasses  int  `yaml:"max_reroll_passes"`
}

// ScoringConfig defines points per cleared tile and cascade bonus.
type ScoringConfig struct {
	PointsPerTile int     `yaml:"points_per_tile"`
	ChainBonus    float64 `yaml:"chain_bonus"` // Extra multiplier per cascade step
}

// ModeConfig defines how a game ends.
type ModeConfig struct {
	MoveLimit   int `yaml:"move_limit"`   // 0 = endless
	TargetScore int `yaml:"target_score"` // 0 = none
}

// AnimationConfig defines animation lengths in ticks.
type AnimationConfig struct {
	SwapTicks  int `yaml:"swap_ticks"`
	ClearTicks int `yaml:"clear_ticks"`
	FallTicks  int `yaml:"fall_ticks"`
}

// ModeOverride replaces selected fields for one game mode.
// Zero values keep the base setting.
type ModeOverride struct {
	Width            int   `yaml:"width"`
	Height           int   `yaml:"height"`
	Colors           int   `yaml:"colors"`
	MoveLimit        int   `yaml:"move_limit"`
	TargetScore      int   `yaml:"target_score"`
	ShuffleWhenStuck *bool `yaml:"shuffle_when_stuck"`
	Progression      bool  `yaml:"progression"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during play.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraColors int `yaml:"extra_colors"` // Colors added to the palette at max difficulty
}

// ForMode returns a copy of cfg with the named mode's overrides applied.
func (c Match3Config) ForMode(id string) Match3Config {
	out := c
	out.Board.Layout = append([]string(nil), c.Board.Layout...)
	ov, ok := c.Modes[id]
	if !ok {
		return out
	}
	if ov.Width > 0 {
		out.Board.Width = ov.Width
	}
	if ov.Height > 0 {
		out.Board.Height = ov.Height
	}
	if ov.Colors > 0 {
		out.Board.Colors = ov.Colors
	}
	if ov.MoveLimit > 0 {
		out.Mode.MoveLimit = ov.MoveLimit
	}
	if ov.TargetScore > 0 {
		out.Mode.TargetScore = ov.TargetScore
	}
	if ov.ShuffleWhenStuck != nil {
		out.Rules.ShuffleWhenStuck = *ov.ShuffleWhenStuck
	}
	if !ov.Progression {
		out.Difficulty.Enabled = false
	}
	return out
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return DifficultyNormal, false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}
