package config

import "math"

// maxPalette is the number of tile colors the board supports.
const maxPalette = 12

// DifficultyManager calculates dynamic game parameters based on score/moves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score int, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Colors returns the palette size for the current difficulty.
// More colors make matches rarer.
func (d *DifficultyManager) Colors(base int, score int, moves int) int {
	level := d.Level(score, moves)
	extra := int(math.Floor(level * float64(d.cfg.Scaling.ExtraColors)))
	return min(base+extra, maxPalette)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Match3Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = max(cfg.Board.Colors-1, 4)
		if cfg.Mode.MoveLimit > 0 {
			cfg.Mode.MoveLimit += 10
		}
	case DifficultyHard:
		cfg.Board.Colors = min(cfg.Board.Colors+1, maxPalette)
		if cfg.Mode.MoveLimit > 0 {
			cfg.Mode.MoveLimit = max(cfg.Mode.MoveLimit-5, 10)
		}
		cfg.Rules.RevertNoMatch = true
	}
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
