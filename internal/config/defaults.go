package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded match-3 configuration.
// It mirrors defaults/match3.yaml and is used if the embedded file is broken.
func DefaultMatch3Config() Match3Config {
	shuffle := false
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Colors: 5,
			Marks:  6,
			MinRun: 3,
			TileW:  4,
			TileH:  2,
		},
		Rules: RulesConfig{
			ShuffleWhenStuck: true,
			MaxRerollPasses:  1000,
		},
		Scoring: ScoringConfig{
			PointsPerTile: 10,
			ChainBonus:    0.5,
		},
		Animation: AnimationConfig{
			SwapTicks:  6,
			ClearTicks: 8,
			FallTicks:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				ExtraColors: 2,
			},
		},
		Modes: map[string]ModeOverride{
			"classic": {Progression: true},
			"moves":   {MoveLimit: 30, TargetScore: 3000, Colors: 6},
			"mini":    {Width: 6, Height: 6, Colors: 5, ShuffleWhenStuck: &shuffle},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
