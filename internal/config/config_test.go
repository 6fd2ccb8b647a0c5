package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	def := DefaultMatch3Config()

	if cfg.Board.Width != def.Board.Width || cfg.Board.Height != def.Board.Height {
		t.Errorf("board size %dx%d, hardcoded %dx%d", cfg.Board.Width, cfg.Board.Height, def.Board.Width, def.Board.Height)
	}
	if cfg.Board.Colors != def.Board.Colors || cfg.Board.MinRun != def.Board.MinRun {
		t.Errorf("palette/min run differ: %+v vs %+v", cfg.Board, def.Board)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("scoring %+v, hardcoded %+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Animation != def.Animation {
		t.Errorf("animation %+v, hardcoded %+v", cfg.Animation, def.Animation)
	}
	for _, id := range []string{"classic", "moves", "mini"} {
		if _, ok := cfg.Modes[id]; !ok {
			t.Errorf("embedded default has no %q mode", id)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  width: 10\n  colors: 7\nscoring:\n  points_per_tile: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Width != 10 || cfg.Board.Colors != 7 {
		t.Errorf("board = %+v, want width 10 and 7 colors", cfg.Board)
	}
	if cfg.Board.Height != 8 {
		t.Errorf("unset height = %d, want default 8", cfg.Board.Height)
	}
	if cfg.Scoring.PointsPerTile != 25 {
		t.Errorf("points = %d, want 25", cfg.Scoring.PointsPerTile)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  colors: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected error for a one-color palette")
	}
}

func TestForMode(t *testing.T) {
	cfg := DefaultMatch3Config()

	mini := cfg.ForMode("mini")
	if mini.Board.Width != 6 || mini.Board.Height != 6 {
		t.Errorf("mini board = %dx%d, want 6x6", mini.Board.Width, mini.Board.Height)
	}
	if mini.Rules.ShuffleWhenStuck {
		t.Error("mini should not shuffle when stuck")
	}
	if mini.Difficulty.Enabled {
		t.Error("mini should not grow the palette")
	}

	moves := cfg.ForMode("moves")
	if moves.Mode.MoveLimit != 30 || moves.Mode.TargetScore != 3000 {
		t.Errorf("moves mode = %+v", moves.Mode)
	}

	classic := cfg.ForMode("classic")
	if !classic.Difficulty.Enabled || !classic.Rules.ShuffleWhenStuck {
		t.Errorf("classic should keep progression and shuffling")
	}

	if cfg.Board.Width != 8 {
		t.Error("ForMode mutated the base config")
	}
}

func TestDifficultyColors(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{ExtraColors: 2},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score    int
		expected int
	}{
		{0, 5},
		{499, 5},
		{500, 6},
		{1000, 7},
		{50000, 7},
	}
	for _, tc := range tests {
		if got := dm.Colors(5, tc.score, 0); got != tc.expected {
			t.Errorf("Colors(5, score %d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	if got := dm.Colors(11, 1000, 0); got != 12 {
		t.Errorf("Colors should cap at 12, got %d", got)
	}

	dm.SetEnabled(false)
	if got := dm.Colors(5, 1000, 0); got != 5 {
		t.Errorf("disabled progression changed colors to %d", got)
	}
}

func TestDifficultyLevelByMoves(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "moves", MaxAt: 10},
	})
	dm.SetInitialLevel(0.5)
	if got := dm.Level(9999, 0); got != 0.5 {
		t.Errorf("Level at 0 moves = %v, want 0.5", got)
	}
	if got := dm.Level(0, 10); got != 1.0 {
		t.Errorf("Level at max moves = %v, want 1", got)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		colors     int
		moveLimit  int
		enabled    bool
		revertRule bool
	}{
		{DifficultyEasy, 5, 40, true, false},
		{DifficultyNormal, 6, 30, true, false},
		{DifficultyHard, 7, 25, true, true},
		{DifficultyFixed, 6, 30, false, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			cfg.Board.Colors = 6
			cfg.Mode.MoveLimit = 30
			ApplyPreset(&cfg, tc.preset)
			if cfg.Board.Colors != tc.colors {
				t.Errorf("colors = %d, want %d", cfg.Board.Colors, tc.colors)
			}
			if cfg.Mode.MoveLimit != tc.moveLimit {
				t.Errorf("move limit = %d, want %d", cfg.Mode.MoveLimit, tc.moveLimit)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Rules.RevertNoMatch != tc.revertRule {
				t.Errorf("revert rule = %v, want %v", cfg.Rules.RevertNoMatch, tc.revertRule)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should fail")
	}
}
