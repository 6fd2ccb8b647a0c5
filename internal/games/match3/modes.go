package match3

import (
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Mode identifies a registered game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeMoves   Mode = "moves"
	ModeMini    Mode = "mini"
)

type modeInfo struct {
	title       string
	description string
}

var modes = map[Mode]modeInfo{
	ModeClassic: {"Classic", "Endless 8x8 board, palette grows with your score"},
	ModeMoves:   {"Moves", "Reach the target score within a fixed number of swaps"},
	ModeMini:    {"Mini", "Small 6x6 board, the game ends when no swap is left"},
}

// Modes returns the mode IDs in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeMoves, ModeMini}
}

// Package-level settings applied on the next Reset.
var (
	selectedConfigPath string
	selectedDifficulty = config.DifficultyNormal
)

// SetConfigPath sets the YAML file loaded on Reset. Empty uses the search order.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetDefaultDifficulty sets the preset used by games created afterwards.
func SetDefaultDifficulty(p config.DifficultyPreset) {
	selectedDifficulty = p
}

// DefaultDifficulty returns the preset used by new games.
func DefaultDifficulty() config.DifficultyPreset {
	return selectedDifficulty
}

// LoadConfig loads the configuration for a mode with a difficulty preset
// applied. A broken config file falls back to defaults and is reported.
func LoadConfig(mode Mode, preset config.DifficultyPreset) (config.Match3Config, error) {
	base, err := config.Load(selectedConfigPath)
	if err != nil {
		base = config.DefaultMatch3Config()
	}
	cfg := base.ForMode(string(mode))
	config.ApplyPreset(&cfg, preset)
	return cfg, err
}

// EngineConfig converts a loaded configuration into engine settings.
// Terminal tiles are TileW columns by TileH rows in world units.
func EngineConfig(cfg config.Match3Config) engine.Config {
	ec := engine.DefaultConfig()
	ec.Width = cfg.Board.Width
	ec.Height = cfg.Board.Height
	ec.Colors = cfg.Board.Colors
	if cfg.Board.Marks > 0 {
		ec.Marks = cfg.Board.Marks
	}
	if cfg.Board.MinRun > 0 {
		ec.MinRun = cfg.Board.MinRun
	}
	ec.TileW = float64(cfg.Board.TileW)
	ec.TileH = float64(cfg.Board.TileH)
	ec.Origin = engine.P(cfg.Board.OriginX, cfg.Board.OriginY)
	ec.RevertNoMatch = cfg.Rules.RevertNoMatch
	ec.ShuffleWhenStuck = cfg.Rules.ShuffleWhenStuck
	ec.MaxSettleCycles = cfg.Rules.MaxSettleCycles
	if cfg.Rules.MaxRerollPasses > 0 {
		ec.MaxRerollPasses = cfg.Rules.MaxRerollPasses
	}
	return ec
}

// NewEngine builds an engine for cfg, using the literal layout when one is set.
func NewEngine(cfg config.Match3Config, opts ...engine.Option) (*engine.Engine, error) {
	ec := EngineConfig(cfg)
	if len(cfg.Board.Layout) > 0 {
		return engine.NewFromLayout(ec, cfg.Board.Layout, opts...)
	}
	return engine.New(ec, opts...)
}

// ScoreFor returns the points for one settle. Later cascade steps earn
// a growing multiplier.
func ScoreFor(s config.ScoringConfig, cleared []int) int {
	total := 0.0
	for i, n := range cleared {
		total += float64(n*s.PointsPerTile) * (1 + float64(i)*s.ChainBonus)
	}
	return int(total + 0.5)
}
