// Package match3 implements the playable match-3 modes on top of the
// board engine: cursor and pointer input, scoring, move limits, palette
// progression and the animator that replays engine events.
package match3

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

const (
	hudHeight      = 3
	messageTicks   = 45
	hintTicksShown = 60
)

// Game is one match-3 session in a given mode.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset
	tick   uint64

	cfg      config.Match3Config
	override *config.Match3Config
	eng      *engine.Engine
	events   *engine.Recorder
	anim     *animator
	diff     *config.DifficultyManager
	logger   *log.Logger

	score     int
	moves     int
	bestChain int

	cursor   engine.Coord
	hintA    engine.Coord
	hintB    engine.Coord
	hintLeft int

	message     string
	messageLeft int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver    bool
	won         bool
	endPending  bool
	endReason   string
	paused      bool
	tooSmall    bool
	faulted     bool
	faultReason string
}

var pkgLogger = log.New(io.Discard)

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	pkgLogger = l
}

// New creates a game for the given mode using the loaded configuration.
func New(mode Mode) *Game {
	return &Game{mode: mode, preset: selectedDifficulty}
}

// NewWithConfig creates a game that skips config loading.
func NewWithConfig(mode Mode, cfg config.Match3Config) *Game {
	return &Game{mode: mode, override: &cfg}
}

func init() {
	for _, m := range Modes() {
		m := m
		registry.Register(string(m), func() registry.Game {
			return New(m)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if info, ok := modes[g.mode]; ok {
		return info.title
	}
	return string(g.mode)
}

// SetDifficulty sets the preset applied on the next Reset.
// Configs given to NewWithConfig are used as they are.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.preset = p
}

// Difficulty returns the preset of this game.
func (g *Game) Difficulty() config.DifficultyPreset {
	return g.preset
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return modes[g.mode].description
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.bestChain = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.gameOver = false
	g.won = false
	g.endPending = false
	g.endReason = ""
	g.paused = false
	g.faulted = false
	g.faultReason = ""
	g.hintLeft = 0
	g.message = ""
	g.messageLeft = 0
	g.logger = pkgLogger

	if g.override != nil {
		g.cfg = g.override.ForMode(string(g.mode))
	} else {
		cfg, err := LoadConfig(g.mode, g.preset)
		if err != nil {
			g.logger.Warn("config not loaded, using defaults", "err", err)
		}
		g.cfg = cfg
	}

	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.anim = newAnimator(g.cfg.Animation)
	g.events = &engine.Recorder{}

	eng, err := NewEngine(g.cfg,
		engine.WithSink(g.events),
		engine.WithLogger(g.logger),
		engine.WithSeed(rc.Seed),
	)
	if err != nil {
		g.fault("board setup", err)
		g.checkScreenSize()
		return
	}
	g.eng = eng
	if _, _, ok := eng.FindMove(); !ok && g.cfg.Rules.ShuffleWhenStuck {
		if err := eng.Shuffle(); err != nil {
			g.fault("initial shuffle", err)
		}
	}
	g.anim.Enqueue(g.events.Drain())
	g.anim.Flush()
	g.cursor = engine.C(g.cfg.Board.Width/2, g.cfg.Board.Height/2)
	g.checkEnd()

	g.checkScreenSize()
}

// boardSize returns the board area in screen cells, margins included.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Board.Width*g.cfg.Board.TileW + 1, g.cfg.Board.Height * g.cfg.Board.TileH
}

// checkScreenSize updates the tooSmall flag.
func (g *Game) checkScreenSize() {
	bw, bh := g.boardSize()
	minW := max(bw+2, 40)
	minH := hudHeight + bh + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Resize updates the screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		g.checkScreenSize()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.faulted {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver || g.faulted {
		return core.StepResult{State: g.State()}
	}

	if g.messageLeft > 0 {
		g.messageLeft--
	}
	if g.hintLeft > 0 {
		g.hintLeft--
	}

	if g.anim.Update() {
		// Input is ignored until the board is at rest.
		return core.StepResult{State: g.State(), Busy: true}
	}
	if g.endPending {
		g.endPending = false
		g.gameOver = true
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	return core.StepResult{State: g.State(), Busy: g.anim.Busy()}
}

// processInput handles cursor keys, selection and pointer clicks.
func (g *Game) processInput(in core.InputFrame) {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, h-1)
	case in.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, h-1)
	case in.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, w-1)
	case in.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, w-1)
	}

	if in.Has(core.ActionCancel) {
		g.eng.ClearSelection()
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}
	if in.Has(core.ActionSelect) {
		g.handleSelect(g.eng.Select(g.cursor))
		if g.anim.Busy() || g.faulted {
			return
		}
	}

	for _, c := range in.Clicks {
		p, ok := g.worldPoint(c.X, c.Y)
		if !ok {
			g.eng.ClearSelection()
			continue
		}
		if cell, inside := g.eng.Click(p); inside {
			g.cursor = cell
		}
		g.handleSelect(g.eng.SelectAt(p))
		if g.anim.Busy() || g.faulted {
			// One swap per tick.
			return
		}
	}
}

// handleSelect applies the outcome of a selection.
func (g *Game) handleSelect(sel engine.Selection, res engine.SwapResult, err error) {
	if err != nil {
		g.fault("swap", err)
		return
	}
	if sel.Kind != engine.SwapRequested {
		return
	}
	if !res.Applied {
		g.flash(rejectMessage(res.Reason))
		return
	}

	g.hintLeft = 0
	g.moves++
	g.bestChain = max(g.bestChain, res.Settle.Cycles)
	gained := ScoreFor(g.cfg.Scoring, res.Settle.Cleared)
	g.score += gained

	switch {
	case res.Settle.Cycles > 1:
		g.flash(fmt.Sprintf("Chain x%d  +%d", res.Settle.Cycles, gained))
	case gained > 0:
		g.flash(fmt.Sprintf("+%d", gained))
	}
	if res.Shuffled {
		g.flash("No moves left, shuffling")
	}

	g.anim.Enqueue(g.events.Drain())
	g.updatePalette()
	g.checkEnd()
}

// updatePalette grows the palette as difficulty rises.
func (g *Game) updatePalette() {
	if !g.diff.IsEnabled() {
		return
	}
	want := g.diff.Colors(g.cfg.Board.Colors, g.score, g.moves)
	if want == g.eng.Config().Colors {
		return
	}
	if err := g.eng.SetColorCount(want); err != nil {
		g.logger.Warn("palette not changed", "colors", want, "err", err)
		return
	}
	g.logger.Debug("palette grown", "colors", want, "score", g.score)
}

// checkEnd schedules game over once the current animation has played.
func (g *Game) checkEnd() {
	mode := g.cfg.Mode
	switch {
	case mode.TargetScore > 0 && g.score >= mode.TargetScore:
		g.won = true
		g.endReason = "Target reached!"
	case mode.MoveLimit > 0 && g.moves >= mode.MoveLimit:
		g.endReason = "Out of moves"
	case !g.cfg.Rules.ShuffleWhenStuck:
		if _, _, ok := g.eng.FindMove(); ok {
			return
		}
		g.endReason = "No moves left"
	default:
		return
	}
	g.endPending = true
}

// showHint highlights the first playable swap.
func (g *Game) showHint() {
	a, b, ok := g.eng.FindMove()
	if !ok {
		g.flash("No moves available")
		return
	}
	g.hintA, g.hintB = a, b
	g.hintLeft = hintTicksShown
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageLeft = messageTicks
}

// fault stops the game after an engine error.
func (g *Game) fault(op string, err error) {
	g.faulted = true
	g.faultReason = err.Error()
	if errors.Is(err, engine.ErrInvalidConfig) {
		g.faultReason = "invalid board config"
	}
	g.logger.Error("match3 fault", "op", op, "err", err)
}

func rejectMessage(r engine.RejectReason) string {
	switch r {
	case engine.ReasonNotAdjacent:
		return "Tiles must be neighbours"
	case engine.ReasonNoMatch:
		return "No match, swap reverted"
	case engine.ReasonBusy:
		return "Board is busy"
	default:
		return r.String()
	}
}

// boardOrigin returns the top-left screen cell of the board area.
func (g *Game) boardOrigin() (int, int) {
	bw, _ := g.boardSize()
	return (g.screenW - bw) / 2, hudHeight + 1
}

// worldPoint converts a screen cell to a world position.
// Screen rows grow downward; world Y grows upward from the bottom row.
func (g *Game) worldPoint(sx, sy int) (engine.Point, bool) {
	if g.eng == nil {
		return engine.Point{}, false
	}
	bx, by := g.boardOrigin()
	bw, bh := g.boardSize()
	if !core.NewRect(bx, by, bw, bh).Contains(sx, sy) {
		return engine.Point{}, false
	}
	l := g.eng.Layout()
	return engine.P(
		l.Origin.X+float64(sx-bx)+0.5,
		l.Origin.Y+float64(bh-(sy-by))-0.5,
	), true
}

// screenCell returns the top-left screen cell of a tile's fill area for
// fractional board coordinates.
func (g *Game) screenCell(x, y float64) (int, int) {
	bx, by := g.boardOrigin()
	tw, th := g.cfg.Board.TileW, g.cfg.Board.TileH
	h := g.cfg.Board.Height
	sx := bx + 1 + int(x*float64(tw)+0.5)
	sy := by + int((float64(h-1)-y)*float64(th)+0.5)
	return sx, sy
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Moves:     g.moves,
		BestChain: g.bestChain,
		GameOver:  g.gameOver,
		Paused:    g.paused,
		Faulted:   g.faulted,
	}
}

// Engine returns the underlying board engine. Nil after a setup fault.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Busy reports whether an animation is playing.
func (g *Game) Busy() bool {
	return g.anim != nil && g.anim.Busy()
}
