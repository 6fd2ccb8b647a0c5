package match3

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateAnimating   GameStateType = "animating"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StateFaulted     GameStateType = "faulted"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Moves     int
	BestChain int
	Colors    int    // Current palette size
	Board     string // Top row first, one letter per color
	Cursor    [2]int
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.faulted:
		state = StateFaulted
	case g.gameOver && g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.Busy():
		state = StateAnimating
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		Moves:     g.moves,
		BestChain: g.bestChain,
		Cursor:    [2]int{g.cursor.X, g.cursor.Y},
		State:     state,
	}
	if g.eng != nil {
		snap.Colors = g.eng.Config().Colors
		snap.Board = g.eng.Board().String()
	}
	return snap
}
