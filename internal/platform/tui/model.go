package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/export"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// boardSource is implemented by games that expose their board engine.
type boardSource interface {
	Engine() *engine.Engine
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	allowBack  bool // Whether B returns to a menu
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
	status     string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.status = m.saveScreenshot()
		return m, nil
	case "ctrl+e":
		m.status = m.exportBoard()
		return m, nil
	case "b":
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused || m.gameState.Faulted) {
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.canRestart() {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.status = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(storage.Result{
				ModeID:    m.game.ID(),
				Score:     m.gameState.Score,
				Moves:     m.gameState.Moves,
				BestChain: m.gameState.BestChain,
			})
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// canRestart reports whether R restarts now. A running board is protected
// from stray key presses.
func (m Model) canRestart() bool {
	s := m.gameState
	return s.GameOver || s.Paused || s.Faulted
}

// dataDir returns ~/.match3/<name>, creating it.
func dataDir(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".match3", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// saveScreenshot saves the current screen as text.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	dir, err := dataDir("screenshots")
	if err != nil {
		return "screenshot failed"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed"
	}
	return "saved " + path
}

// exportBoard writes the board as PNG next to the screenshots.
func (m *Model) exportBoard() string {
	src, ok := m.game.(boardSource)
	if !ok || src.Engine() == nil {
		return "nothing to export"
	}
	dir, err := dataDir("screenshots")
	if err != nil {
		return "export failed"
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))

	opts := export.DefaultOptions()
	opts.Caption = fmt.Sprintf("%s  score %d", m.game.Title(), m.gameState.Score)
	if err := export.SavePNG(path, src.Engine().Board(), opts); err != nil {
		return "export failed"
	}
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 1 {
		m.screen.DrawTextColored(0, m.screen.Height()-2, m.status, core.ColorDim)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
