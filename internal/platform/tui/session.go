package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// difficultySetter is implemented by games that accept a difficulty preset.
type difficultySetter interface {
	SetDifficulty(p config.DifficultyPreset)
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> game or scoreboard -> menu.
// It is the top-level model for both the local menu command and SSH sessions.
type SessionModel struct {
	store      *storage.Store
	config     core.RuntimeConfig
	username   string
	preset     config.DifficultyPreset
	current    sessionScreen
	menu       MenuModel
	gameModel  *Model
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, preset config.DifficultyPreset) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		preset:   preset,
		menu:     NewMenuModel(store, cfg, preset),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
// Sub-models signal their exit with tea.Quit; the session drops that command.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.preset = m.menu.Preset()

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.current = screenScoreboard
		return m, sb.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Menu only lists registered games
			m.menu = NewMenuModel(m.store, m.config, m.preset)
			return m, nil
		}
		if ds, ok := game.(difficultySetter); ok {
			ds.SetDifficulty(m.preset)
		}

		gm := NewModel(game, m.store, m.config)
		gm.allowBack = true
		m.gameModel = &gm
		m.current = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		// A pending tick from the game lands in the menu and is ignored
		return m.toMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu rebuilds the menu so high scores are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.config, m.preset)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScoreboard:
		if m.scoreboard != nil {
			return m.scoreboard.View()
		}
	}
	return m.menu.View()
}

// Username returns the user the session belongs to.
func (m SessionModel) Username() string {
	return m.username
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.current == screenGame
}

// RunSession runs the interactive menu locally until the user quits.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) error {
	model := NewSessionModel(store, cfg, "local", preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
