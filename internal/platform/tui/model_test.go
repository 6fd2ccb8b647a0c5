package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// stubGame ends after overAfter steps with the given score.
type stubGame struct {
	resets    int
	steps     int
	overAfter int
	score     int
	preset    config.DifficultyPreset
	state     core.GameState
}

func (g *stubGame) ID() string          { return "zz-tui-stub" }
func (g *stubGame) Title() string       { return "Stub" }
func (g *stubGame) Description() string { return "test game" }
func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}
func (g *stubGame) State() core.GameState                  { return g.state }
func (g *stubGame) SetDifficulty(p config.DifficultyPreset) { g.preset = p }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{}
}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	if g.overAfter > 0 && g.steps >= g.overAfter {
		g.state.GameOver = true
		g.state.Score = g.score
		g.state.Moves = 4
		g.state.BestChain = 2
	}
	return core.StepResult{State: g.state}
}

var lastStub *stubGame

func init() {
	registry.Register("zz-tui-stub", func() registry.Game {
		lastStub = &stubGame{overAfter: 2, score: 90}
		return lastStub
	})
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) tea.Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func tick() tea.Msg { return TickMsg(time.Now()) }

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &stubGame{overAfter: 3, score: 10}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	var tm tea.Model = m
	tm = send(t, tm, runeKey("r"), tick())
	if g.resets != 1 {
		t.Fatalf("restart while running: resets = %d, want 1", g.resets)
	}

	tm = send(t, tm, tick(), tick())
	if !tm.(Model).State().GameOver {
		t.Fatal("stub game should be over")
	}

	send(t, tm, runeKey("r"), tick())
	if g.resets != 2 {
		t.Errorf("restart after game over: resets = %d, want 2", g.resets)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{overAfter: 1, score: 120}
	m := NewModel(g, store, testRuntime())
	m.Init()

	send(t, m, tick(), tick(), tick())

	scores, err := store.AllScores("zz-tui-stub")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if s := scores[0]; s.Score != 120 || s.Moves != 4 || s.BestChain != 2 {
		t.Errorf("saved %+v", s)
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{overAfter: 1}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	var tm tea.Model = m
	tm = send(t, tm, tick(), runeKey("b"))
	if tm.(Model).BackToMenu() {
		t.Error("back without allowBack")
	}

	m = NewModel(g, nil, testRuntime())
	m.allowBack = true
	m.Init()
	tm = send(t, m, runeKey("b"))
	if tm.(Model).BackToMenu() {
		t.Error("back while the game is running")
	}
	tm = send(t, tm, tick(), runeKey("b"))
	if !tm.(Model).BackToMenu() {
		t.Error("back after game over was ignored")
	}
}

func TestModelQuitAndView(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	if !strings.Contains(m.View(), "STUB") {
		t.Error("View does not contain the rendered game")
	}

	tm, cmd := m.Update(runeKey("q"))
	if !tm.(Model).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if tm.View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	var tm tea.Model = NewSessionModel(store, testRuntime(), "tester", config.DifficultyNormal)

	// Pick hard and start the first listed game
	tm = send(t, tm, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	s := tm.(SessionModel)
	if !s.InGame() {
		t.Fatal("enter did not start a game")
	}
	if lastStub == nil || lastStub.preset != config.DifficultyHard {
		t.Fatalf("difficulty not applied: %+v", lastStub)
	}

	tm = send(t, tm, tick(), tick(), runeKey("b"))
	s = tm.(SessionModel)
	if s.InGame() {
		t.Fatal("b after game over did not return to the menu")
	}
	if !strings.Contains(s.View(), "90") {
		t.Error("menu does not show the new high score")
	}

	tm = send(t, tm, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(tm.View(), "HIGH SCORES") {
		t.Error("tab did not open the scoreboard")
	}

	tm = send(t, tm, tea.KeyMsg{Type: tea.KeyEsc})
	if !strings.Contains(tm.View(), "M A T C H - 3") {
		t.Error("esc did not leave the scoreboard")
	}

	tm, cmd := tm.Update(runeKey("q"))
	if cmd == nil || tm.View() != "" {
		t.Error("q in the menu did not quit the session")
	}
}
