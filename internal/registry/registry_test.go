package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Description() string { return "stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Moves++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{id: "zz-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game not found")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz-stub" {
			found = true
			if info.Title != "ZZ-STUB" || info.Description != "stub zz-stub" {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func() Game { return &stubGame{id: "zz-b"} })
	Register("zz-a", func() Game { return &stubGame{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
