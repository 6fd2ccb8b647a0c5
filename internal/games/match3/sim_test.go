package match3

import (
	"strings"
	"testing"
)

func TestSimulateStopsAtMoveLimit(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Mode.MoveLimit = 1

	rep, err := Simulate(cfg, 3, 10, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if rep.Moves != 1 {
		t.Errorf("Moves = %d, want 1", rep.Moves)
	}
	if rep.Score < 30 || rep.Cleared < 3 || rep.BestChain < 1 {
		t.Errorf("report = %+v, want at least one cleared run", rep)
	}
	if rep.EndReason != "out of moves" {
		t.Errorf("EndReason = %q", rep.EndReason)
	}
	if rep.Events == 0 {
		t.Error("no events recorded")
	}
	if rows := strings.Split(rep.Board, "\n"); len(rows) != cfg.Board.Height {
		t.Errorf("board has %d rows, want %d", len(rows), cfg.Board.Height)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a, err := Simulate(testConfig(), 11, 15, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	b, err := Simulate(testConfig(), 11, 15, nil)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if a != b {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
	if a.Moves != 15 || a.EndReason != "move budget used" {
		t.Errorf("report = %+v", a)
	}
}

func TestSimulateStuckBoard(t *testing.T) {
	tests := []struct {
		name     string
		shuffle  bool
		moves    int
		shuffles int
		reason   string
	}{
		{"without shuffle", false, 0, 0, "no moves left"},
		{"with shuffle", true, 1, 1, "move budget used"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Board.Width, cfg.Board.Height = 4, 4
			cfg.Board.Layout = []string{"RGBY", "BYRG", "RGBY", "BYRG"}
			cfg.Rules.ShuffleWhenStuck = tt.shuffle

			rep, err := Simulate(cfg, 5, 1, nil)
			if err != nil {
				t.Fatalf("Simulate: %v", err)
			}
			if rep.Moves != tt.moves {
				t.Errorf("Moves = %d, want %d", rep.Moves, tt.moves)
			}
			if rep.Shuffles < tt.shuffles {
				t.Errorf("Shuffles = %d, want at least %d", rep.Shuffles, tt.shuffles)
			}
			if rep.EndReason != tt.reason {
				t.Errorf("EndReason = %q, want %q", rep.EndReason, tt.reason)
			}
		})
	}
}
