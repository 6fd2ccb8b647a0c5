package engine

import (
	"errors"
	"reflect"
	"testing"
)

func indices(l Layout, cells []Coord) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = l.Index(c)
	}
	return out
}

func TestResolveSingleRow(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want []int
	}{
		{"run at start", "RRRBG", []int{0, 1, 2}},
		{"run at end", "RRBBB", []int{2, 3, 4}},
		{"boundary flush", "BRRR", []int{1, 2, 3}},
		{"whole row", "GGGG", []int{0, 1, 2, 3}},
		{"two runs", "RRRBBB", []int{0, 1, 2, 3, 4, 5}},
		{"pairs only", "RRBBRR", nil},
		{"no run", "RGBY", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromRows(t, tt.row)
			m, err := NewResolver(3).Resolve(b)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			got := indices(b.Layout(), m.Cells)
			if len(got) == 0 {
				got = nil
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve(%s) = %v, want %v", tt.row, got, tt.want)
			}
		})
	}
}

func TestResolveColumnBoundary(t *testing.T) {
	b := boardFromRows(t,
		"R",
		"R",
		"R",
		"B",
	)
	m, err := NewResolver(3).Resolve(b)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	want := []Coord{C(0, 1), C(0, 2), C(0, 3)}
	if !reflect.DeepEqual(m.Cells, want) {
		t.Errorf("Cells = %v, want %v", m.Cells, want)
	}
	if len(m.Runs) != 1 || m.Runs[0].Axis != AxisColumn || m.Runs[0].Length != 3 {
		t.Errorf("Runs = %+v, want one column run of 3", m.Runs)
	}
}

func TestResolveCrossCountsCellOnce(t *testing.T) {
	b := boardFromRows(t,
		"GRG",
		"RRR",
		"GRG",
	)
	m, err := NewResolver(3).Resolve(b)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(m.Runs) != 2 {
		t.Errorf("got %d runs, want 2", len(m.Runs))
	}
	if len(m.Cells) != 5 {
		t.Errorf("got %d cells, want 5 (centre counted once)", len(m.Cells))
	}
	got := indices(b.Layout(), m.Cells)
	want := []int{1, 3, 4, 5, 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Cells = %v, want %v", got, want)
	}
}

func TestResolveMarksDoNotMatter(t *testing.T) {
	b := NewBoard(testLayout(3, 1))
	for x, m := range []Mark{MarkStar, MarkCross, MarkBlank} {
		_ = b.Set(C(x, 0), Descriptor{Color: ColorCyan, Mark: m})
	}
	m, err := NewResolver(3).Resolve(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Cells) != 3 {
		t.Errorf("got %d cells, want 3", len(m.Cells))
	}
}

func TestResolveSmallBoardIsNoop(t *testing.T) {
	b := boardFromRows(t,
		"RR",
		"RR",
	)
	m, err := NewResolver(3).Resolve(b)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !m.Empty() {
		t.Errorf("2x2 board matched %v", m.Cells)
	}
}

func TestResolveConfigurableMinRun(t *testing.T) {
	b := boardFromRows(t, "RRRB")
	m, _ := NewResolver(4).Resolve(b)
	if !m.Empty() {
		t.Errorf("min run 4 matched a run of 3")
	}
	m, _ = NewResolver(2).Resolve(b)
	if len(m.Cells) != 3 {
		t.Errorf("min run 2 matched %d cells, want 3", len(m.Cells))
	}
}

func TestResolveRejectsEmptyCell(t *testing.T) {
	b := boardFromRows(t, "RR.")
	_, err := NewResolver(3).Resolve(b)
	if !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("Resolve on partial board = %v, want ErrInvariantViolation", err)
	}
}
