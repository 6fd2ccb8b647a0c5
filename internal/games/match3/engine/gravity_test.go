package engine

import (
	"reflect"
	"testing"
)

func TestCollapseFullColumnIsNoop(t *testing.T) {
	b := boardFromRows(t,
		"R",
		"G",
		"B",
	)
	before := b.String()
	counts, moves, err := CollapseColumns(b, nil)
	if err != nil {
		t.Fatalf("CollapseColumns failed: %v", err)
	}
	if !reflect.DeepEqual(counts, []int{0}) {
		t.Errorf("counts = %v, want [0]", counts)
	}
	if len(moves) != 0 {
		t.Errorf("got %d moves, want none", len(moves))
	}
	if b.String() != before {
		t.Errorf("board changed:\n%s\nwant\n%s", b.String(), before)
	}
}

func TestCollapseLiteralColumn(t *testing.T) {
	// Bottom to top: A, empty, B, empty.
	b := boardFromRows(t,
		".",
		"B",
		".",
		"R",
	)
	ha, _ := b.HandleAt(C(0, 0))
	hb, _ := b.HandleAt(C(0, 2))

	counts, moves, err := CollapseColumns(b, []Coord{C(0, 1), C(0, 3)})
	if err != nil {
		t.Fatalf("CollapseColumns failed: %v", err)
	}
	if !reflect.DeepEqual(counts, []int{2}) {
		t.Errorf("counts = %v, want [2]", counts)
	}
	if got := b.String(); got != ".\n.\nB\nR" {
		t.Errorf("board = %q, want B stacked on R", got)
	}
	if h, _ := b.HandleAt(C(0, 0)); h != ha {
		t.Errorf("handle at (0,0) = %d, want %d", h, ha)
	}
	if h, _ := b.HandleAt(C(0, 1)); h != hb {
		t.Errorf("handle at (0,1) = %d, want %d", h, hb)
	}
	if d, _ := b.Get(C(0, 1)); d.Color != ColorBlue {
		t.Errorf("(0,1) = %v, want blue", d.Color)
	}
	want := []Move{{Handle: hb, From: C(0, 2), To: C(0, 1)}}
	if !reflect.DeepEqual(moves, want) {
		t.Errorf("moves = %+v, want %+v", moves, want)
	}
	if err := b.CheckBijection(); err != nil {
		t.Errorf("CheckBijection: %v", err)
	}
}

func TestCollapseRejectsFilledClearedCell(t *testing.T) {
	b := boardFromRows(t, "R")
	if _, _, err := CollapseColumns(b, []Coord{C(0, 0)}); err == nil {
		t.Error("expected error for filled cleared cell")
	}
}

func TestRefillStacksAboveBoard(t *testing.T) {
	b := boardFromRows(t,
		"..",
		".G",
		"RG",
	)
	src := &scriptedSource{tiles: colors(ColorYellow, ColorPurple, ColorCyan)}
	alloc := &SequentialAllocator{next: 100}

	spawns, err := Refill(b, []int{2, 1}, src, alloc)
	if err != nil {
		t.Fatalf("Refill failed: %v", err)
	}
	want := []Spawn{
		{Handle: 101, Tile: Descriptor{Color: ColorYellow}, Origin: C(0, 3), Dest: C(0, 1)},
		{Handle: 102, Tile: Descriptor{Color: ColorPurple}, Origin: C(0, 4), Dest: C(0, 2)},
		{Handle: 103, Tile: Descriptor{Color: ColorCyan}, Origin: C(1, 3), Dest: C(1, 2)},
	}
	if !reflect.DeepEqual(spawns, want) {
		t.Errorf("spawns = %+v\nwant %+v", spawns, want)
	}
	if !b.Filled() {
		t.Error("board not filled after refill")
	}
	if err := b.CheckBijection(); err != nil {
		t.Errorf("CheckBijection: %v", err)
	}
}

func TestRefillRejectsBadCounts(t *testing.T) {
	b := boardFromRows(t, "R.")
	src := &scriptedSource{fallback: colors(ColorRed)}
	if _, err := Refill(b, []int{1}, src, &SequentialAllocator{next: 10}); err == nil {
		t.Error("expected error for wrong count length")
	}
	if _, err := Refill(b, []int{1, 0}, src, &SequentialAllocator{next: 10}); err == nil {
		t.Error("expected error when refilling a filled cell")
	}
}
