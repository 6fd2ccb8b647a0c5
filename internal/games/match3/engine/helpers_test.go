package engine

import "testing"

// scriptedSource returns tiles from a fixed list, then repeats fallback.
type scriptedSource struct {
	tiles    []Descriptor
	fallback []Descriptor
	n        int
}

func (s *scriptedSource) Next() Descriptor {
	if len(s.tiles) > 0 {
		d := s.tiles[0]
		s.tiles = s.tiles[1:]
		return d
	}
	d := s.fallback[s.n%len(s.fallback)]
	s.n++
	return d
}

func colors(cs ...Color) []Descriptor {
	out := make([]Descriptor, len(cs))
	for i, c := range cs {
		out[i] = Descriptor{Color: c}
	}
	return out
}

// testLayout returns a unit-tile layout of the given size.
func testLayout(w, h int) Layout {
	return Layout{Width: w, Height: h, TileW: 1, TileH: 1}
}

// boardFromRows builds a bound board from rows written top row first.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	w := len([]rune(rows[0]))
	b := NewBoard(testLayout(w, len(rows)))
	if err := b.ParseRows(rows); err != nil {
		t.Fatalf("ParseRows failed: %v", err)
	}
	alloc := &SequentialAllocator{}
	for _, c := range b.Layout().AllCoords() {
		if _, filled := b.Get(c); !filled {
			continue
		}
		if err := b.Bind(c, alloc.Allocate()); err != nil {
			t.Fatalf("Bind(%v) failed: %v", c, err)
		}
	}
	return b
}

func testConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.TileW = 1
	cfg.TileH = 1
	return cfg
}
