package engine

import (
	"errors"
	"testing"
)

func TestIndexRoundTrip(t *testing.T) {
	l := testLayout(5, 3)
	for i := 0; i < l.Size(); i++ {
		c := l.CoordOf(i)
		if got := l.Index(c); got != i {
			t.Errorf("Index(CoordOf(%d)) = %d", i, got)
		}
	}
	if got := l.Index(C(2, 1)); got != 7 {
		t.Errorf("Index((2,1)) = %d, want 7", got)
	}
	if got := l.CoordOf(13); got != C(3, 2) {
		t.Errorf("CoordOf(13) = %v, want (3,2)", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	l := testLayout(4, 4)
	tests := []struct {
		c  Coord
		ok bool
	}{
		{C(0, 0), true},
		{C(3, 3), true},
		{C(-1, 0), false},
		{C(0, -1), false},
		{C(4, 0), false},
		{C(0, 4), false},
	}
	for _, tt := range tests {
		err := l.Validate(tt.c)
		if tt.ok && err != nil {
			t.Errorf("Validate(%v) = %v, want nil", tt.c, err)
		}
		if !tt.ok && !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Validate(%v) = %v, want ErrOutOfBounds", tt.c, err)
		}
	}
}

func TestWorldPositionRoundTrip(t *testing.T) {
	l := Layout{Width: 8, Height: 8, TileW: 64, TileH: 64, Origin: P(-256, -256)}
	for _, c := range l.AllCoords() {
		p := l.WorldPositionOf(c)
		got, ok := l.CoordAt(p)
		if !ok || got != c {
			t.Fatalf("CoordAt(WorldPositionOf(%v)) = %v, %v", c, got, ok)
		}
	}

	p := l.WorldPositionOf(C(0, 0))
	if p.X != -224 || p.Y != -224 {
		t.Errorf("WorldPositionOf((0,0)) = %+v, want (-224,-224)", p)
	}
}

func TestCoordAtRejectsOutside(t *testing.T) {
	l := Layout{Width: 4, Height: 3, TileW: 10, TileH: 5}
	tests := []struct {
		name string
		p    Point
		want Coord
		ok   bool
	}{
		{"origin corner", P(0, 0), C(0, 0), true},
		{"inside last cell", P(39.9, 14.9), C(3, 2), true},
		{"right edge", P(40, 1), Coord{}, false},
		{"top edge", P(1, 15), Coord{}, false},
		{"left of board", P(-0.1, 1), Coord{}, false},
		{"below board", P(1, -0.1), Coord{}, false},
		{"far away", P(1000, 1000), Coord{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.CoordAt(tt.p)
			if ok != tt.ok || got != tt.want {
				t.Errorf("CoordAt(%+v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDistances(t *testing.T) {
	a := C(1, 1)
	tests := []struct {
		b         Coord
		manhattan int
		chebyshev int
		adjacent  bool
	}{
		{C(1, 2), 1, 1, true},
		{C(2, 1), 1, 1, true},
		{C(2, 2), 2, 1, false},
		{C(3, 1), 2, 2, false},
		{C(1, 1), 0, 0, false},
	}
	for _, tt := range tests {
		if got := a.Manhattan(tt.b); got != tt.manhattan {
			t.Errorf("Manhattan(%v) = %d, want %d", tt.b, got, tt.manhattan)
		}
		if got := a.Chebyshev(tt.b); got != tt.chebyshev {
			t.Errorf("Chebyshev(%v) = %d, want %d", tt.b, got, tt.chebyshev)
		}
		if got := a.Adjacent(tt.b); got != tt.adjacent {
			t.Errorf("Adjacent(%v) = %v, want %v", tt.b, got, tt.adjacent)
		}
	}

	for _, d := range Neighbors8 {
		if C(0, 0).Chebyshev(d) != 1 {
			t.Errorf("Neighbors8 entry %v is not a king move", d)
		}
	}
	for _, d := range Neighbors4 {
		if !C(0, 0).Adjacent(d) {
			t.Errorf("Neighbors4 entry %v is not orthogonal", d)
		}
	}
}

func TestSpriteIndexExplicit(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range AllColors() {
		for m := Mark(0); m < MarkCount; m++ {
			d := Descriptor{Color: c, Mark: m}
			idx := d.SpriteIndex()
			if idx < 0 || seen[idx] {
				t.Fatalf("sprite index %d for %v is invalid or duplicated", idx, d)
			}
			seen[idx] = true
		}
	}
	if got := (Descriptor{Color: ColorBlue, Mark: MarkStar}).SpriteIndex(); got != 2*6+5 {
		t.Errorf("blue/star sprite = %d, want 17", got)
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range AllColors() {
		got, ok := ParseColor(string(c.Char()))
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.Char(), got, ok, c)
		}
		got, ok = ParseColor(c.String())
		if !ok || got != c {
			t.Errorf("ParseColor(%q) = %v, %v; want %v", c.String(), got, ok, c)
		}
	}
	if _, ok := ParseColor("magenta"); ok {
		t.Error("ParseColor(magenta) should fail")
	}
}

func TestRandomSourceRespectsPalette(t *testing.T) {
	src := NewRandomSource(7, 3, 2)
	for i := 0; i < 500; i++ {
		d := src.Next()
		if d.Color.Index() >= 3 || d.Mark.Index() >= 2 {
			t.Fatalf("tile %v outside 3 colors / 2 marks", d)
		}
	}
	src.SetColorCount(100)
	if src.ColorCount() != int(ColorCount) {
		t.Errorf("ColorCount() = %d, want clamp to %d", src.ColorCount(), ColorCount)
	}
}
