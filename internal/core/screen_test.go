package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	s.SetColored(2, 3, '●', ColorPink)
	if c := s.GetCell(2, 3); c.Rune != '●' || c.Color != ColorPink {
		t.Errorf("GetCell(2, 3) = %+v, expected pink dot", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetColored(0, -1, 'A', ColorRed)
	s.SetColored(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if c := s.GetCell(100, 0); c.Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Héllo", ColorCyan)

	expected := []rune("Héllo")
	for i, ch := range expected {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorCyan {
			t.Errorf("DrawTextColored: expected cyan %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Errorf("DrawTextCentered lost its color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("FillRect: expected green '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDim)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if s.Get(c.x, c.y) != c.r {
			t.Errorf("corner (%d, %d) = %q, expected %q", c.x, c.y, s.Get(c.x, c.y), c.r)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge broken at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge broken at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorDim {
		t.Error("box should carry its color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorRed)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}
	if s.GetCell(0, 0).Color != ColorRed {
		t.Error("Colors should be preserved")
	}

	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if s.Row(5) != strings.Repeat(" ", 15) {
		t.Errorf("Rows cut by shrinking should come back blank, got %q", s.Row(5))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}
	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestColorANSI(t *testing.T) {
	seen := make(map[string]Color)
	for c := ColorRed; c <= ColorAlert; c++ {
		code := c.ANSI()
		if code == "" {
			t.Errorf("color %d has no ANSI code", c)
			continue
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("colors %d and %d share ANSI code %s", prev, c, code)
		}
		seen[code] = c
	}
	if ColorDefault.ANSI() != "" {
		t.Error("default color should not set a foreground")
	}
}
