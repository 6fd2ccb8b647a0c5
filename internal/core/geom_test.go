package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // Inside
		{10, 10, true},  // Top-left corner (inclusive)
		{29, 29, true},  // Bottom-right (exclusive edge - 1)
		{30, 30, false}, // Bottom-right edge (exclusive)
		{5, 15, false},  // Left of rect
		{35, 15, false}, // Right of rect
		{15, 5, false},  // Above rect
		{15, 35, false}, // Below rect
	}

	for _, tc := range tests {
		if result := r.Contains(tc.x, tc.y); result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectInsetAndCentered(t *testing.T) {
	r := NewRect(0, 0, 20, 10)

	if got := r.Inset(1); got != NewRect(1, 1, 18, 8) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := NewRect(0, 0, 1, 1).Inset(2); got.W != 0 || got.H != 0 {
		t.Errorf("Inset past zero should collapse, got %+v", got)
	}
	if got := r.Centered(10, 4); got != NewRect(5, 3, 10, 4) {
		t.Errorf("Centered(10, 4) = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestLerpAndEase(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"lerp start", Lerp(2, 10, 0), 2},
		{"lerp middle", Lerp(2, 10, 0.5), 6},
		{"lerp clamps", Lerp(2, 10, 3), 10},
		{"ease start", EaseOutQuad(0), 0},
		{"ease middle", EaseOutQuad(0.5), 0.75},
		{"ease end", EaseOutQuad(1), 1},
		{"ease clamps", EaseOutQuad(-1), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %v, expected %v", tc.got, tc.expected)
			}
		})
	}
}
