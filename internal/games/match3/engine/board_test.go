package engine

import (
	"errors"
	"testing"
)

func TestBoardBindUnbind(t *testing.T) {
	b := NewBoard(testLayout(3, 3))
	c := C(1, 2)
	if err := b.Set(c, Descriptor{Color: ColorRed}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Bind(c, 42); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if h, ok := b.HandleAt(c); !ok || h != 42 {
		t.Errorf("HandleAt = %d, %v; want 42, true", h, ok)
	}
	if at, ok := b.CoordOfHandle(42); !ok || at != c {
		t.Errorf("CoordOfHandle(42) = %v, %v", at, ok)
	}

	if err := b.Bind(c, 43); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("double Bind = %v, want ErrInvariantViolation", err)
	}
	if err := b.Bind(C(0, 0), 42); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("reusing handle = %v, want ErrInvariantViolation", err)
	}

	h, err := b.Unbind(c)
	if err != nil || h != 42 {
		t.Fatalf("Unbind = %d, %v", h, err)
	}
	if _, err := b.Unbind(c); !errors.Is(err, ErrMissingBinding) {
		t.Errorf("second Unbind = %v, want ErrMissingBinding", err)
	}
	if _, err := b.Unbind(C(5, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Unbind out of bounds = %v, want ErrOutOfBounds", err)
	}
}

func TestBoardSwapKeepsBijection(t *testing.T) {
	b := boardFromRows(t,
		"RGB",
		"YPO",
	)
	a, c := C(0, 0), C(1, 0)
	ha, _ := b.HandleAt(a)
	hc, _ := b.HandleAt(c)

	if err := b.Swap(a, c); err != nil {
		t.Fatalf("Swap failed: %v", err)
	}

	if d, _ := b.Get(a); d.Color != ColorPurple {
		t.Errorf("after swap (0,0) = %v, want purple", d.Color)
	}
	if d, _ := b.Get(c); d.Color != ColorYellow {
		t.Errorf("after swap (1,0) = %v, want yellow", d.Color)
	}
	if h, _ := b.HandleAt(a); h != hc {
		t.Errorf("handle at (0,0) = %d, want %d", h, hc)
	}
	if h, _ := b.HandleAt(c); h != ha {
		t.Errorf("handle at (1,0) = %d, want %d", h, ha)
	}
	if err := b.CheckBijection(); err != nil {
		t.Errorf("CheckBijection: %v", err)
	}
}

func TestBoardMove(t *testing.T) {
	b := boardFromRows(t,
		"R",
		".",
	)
	h, _ := b.HandleAt(C(0, 1))
	if err := b.Move(C(0, 1), C(0, 0)); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if got, ok := b.HandleAt(C(0, 0)); !ok || got != h {
		t.Errorf("handle did not follow the tile")
	}
	if _, filled := b.Get(C(0, 1)); filled {
		t.Error("source cell still filled")
	}
	if err := b.Move(C(0, 1), C(0, 0)); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("move onto filled = %v, want ErrInvariantViolation", err)
	}
}

func TestCheckBijectionDetectsDesync(t *testing.T) {
	b := boardFromRows(t, "RG")
	if err := b.CheckBijection(); err != nil {
		t.Fatalf("fresh board: %v", err)
	}
	if err := b.Clear(C(0, 0)); err != nil {
		t.Fatal(err)
	}
	if err := b.CheckBijection(); !errors.Is(err, ErrInvariantViolation) {
		t.Errorf("cleared-but-bound cell = %v, want ErrInvariantViolation", err)
	}
}

func TestBoardStringTopRowFirst(t *testing.T) {
	rows := []string{"RGB", "Y.O"}
	b := boardFromRows(t, rows...)
	want := "RGB\nY.O"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if d, _ := b.Get(C(0, 0)); d.Color != ColorYellow {
		t.Errorf("bottom-left = %v, want yellow", d.Color)
	}
}

func TestParseRowsErrors(t *testing.T) {
	b := NewBoard(testLayout(3, 2))
	tests := []struct {
		name string
		rows []string
	}{
		{"too few rows", []string{"RGB"}},
		{"short row", []string{"RGB", "RG"}},
		{"unknown letter", []string{"RGB", "RGX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.ParseRows(tt.rows); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseRows = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
