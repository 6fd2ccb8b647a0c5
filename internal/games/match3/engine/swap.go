package engine

import "fmt"

// SelectionKind is the outcome of a click on the selector.
type SelectionKind uint8

const (
	// Selected means a cell became selected with nothing selected before.
	Selected SelectionKind = iota
	// Deselected means the selected cell was clicked again.
	Deselected
	// Reselected means a distant cell replaced the selection.
	Reselected
	// SwapRequested means an adjacent cell was clicked.
	SwapRequested
	// Cleared means the click landed outside the board.
	Cleared
)

// String returns the outcome name.
func (k SelectionKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Deselected:
		return "deselected"
	case Reselected:
		return "reselected"
	case SwapRequested:
		return "swap-requested"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Selection describes one selector transition.
// For SwapRequested, A is the previously selected cell and B the clicked one.
type Selection struct {
	Kind SelectionKind
	A    Coord
	B    Coord
}

// Selector is the two-step selection state machine.
type Selector struct {
	selected Coord
	active   bool
}

// Click advances the selector with a click on cell c.
func (s *Selector) Click(c Coord) Selection {
	if !s.active {
		s.selected, s.active = c, true
		return Selection{Kind: Selected, A: c}
	}
	prev := s.selected
	switch {
	case c == prev:
		s.active = false
		return Selection{Kind: Deselected, A: c}
	case prev.Adjacent(c):
		s.active = false
		return Selection{Kind: SwapRequested, A: prev, B: c}
	default:
		s.selected = c
		return Selection{Kind: Reselected, A: c, B: prev}
	}
}

// ClickOutside drops any selection.
func (s *Selector) ClickOutside() Selection {
	s.active = false
	return Selection{Kind: Cleared}
}

// Selected returns the selected cell, if any.
func (s *Selector) Selected() (Coord, bool) {
	return s.selected, s.active
}

// Reset drops any selection.
func (s *Selector) Reset() {
	s.active = false
}

// RejectReason explains why a swap was not applied.
type RejectReason uint8

const (
	ReasonNone RejectReason = iota
	ReasonOutOfBounds
	ReasonSameCell
	ReasonNotAdjacent
	ReasonNoMatch
	ReasonBusy
)

// String returns the reason name.
func (r RejectReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonSameCell:
		return "same cell"
	case ReasonNotAdjacent:
		return "not adjacent"
	case ReasonNoMatch:
		return "no match"
	case ReasonBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// SwapResult is the outcome of a swap request.
type SwapResult struct {
	A       Coord
	B       Coord
	Applied bool
	Reason  RejectReason
	// Settle describes the stabilization run that followed an applied swap.
	Settle SettleComplete
	// Shuffled is true if the board was re-rolled afterwards.
	Shuffled bool
}

// Err returns nil for applied swaps and an ErrInvalidSwap otherwise.
func (r SwapResult) Err() error {
	if r.Applied {
		return nil
	}
	return fmt.Errorf("%w: %v <-> %v: %s", ErrInvalidSwap, r.A, r.B, r.Reason)
}

func rejected(a, b Coord, reason RejectReason) SwapResult {
	return SwapResult{A: a, B: b, Reason: reason}
}

// validateSwap checks the geometric swap rules.
func validateSwap(l Layout, a, b Coord) RejectReason {
	if !l.InBounds(a) || !l.InBounds(b) {
		return ReasonOutOfBounds
	}
	if a == b {
		return ReasonSameCell
	}
	if !a.Adjacent(b) {
		return ReasonNotAdjacent
	}
	return ReasonNone
}
