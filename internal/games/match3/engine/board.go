package engine

import (
	"fmt"
	"strings"
)

// Handle identifies the rendered representation of a tile.
// The zero value is never a valid handle.
type Handle uint64

// HandleAllocator hands out fresh render handles.
type HandleAllocator interface {
	Allocate() Handle
}

// SequentialAllocator allocates increasing handles starting at 1.
type SequentialAllocator struct {
	next Handle
}

// Allocate returns the next unused handle.
func (a *SequentialAllocator) Allocate() Handle {
	a.next++
	return a.next
}

// Cell is a single board slot. Filled is false only mid-resolution.
type Cell struct {
	Tile   Descriptor
	Filled bool
}

// Board is the authoritative grid plus its handle bindings.
// cells is indexed y*width+x; handles and owners are kept in bijection.
type Board struct {
	layout  Layout
	cells   []Cell
	handles map[int]Handle
	owners  map[Handle]int
}

// NewBoard creates an empty board for the given layout.
func NewBoard(layout Layout) *Board {
	return &Board{
		layout:  layout,
		cells:   make([]Cell, layout.Size()),
		handles: make(map[int]Handle, layout.Size()),
		owners:  make(map[Handle]int, layout.Size()),
	}
}

// Layout returns the board layout.
func (b *Board) Layout() Layout {
	return b.layout
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.layout.Width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.layout.Height
}

// Get returns the descriptor at c. The bool is false for empty or
// out-of-bounds cells.
func (b *Board) Get(c Coord) (Descriptor, bool) {
	if !b.layout.InBounds(c) {
		return Descriptor{}, false
	}
	cell := b.cells[b.layout.Index(c)]
	return cell.Tile, cell.Filled
}

// Set places a descriptor at c.
func (b *Board) Set(c Coord, d Descriptor) error {
	if err := b.layout.Validate(c); err != nil {
		return err
	}
	b.cells[b.layout.Index(c)] = Cell{Tile: d, Filled: true}
	return nil
}

// Clear empties the cell at c. Its binding is left untouched.
func (b *Board) Clear(c Coord) error {
	if err := b.layout.Validate(c); err != nil {
		return err
	}
	b.cells[b.layout.Index(c)] = Cell{}
	return nil
}

// HandleAt returns the handle bound to c.
func (b *Board) HandleAt(c Coord) (Handle, bool) {
	if !b.layout.InBounds(c) {
		return 0, false
	}
	h, ok := b.handles[b.layout.Index(c)]
	return h, ok
}

// CoordOfHandle returns the cell currently bound to h.
func (b *Board) CoordOfHandle(h Handle) (Coord, bool) {
	idx, ok := b.owners[h]
	if !ok {
		return Coord{}, false
	}
	return b.layout.CoordOf(idx), true
}

// Bind attaches h to c. The cell must be unbound and h unused.
func (b *Board) Bind(c Coord, h Handle) error {
	if err := b.layout.Validate(c); err != nil {
		return err
	}
	if h == 0 {
		return fmt.Errorf("%w: bind zero handle at %v", ErrInvariantViolation, c)
	}
	idx := b.layout.Index(c)
	if old, ok := b.handles[idx]; ok {
		return fmt.Errorf("%w: %v already bound to %d", ErrInvariantViolation, c, old)
	}
	if at, ok := b.owners[h]; ok {
		return fmt.Errorf("%w: handle %d already bound at %v", ErrInvariantViolation, h, b.layout.CoordOf(at))
	}
	b.handles[idx] = h
	b.owners[h] = idx
	return nil
}

// Unbind detaches and returns the handle at c.
// Returns ErrMissingBinding if c has no handle.
func (b *Board) Unbind(c Coord) (Handle, error) {
	if err := b.layout.Validate(c); err != nil {
		return 0, err
	}
	idx := b.layout.Index(c)
	h, ok := b.handles[idx]
	if !ok {
		return 0, fmt.Errorf("%w: no handle at %v", ErrMissingBinding, c)
	}
	delete(b.handles, idx)
	delete(b.owners, h)
	return h, nil
}

// Swap exchanges descriptors and bindings of two cells.
func (b *Board) Swap(a, c Coord) error {
	if err := b.layout.Validate(a); err != nil {
		return err
	}
	if err := b.layout.Validate(c); err != nil {
		return err
	}
	ia, ic := b.layout.Index(a), b.layout.Index(c)
	b.cells[ia], b.cells[ic] = b.cells[ic], b.cells[ia]

	ha, okA := b.handles[ia]
	hc, okC := b.handles[ic]
	delete(b.handles, ia)
	delete(b.handles, ic)
	if okA {
		b.handles[ic] = ha
		b.owners[ha] = ic
	}
	if okC {
		b.handles[ia] = hc
		b.owners[hc] = ia
	}
	return nil
}

// Move relocates the descriptor and binding at from into the empty cell to.
func (b *Board) Move(from, to Coord) error {
	if err := b.layout.Validate(from); err != nil {
		return err
	}
	if err := b.layout.Validate(to); err != nil {
		return err
	}
	fi, ti := b.layout.Index(from), b.layout.Index(to)
	if b.cells[ti].Filled {
		return fmt.Errorf("%w: move %v onto filled %v", ErrInvariantViolation, from, to)
	}
	if _, bound := b.handles[ti]; bound {
		return fmt.Errorf("%w: move %v onto bound %v", ErrInvariantViolation, from, to)
	}
	h, ok := b.handles[fi]
	if !ok {
		return fmt.Errorf("%w: move from %v", ErrMissingBinding, from)
	}
	b.cells[ti] = b.cells[fi]
	b.cells[fi] = Cell{}
	delete(b.handles, fi)
	b.handles[ti] = h
	b.owners[h] = ti
	return nil
}

// Filled reports whether every cell holds a descriptor.
func (b *Board) Filled() bool {
	for _, cell := range b.cells {
		if !cell.Filled {
			return false
		}
	}
	return true
}

// CheckBijection verifies that every filled cell has exactly one handle,
// every empty cell has none, and both maps agree.
func (b *Board) CheckBijection() error {
	if len(b.handles) != len(b.owners) {
		return fmt.Errorf("%w: %d bindings but %d owners", ErrInvariantViolation, len(b.handles), len(b.owners))
	}
	for idx, cell := range b.cells {
		h, bound := b.handles[idx]
		if cell.Filled != bound {
			return fmt.Errorf("%w: cell %v filled=%t bound=%t", ErrInvariantViolation, b.layout.CoordOf(idx), cell.Filled, bound)
		}
		if bound && b.owners[h] != idx {
			return fmt.Errorf("%w: handle %d points at %v", ErrInvariantViolation, h, b.layout.CoordOf(b.owners[h]))
		}
	}
	return nil
}

// Colors returns a copy of the color grid, row-major from the bottom row.
// Empty cells are reported as -1.
func (b *Board) Colors() []int {
	out := make([]int, len(b.cells))
	for i, cell := range b.cells {
		if cell.Filled {
			out[i] = cell.Tile.Color.Index()
		} else {
			out[i] = -1
		}
	}
	return out
}

// Cells returns a copy of all cells in index order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// String renders the board top row first, one letter per cell.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.layout.Height - 1; y >= 0; y-- {
		for x := 0; x < b.layout.Width; x++ {
			cell := b.cells[b.layout.Index(C(x, y))]
			if cell.Filled {
				sb.WriteRune(cell.Tile.Color.Char())
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseRows fills the board from literal rows written top row first.
// Each rune is a color letter; '.' leaves the cell empty. Marks are blank.
func (b *Board) ParseRows(rows []string) error {
	if len(rows) != b.layout.Height {
		return fmt.Errorf("%w: layout has %d rows, board has %d", ErrInvalidConfig, len(rows), b.layout.Height)
	}
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != b.layout.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidConfig, i, len(runes), b.layout.Width)
		}
		y := b.layout.Height - 1 - i
		for x, r := range runes {
			c := C(x, y)
			if r == '.' {
				b.cells[b.layout.Index(c)] = Cell{}
				continue
			}
			color, ok := ParseColor(string(r))
			if !ok {
				return fmt.Errorf("%w: unknown color %q at row %d", ErrInvalidConfig, r, i)
			}
			b.cells[b.layout.Index(c)] = Cell{Tile: Descriptor{Color: color}, Filled: true}
		}
	}
	return nil
}
