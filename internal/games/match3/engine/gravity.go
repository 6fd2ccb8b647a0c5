package engine

import "fmt"

// Move records a tile relocated by gravity.
type Move struct {
	Handle Handle
	From   Coord
	To     Coord
}

// Spawn records a fresh tile entering the board.
// Origin is a logical cell above the board; Dest is where it lands.
type Spawn struct {
	Handle Handle
	Tile   Descriptor
	Origin Coord
	Dest   Coord
}

// CollapseColumns drops tiles down into empty cells, column by column.
// cleared lists the cells emptied by the last resolve; they must already be
// empty and unbound. Every column is compacted, so gaps from other sources
// are closed too. The returned slice holds, per column, the number of empty
// cells left at the top.
func CollapseColumns(b *Board, cleared []Coord) ([]int, []Move, error) {
	l := b.Layout()
	for _, c := range cleared {
		if err := l.Validate(c); err != nil {
			return nil, nil, err
		}
		if _, filled := b.Get(c); filled {
			return nil, nil, fmt.Errorf("%w: cleared cell %v still filled", ErrInvariantViolation, c)
		}
	}

	counts := make([]int, l.Width)
	var moves []Move
	for x := 0; x < l.Width; x++ {
		write := 0
		for y := 0; y < l.Height; y++ {
			from := C(x, y)
			if _, filled := b.Get(from); !filled {
				continue
			}
			if y != write {
				to := C(x, write)
				h, _ := b.HandleAt(from)
				if err := b.Move(from, to); err != nil {
					return nil, nil, err
				}
				moves = append(moves, Move{Handle: h, From: from, To: to})
			}
			write++
		}
		counts[x] = l.Height - write
	}
	return counts, moves, nil
}

// Refill fills the topmost counts[x] cells of every column bottom-up with
// tiles from src and binds a new handle to each.
func Refill(b *Board, counts []int, src TileSource, alloc HandleAllocator) ([]Spawn, error) {
	l := b.Layout()
	if len(counts) != l.Width {
		return nil, fmt.Errorf("%w: %d refill counts for %d columns", ErrInvariantViolation, len(counts), l.Width)
	}

	var spawns []Spawn
	for x, n := range counts {
		if n < 0 || n > l.Height {
			return nil, fmt.Errorf("%w: refill count %d in column %d", ErrInvariantViolation, n, x)
		}
		for k := 0; k < n; k++ {
			dest := C(x, l.Height-n+k)
			if _, filled := b.Get(dest); filled {
				return nil, fmt.Errorf("%w: refill onto filled %v", ErrInvariantViolation, dest)
			}
			tile := src.Next()
			h := alloc.Allocate()
			if err := b.Set(dest, tile); err != nil {
				return nil, err
			}
			if err := b.Bind(dest, h); err != nil {
				return nil, err
			}
			spawns = append(spawns, Spawn{
				Handle: h,
				Tile:   tile,
				Origin: C(x, l.Height+k),
				Dest:   dest,
			})
		}
	}
	return spawns, nil
}
