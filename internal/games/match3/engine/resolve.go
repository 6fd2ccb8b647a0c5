package engine

import (
	"fmt"
	"sort"
)

// DefaultMinRun is the shortest run that clears.
const DefaultMinRun = 3

// Axis is the direction of a run.
type Axis uint8

const (
	AxisRow Axis = iota
	AxisColumn
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

// Run is a maximal line of same-colored cells at least MinRun long.
type Run struct {
	Start  Coord
	Axis   Axis
	Length int
	Color  Color
}

// Cells returns every coordinate covered by the run.
func (r Run) Cells() []Coord {
	out := make([]Coord, 0, r.Length)
	for i := 0; i < r.Length; i++ {
		if r.Axis == AxisRow {
			out = append(out, r.Start.Add(i, 0))
		} else {
			out = append(out, r.Start.Add(0, i))
		}
	}
	return out
}

// Matches is the resolver output. Cells is a set sorted by cell index.
type Matches struct {
	Cells []Coord
	Runs  []Run
}

// Empty reports whether nothing matched.
func (m Matches) Empty() bool {
	return len(m.Cells) == 0
}

// Resolver finds runs of same-colored cells.
type Resolver struct {
	MinRun int
}

// NewResolver creates a resolver. Values below 2 fall back to DefaultMinRun.
func NewResolver(minRun int) Resolver {
	if minRun < 2 {
		minRun = DefaultMinRun
	}
	return Resolver{MinRun: minRun}
}

// Resolve scans rows left to right and columns bottom to top.
// Every in-bounds cell must be filled.
func (r Resolver) Resolve(b *Board) (Matches, error) {
	l := b.Layout()
	for i, cell := range b.cells {
		if !cell.Filled {
			return Matches{}, fmt.Errorf("%w: resolve on empty cell %v", ErrInvariantViolation, l.CoordOf(i))
		}
	}

	minRun := r.MinRun
	if minRun < 2 {
		minRun = DefaultMinRun
	}

	var runs []Run
	if l.Width >= minRun {
		for y := 0; y < l.Height; y++ {
			runs = scanLine(b, C(0, y), AxisRow, l.Width, minRun, runs)
		}
	}
	if l.Height >= minRun {
		for x := 0; x < l.Width; x++ {
			runs = scanLine(b, C(x, 0), AxisColumn, l.Height, minRun, runs)
		}
	}

	seen := make(map[int]bool)
	var cells []Coord
	for _, run := range runs {
		for _, c := range run.Cells() {
			idx := l.Index(c)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			cells = append(cells, c)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		return l.Index(cells[i]) < l.Index(cells[j])
	})

	return Matches{Cells: cells, Runs: runs}, nil
}

// scanLine appends the runs found along one row or column.
func scanLine(b *Board, start Coord, axis Axis, length, minRun int, runs []Run) []Run {
	at := func(i int) Coord {
		if axis == AxisRow {
			return start.Add(i, 0)
		}
		return start.Add(0, i)
	}
	color := func(i int) Color {
		return b.cells[b.layout.Index(at(i))].Tile.Color
	}

	runStart := 0
	for i := 1; i < length; i++ {
		if color(i) == color(runStart) {
			continue
		}
		if i-runStart >= minRun {
			runs = append(runs, Run{Start: at(runStart), Axis: axis, Length: i - runStart, Color: color(runStart)})
		}
		runStart = i
	}

	// The final run ends at the boundary, not at a color change.
	if length-runStart >= minRun {
		runs = append(runs, Run{Start: at(runStart), Axis: axis, Length: length - runStart, Color: color(runStart)})
	}
	return runs
}
