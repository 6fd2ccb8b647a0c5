package engine

import (
	"fmt"
	"math"
)

// Coord is a cell position. X is the column, Y the row; row 0 is the bottom.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the orthogonal distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return absInt(c.X-other.X) + absInt(c.Y-other.Y)
}

// Chebyshev returns the king-move distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	return max(absInt(c.X-other.X), absInt(c.Y-other.Y))
}

// Adjacent reports whether two cells share an edge.
// Diagonal neighbours are not adjacent for swapping.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// Neighbors4 lists orthogonal offsets.
var Neighbors4 = [4]Coord{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Neighbors8 lists orthogonal and diagonal offsets. Swaps never use it.
var Neighbors8 = [8]Coord{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

// Point is a world-space position. Y grows upward.
type Point struct {
	X float64
	Y float64
}

// P is a convenience constructor for Point.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Layout holds board dimensions and the world transform.
// All addressing math lives here and is stateless.
type Layout struct {
	Width  int
	Height int
	TileW  float64
	TileH  float64
	Origin Point
}

// Size returns the number of cells.
func (l Layout) Size() int {
	return l.Width * l.Height
}

// Index converts a coordinate to a linear cell index.
func (l Layout) Index(c Coord) int {
	return c.Y*l.Width + c.X
}

// CoordOf converts a linear index back to a coordinate.
func (l Layout) CoordOf(index int) Coord {
	return Coord{X: index % l.Width, Y: index / l.Width}
}

// InBounds returns true if the coordinate is on the board.
func (l Layout) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < l.Width && c.Y >= 0 && c.Y < l.Height
}

// Validate returns ErrOutOfBounds for coordinates off the board.
func (l Layout) Validate(c Coord) error {
	if !l.InBounds(c) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, c, l.Width, l.Height)
	}
	return nil
}

// WorldPositionOf returns the world position of a cell centre.
// Defined for any coordinate, including rows above the board.
func (l Layout) WorldPositionOf(c Coord) Point {
	return Point{
		X: l.Origin.X + (float64(c.X)+0.5)*l.TileW,
		Y: l.Origin.Y + (float64(c.Y)+0.5)*l.TileH,
	}
}

// CoordAt maps a world position to the cell containing it.
// Positions outside the board return false; they are never clamped.
func (l Layout) CoordAt(p Point) (Coord, bool) {
	if l.TileW <= 0 || l.TileH <= 0 {
		return Coord{}, false
	}
	lx := p.X - l.Origin.X
	ly := p.Y - l.Origin.Y
	if lx < 0 || ly < 0 || lx >= float64(l.Width)*l.TileW || ly >= float64(l.Height)*l.TileH {
		return Coord{}, false
	}
	c := Coord{
		X: int(math.Floor(lx / l.TileW)),
		Y: int(math.Floor(ly / l.TileH)),
	}
	// Guards against float rounding at the far edges.
	if !l.InBounds(c) {
		return Coord{}, false
	}
	return c, true
}

// AllCoords returns every coordinate in index order.
func (l Layout) AllCoords() []Coord {
	coords := make([]Coord, 0, l.Size())
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
