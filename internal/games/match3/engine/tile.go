// Package engine implements the match-3 board engine: grid state, match
// resolution, gravity refill, swap validation and stabilization.
// This package is UI-agnostic and deterministic for a given tile source.
package engine

import (
	"math/rand"
	"strings"
)

// Color is the matching attribute of a tile.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorOrange
	ColorPink
	ColorCyan
	ColorBrown
	ColorWhite
	ColorGrey
	ColorLime
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	case ColorOrange:
		return "orange"
	case ColorPink:
		return "pink"
	case ColorCyan:
		return "cyan"
	case ColorBrown:
		return "brown"
	case ColorWhite:
		return "white"
	case ColorGrey:
		return "grey"
	case ColorLime:
		return "lime"
	default:
		return "unknown"
	}
}

// Char returns the single letter used in layouts and ASCII dumps.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	case ColorOrange:
		return 'O'
	case ColorPink:
		return 'K'
	case ColorCyan:
		return 'C'
	case ColorBrown:
		return 'N'
	case ColorWhite:
		return 'W'
	case ColorGrey:
		return 'A'
	case ColorLime:
		return 'L'
	default:
		return '?'
	}
}

// Index returns the row of this color in a sprite sheet.
// The mapping is explicit so reordering the constants never shifts sprites.
func (c Color) Index() int {
	switch c {
	case ColorRed:
		return 0
	case ColorGreen:
		return 1
	case ColorBlue:
		return 2
	case ColorYellow:
		return 3
	case ColorPurple:
		return 4
	case ColorOrange:
		return 5
	case ColorPink:
		return 6
	case ColorCyan:
		return 7
	case ColorBrown:
		return 8
	case ColorWhite:
		return 9
	case ColorGrey:
		return 10
	case ColorLime:
		return 11
	default:
		return -1
	}
}

// ParseColor converts a name or layout letter to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	case "orange", "o":
		return ColorOrange, true
	case "pink", "k":
		return ColorPink, true
	case "cyan", "c":
		return ColorCyan, true
	case "brown", "n":
		return ColorBrown, true
	case "white", "w":
		return ColorWhite, true
	case "grey", "gray", "a":
		return ColorGrey, true
	case "lime", "l":
		return ColorLime, true
	default:
		return ColorRed, false
	}
}

// AllColors returns every color in palette order.
func AllColors() []Color {
	colors := make([]Color, 0, ColorCount)
	for c := Color(0); c < ColorCount; c++ {
		colors = append(colors, c)
	}
	return colors
}

// Mark is a cosmetic decoration drawn on a tile. Marks never affect matching.
type Mark uint8

const (
	MarkBlank Mark = iota
	MarkCross
	MarkCircle
	MarkSquare
	MarkTriangle
	MarkStar
	MarkCount
)

// String returns the string representation of a mark.
func (m Mark) String() string {
	switch m {
	case MarkBlank:
		return "blank"
	case MarkCross:
		return "cross"
	case MarkCircle:
		return "circle"
	case MarkSquare:
		return "square"
	case MarkTriangle:
		return "triangle"
	case MarkStar:
		return "star"
	default:
		return "unknown"
	}
}

// Index returns the column of this mark in a sprite sheet.
func (m Mark) Index() int {
	switch m {
	case MarkBlank:
		return 0
	case MarkCross:
		return 1
	case MarkCircle:
		return 2
	case MarkSquare:
		return 3
	case MarkTriangle:
		return 4
	case MarkStar:
		return 5
	default:
		return -1
	}
}

// Glyph returns the terminal glyph for a mark.
func (m Mark) Glyph() rune {
	switch m {
	case MarkCross:
		return '╳'
	case MarkCircle:
		return '●'
	case MarkSquare:
		return '■'
	case MarkTriangle:
		return '▲'
	case MarkStar:
		return '★'
	default:
		return '█'
	}
}

// Descriptor describes a single tile. It is a plain value and copied freely.
type Descriptor struct {
	Color Color
	Mark  Mark
}

// Matches reports whether two descriptors match. Only color participates.
func (d Descriptor) Matches(other Descriptor) bool {
	return d.Color == other.Color
}

// SpriteIndex returns the sprite sheet cell for this descriptor.
func (d Descriptor) SpriteIndex() int {
	return d.Color.Index()*int(MarkCount) + d.Mark.Index()
}

// String returns a compact representation such as "red/star".
func (d Descriptor) String() string {
	return d.Color.String() + "/" + d.Mark.String()
}

// TileSource produces descriptors for new tiles.
// Abstracted so tests can script refills.
type TileSource interface {
	Next() Descriptor
}

// RandomSource draws colors and marks uniformly from the first N of each.
type RandomSource struct {
	rng    *rand.Rand
	colors int
	marks  int
}

// NewRandomSource creates a random tile source.
// colors and marks are clamped to the available enum sizes.
func NewRandomSource(seed int64, colors, marks int) *RandomSource {
	s := &RandomSource{rng: rand.New(rand.NewSource(seed))}
	s.SetColorCount(colors)
	s.SetMarkCount(marks)
	return s
}

// Next returns a new random descriptor.
func (s *RandomSource) Next() Descriptor {
	return Descriptor{
		Color: Color(s.rng.Intn(s.colors)),
		Mark:  Mark(s.rng.Intn(s.marks)),
	}
}

// SetColorCount changes the palette size used for future tiles.
func (s *RandomSource) SetColorCount(n int) {
	s.colors = clampInt(n, 1, int(ColorCount))
}

// SetMarkCount changes the number of marks used for future tiles.
func (s *RandomSource) SetMarkCount(n int) {
	s.marks = clampInt(n, 1, int(MarkCount))
}

// ColorCount returns the current palette size.
func (s *RandomSource) ColorCount() int {
	return s.colors
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
