package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Tile colors mirror the board palette; the rest are UI colors.
const (
	ColorDefault Color = iota
	ColorRed
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
	ColorDim
	ColorHighlight
	ColorAlert
)

// ANSI returns the 256-color palette code for c.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "196"
	case ColorGreen:
		return "34"
	case ColorBlue:
		return "33"
	case ColorYellow:
		return "226"
	case ColorPurple:
		return "135"
	case ColorOrange:
		return "208"
	case ColorPink:
		return "205"
	case ColorCyan:
		return "51"
	case ColorBrown:
		return "130"
	case ColorWhite:
		return "255"
	case ColorGrey:
		return "245"
	case ColorLime:
		return "154"
	case ColorDim:
		return "240"
	case ColorHighlight:
		return "231"
	case ColorAlert:
		return "160"
	default:
		return ""
	}
}
