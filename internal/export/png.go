// Package export renders boards to PNG images.
package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// Options controls the image layout.
type Options struct {
	TileSize int     // Pixels per tile
	Gap      int     // Pixels between tiles
	Radius   float64 // Corner radius of a tile
	Caption  string  // Optional text under the board
	Letters  bool    // Draw the color letter in each tile
}

// DefaultOptions returns 48px tiles with a 4px gap.
func DefaultOptions() Options {
	return Options{
		TileSize: 48,
		Gap:      4,
		Radius:   8,
		Letters:  true,
	}
}

const captionHeight = 20

var (
	background = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	emptyCell  = color.RGBA{R: 48, G: 48, B: 60, A: 255}
	markInk    = color.RGBA{R: 20, G: 20, B: 20, A: 200}
	captionInk = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// Size returns the image size for a board.
func Size(l engine.Layout, opts Options) (int, int) {
	step := opts.TileSize + opts.Gap
	w := l.Width*step + opts.Gap
	h := l.Height*step + opts.Gap
	if opts.Caption != "" {
		h += captionHeight
	}
	return w, h
}

// Render draws the board into a new image. Row 0 is at the bottom.
func Render(b *engine.Board, opts Options) image.Image {
	if opts.TileSize <= 0 {
		opts = DefaultOptions()
	}
	l := b.Layout()
	w, h := Size(l, opts)

	dc := gg.NewContext(w, h)
	dc.SetColor(background)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	ts := float64(opts.TileSize)
	for _, c := range l.AllCoords() {
		x := float64(opts.Gap + c.X*(opts.TileSize+opts.Gap))
		y := float64(opts.Gap + (l.Height-1-c.Y)*(opts.TileSize+opts.Gap))

		d, filled := b.Get(c)
		if !filled {
			dc.SetColor(emptyCell)
			dc.DrawRoundedRectangle(x, y, ts, ts, opts.Radius)
			dc.Fill()
			continue
		}

		dc.SetColor(TileColor(d.Color))
		dc.DrawRoundedRectangle(x, y, ts, ts, opts.Radius)
		dc.FillPreserve()
		dc.SetRGBA255(255, 255, 255, 60)
		dc.SetLineWidth(2)
		dc.Stroke()

		drawMark(dc, d.Mark, x+ts/2, y+ts/2, ts*0.28)

		if opts.Letters {
			dc.SetColor(markInk)
			dc.DrawStringAnchored(string(d.Color.Char()), x+6, y+6, 0, 1)
		}
	}

	if opts.Caption != "" {
		dc.SetColor(captionInk)
		dc.DrawStringAnchored(opts.Caption, float64(w)/2, float64(h)-captionHeight/2, 0.5, 0.5)
	}

	return dc.Image()
}

// drawMark draws a mark shape centred on (cx, cy).
func drawMark(dc *gg.Context, m engine.Mark, cx, cy, r float64) {
	dc.SetColor(markInk)
	dc.SetLineWidth(r / 3)
	switch m {
	case engine.MarkCross:
		dc.DrawLine(cx-r, cy-r, cx+r, cy+r)
		dc.DrawLine(cx-r, cy+r, cx+r, cy-r)
		dc.Stroke()
	case engine.MarkCircle:
		dc.DrawCircle(cx, cy, r)
		dc.Fill()
	case engine.MarkSquare:
		dc.DrawRectangle(cx-r, cy-r, 2*r, 2*r)
		dc.Fill()
	case engine.MarkTriangle:
		dc.DrawRegularPolygon(3, cx, cy, r*1.2, 0)
		dc.Fill()
	case engine.MarkStar:
		for i := 0; i < 10; i++ {
			radius := r * 1.2
			if i%2 == 1 {
				radius = r * 0.5
			}
			a := float64(i)*math.Pi/5 - math.Pi/2
			px, py := cx+radius*math.Cos(a), cy+radius*math.Sin(a)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
		dc.Fill()
	}
}

// Encode writes the board as PNG to w.
func Encode(w io.Writer, b *engine.Board, opts Options) error {
	img := Render(b, opts)
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the board as PNG to path, creating parent directories.
func SavePNG(path string, b *engine.Board, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: cannot create directory %s: %w", dir, err)
		}
	}
	if err := gg.SavePNG(path, Render(b, opts)); err != nil {
		return fmt.Errorf("export: cannot save %s: %w", path, err)
	}
	return nil
}

// TileColor returns the fill color of a board color.
func TileColor(c engine.Color) color.RGBA {
	switch c {
	case engine.ColorRed:
		return color.RGBA{R: 230, G: 57, B: 70, A: 255}
	case engine.ColorGreen:
		return color.RGBA{R: 42, G: 157, B: 88, A: 255}
	case engine.ColorBlue:
		return color.RGBA{R: 58, G: 134, B: 255, A: 255}
	case engine.ColorYellow:
		return color.RGBA{R: 255, G: 214, B: 10, A: 255}
	case engine.ColorPurple:
		return color.RGBA{R: 155, G: 93, B: 229, A: 255}
	case engine.ColorOrange:
		return color.RGBA{R: 251, G: 133, B: 0, A: 255}
	case engine.ColorPink:
		return color.RGBA{R: 255, G: 112, B: 166, A: 255}
	case engine.ColorCyan:
		return color.RGBA{R: 0, G: 209, B: 209, A: 255}
	case engine.ColorBrown:
		return color.RGBA{R: 141, G: 90, B: 52, A: 255}
	case engine.ColorWhite:
		return color.RGBA{R: 240, G: 240, B: 240, A: 255}
	case engine.ColorGrey:
		return color.RGBA{R: 140, G: 140, B: 150, A: 255}
	case engine.ColorLime:
		return color.RGBA{R: 170, G: 230, B: 50, A: 255}
	default:
		return emptyCell
	}
}
