package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

const (
	tileFill     = '░'
	cursorFill   = '▒'
	selectedFill = '▓'
	clearFill    = '*'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bx, by := g.boardOrigin()
	bw, bh := g.boardSize()

	g.renderHUD(dst, bx, bw)
	dst.DrawBox(core.NewRect(bx-1, by-1, bw+2, bh+2), core.ColorDim)
	if g.eng != nil {
		g.renderBoard(dst, bx, by, bh)
	}
	g.renderOverlays(dst, bx, by, bw, bh)

	dst.DrawTextCentered(g.screenH-1, g.Controls(), core.ColorDim)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
}

// renderHUD draws score, moves and the latest message.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, "MATCH-3 "+g.Title(), core.ColorHighlight)

	left := fmt.Sprintf("Score: %d", g.score)
	if g.cfg.Mode.TargetScore > 0 {
		left = fmt.Sprintf("Score: %d/%d", g.score, g.cfg.Mode.TargetScore)
	}
	dst.DrawText(boardX, 1, left)

	right := fmt.Sprintf("Moves: %d", g.moves)
	if g.cfg.Mode.MoveLimit > 0 {
		right = fmt.Sprintf("Moves: %d/%d", g.moves, g.cfg.Mode.MoveLimit)
	}
	rx := max(boardX+boardW-len(right), boardX)
	dst.DrawText(rx, 1, right)

	if g.messageLeft > 0 {
		dst.DrawTextCentered(2, g.message, core.ColorYellow)
		return
	}
	info := fmt.Sprintf("Best chain: %d", g.bestChain)
	if g.eng != nil {
		info += fmt.Sprintf("  Colors: %d", g.eng.Config().Colors)
	}
	dst.DrawTextCentered(2, info, core.ColorDim)
}

// renderBoard draws every sprite plus cursor, selection and hint markers.
func (g *Game) renderBoard(dst *core.Screen, bx, by, bh int) {
	tw, th := g.cfg.Board.TileW, g.cfg.Board.TileH
	area := core.NewRect(bx, by, g.cfg.Board.Width*tw+1, bh)
	sel, hasSel := g.eng.Selected()
	blink := g.tick%4 < 2

	for _, s := range g.anim.Sprites() {
		sx, sy := g.screenCell(s.x, s.y)
		color := tileColor(s.tile.Color)
		fill := tileFill

		resting := s.x == s.toX && s.y == s.toY
		at := engine.C(int(s.toX), int(s.toY))
		switch {
		case s.clearing:
			fill = clearFill
			if blink {
				color = core.ColorHighlight
			}
		case resting && hasSel && at == sel:
			fill = selectedFill
		case resting && at == g.cursor:
			fill = cursorFill
		}

		glyph := s.tile.Mark.Glyph()
		if g.hintLeft > 0 && blink && (at == g.hintA || at == g.hintB) {
			glyph = '?'
		}

		gy := sy + (th-1)/2
		gx := sx + (tw-2)/2
		for dy := 0; dy < th; dy++ {
			for dx := 0; dx < tw-1; dx++ {
				x, y := sx+dx, sy+dy
				if !area.Contains(x, y) {
					continue
				}
				r := fill
				if x == gx && y == gy {
					r = glyph
				}
				dst.SetColored(x, y, r, color)
			}
		}
	}

	if !g.anim.Busy() {
		g.drawMarker(dst, g.cursor, '[', ']', core.ColorHighlight)
		if hasSel {
			g.drawMarker(dst, sel, '<', '>', core.ColorYellow)
		}
	}
}

// drawMarker puts brackets in the gap columns on each side of a tile.
func (g *Game) drawMarker(dst *core.Screen, c engine.Coord, left, right rune, color core.Color) {
	sx, sy := g.screenCell(float64(c.X), float64(c.Y))
	gy := sy + (g.cfg.Board.TileH-1)/2
	dst.SetColored(sx-1, gy, left, color)
	dst.SetColored(sx+g.cfg.Board.TileW-1, gy, right, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.faulted:
		g.drawOverlay(dst, centerX, centerY, core.ColorAlert, "BOARD FAULT", g.faultReason, "Press R to restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, core.ColorDefault, "PAUSED", "Press P to resume")
	case g.gameOver && g.won:
		g.drawOverlay(dst, centerX, centerY, core.ColorLime, g.endReason, fmt.Sprintf("Score: %d in %d moves", g.score, g.moves), "Press R to restart")
	case g.gameOver:
		g.drawOverlay(dst, centerX, centerY, core.ColorDefault, "GAME OVER", g.endReason, fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD Move | Enter Select | Esc Cancel | H Hint | P Pause | Q Quit"
}

// tileColor maps a board color to a screen color.
func tileColor(c engine.Color) core.Color {
	switch c {
	case engine.ColorRed:
		return core.ColorRed
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorBlue:
		return core.ColorBlue
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorPurple:
		return core.ColorPurple
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorPink:
		return core.ColorPink
	case engine.ColorCyan:
		return core.ColorCyan
	case engine.ColorBrown:
		return core.ColorBrown
	case engine.ColorWhite:
		return core.ColorWhite
	case engine.ColorGrey:
		return core.ColorGrey
	case engine.ColorLime:
		return core.ColorLime
	default:
		return core.ColorDefault
	}
}
