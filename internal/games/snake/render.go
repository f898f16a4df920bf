package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Each grid cell is drawn two columns wide so the board looks square in a terminal.
const cellW = 2

const hudHeight = 2

// requiredWidth is the board plus its wall ring.
func (g *Game) requiredWidth() int {
	return (g.cfg.Board.GridSize + 1) * cellW
}

func (g *Game) requiredHeight() int {
	return g.cfg.Board.GridSize + 1 + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	ox, oy := g.boardOrigin(dst)
	g.renderBoard(dst, ox, oy)

	switch {
	case g.cleared:
		g.renderOverlay(dst, "Board cleared!", "Press R to play again")
	case g.gameOver:
		score := 0
		if g.lastRun != nil {
			score = g.lastRun.Score
		}
		g.renderOverlay(dst, fmt.Sprintf("Game Over - Score %d", score), "Steer to play again")
	case g.paused && g.moves == 0:
		g.renderOverlay(dst, "Ready", "Arrows/WASD to start")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardOrigin returns the screen position of grid cell (0, 0).
func (g *Game) boardOrigin(dst *core.Screen) (int, int) {
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	r := area.Centered(g.requiredWidth(), g.requiredHeight()-hudHeight)
	return r.X, r.Y
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake - Score: %d  Length: %d  Best: %d",
		g.State().Score, g.board.snake.Len(), g.bestLen)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws walls, food and snake.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	n := g.board.GridSize()
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			if g.board.IsWall(GridCoord{X: x, Y: y}) {
				g.drawCell(dst, ox, oy, GridCoord{X: x, Y: y}, "██", core.ColorGray)
			} else {
				g.drawCell(dst, ox, oy, GridCoord{X: x, Y: y}, " ·", core.ColorGray)
			}
		}
	}

	if food := g.board.FoodLocation(); food != NoFood {
		g.drawCell(dst, ox, oy, food, "<>", core.ColorBrightGreen)
	}

	body := g.board.snake.body
	for i, seg := range body {
		if i == len(body)-1 {
			g.drawCell(dst, ox, oy, seg, "██", core.ColorBrightRed)
		} else {
			g.drawCell(dst, ox, oy, seg, "▓▓", core.ColorRed)
		}
	}
}

func (g *Game) drawCell(dst *core.Screen, ox, oy int, c GridCoord, glyph string, color core.Color) {
	dst.DrawTextWithColor(ox+c.X*cellW, oy+c.Y, glyph, color)
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
