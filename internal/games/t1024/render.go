package t1024

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-1024/internal/core"
)

const (
	tileW = 7 // tile width in characters
	tileH = 3 // tile height in rows
	gap   = 1 // board background between tiles

	boardW    = BoardSize*tileW + (BoardSize+1)*gap
	boardH    = BoardSize*tileH + (BoardSize+1)*gap
	hudHeight = 4

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)

	controls := g.Controls()
	dst.DrawTextColored((g.screenW-len(controls))/2, boardY+boardH+1, controls, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws score, best, goal and the undo counter.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightWhite)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.state.Score))
	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawText(boardX+boardW-len(best), 1, best)

	dst.DrawTextColored(boardX, 2, fmt.Sprintf("Goal: %d", g.state.Goal), core.ColorYellow)

	undo := fmt.Sprintf("Undo (%d)", g.state.UndosLeft)
	undoColor := core.ColorDefault
	if !g.state.CanUndo() {
		undoColor = core.ColorGray
	}
	dst.DrawTextColored(boardX+boardW-len(undo), 2, undo, undoColor)
}

// renderBoard paints the board background and every tile.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.FillRect(core.NewRect(boardX, boardY, boardW, boardH), ' ', core.ColorBoard)

	for r := range BoardSize {
		for c := range BoardSize {
			val := g.state.Board[r][c]
			x := boardX + gap + c*(tileW+gap)
			y := boardY + gap + r*(tileH+gap)
			color := core.TileColor(val)

			dst.FillRect(core.NewRect(x, y, tileW, tileH), ' ', color)
			if val == 0 {
				continue
			}

			label := strconv.Itoa(val)
			dst.DrawTextColored(x+(tileW-len(label))/2, y+tileH/2, label, color)
		}
	}
}

// renderOverlays draws the notice box and the game over banner.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.gameOver {
		g.drawOverlay(dst, centerX, centerY, "GAME OVER",
			fmt.Sprintf("Score: %d  Max: %d", g.state.Score, MaxTile(g.state.Board)),
			"N: new game  U: undo")
		return
	}

	if g.notice != "" {
		g.drawOverlay(dst, centerX, centerY, g.notice)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "WASD move U undo N new Q quit"
}
