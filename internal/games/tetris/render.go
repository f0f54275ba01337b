package tetris

import (
	"fmt"
	"unicode/utf8"

	"github.com/blockfield/arcade/internal/blocks"
	"github.com/blockfield/arcade/internal/core"
)

// Visual characters for rendering. Each field cell is two columns wide.
const (
	BlockChar = '█'
	EmptyChar = '·'
	cellW     = 2
	hudW      = 18
	hudH      = 14
)

// kindColors gives every figure kind its own color while falling.
// Locked cells all use lockedColor.
var kindColors = map[blocks.ShapeKind]core.Color{
	blocks.ShapeSquare: core.ColorYellow,
	blocks.ShapeLine:   core.ColorCyan,
	blocks.ShapeL:      core.ColorOrange,
	blocks.ShapeJ:      core.ColorBlue,
	blocks.ShapeZ:      core.ColorRed,
	blocks.ShapeS:      core.ColorGreen,
	blocks.ShapeT:      core.ColorMagenta,
}

const lockedColor = core.ColorWhite

var controls = []string{
	"A/←  left",
	"D/→  right",
	"S/↓  down",
	"W/↑  rotate",
	"P    pause",
	"Q    quit",
}

// layoutSize returns the space needed for the board plus the HUD.
func (g *Game) layoutSize() (w, h int) {
	boardW := g.cfg.Field.Cols*cellW + 2
	boardH := g.cfg.Field.Rows + 2
	return boardW + 2 + hudW, max(boardH, hudH)
}

func (g *Game) fits(w, h int) bool {
	needW, needH := g.layoutSize()
	return w >= needW && h >= needH
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.field == nil {
		return
	}

	if g.tooSmall {
		needW, needH := g.layoutSize()
		dst.DrawTextCenteredColor(dst.Height()/2-1, "Terminal too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
		return
	}

	totalW, totalH := g.layoutSize()
	area := core.CenteredRect(dst.Width(), dst.Height(), totalW, totalH)

	board := core.NewRect(area.X, area.Y, g.cfg.Field.Cols*cellW+2, g.cfg.Field.Rows+2)
	g.drawBoard(dst, board)
	g.drawHUD(dst, board.Right()+2, area.Y)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart  B menu", g.field.Score()))
	}
}

func (g *Game) drawBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBox(board, core.ColorGray)
	inner := board.Inset(1)

	for r := range g.field.Rows() {
		for c := range g.field.Cols() {
			x, y := inner.X+c*cellW, inner.Y+r
			if g.field.Cell(r, c) {
				drawCell(dst, x, y, lockedColor)
			} else {
				dst.SetColor(x, y, EmptyChar, core.ColorGray)
			}
		}
	}

	p, ok := g.field.Active()
	if !ok {
		return
	}
	color := kindColors[p.Figure.Kind()]
	for i := range p.Figure.Height() {
		for j := range p.Figure.Width() {
			if p.Figure.Occupied(i, j) {
				drawCell(dst, inner.X+(p.Position.Col+j)*cellW, inner.Y+p.Position.Row+i, color)
			}
		}
	}
}

func drawCell(dst *core.Screen, x, y int, color core.Color) {
	for dx := range cellW {
		dst.SetColor(x+dx, y, BlockChar, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, x, y int) {
	dst.DrawTextColor(x, y, "TETRIS", core.ColorCyan)
	dst.DrawText(x, y+2, fmt.Sprintf("Score  %d", g.field.Score()))
	dst.DrawText(x, y+3, fmt.Sprintf("Lines  %d", g.field.Lines()))
	dst.DrawText(x, y+4, fmt.Sprintf("Speed  x%.1f", g.difficulty.Speed(g.field.Score(), int(g.tick))))

	if g.flash > 0 {
		dst.DrawTextColor(x, y+5, fmt.Sprintf("+%d lines!", g.lastCleared), core.ColorYellow)
	}

	for i, line := range controls {
		dst.DrawTextColor(x, y+7+i, line, core.ColorGray)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW := utf8.RuneCountInString(title)
	subW := utf8.RuneCountInString(subtitle)

	boxW := max(titleW, subW) + 4
	boxH := 5
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(box.X+(boxW-titleW)/2, box.Y+1, title, core.ColorYellow)
	dst.DrawText(box.X+(boxW-subW)/2, box.Y+3, subtitle)
}
