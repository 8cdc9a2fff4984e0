package tui

import "github.com/vovakirdan/invaders/internal/core"

// fillRune is the cell used for solid rectangles.
const fillRune = '█'

// Canvas maps playfield coordinates onto a Screen. Rectangles are scaled
// to cells and always cover at least one cell; text keeps one rune per cell
// and is only repositioned.
type Canvas struct {
	screen *core.Screen
	fieldW int
	fieldH int
}

// NewCanvas creates a canvas drawing a fieldW x fieldH playfield on screen.
func NewCanvas(screen *core.Screen, fieldW, fieldH int) *Canvas {
	return &Canvas{
		screen: screen,
		fieldW: core.Max(fieldW, 1),
		fieldH: core.Max(fieldH, 1),
	}
}

// Cell converts a playfield point to a screen cell.
func (c *Canvas) Cell(x, y int) (int, int) {
	return x * c.screen.Width() / c.fieldW, y * c.screen.Height() / c.fieldH
}

// FillRect fills the cells covered by r.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	x0, y0 := c.Cell(r.X, r.Y)
	x1 := ceilDiv(r.Right()*c.screen.Width(), c.fieldW)
	y1 := ceilDiv(r.Bottom()*c.screen.Height(), c.fieldH)

	cells := core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
	c.screen.DrawRect(cells, fillRune, col)
}

// DrawText writes text starting at the cell holding (x, y).
func (c *Canvas) DrawText(x, y int, text string, col core.Color) {
	cx, cy := c.Cell(x, y)
	c.screen.DrawText(cx, cy, text, col)
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}
