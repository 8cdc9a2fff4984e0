package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/invaders/internal/core"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// Canvas draws onto an Ebitengine image. Playfield units are pixels.
type Canvas struct {
	dst     *ebiten.Image
	scratch *ebiten.Image // Text is printed here, then tinted onto dst
}

// NewCanvas creates a canvas with no target.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Target sets the image drawn on until the next call.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// FillRect fills r with a solid color.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if c.dst == nil || r.Empty() {
		return
	}
	vector.DrawFilledRect(c.dst,
		float32(r.X), float32(r.Y), float32(r.W), float32(r.H),
		toRGBA(col), false)
}

// DrawText draws text in the debug font with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, text string, col core.Color) {
	if c.dst == nil || text == "" {
		return
	}

	w := len([]rune(text)) * glyphW
	if c.scratch == nil || c.scratch.Bounds().Dx() < w {
		if c.scratch != nil {
			c.scratch.Deallocate()
		}
		c.scratch = ebiten.NewImage(w, glyphH)
	}
	c.scratch.Clear()
	ebitenutil.DebugPrint(c.scratch, text)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toRGBA(col))
	c.dst.DrawImage(c.scratch, op)
}

// toRGBA converts a palette color for the renderer.
func toRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
