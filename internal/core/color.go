package core

import "fmt"

// Color is an 8-bit-per-channel RGBA color.
// Platforms translate it to their own representation (lipgloss hex colors,
// image/color.RGBA).
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from its channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns the color as a "#rrggbb" string. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette used by the game.
var (
	ColorBlack  = RGBA(0, 0, 0, 255)
	ColorWhite  = RGBA(255, 255, 255, 255)
	ColorRed    = RGBA(255, 0, 0, 255)
	ColorGreen  = RGBA(0, 255, 0, 255)
	ColorYellow = RGBA(255, 255, 0, 255)
)
