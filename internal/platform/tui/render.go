package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/core"
)

// colorStyles maps the palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	{}:               lipgloss.NewStyle(),
	core.ColorBlack:  lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorBlack.Hex())),
	core.ColorWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorWhite.Hex())),
	core.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorRed.Hex())),
	core.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGreen.Hex())),
	core.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorYellow.Hex())),
}

// styleFor returns the style of a color, building one for colors outside
// the palette.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
