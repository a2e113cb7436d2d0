package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
)

const overlayBackground = lipgloss.Color("238")

// colorStyles maps the runner palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	core.ColorEyes:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("33")),
	core.ColorObstacle:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorGroundLine: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorText:       lipgloss.NewStyle().Bold(true),
	core.ColorOverlay:    lipgloss.NewStyle().Background(overlayBackground),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(overlayBackground).Bold(true),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
