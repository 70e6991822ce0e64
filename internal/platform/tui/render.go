package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-1024/internal/core"
)

// Tile palette of the classic game.
const (
	boardBg   = lipgloss.Color("#bbada0")
	darkText  = lipgloss.Color("#776e65")
	lightText = lipgloss.Color("#f9f6f2")
)

func tileStyle(bg lipgloss.Color, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(true)
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),

	core.ColorBoard:     lipgloss.NewStyle().Background(boardBg),
	core.ColorTileEmpty: tileStyle("#cdc1b4", darkText),
	core.ColorTile2:     tileStyle("#eee4da", darkText),
	core.ColorTile4:     tileStyle("#ede0c8", darkText),
	core.ColorTile8:     tileStyle("#f2b179", lightText),
	core.ColorTile16:    tileStyle("#f59563", lightText),
	core.ColorTile32:    tileStyle("#f67c5f", lightText),
	core.ColorTile64:    tileStyle("#f65e3b", lightText),
	core.ColorTile128:   tileStyle("#edcf72", lightText),
	core.ColorTile256:   tileStyle("#edcc61", lightText),
	core.ColorTile512:   tileStyle("#edc850", lightText),
	core.ColorTile1024:  tileStyle("#edc53f", lightText),
	core.ColorTile2048:  tileStyle("#edc22e", lightText),
	core.ColorTileSuper: tileStyle("#3c3a32", lightText),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
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
