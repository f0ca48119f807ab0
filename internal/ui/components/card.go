package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// ContentWidth returns the inner width used for centered content boxes so
// that stacked sections line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Card wraps content in a rounded-border box of content width cw.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// Center places block in the middle of a width x height area.
func Center(block string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
