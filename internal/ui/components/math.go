package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathquiz/internal/mathtext"
	"github.com/abhisek/mathquiz/internal/ui/theme"
)

// RenderMath renders text with formula segments styled apart from the
// surrounding prose. Block formulas go on their own line.
func RenderMath(text string, base lipgloss.Style) string {
	if !mathtext.HasMath(text) {
		return base.Render(text)
	}

	var b strings.Builder
	for _, seg := range mathtext.Split(text) {
		switch seg.Kind {
		case mathtext.Inline:
			b.WriteString(theme.Math.Render(seg.Text))
		case mathtext.Block:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteString("\n")
			}
			b.WriteString(theme.MathBlock.Render(seg.Text))
			b.WriteString("\n")
		default:
			b.WriteString(base.Render(seg.Text))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
