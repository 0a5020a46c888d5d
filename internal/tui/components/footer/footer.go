package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/tui/theme"
)

// KeyHints is the default right-hand content for the habits page.
const KeyHints = "↑/↓ move  space toggle  1-6 quick toggle  q quit"

type Footer struct {
	rightContent string
	width        int
	padding      int
}

func New(rightContent string, width int) Footer {
	return Footer{
		rightContent: rightContent,
		width:        width,
		padding:      2,
	}
}

func (f Footer) Render() string {
	var (
		leftContent = f.leftContent()
		right       = lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(f.rightContent)
	)

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(right)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + right)
}
