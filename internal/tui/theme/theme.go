package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
}

func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

func (t Theme) Heading() lipgloss.Style {
	return t.base.Bold(true)
}

// Badge is the pill used for "3/6" and "2 active".
func (t Theme) Badge() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ColorBgDark).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
