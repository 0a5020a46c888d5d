package progress

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/tui/theme"
)

const (
	fillRune  = "█"
	emptyRune = "░"
)

type Bar struct {
	Percent    int
	Width      int
	FillColor  color.Color
	EmptyColor color.Color
}

func New(percent, width int) Bar {
	return Bar{
		Percent:    min(max(percent, 0), 100),
		Width:      max(width, 0),
		FillColor:  theme.ColorPrimary,
		EmptyColor: theme.ColorBgLight,
	}
}

// Filled is the number of cells drawn as complete, rounded to nearest.
func (b Bar) Filled() int {
	return (b.Percent*b.Width + 50) / 100
}

func (b Bar) Render() string {
	filled := b.Filled()
	return lipgloss.NewStyle().Foreground(b.FillColor).Render(strings.Repeat(fillRune, filled)) +
		lipgloss.NewStyle().Foreground(b.EmptyColor).Render(strings.Repeat(emptyRune, b.Width-filled))
}
