package card

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/tui/theme"
)

const (
	switchOn  = "[ ✓ ]"
	switchOff = "[ ✗ ]"
	flashText = "✓ nice!"
)

// Card renders one habit row. Flash is the short-lived check shown right
// after a habit is enabled.
type Card struct {
	Habit    habit.Habit
	Index    int
	Enabled  bool
	Selected bool
	Flash    bool
	Advisory string
	Accent   color.Color
	Width    int
}

func (c Card) Render() string {
	var (
		border = theme.ColorBgLight
		sw     = lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(switchOff)
	)
	if c.Enabled {
		border = theme.ColorPrimary
		sw = lipgloss.NewStyle().Foreground(theme.ColorPrimary).Bold(true).Render(switchOn)
	}
	if c.Selected {
		border = theme.ColorWhite
	}

	icon := lipgloss.NewStyle().Foreground(c.Accent).Bold(true).Render(c.Habit.Icon)
	title := lipgloss.NewStyle().Foreground(theme.ColorWhite).Bold(true).Render(c.Habit.Title)
	key := lipgloss.NewStyle().Foreground(theme.ColorDim).Render(string(rune('1' + c.Index)))
	desc := lipgloss.NewStyle().Foreground(theme.ColorMuted).Render(c.Habit.Description)

	inner := max(c.Width-4, 20)
	left := lipgloss.JoinVertical(lipgloss.Left,
		key+" "+icon+" "+title,
		"    "+desc,
	)
	if c.Flash {
		sw = lipgloss.NewStyle().Foreground(theme.ColorSuccess).Bold(true).Render(flashText) + " " + sw
	}
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(sw)-2, 1)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), sw)

	body := row
	if c.Advisory != "" {
		note := lipgloss.NewStyle().Foreground(theme.ColorWarning).Render("! " + c.Advisory)
		body = lipgloss.JoinVertical(lipgloss.Left, row, note)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(inner + 2).
		Render(body)
}
