package reminders

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/tips"
	"github.com/garrettladley/habitreset/internal/tui/theme"
)

const (
	title    = "Today's Reminders"
	emptyMsg = "Toggle some habits above to see personalized tips!"
)

type Panel struct {
	Tips  []tips.Tip
	Width int
}

func (p Panel) Render() string {
	t := theme.New()

	header := t.Heading().Render("💡 " + title)
	if len(p.Tips) > 0 {
		header += "  " + t.Badge().Render(fmt.Sprintf("%d active", len(p.Tips)))
	}

	var lines []string
	if len(p.Tips) == 0 {
		lines = append(lines, t.Muted().Render(emptyMsg))
	}
	for _, tip := range p.Tips {
		icon := "•"
		if h, ok := habit.Get(tip.HabitID); ok {
			icon = h.Icon
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.HabitColor(tip.HabitID)).Render(icon)+" "+t.Base().Render(tip.Text))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBgLight).
		Padding(0, 1).
		Width(max(p.Width-2, 24)).
		Render(header + "\n\n" + strings.Join(lines, "\n"))
}
