// Package habits renders the daily habit page: header, progress, one card
// per catalog habit and the reminders panel.
package habits

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/tips"
	"github.com/garrettladley/habitreset/internal/tui/components/card"
	"github.com/garrettladley/habitreset/internal/tui/components/gauge"
	"github.com/garrettladley/habitreset/internal/tui/components/progress"
	"github.com/garrettladley/habitreset/internal/tui/components/reminders"
	"github.com/garrettladley/habitreset/internal/tui/theme"
)

const (
	Title        = "Instant Habit Reset"
	ProgressText = "Today's Progress"
	CardsHeading = "Toggle Your Habits"
	ResetNotice  = "Your habits reset daily at midnight"

	dateLayout = "Monday, Jan 2"
	maxWidth   = 72
	minWidth   = 40
)

type State struct {
	Snapshot daily.Snapshot
	Cursor   int
	// Flash is the habit that was just enabled, cleared after a short delay.
	Flash habit.ID
	Tips  []tips.Tip
	Now   time.Time
}

// MoveCursor shifts the selection by delta, wrapping around the catalog.
func (s *State) MoveCursor(delta int) {
	s.Cursor = ((s.Cursor+delta)%habit.Count + habit.Count) % habit.Count
}

// Selected is the habit under the cursor.
func (s State) Selected() habit.ID {
	return habit.IDs()[s.Cursor]
}

func View(t theme.Theme, s State, width int) string {
	w := min(max(width-4, minWidth), maxWidth)

	sections := []string{
		header(t, s, w),
		"",
		progressView(t, s, w),
		"",
		t.Heading().Render(CardsHeading),
	}
	for i, h := range habit.All() {
		note, _ := daily.Advisory(s.Snapshot, h.ID)
		sections = append(sections, card.Card{
			Habit:    h,
			Index:    i,
			Enabled:  daily.IsEnabled(s.Snapshot, h.ID),
			Selected: i == s.Cursor,
			Flash:    s.Flash == h.ID,
			Advisory: note,
			Accent:   theme.HabitColor(h.ID),
			Width:    w,
		}.Render())
	}
	sections = append(sections,
		"",
		reminders.Panel{Tips: s.Tips, Width: w}.Render(),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, t.Muted().Render("🌙 "+ResetNotice)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func header(t theme.Theme, s State, width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		t.TextAccent().Render(Title),
		t.Muted().Render(s.Now.Format(dateLayout)),
	)
	badge := t.Badge().Render(fmt.Sprintf("%d/%d", daily.ActiveCount(s.Snapshot), habit.Count))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(badge), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), badge)
}

func progressView(t theme.Theme, s State, width int) string {
	percent := daily.ProgressPercent(s.Snapshot)
	ring := gauge.New(percent, "TODAY", theme.ColorPrimary).Render()

	barWidth := max(width-lipgloss.Width(ring)-4, 10)
	text := lipgloss.JoinVertical(lipgloss.Left,
		t.Heading().Render(ProgressText)+"  "+t.TextAccent().Render(fmt.Sprintf("%d%%", percent)),
		"",
		progress.New(percent, barWidth).Render(),
		t.Muted().Render(fmt.Sprintf("%d of %d habits active", daily.ActiveCount(s.Snapshot), habit.Count)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Center, text, "    ", ring)
}
