package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/habit"
)

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorPrimary = lipgloss.Color("#2DD4BF") // switches, progress fill, highlights
	ColorSuccess = lipgloss.Color("#22C55E") // check flash, progress gradient end
	ColorWarning = lipgloss.Color("#FACC15") // advisory notes
	ColorMuted   = lipgloss.Color("#94A3B8") // descriptions, hints
)

var (
	ColorBgDark  = lipgloss.Color("#0F172A")
	ColorBgLight = lipgloss.Color("#1E293B") // cards, unfilled track
)

var habitColors = map[habit.ID]color.Color{
	habit.NoSugar:     lipgloss.Color("#F472B6"),
	habit.WaterOnly:   lipgloss.Color("#38BDF8"),
	habit.ExerciseDay: lipgloss.Color("#FB923C"),
	habit.NoSnacks:    lipgloss.Color("#FBBF24"),
	habit.LowScreen:   lipgloss.Color("#A78BFA"),
	habit.Read:        lipgloss.Color("#4ADE80"),
}

// HabitColor is the accent for a habit's card; unknown ids get ColorMuted.
func HabitColor(id habit.ID) color.Color {
	if c, ok := habitColors[id]; ok {
		return c
	}
	return ColorMuted
}
