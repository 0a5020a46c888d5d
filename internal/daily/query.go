package daily

import (
	"math"

	"github.com/garrettladley/habitreset/internal/habit"
)

func ActiveCount(s Snapshot) int {
	var n int
	for _, r := range s.Habits {
		if r.Enabled {
			n++
		}
	}
	return n
}

// ProgressPercent is round(active/6*100), rounding halves away from zero.
func ProgressPercent(s Snapshot) int {
	return int(math.Round(float64(ActiveCount(s)) / habit.Count * 100))
}

// IsEnabled is false for ids missing from s.
func IsEnabled(s Snapshot, id habit.ID) bool {
	for _, r := range s.Habits {
		if r.ID == id {
			return r.Enabled
		}
	}
	return false
}

// EnabledIDs lists the enabled ids in snapshot order.
func EnabledIDs(s Snapshot) []habit.ID {
	var ids []habit.ID
	for _, r := range s.Habits {
		if r.Enabled {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Advisory returns the display-only note for id given the other flags in s.
func Advisory(s Snapshot, id habit.ID) (string, bool) {
	for _, a := range habit.Advisories() {
		if a.On == id && IsEnabled(s, a.When) {
			return a.Message, true
		}
	}
	return "", false
}
