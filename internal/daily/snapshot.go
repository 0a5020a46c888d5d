package daily

import (
	"fmt"
	"time"

	"github.com/garrettladley/habitreset/internal/habit"
)

// StorageKey is the single key the day's snapshot is written under.
const StorageKey = "instant-habit-reset"

// labelLayout renders like "Wed Oct 14 2026".
const labelLayout = "Mon Jan 02 2006"

// Label returns the calendar-day label of t in t's location.
// Two instants share a snapshot iff their labels are equal.
func Label(t time.Time) string {
	return t.Format(labelLayout)
}

type Record struct {
	ID      habit.ID `json:"id"`
	Enabled bool     `json:"enabled"`
}

type Snapshot struct {
	Date   string   `json:"date"`
	Habits []Record `json:"habits"`
}

// Default returns the all-disabled snapshot for date, in catalog order.
func Default(date string) Snapshot {
	ids := habit.IDs()
	records := make([]Record, len(ids))
	for i, id := range ids {
		records[i] = Record{ID: id}
	}
	return Snapshot{Date: date, Habits: records}
}

func (s Snapshot) clone() Snapshot {
	records := make([]Record, len(s.Habits))
	copy(records, s.Habits)
	return Snapshot{Date: s.Date, Habits: records}
}

// normalize checks that s holds exactly one record per catalog id and
// returns a copy ordered by the catalog.
func (s Snapshot) normalize() (Snapshot, error) {
	if len(s.Habits) != habit.Count {
		return Snapshot{}, fmt.Errorf("want %d habits, got %d", habit.Count, len(s.Habits))
	}

	ordered := make([]Record, habit.Count)
	seen := make([]bool, habit.Count)
	for _, r := range s.Habits {
		i := habit.Index(r.ID)
		if i < 0 {
			return Snapshot{}, fmt.Errorf("unknown habit id %q", r.ID)
		}
		if seen[i] {
			return Snapshot{}, fmt.Errorf("duplicate habit id %q", r.ID)
		}
		seen[i] = true
		ordered[i] = r
	}

	return Snapshot{Date: s.Date, Habits: ordered}, nil
}
