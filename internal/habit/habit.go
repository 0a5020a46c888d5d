package habit

import (
	"errors"
	"fmt"
)

// ID identifies one of the fixed daily habits.
type ID string

const (
	NoSugar     ID = "no-sugar"
	WaterOnly   ID = "water-only"
	ExerciseDay ID = "exercise-day"
	NoSnacks    ID = "no-snacks"
	LowScreen   ID = "low-screen"
	Read        ID = "read"
)

// Count is the size of the catalog.
const Count = 6

var ErrUnknown = errors.New("unknown habit")

// Habit is the display metadata for a catalog entry.
type Habit struct {
	ID          ID
	Title       string
	Description string
	Icon        string
}

var catalog = [Count]Habit{
	{ID: NoSugar, Title: "No Sugar", Description: "Skip added sugars today", Icon: "◆"},
	{ID: WaterOnly, Title: "Water Only", Description: "Drink only water today", Icon: "≈"},
	{ID: ExerciseDay, Title: "Exercise Day", Description: "Get moving for 30+ mins", Icon: "▲"},
	{ID: NoSnacks, Title: "No Snacks", Description: "Stick to main meals only", Icon: "●"},
	{ID: LowScreen, Title: "Low Screen Time", Description: "Limit device usage", Icon: "▯"},
	{ID: Read, Title: "Read", Description: "Read for at least 15 mins", Icon: "≡"},
}

// All returns the catalog in display order.
func All() []Habit {
	out := make([]Habit, Count)
	copy(out, catalog[:])
	return out
}

// IDs returns the catalog ids in display order.
func IDs() []ID {
	ids := make([]ID, Count)
	for i, h := range catalog {
		ids[i] = h.ID
	}
	return ids
}

func Get(id ID) (Habit, bool) {
	for _, h := range catalog {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

func Valid(id ID) bool {
	_, ok := Get(id)
	return ok
}

// Index returns the display position of id, or -1.
func Index(id ID) int {
	for i, h := range catalog {
		if h.ID == id {
			return i
		}
	}
	return -1
}

func Parse(s string) (ID, error) {
	id := ID(s)
	if !Valid(id) {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return id, nil
}

func (id ID) String() string { return string(id) }
