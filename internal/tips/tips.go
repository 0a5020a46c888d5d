// Package tips picks reminder text for enabled habits. Selection is random on
// every call; callers pass the source so tests can seed it.
package tips

import (
	"math/rand/v2"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/habit"
)

type Tip struct {
	HabitID habit.ID
	Text    string
}

// Pick returns one tip for id chosen uniformly from its list.
func Pick(r *rand.Rand, id habit.ID) (string, bool) {
	list := habit.Tips(id)
	if len(list) == 0 {
		return "", false
	}
	return list[r.IntN(len(list))], true
}

// Select returns one tip per enabled habit in s, in snapshot order.
func Select(r *rand.Rand, s daily.Snapshot) []Tip {
	ids := daily.EnabledIDs(s)
	out := make([]Tip, 0, len(ids))
	for _, id := range ids {
		text, ok := Pick(r, id)
		if !ok {
			continue
		}
		out = append(out, Tip{HabitID: id, Text: text})
	}
	return out
}
