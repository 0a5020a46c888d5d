package daily

import (
	"fmt"

	"github.com/garrettladley/habitreset/internal/habit"
)

// ErrUnknownHabit matches any *UnknownHabitError via errors.Is.
var ErrUnknownHabit = habit.ErrUnknown

type UnknownHabitError struct {
	ID habit.ID
}

func (e *UnknownHabitError) Error() string {
	return fmt.Sprintf("unknown habit %q", e.ID)
}

func (e *UnknownHabitError) Unwrap() error { return ErrUnknownHabit }

// ParseError reports persisted bytes that could not be read as a snapshot.
// Load recovers from it; callers only see it through Decode.
type ParseError struct {
	Key   string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed snapshot at %q: %v", e.Key, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }
