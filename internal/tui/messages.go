package tui

import "time"

const (
	flashDuration = 600 * time.Millisecond
	dayCheckEvery = time.Minute
)

type SplashTickMsg struct{}

// flashDoneMsg clears the check flash unless a newer toggle replaced it.
type flashDoneMsg struct {
	seq int
}

type dayTickMsg struct{}
