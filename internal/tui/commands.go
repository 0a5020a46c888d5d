package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/habitreset/internal/tui/page/splash"
)

func splashTickCmd() tea.Cmd {
	return tea.Tick(splash.Duration, func(time.Time) tea.Msg {
		return SplashTickMsg{}
	})
}

func clearFlashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func dayTickCmd() tea.Cmd {
	return tea.Tick(dayCheckEvery, func(time.Time) tea.Msg {
		return dayTickMsg{}
	})
}
