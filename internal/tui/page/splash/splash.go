package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
 █   █  ███  ████  █████ █████     ████  █████  ████ █████ █████
 █   █ █   █ █   █   █     █       █   █ █     █     █       █
 █████ █████ ████    █     █       ████  ████   ███  ████    █
 █   █ █   █ █   █   █     █       █  █  █         █ █       █
 █   █ █   █ ████  █████   █       █   █ █████ ████  █████   █`

const tagline = "small wins, every day"

func LogoView(t theme.Theme) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		t.TextAccent().Render(Logo),
		"",
		t.Muted().Render(tagline),
	)
}

func View(t theme.Theme, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		LogoView(t),
	)
}
