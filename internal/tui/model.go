package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/habitreset/internal/daily"
	"github.com/garrettladley/habitreset/internal/habit"
	"github.com/garrettladley/habitreset/internal/tips"
	"github.com/garrettladley/habitreset/internal/tui/components/footer"
	"github.com/garrettladley/habitreset/internal/tui/page/habits"
	"github.com/garrettladley/habitreset/internal/tui/page/splash"
	"github.com/garrettladley/habitreset/internal/tui/theme"
	"github.com/garrettladley/habitreset/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	habitsPage
)

type state struct {
	habits   habits.State
	flashSeq int
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
}

func New(deps Deps) Model {
	deps = deps.withDefaults()

	m := Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
	}
	m.refresh(deps.Store.Current())
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		splashTickCmd(),
		dayTickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		return m, m.handleKey(msg.String())

	// splash timer expired - transition to habits
	case SplashTickMsg:
		m.page = habitsPage

	case flashDoneMsg:
		if msg.seq == m.state.flashSeq {
			m.state.habits.Flash = ""
		}

	case dayTickMsg:
		m.state.habits.Now = m.deps.Now()
		if snap := m.deps.Store.Current(); snap.Date != m.state.habits.Snapshot.Date {
			m.refresh(snap)
		}
		return m, dayTickCmd()
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "q", "ctrl+c":
		return tea.Quit
	}

	if m.page == splashPage {
		m.page = habitsPage
		return nil
	}

	switch key {
	case "up", "k":
		m.state.habits.MoveCursor(-1)
	case "down", "j":
		m.state.habits.MoveCursor(1)
	case "space", " ", "enter":
		return m.toggle(m.state.habits.Selected())
	case "1", "2", "3", "4", "5", "6":
		i := int(key[0] - '1')
		m.state.habits.Cursor = i
		return m.toggle(habit.IDs()[i])
	}
	return nil
}

// toggle flips id and reselects tips. Enabling a habit starts the flash.
func (m *Model) toggle(id habit.ID) tea.Cmd {
	enabled := !daily.IsEnabled(m.deps.Store.Current(), id)

	next, err := m.deps.Store.Toggle(m.deps.Ctx, id, enabled)
	if err != nil {
		m.deps.Logger.ErrorContext(m.deps.Ctx, "toggle failed",
			xslog.HabitID(string(id)),
			xslog.Error(err))
		return nil
	}
	m.refresh(next)

	if !enabled {
		m.state.habits.Flash = ""
		return nil
	}
	m.state.flashSeq++
	m.state.habits.Flash = id
	return clearFlashCmd(m.state.flashSeq)
}

// refresh repicks tips, which then stay fixed until the next state change.
func (m *Model) refresh(snap daily.Snapshot) {
	m.state.habits.Snapshot = snap
	m.state.habits.Tips = tips.Select(m.deps.Rand, snap)
	m.state.habits.Now = m.deps.Now()
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case habitsPage:
		bar := footer.New(footer.KeyHints, m.viewportWidth).Render()
		body := lipgloss.Place(
			m.viewportWidth,
			max(m.viewportHeight-lipgloss.Height(bar), 0),
			lipgloss.Center,
			lipgloss.Top,
			habits.View(m.theme, m.state.habits, m.viewportWidth),
		)
		content = lipgloss.JoinVertical(lipgloss.Left, body, bar)
	}

	view.SetContent(content)
	return view
}
