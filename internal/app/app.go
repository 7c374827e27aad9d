package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/screens/home"
	"github.com/tzehon/somm/internal/ui/layout"
	"github.com/tzehon/somm/internal/ui/theme"
)

// Options carries the app's dependencies and launch state.
type Options struct {
	Engine *engine.Engine

	// InitialScreen, when set, is pushed over the home screen on
	// startup so `somm play` and `somm study` land directly there.
	InitialScreen screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	eng     *engine.Engine
	router  *router.Router
	initial screen.Screen
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		eng:     opts.Engine,
		router:  router.New(home.New(opts.Engine)),
		initial: opts.InitialScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.initial != nil {
		s := m.initial
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is owned by the screens: the quiz screen turns it into a
		// quit confirmation, settings cancels an edit.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	rep := m.eng.Report()
	header := layout.RenderHeader(title, rep.OverallMastery, rep.Streak.CurrentStreak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program over an initialized engine.
func Run(opts Options) error {
	theme.SetDark(opts.Engine.Settings().DarkMode)

	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
