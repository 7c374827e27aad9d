package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	sessionscreen "github.com/tzehon/somm/internal/screens/session"
	"github.com/tzehon/somm/internal/screens/settings"
	"github.com/tzehon/somm/internal/screens/stats"
	"github.com/tzehon/somm/internal/screens/study"
	"github.com/tzehon/somm/internal/ui/components"
	"github.com/tzehon/somm/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	eng  *engine.Engine
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(eng *engine.Engine) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(eng, engine.SessionConfig{}),
				}
			}
		}},
		{Label: "STUDY REVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: study.New(eng)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(eng)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(eng)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		eng:  eng,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	rep := h.eng.Report()

	var sections []string

	sections = append(sections, renderWordmark(width))

	tagline := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Know your wines, one pour at a time")
	sections = append(sections, tagline)

	statsLine := fmt.Sprintf("◆ %d%% mastery     ★ %d day streak     %d due for review     %d/%d learned",
		rep.OverallMastery, rep.Streak.CurrentStreak, rep.Queue.Due, rep.Learned, rep.TotalWines)
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(statsLine))

	if h.eng.Degraded() {
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Storage unavailable — progress will not survive this session"))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

var wordmark = []string{
	` ___  ___  _ __ ___  _ __ ___`,
	`/ __|/ _ \| '_ ` + "`" + ` _ \| '_ ` + "`" + ` _ \`,
	`\__ \ (_) | | | | | | | | | | |`,
	`|___/\___/|_| |_| |_|_| |_| |_|`,
}

func renderWordmark(width int) string {
	block := strings.Join(wordmark, "\n")
	styled := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(block)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, styled)
}
