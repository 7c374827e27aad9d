// Package stats renders the learner's progress: overall and
// per-category mastery, streaks, and lifetime counters.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/ui/components"
	"github.com/tzehon/somm/internal/ui/theme"
)

// StatsScreen is a read-only progress report.
type StatsScreen struct {
	rep engine.Report
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a StatsScreen with a snapshot of the current report.
func New(eng *engine.Engine) *StatsScreen {
	return &StatsScreen{rep: eng.Report()}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	rep := s.rep
	var b strings.Builder

	b.WriteString("\n")
	overall := components.NewProgressBar("  Overall mastery", float64(rep.OverallMastery)/100, true, min(width-8, 70))
	b.WriteString(overall.View())
	b.WriteString("\n\n")

	line := fmt.Sprintf("  ★ %d day streak (best %d)   ·   %d sessions   ·   %d questions answered",
		rep.Streak.CurrentStreak, rep.Streak.LongestStreak,
		rep.Stats.TotalSessions, rep.Stats.TotalQuestions)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
	b.WriteString("\n")

	queueLine := fmt.Sprintf("  %d/%d wines learned   ·   %d due for review",
		rep.Learned, rep.TotalWines, rep.Queue.Due)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(queueLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  Styles"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-8, 0))))
	b.WriteString("\n\n")

	for _, cr := range rep.Categories {
		label := fmt.Sprintf("  %-22s", cr.StyleName)
		bar := components.NewProgressBar(label, float64(cr.Mastery)/100, true, min(width-20, 60))
		b.WriteString(bar.View())
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(string(cr.Level)))
		b.WriteString("\n")
	}

	return b.String()
}
