package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/ui/layout"
	"github.com/tzehon/somm/internal/ui/theme"
)

// SummaryScreen displays the results of a finished quiz session.
type SummaryScreen struct {
	quiz *quiz.Session
	eng  *engine.Engine
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(qz *quiz.Session, eng *engine.Engine) *SummaryScreen {
	return &SummaryScreen{quiz: qz, eng: eng}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	answered := len(s.quiz.Answers())
	score := s.quiz.Score()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(score) / float64(answered)
	}
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		answered, score, accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	rep := s.eng.Report()
	streakLine := fmt.Sprintf("★ %d day streak        ◆ %d%% overall mastery",
		rep.Streak.CurrentStreak, rep.OverallMastery)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(streakLine))
	b.WriteString("\n\n")

	// Per-mode breakdown.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Modes")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	type tally struct{ correct, total int }
	byMode := make(map[quiz.Mode]*tally)
	var order []quiz.Mode
	for _, rec := range s.quiz.Answers() {
		m := rec.Question.Mode()
		t, ok := byMode[m]
		if !ok {
			t = &tally{}
			byMode[m] = t
			order = append(order, m)
		}
		t.total++
		if rec.Correct {
			t.correct++
		}
	}

	for _, m := range order {
		t := byMode[m]
		style := theme.Correct
		if t.correct < t.total {
			style = lipgloss.NewStyle().Foreground(theme.Text)
		}
		line := fmt.Sprintf("%-20s %s", m.Label(), style.Render(fmt.Sprintf("%d/%d correct", t.correct, t.total)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
