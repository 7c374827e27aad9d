// Package study implements the flashcard review screen: wines surface
// in queue order, the learner reveals the card and marks it known or
// needs-study.
package study

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/progress"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/schedule"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/ui/layout"
	"github.com/tzehon/somm/internal/ui/theme"
)

// StudyScreen pages through the review queue one card at a time.
type StudyScreen struct {
	eng      *engine.Engine
	entries  []schedule.Entry
	stats    schedule.Stats
	index    int
	revealed bool
	marked   int
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen over the current review queue.
func New(eng *engine.Engine) *StudyScreen {
	q := eng.ReviewQueue()
	return &StudyScreen{
		eng:     eng,
		entries: q.Entries(),
		stats:   q.Stats(),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return nil
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.done() {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	if !s.revealed {
		return []layout.KeyHint{
			{Key: "Space", Description: "Reveal"},
			{Key: "→", Description: "Skip"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Y", Description: "I know this"},
		{Key: "S", Description: "Needs study"},
		{Key: "→", Description: "Skip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StudyScreen) done() bool {
	return s.index >= len(s.entries)
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.done() {
		if kmsg.String() == "enter" || kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "space", " ", "enter":
		s.revealed = true
	case "right", "l":
		s.advance()
	case "y", "Y":
		if s.revealed {
			s.eng.MarkStudyStatus(s.entries[s.index].Item.Name, progress.StudyKnown)
			s.marked++
			s.advance()
		}
	case "s", "S":
		if s.revealed {
			s.eng.MarkStudyStatus(s.entries[s.index].Item.Name, progress.StudyNeedsStudy)
			s.marked++
			s.advance()
		}
	}

	return s, nil
}

func (s *StudyScreen) advance() {
	s.index++
	s.revealed = false
}

func (s *StudyScreen) View(width, height int) string {
	if len(s.entries) == 0 {
		return "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Nothing to study. The cellar is empty.")
	}
	if s.done() {
		return "\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Deck finished!") +
			"\n\n" + lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d cards seen, %d marked", len(s.entries), s.marked))
	}

	entry := s.entries[s.index]

	var b strings.Builder

	counts := fmt.Sprintf("  Card %d/%d   ·   %d due   %d new   %d scheduled",
		s.index+1, len(s.entries), s.stats.Due, s.stats.New, s.stats.Mastered)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(counts))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(renderBadge(entry)))
	b.WriteString("\n\n")

	name := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(entry.Item.Name)
	b.WriteString(name)
	b.WriteString("\n\n")

	if !s.revealed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("· · ·"))
		return b.String()
	}

	card := fmt.Sprintf("%s\n%s\n\n%s",
		theme.Selected.Render(entry.Item.StyleName),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(entry.Item.Origin),
		theme.Body.Width(min(width-12, 64)).Render(entry.Item.StyleDescription),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card)))

	return b.String()
}

func renderBadge(e schedule.Entry) string {
	switch e.Priority {
	case schedule.PriorityDue:
		label := "DUE"
		if e.OverdueDays > 0 {
			label = fmt.Sprintf("DUE · %dd overdue", e.OverdueDays)
		}
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(label)
	case schedule.PriorityNew:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("NEW")
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("SCHEDULED")
	}
}
