package session

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/ui/components"
	"github.com/tzehon/somm/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quiz == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Pouring questions...")
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

func (s *QuizScreen) renderQuestion(width int) string {
	q, ok := s.quiz.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Mode().Label()))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d   ✓ %d", s.quiz.Position(), s.quiz.Len(), s.quiz.Score()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.Prompt()))
	b.WriteString("\n\n")

	switch s.kind {
	case kindBool:
		b.WriteString(s.renderTrueFalse(width))
	case kindMulti:
		count := q.(*quiz.WineSelectionQuestion).CorrectCount
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Pick %d", count)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.multi.View()))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.single.View()))
	}

	return b.String()
}

func (s *QuizScreen) renderTrueFalse(width int) string {
	remaining := time.Until(s.deadline)
	if remaining < 0 {
		remaining = 0
	}
	secs := int(remaining.Seconds())

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	if secs <= 1 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(timerStyle.Render(fmt.Sprintf("⏱ %ds", secs))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(components.ButtonRow(
			components.NewButton("T", "True", true),
			components.NewButton("F", "False", false))))
	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	answers := s.quiz.Answers()
	if len(answers) == 0 {
		return ""
	}
	last := answers[len(answers)-1]

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case last.Correct:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Correct.Render("Correct!")))
	case s.lastTimedOut:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Incorrect.Render("Time's up")))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(theme.Incorrect.Render("Not quite")))
	}

	if !last.Correct {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Answer: " + correctAnswerText(last.Question)))
	}

	if hint := last.Question.Hint(); hint != "" {
		b.WriteString("\n\n")
		hintBlock := theme.Hint.Width(min(width-8, 70)).Render(hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hintBlock))
	}

	return b.String()
}

// correctAnswerText formats the expected answer for the feedback line.
func correctAnswerText(q quiz.Question) string {
	switch v := q.(type) {
	case *quiz.CategoryMatchQuestion:
		for _, o := range v.Options {
			if o.Correct {
				return o.Name
			}
		}
	case *quiz.DescriptionMatchQuestion:
		return v.Style.Name
	case *quiz.WineSelectionQuestion:
		return strings.Join(v.CorrectNames, ", ")
	case *quiz.QuickFireQuestion:
		if v.IsTrue {
			return "True"
		}
		return "False"
	case *quiz.OddOneOutQuestion:
		return fmt.Sprintf("%s (%s)", v.OddWine, v.OddStyle)
	case *quiz.OriginMatchQuestion:
		return strings.Join(v.CorrectOrigins, " / ")
	}
	return ""
}

func renderQuitConfirm(width int) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session early?") +
		"\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far are already saved.") +
		"\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(components.ButtonRow(
			components.NewButton("Y", "End session", false),
			components.NewButton("N", "Keep going", true)))
}

func renderError(width int, msg string) string {
	return "\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(msg) +
		"\n\n" + lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back")
}
