package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/screens/summary"
	"github.com/tzehon/somm/internal/ui/components"
	"github.com/tzehon/somm/internal/ui/layout"
)

// hesitateAfter is how long the learner can sit on a question before a
// correct answer is fed to the scheduler as hesitant recall.
const hesitateAfter = 8 * time.Second

// questionKind selects the input surface for the current question.
type questionKind int

const (
	kindSingle questionKind = iota
	kindMulti
	kindBool
)

// QuizScreen runs one quiz session.
type QuizScreen struct {
	eng  *engine.Engine
	cfg  engine.SessionConfig
	quiz *quiz.Session

	kind   questionKind
	single components.OptionList
	multi  components.SelectList

	deadline      time.Time // quick-fire only
	timerGen      int
	questionStart time.Time

	showingFeedback    bool
	showingQuitConfirm bool
	lastCorrect        bool
	lastTimedOut       bool

	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen; the session is assembled in Init.
func New(eng *engine.Engine, cfg engine.SessionConfig) *QuizScreen {
	return &QuizScreen{eng: eng, cfg: cfg}
}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return sessionReadyMsg{Quiz: s.eng.StartSession(s.cfg)}
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	switch s.kind {
	case kindBool:
		return []layout.KeyHint{
			{Key: "T/F", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case kindMulti:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	s.quiz = msg.Quiz
	if s.quiz.Len() == 0 {
		s.errMsg = "No questions could be generated. Try enabling more modes or widening the category focus."
		return s, nil
	}
	return s, s.setupQuestion()
}

// setupQuestion prepares the input surface for the current question
// and, for quick-fire, starts the countdown.
func (s *QuizScreen) setupQuestion() tea.Cmd {
	q, ok := s.quiz.Current()
	if !ok {
		return func() tea.Msg { return sessionEndMsg{} }
	}

	s.questionStart = time.Now()
	s.timerGen++

	switch v := q.(type) {
	case *quiz.CategoryMatchQuestion:
		s.kind = kindSingle
		s.single = components.NewOptionList(styleOptions(v.Options))
	case *quiz.DescriptionMatchQuestion:
		s.kind = kindSingle
		s.single = components.NewOptionList(styleOptions(v.Options))
	case *quiz.WineSelectionQuestion:
		s.kind = kindMulti
		s.multi = components.NewSelectList(wineOptions(v.Options, false))
	case *quiz.OddOneOutQuestion:
		s.kind = kindSingle
		s.single = components.NewOptionList(wineOptions(v.Options, true))
	case *quiz.OriginMatchQuestion:
		s.kind = kindSingle
		s.single = components.NewOptionList(originOptions(v.Options))
	case *quiz.QuickFireQuestion:
		s.kind = kindBool
		s.deadline = s.questionStart.Add(v.TimeLimit)
		return tickCmd(s.timerGen)
	}

	return nil
}

func styleOptions(in []quiz.StyleOption) []components.Option {
	out := make([]components.Option, len(in))
	for i, o := range in {
		out[i] = components.Option{Label: o.Name, Correct: o.Correct}
	}
	return out
}

func wineOptions(in []quiz.WineOption, withStyle bool) []components.Option {
	out := make([]components.Option, len(in))
	for i, o := range in {
		opt := components.Option{Label: o.Name, Correct: o.Correct}
		if withStyle {
			opt.Detail = o.Origin
		}
		out[i] = opt
	}
	return out
}

func originOptions(in []quiz.OriginOption) []components.Option {
	out := make([]components.Option, len(in))
	for i, o := range in {
		out[i] = components.Option{Label: o.Origin, Correct: o.Correct}
	}
	return out
}

func (s *QuizScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.timerGen || s.kind != kindBool || s.showingFeedback || s.quiz == nil {
		return s, nil
	}
	if s.showingQuitConfirm {
		// Countdown keeps running behind the dialog.
		return s, tickCmd(s.timerGen)
	}
	if !msg.At.Before(s.deadline) {
		return s.submit(quiz.BoolAnswer{Value: false, TimedOut: true})
	}
	return s, tickCmd(s.timerGen)
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quiz == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.timerGen++
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		if s.quiz.Done() {
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		return s, s.setupQuestion()
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	switch s.kind {
	case kindBool:
		switch key {
		case "t", "T", "y", "Y", "left":
			return s.submit(quiz.BoolAnswer{Value: true})
		case "f", "F", "n", "N", "right":
			return s.submit(quiz.BoolAnswer{Value: false})
		}

	case kindMulti:
		var submitted bool
		s.multi, submitted = s.multi.Update(msg)
		if submitted {
			return s.submit(quiz.SelectionAnswer{Names: s.multi.CheckedLabels()})
		}

	case kindSingle:
		var submitted bool
		s.single, submitted = s.single.Update(msg)
		if submitted {
			opt, ok := s.single.ChosenOption()
			if !ok {
				return s, nil
			}
			return s.submit(s.choiceAnswer(opt.Label))
		}
	}

	return s, nil
}

// choiceAnswer maps the chosen label back to the id the question
// grades on: style options grade by id, the rest by label.
func (s *QuizScreen) choiceAnswer(label string) quiz.Answer {
	q, _ := s.quiz.Current()
	switch v := q.(type) {
	case *quiz.CategoryMatchQuestion:
		for _, o := range v.Options {
			if o.Name == label {
				return quiz.ChoiceAnswer{ID: o.ID}
			}
		}
	case *quiz.DescriptionMatchQuestion:
		for _, o := range v.Options {
			if o.Name == label {
				return quiz.ChoiceAnswer{ID: o.ID}
			}
		}
	}
	return quiz.ChoiceAnswer{ID: label}
}

func (s *QuizScreen) submit(a quiz.Answer) (screen.Screen, tea.Cmd) {
	hesitated := time.Since(s.questionStart) > hesitateAfter

	correct, err := s.eng.SubmitAnswer(s.quiz, a, hesitated)
	if err != nil {
		return s, nil
	}

	s.timerGen++ // cancel any running countdown
	s.lastCorrect = correct
	ba, isBool := a.(quiz.BoolAnswer)
	s.lastTimedOut = isBool && ba.TimedOut
	s.showingFeedback = true

	// Mark components submitted so the reveal colors render.
	switch s.kind {
	case kindSingle:
		if !s.single.Submitted {
			s.single.Submitted = true
		}
	case kindMulti:
		s.multi.Submitted = true
	}

	return s, nil
}

func (s *QuizScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	qz := s.quiz
	eng := s.eng
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(qz, eng),
		}
	}
}

// tickCmd schedules the next countdown tick.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return timerTickMsg{Gen: gen, At: t}
	})
}
