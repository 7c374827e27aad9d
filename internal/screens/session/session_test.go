package session

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/progress"
	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/random"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/screens/summary"
)

func fixtureCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Version: "1.0.0",
		Styles: []catalog.Style{
			{
				ID: "aromatic-white", Name: "Aromatic White Wine", Color: "#F4E285",
				Description: "Perfumed whites with bright acidity.",
				Wines: []catalog.Wine{
					{Name: "Albariño", Origin: "Spain / Portugal"},
					{Name: "Riesling", Origin: "Germany"},
					{Name: "Grüner Veltliner", Origin: "Austria"},
				},
			},
			{
				ID: "bold-red", Name: "Bold Red Wine", Color: "#722F37",
				Description: "Full-bodied reds with firm tannin.",
				Wines: []catalog.Wine{
					{Name: "Cabernet Sauvignon", Origin: "France"},
					{Name: "Malbec", Origin: "Argentina"},
					{Name: "Syrah", Origin: "France"},
				},
			},
			{
				ID: "sparkling", Name: "Sparkling Wine", Color: "#F7F0C8",
				Description: "Wines with bubbles.",
				Wines: []catalog.Wine{
					{Name: "Champagne", Origin: "France"},
					{Name: "Prosecco", Origin: "Italy"},
					{Name: "Cava", Origin: "Spain"},
				},
			},
			{
				ID: "dessert", Name: "Dessert Wine", Color: "#B87333",
				Description: "Sweet and fortified.",
				Wines: []catalog.Wine{
					{Name: "Port", Origin: "Portugal"},
				},
			},
		},
	}
}

func testEngine() *engine.Engine {
	store := progress.NewStore(progress.NewMemoryBackend())
	return engine.New(fixtureCatalog(), store, engine.WithSampler(random.NewSeeded(42)))
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// readyScreen runs Init and feeds the resulting message back in, the way
// the program loop would.
func readyScreen(t *testing.T, cfg engine.SessionConfig) *QuizScreen {
	t.Helper()
	s := New(testEngine(), cfg)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init must return a command")
	}
	scr, _ := s.Update(cmd())
	return scr.(*QuizScreen)
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(testEngine(), engine.SessionConfig{})
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_View_Loading(t *testing.T) {
	s := New(testEngine(), engine.SessionConfig{})
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view before the session is ready")
	}
}

func TestQuizScreen_ReadyShowsQuestion(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"category-match"}, Count: 2})
	if s.quiz == nil || s.quiz.Len() == 0 {
		t.Fatal("expected a populated session")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}
}

// Odd-one-out needs a second style to draw the odd wine from, so a
// dessert-only focus cannot produce a single question.
func TestQuizScreen_EmptySessionShowsError(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{
		Modes:      []string{"odd-one-out"},
		Categories: []string{"dessert"},
		Count:      3,
	})
	if s.errMsg == "" {
		t.Fatal("expected an error message for an ungenerable session")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("expected a command on key press in error state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected the error state to pop back")
	}
}

func TestQuizScreen_SubmitShowsFeedback(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"category-match"}, Count: 1})

	var scr screen.Screen
	scr, _ = s.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuizScreen)

	if !s.showingFeedback {
		t.Fatal("expected feedback after submitting")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty feedback view")
	}
	if len(s.quiz.Answers()) != 1 {
		t.Errorf("recorded answers = %d, want 1", len(s.quiz.Answers()))
	}
}

func TestQuizScreen_FeedbackDismissEndsSession(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"category-match"}, Count: 1})

	var scr screen.Screen
	scr, _ = s.Update(specialKey(tea.KeyEnter))
	s = scr.(*QuizScreen)

	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a command dismissing feedback on the last question")
	}
	msg := cmd()
	if _, ok := msg.(sessionEndMsg); !ok {
		t.Fatalf("expected sessionEndMsg, got %T", msg)
	}

	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("expected a command handling session end")
	}
	rep, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected the session screen to be replaced")
	}
	if _, ok := rep.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected a summary screen, got %T", rep.Screen)
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"category-match"}, Count: 2})

	var scr screen.Screen
	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*QuizScreen)
	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation after Esc")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "End this session early?") || !strings.Contains(view, "Keep going") {
		t.Error("expected the quit dialog with its buttons")
	}

	scr, _ = s.Update(keyPress('n'))
	s = scr.(*QuizScreen)
	if s.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed by N")
	}
}

func TestQuizScreen_QuitConfirm_Yes(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"category-match"}, Count: 2})

	var scr screen.Screen
	scr, _ = s.Update(specialKey(tea.KeyEscape))
	s = scr.(*QuizScreen)

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected quitting to end the session")
	}
}

func TestQuizScreen_QuickFireTimeout(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"quick-fire"}, Count: 1})
	if s.kind != kindBool {
		t.Fatalf("expected a true/false question, kind = %d", s.kind)
	}

	tick := timerTickMsg{Gen: s.timerGen, At: s.deadline.Add(time.Second)}
	var scr screen.Screen
	scr, _ = s.Update(tick)
	s = scr.(*QuizScreen)

	if !s.showingFeedback {
		t.Fatal("expected feedback after the countdown runs out")
	}
	if !s.lastTimedOut {
		t.Error("expected the answer to be marked as timed out")
	}
	rec := s.quiz.Answers()[0]
	ba, ok := rec.Answer.(quiz.BoolAnswer)
	if !ok || !ba.TimedOut {
		t.Error("expected a timed-out false guess on the record")
	}
}

func TestQuizScreen_StaleTimerTickIgnored(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"quick-fire"}, Count: 1})

	stale := timerTickMsg{Gen: s.timerGen - 1, At: s.deadline.Add(time.Minute)}
	var scr screen.Screen
	scr, _ = s.Update(stale)
	s = scr.(*QuizScreen)

	if s.showingFeedback {
		t.Error("a stale tick must not submit the question")
	}
}

func TestQuizScreen_TrueFalseKeys(t *testing.T) {
	s := readyScreen(t, engine.SessionConfig{Modes: []string{"quick-fire"}, Count: 1})

	var scr screen.Screen
	scr, _ = s.Update(keyPress('t'))
	s = scr.(*QuizScreen)

	if !s.showingFeedback {
		t.Fatal("expected feedback after answering True")
	}
	rec := s.quiz.Answers()[0]
	ba, ok := rec.Answer.(quiz.BoolAnswer)
	if !ok || !ba.Value || ba.TimedOut {
		t.Errorf("expected a plain true answer, got %#v", rec.Answer)
	}
}
