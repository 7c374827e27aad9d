package quiz

import (
	"errors"
	"testing"

	"github.com/tzehon/somm/internal/random"
)

// answerFor returns a correct answer for any question variant,
// exercising the grading path without caring about the mode mix.
func answerFor(t *testing.T, q Question) Answer {
	t.Helper()
	switch v := q.(type) {
	case *CategoryMatchQuestion:
		return ChoiceAnswer{ID: v.CorrectID}
	case *WineSelectionQuestion:
		return SelectionAnswer{Names: v.CorrectNames}
	case *QuickFireQuestion:
		return BoolAnswer{Value: v.IsTrue}
	case *DescriptionMatchQuestion:
		return ChoiceAnswer{ID: v.CorrectID}
	case *OddOneOutQuestion:
		return ChoiceAnswer{ID: v.OddWine}
	case *OriginMatchQuestion:
		return ChoiceAnswer{ID: v.CorrectOrigins[0]}
	default:
		t.Fatalf("unhandled question type %T", q)
		return nil
	}
}

func TestNewSession_FullRun(t *testing.T) {
	g, _, _ := testGenerator(11)
	sampler := random.NewSeeded(11)

	s := NewSession(g, sampler, AllModes, nil, 10, DifficultyMedium)
	if s.Len() == 0 {
		t.Fatal("session over the full catalog produced no questions")
	}
	if s.Len() > 10 {
		t.Fatalf("session has %d questions, requested 10", s.Len())
	}

	for !s.Done() {
		q, ok := s.Current()
		if !ok {
			t.Fatal("Current returned nothing before Done")
		}
		pos := s.Position()
		correct, err := s.Submit(answerFor(t, q))
		if err != nil {
			t.Fatalf("submit at position %d: %v", pos, err)
		}
		if !correct {
			t.Fatalf("correct answer for %s graded wrong at position %d", q.Mode(), pos)
		}
	}

	if s.Score() != s.Len() {
		t.Fatalf("score = %d after %d correct answers", s.Score(), s.Len())
	}
	if len(s.Answers()) != s.Len() {
		t.Fatalf("answer records = %d, want %d", len(s.Answers()), s.Len())
	}

	_, err := s.Submit(BoolAnswer{Value: true})
	if !errors.Is(err, ErrSessionComplete) {
		t.Fatalf("submit past the end: got %v, want ErrSessionComplete", err)
	}
}

func TestNewSession_EmptyInputs(t *testing.T) {
	g, _, _ := testGenerator(1)
	sampler := random.NewSeeded(1)

	if s := NewSession(g, sampler, nil, nil, 10, DifficultyMedium); s.Len() != 0 {
		t.Fatalf("no modes: got %d questions", s.Len())
	}
	if s := NewSession(g, sampler, AllModes, nil, 0, DifficultyMedium); s.Len() != 0 {
		t.Fatalf("zero count: got %d questions", s.Len())
	}
	if s := NewSession(g, sampler, AllModes, []string{"no-such-style"}, 10, DifficultyMedium); s.Len() != 0 {
		t.Fatalf("empty pool: got %d questions", s.Len())
	}
}

// A category focus that starves a strategy shortens the session
// instead of failing it.
func TestNewSession_SkipsUngenerableSlots(t *testing.T) {
	g, _, _ := testGenerator(5)
	sampler := random.NewSeeded(5)

	// The dessert style has one wine, so odd-one-out can never find a
	// three-wine main style within the focus.
	s := NewSession(g, sampler, []Mode{ModeOddOneOut}, []string{"dessert"}, 5, DifficultyMedium)
	if s.Len() != 0 {
		t.Fatalf("got %d questions, want 0 when the only mode cannot generate", s.Len())
	}

	// Mixing in a workable mode yields a shorter, non-empty session.
	s = NewSession(g, sampler, []Mode{ModeOddOneOut, ModeCategoryMatch}, []string{"dessert"}, 6, DifficultyMedium)
	if s.Len() == 0 || s.Len() >= 6 {
		t.Fatalf("got %d questions, want between 1 and 5", s.Len())
	}
	for _, q := range s.Questions {
		if q.Mode() != ModeCategoryMatch {
			t.Fatalf("unexpected %s question in a dessert-focused session", q.Mode())
		}
	}
}

func TestSession_WrongAnswerTypeKeepsPosition(t *testing.T) {
	g, _, _ := testGenerator(4)
	sampler := random.NewSeeded(4)

	s := NewSession(g, sampler, []Mode{ModeCategoryMatch}, nil, 3, DifficultyEasy)
	if s.Len() == 0 {
		t.Fatal("no questions generated")
	}

	before := s.Position()
	_, err := s.Submit(BoolAnswer{Value: true})
	if !errors.Is(err, ErrWrongAnswerType) {
		t.Fatalf("got %v, want ErrWrongAnswerType", err)
	}
	if s.Position() != before || s.Score() != 0 || len(s.Answers()) != 0 {
		t.Fatal("rejected answer must not advance, score, or record")
	}
}

func TestSession_IDsAreUnique(t *testing.T) {
	g, _, _ := testGenerator(6)
	a := NewSession(g, random.NewSeeded(6), AllModes, nil, 2, DifficultyMedium)
	b := NewSession(g, random.NewSeeded(6), AllModes, nil, 2, DifficultyMedium)
	if a.ID == b.ID {
		t.Fatal("two sessions share an id")
	}
}
