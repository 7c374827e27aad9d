package quiz

import (
	"errors"

	"github.com/google/uuid"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/random"
)

// ErrSessionComplete is returned by Submit once every question has
// been answered.
var ErrSessionComplete = errors.New("quiz: session already complete")

// AnswerRecord captures one graded answer for the results surface.
type AnswerRecord struct {
	Question Question
	Answer   Answer
	Correct  bool
}

// Session holds an ordered sequence of generated questions and the
// learner's answers. Sessions are assembled once and never regenerate
// questions.
type Session struct {
	ID        uuid.UUID
	Questions []Question

	index   int
	score   int
	answers []AnswerRecord
}

// NewSession generates up to count questions by iterating a shuffled
// cycle of the enabled modes. A strategy that cannot generate for a
// slot is skipped, so the session may hold fewer than count questions;
// callers must not assume the exact count.
func NewSession(g *Generator, sampler *random.Sampler, modes []Mode, categories []string, count int, difficulty Difficulty) *Session {
	s := &Session{ID: uuid.New()}
	if len(modes) == 0 || count <= 0 {
		return s
	}

	filtered := g.cat.FilterStyles(categories)
	pool := catalog.Items(filtered)
	if len(pool) == 0 {
		return s
	}

	optionCount := difficulty.OptionCount()
	cycle := random.Shuffle(sampler, modes)

	var questions []Question
	for i := 0; i < count; i++ {
		mode := cycle[i%len(cycle)]
		q, err := g.Generate(mode, pool, filtered, optionCount)
		if err != nil {
			continue // cannot generate this slot; session ends shorter
		}
		questions = append(questions, q)
	}

	s.Questions = random.Shuffle(sampler, questions)
	return s
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.Questions)
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.index >= len(s.Questions)
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (Question, bool) {
	if s.Done() {
		return nil, false
	}
	return s.Questions[s.index], true
}

// Position returns the 1-based index of the current question.
func (s *Session) Position() int {
	if s.Done() {
		return len(s.Questions)
	}
	return s.index + 1
}

// Submit grades the current question and advances. It returns the
// grading outcome; ErrWrongAnswerType leaves the session position
// unchanged.
func (s *Session) Submit(a Answer) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrSessionComplete
	}
	correct, err := q.Check(a)
	if err != nil {
		return false, err
	}
	if correct {
		s.score++
	}
	s.answers = append(s.answers, AnswerRecord{Question: q, Answer: a, Correct: correct})
	s.index++
	return correct, nil
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Answers returns the graded answers in submission order.
func (s *Session) Answers() []AnswerRecord {
	return s.answers
}
