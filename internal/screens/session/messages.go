package session

import (
	"time"

	"github.com/tzehon/somm/internal/quiz"
)

// sessionReadyMsg is sent when the question set has been assembled.
type sessionReadyMsg struct {
	Quiz *quiz.Session
}

// timerTickMsg drives the quick-fire countdown. Gen guards against
// stale ticks from a question that has already been answered.
type timerTickMsg struct {
	Gen int
	At  time.Time
}

// sessionEndMsg triggers the hand-off to the summary screen.
type sessionEndMsg struct{}
