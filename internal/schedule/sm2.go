// Package schedule computes when each wine should resurface, using an
// SM-2 style update, and builds the priority-ordered review queue.
package schedule

import (
	"math"
	"time"
)

// Quality ratings on the SM-2 scale:
// 0 blackout .. 2 incorrect, 3 correct with difficulty,
// 4 correct after hesitation, 5 perfect.
const (
	QualityIncorrect = 1
	QualityHesitated = 4
	QualityPerfect   = 5
)

const (
	MinEaseFactor     = 1.3
	DefaultEaseFactor = 2.5
)

// Result is the scheduler's output for one answer, applied to the
// progress store via ApplySchedule.
type Result struct {
	Interval   int // days
	EaseFactor float64
	NextReview time.Time
}

// Quality maps an answer outcome to its SM-2 quality rating.
// Hesitation detection is an external collaborator concern; callers
// without one pass hesitated=false.
func Quality(isCorrect, hesitated bool) int {
	if !isCorrect {
		return QualityIncorrect
	}
	if hesitated {
		return QualityHesitated
	}
	return QualityPerfect
}

// Next computes the updated interval, ease factor, and next review
// time. A failing quality (< 3) resets the interval to 1 day and the
// ease factor to its default; otherwise the interval follows the
// 1, 6, round(prev x ease) progression with the ease floor applied.
func Next(quality, prevInterval int, easeFactor float64, now time.Time) Result {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	q := float64(quality)
	ease := easeFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var interval int
	switch {
	case quality < 3:
		interval = 1
		ease = DefaultEaseFactor
	case prevInterval == 0:
		interval = 1
	case prevInterval == 1:
		interval = 6
	default:
		interval = int(math.Round(float64(prevInterval) * ease))
	}

	return Result{
		Interval:   interval,
		EaseFactor: ease,
		NextReview: now.AddDate(0, 0, interval),
	}
}
