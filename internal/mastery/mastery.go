// Package mastery turns raw answer tallies into confidence-weighted
// retention scores. Everything here is a pure read-side view over
// progress data; nothing mutates state.
package mastery

import (
	"math"
	"sort"
	"time"

	"github.com/tzehon/somm/internal/progress"
)

// MinAttempts is the number of observations needed before accuracy is
// trusted at full weight.
const MinAttempts = 5

// Level is a qualitative mastery label.
type Level string

const (
	LevelNew        Level = "New"
	LevelBeginner   Level = "Beginner"
	LevelLearning   Level = "Learning"
	LevelProficient Level = "Proficient"
	LevelMaster     Level = "Master"
)

// Score returns a mastery percentage in [0,100]: accuracy damped by a
// confidence factor that reaches 1 only after MinAttempts answers.
func Score(correct, incorrect int) int {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	accuracy := float64(correct) / float64(total)
	confidence := math.Min(1, float64(total)/MinAttempts)
	return int(math.Round(accuracy * confidence * 100))
}

// LevelFor maps a score to its label.
func LevelFor(score int) Level {
	switch {
	case score >= 90:
		return LevelMaster
	case score >= 70:
		return LevelProficient
	case score >= 50:
		return LevelLearning
	case score >= 25:
		return LevelBeginner
	default:
		return LevelNew
	}
}

// Overall sums every item's tallies and scores the aggregate.
func Overall(items map[string]*progress.ItemProgress) int {
	var correct, incorrect int
	for _, ip := range items {
		correct += ip.TimesCorrect
		incorrect += ip.TimesIncorrect
	}
	return Score(correct, incorrect)
}

// Category scores a single category's tallies.
func Category(cp *progress.CategoryProgress) int {
	if cp == nil {
		return 0
	}
	return Score(cp.TimesCorrect, cp.TimesIncorrect)
}

// DueForReview returns, sorted by name, the items whose scheduled
// review time has passed.
func DueForReview(items map[string]*progress.ItemProgress, now time.Time) []string {
	var due []string
	for name, ip := range items {
		if ip.NextReview != nil && !ip.NextReview.After(now) {
			due = append(due, name)
		}
	}
	sort.Strings(due)
	return due
}

// Learned counts items answered correctly at least once.
func Learned(items map[string]*progress.ItemProgress) int {
	n := 0
	for _, ip := range items {
		if ip.TimesCorrect > 0 {
			n++
		}
	}
	return n
}
