// Package progress owns the learner's persisted state: per-wine and
// per-style answer tallies, spaced-repetition scheduling fields, the
// daily streak, settings, and aggregate counters. The Store is the
// only writer; everything else reads.
package progress

import "time"

// StudyStatus is the learner's manual mark on a wine in study mode.
type StudyStatus string

const (
	StudyNone       StudyStatus = ""
	StudyKnown      StudyStatus = "known"
	StudyNeedsStudy StudyStatus = "needs-study"
)

// Spaced-repetition defaults for newly created item records.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// DateLayout is the calendar-day format used for streak arithmetic.
const DateLayout = "2006-01-02"

// ItemProgress tracks one wine, keyed by wine name.
type ItemProgress struct {
	TimesCorrect   int         `json:"timesCorrect"`
	TimesIncorrect int         `json:"timesIncorrect"`
	LastSeen       *time.Time  `json:"lastSeen"`
	NextReview     *time.Time  `json:"nextReview"`
	EaseFactor     float64     `json:"easeFactor"`
	Interval       int         `json:"interval"`
	StudyStatus    StudyStatus `json:"studyStatus,omitempty"`
}

// Attempts returns the total number of recorded answers.
func (p *ItemProgress) Attempts() int {
	return p.TimesCorrect + p.TimesIncorrect
}

// CategoryProgress tracks one style, keyed by style id.
type CategoryProgress struct {
	TimesCorrect   int `json:"timesCorrect"`
	TimesIncorrect int `json:"timesIncorrect"`
}

// StreakState tracks consecutive active calendar days.
type StreakState struct {
	CurrentStreak  int    `json:"currentStreak"`
	LongestStreak  int    `json:"longestStreak"`
	LastActiveDate string `json:"lastActiveDate"` // DateLayout, empty when never active
}

// Settings holds learner preferences.
type Settings struct {
	EnabledModes        []string `json:"enabledModes"`
	FocusCategories     []string `json:"focusCategories"`
	Difficulty          string   `json:"difficulty"`
	QuestionsPerSession int      `json:"questionsPerSession"`
	DarkMode            bool     `json:"darkMode"`
}

// AggregateStats holds lifetime counters.
type AggregateStats struct {
	TotalSessions  int `json:"totalSessions"`
	TotalQuestions int `json:"totalQuestions"`
}

// Snapshot is the single unit of persistence, export, and import.
type Snapshot struct {
	ItemProgress     map[string]*ItemProgress     `json:"itemProgress"`
	CategoryProgress map[string]*CategoryProgress `json:"categoryProgress"`
	Streak           StreakState                  `json:"streak"`
	Settings         Settings                     `json:"settings"`
	Stats            AggregateStats               `json:"stats"`
}

// DefaultModes lists every question mode, the default enabled set.
var DefaultModes = []string{
	"category-match",
	"wine-selection",
	"quick-fire",
	"description-match",
	"odd-one-out",
	"origin-match",
}

// DefaultSnapshot returns the structurally complete default state.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		ItemProgress:     make(map[string]*ItemProgress),
		CategoryProgress: make(map[string]*CategoryProgress),
		Streak:           StreakState{},
		Settings: Settings{
			EnabledModes:        append([]string(nil), DefaultModes...),
			FocusCategories:     []string{},
			Difficulty:          "medium",
			QuestionsPerSession: 10,
			DarkMode:            false,
		},
		Stats: AggregateStats{},
	}
}

// newItemProgress returns the record created on first answer or first
// manual study mark.
func newItemProgress() *ItemProgress {
	return &ItemProgress{
		EaseFactor: DefaultEaseFactor,
		Interval:   0,
	}
}
