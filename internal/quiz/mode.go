// Package quiz synthesizes question instances from the catalog under
// sampling constraints, assembles them into sessions, and grades
// answers. Six independent strategies share one policy: the correct
// answer is always among the options, distractors are sampled without
// replacement, and the final option order is shuffled.
package quiz

import "fmt"

// Mode identifies a question generation strategy.
type Mode string

const (
	ModeCategoryMatch    Mode = "category-match"
	ModeWineSelection    Mode = "wine-selection"
	ModeQuickFire        Mode = "quick-fire"
	ModeDescriptionMatch Mode = "description-match"
	ModeOddOneOut        Mode = "odd-one-out"
	ModeOriginMatch      Mode = "origin-match"
)

// AllModes lists every mode in presentation order.
var AllModes = []Mode{
	ModeCategoryMatch,
	ModeWineSelection,
	ModeQuickFire,
	ModeDescriptionMatch,
	ModeOddOneOut,
	ModeOriginMatch,
}

// ParseMode validates a mode id.
func ParseMode(s string) (Mode, error) {
	for _, m := range AllModes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("quiz: unknown mode %q", s)
}

// Label returns the mode's display name.
func (m Mode) Label() string {
	switch m {
	case ModeCategoryMatch:
		return "Category Match"
	case ModeWineSelection:
		return "Wine Selection"
	case ModeQuickFire:
		return "Quick Fire"
	case ModeDescriptionMatch:
		return "Description Match"
	case ModeOddOneOut:
		return "Odd One Out"
	case ModeOriginMatch:
		return "Origin Match"
	default:
		return string(m)
	}
}

// Difficulty controls how many options a question presents.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// OptionCount returns the option count for the difficulty. Unknown
// values fall back to medium.
func (d Difficulty) OptionCount() int {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return 5
	default:
		return 4
	}
}
