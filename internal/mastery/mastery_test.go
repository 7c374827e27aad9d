package mastery

import (
	"testing"
	"time"

	"github.com/tzehon/somm/internal/progress"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name               string
		correct, incorrect int
		want               int
	}{
		{"no attempts", 0, 0, 0},
		{"one correct", 1, 0, 20},
		{"one incorrect", 0, 1, 0},
		{"perfect at confidence floor", 5, 0, 100},
		{"perfect beyond floor", 12, 0, 100},
		{"half accuracy damped", 1, 1, 20}, // 0.5 * 0.4 * 100
		{"half accuracy full conf", 5, 5, 50},
		{"four of five", 4, 1, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.correct, tt.incorrect); got != tt.want {
				t.Errorf("Score(%d, %d) = %d, want %d", tt.correct, tt.incorrect, got, tt.want)
			}
		})
	}
}

// Below the attempt floor, confidence must strictly dampen the score.
func TestScore_ConfidenceDampens(t *testing.T) {
	for correct := 1; correct < MinAttempts; correct++ {
		for incorrect := 0; correct+incorrect < MinAttempts; incorrect++ {
			total := correct + incorrect
			accuracyPct := float64(correct) / float64(total) * 100
			if got := float64(Score(correct, incorrect)); got >= accuracyPct {
				t.Errorf("Score(%d, %d) = %.0f, not damped below accuracy %.1f", correct, incorrect, got, accuracyPct)
			}
		}
	}
}

// More attempts at fixed accuracy must never lower the score while
// below the confidence floor.
func TestScore_MonotonicInAttempts(t *testing.T) {
	prev := Score(1, 1)
	for n := 2; n <= MinAttempts; n++ {
		cur := Score(n, n)
		if cur < prev {
			t.Fatalf("Score(%d,%d) = %d dropped below Score for fewer attempts (%d)", n, n, cur, prev)
		}
		prev = cur
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  Level
	}{
		{0, LevelNew},
		{24, LevelNew},
		{25, LevelBeginner},
		{49, LevelBeginner},
		{50, LevelLearning},
		{69, LevelLearning},
		{70, LevelProficient},
		{89, LevelProficient},
		{90, LevelMaster},
		{100, LevelMaster},
	}
	for _, tt := range tests {
		if got := LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestOverall(t *testing.T) {
	items := map[string]*progress.ItemProgress{
		"a": {TimesCorrect: 3, TimesIncorrect: 0},
		"b": {TimesCorrect: 2, TimesIncorrect: 5},
	}
	// Aggregate 5/10 at full confidence.
	if got := Overall(items); got != 50 {
		t.Fatalf("Overall = %d, want 50", got)
	}
	if got := Overall(nil); got != 0 {
		t.Fatalf("Overall(nil) = %d, want 0", got)
	}
}

func TestDueForReview(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	items := map[string]*progress.ItemProgress{
		"overdue":     {NextReview: &past},
		"exactly now": {NextReview: &now},
		"not yet":     {NextReview: &future},
		"unscheduled": {TimesCorrect: 1},
	}

	got := DueForReview(items, now)
	want := []string{"exactly now", "overdue"}
	if len(got) != len(want) {
		t.Fatalf("DueForReview = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DueForReview = %v, want %v", got, want)
		}
	}
}

func TestLearned(t *testing.T) {
	items := map[string]*progress.ItemProgress{
		"known":       {TimesCorrect: 2, TimesIncorrect: 4},
		"never right": {TimesIncorrect: 3},
		"untouched":   {},
	}
	if got := Learned(items); got != 1 {
		t.Fatalf("Learned = %d, want 1", got)
	}
}
