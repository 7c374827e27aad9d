package schedule

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestQuality(t *testing.T) {
	tests := []struct {
		correct, hesitated bool
		want               int
	}{
		{false, false, 1},
		{false, true, 1},
		{true, true, 4},
		{true, false, 5},
	}
	for _, tt := range tests {
		if got := Quality(tt.correct, tt.hesitated); got != tt.want {
			t.Errorf("Quality(%v, %v) = %d, want %d", tt.correct, tt.hesitated, got, tt.want)
		}
	}
}

// Perfect answers from a fresh item walk the 1, 6, round(6*ef), ...
// progression with strictly non-decreasing intervals and an ease
// factor that never drops below the floor.
func TestNext_PerfectProgression(t *testing.T) {
	interval := 0
	ease := DefaultEaseFactor

	var intervals []int
	for range 6 {
		r := Next(QualityPerfect, interval, ease, now)
		if r.EaseFactor < MinEaseFactor {
			t.Fatalf("ease factor %v below floor", r.EaseFactor)
		}
		if r.Interval < interval {
			t.Fatalf("interval decreased: %d after %d", r.Interval, interval)
		}
		wantNext := now.AddDate(0, 0, r.Interval)
		if !r.NextReview.Equal(wantNext) {
			t.Fatalf("nextReview = %v, want %v", r.NextReview, wantNext)
		}
		intervals = append(intervals, r.Interval)
		interval, ease = r.Interval, r.EaseFactor
	}

	if intervals[0] != 1 || intervals[1] != 6 {
		t.Fatalf("progression start = %v, want [1 6 ...]", intervals[:2])
	}
	// Third interval is round(6 * ease') where ease' has grown by 0.1
	// on each of the three perfect answers: round(6 * 2.8).
	if intervals[2] != 17 {
		t.Fatalf("third interval = %d, want 17", intervals[2])
	}
}

// Any failing quality resets interval and ease regardless of history.
func TestNext_FailureResets(t *testing.T) {
	for _, q := range []int{0, 1, 2} {
		r := Next(q, 120, 1.9, now)
		if r.Interval != 1 {
			t.Errorf("quality %d: interval = %d, want 1", q, r.Interval)
		}
		if r.EaseFactor != DefaultEaseFactor {
			t.Errorf("quality %d: ease = %v, want %v", q, r.EaseFactor, DefaultEaseFactor)
		}
	}
}

func TestNext_HesitationGrowsSlower(t *testing.T) {
	perfect := Next(QualityPerfect, 10, 2.5, now)
	hesitant := Next(QualityHesitated, 10, 2.5, now)
	if hesitant.EaseFactor >= perfect.EaseFactor {
		t.Fatalf("hesitated ease %v not below perfect ease %v", hesitant.EaseFactor, perfect.EaseFactor)
	}
	if hesitant.Interval > perfect.Interval {
		t.Fatalf("hesitated interval %d exceeds perfect %d", hesitant.Interval, perfect.Interval)
	}
}

func TestNext_EaseFloor(t *testing.T) {
	// Quality 3 shrinks ease by 0.14; from the floor it must not sink.
	r := Next(3, 2, MinEaseFactor, now)
	if r.EaseFactor != MinEaseFactor {
		t.Fatalf("ease = %v, want floor %v", r.EaseFactor, MinEaseFactor)
	}
}

func TestNext_ClampsQuality(t *testing.T) {
	low := Next(-3, 5, 2.5, now)
	if low.Interval != 1 || low.EaseFactor != DefaultEaseFactor {
		t.Fatalf("quality below range not treated as failure: %+v", low)
	}
	high := Next(9, 0, 2.5, now)
	if high.Interval != 1 {
		t.Fatalf("quality above range: interval = %d, want 1", high.Interval)
	}
}
