package schedule

import (
	"testing"
	"time"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/progress"
)

func item(name string) catalog.Item {
	return catalog.Item{Name: name, StyleID: "s"}
}

func reviewAt(t time.Time) *time.Time {
	return &t
}

func TestBuildQueue_PartitionAndOrder(t *testing.T) {
	qnow := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	items := []catalog.Item{
		item("fresh"),
		item("overdue ten"),
		item("overdue two"),
		item("answered unscheduled"),
		item("future"),
	}
	prog := map[string]*progress.ItemProgress{
		"overdue ten":          {TimesCorrect: 1, NextReview: reviewAt(qnow.AddDate(0, 0, -10))},
		"overdue two":          {TimesCorrect: 1, NextReview: reviewAt(qnow.AddDate(0, 0, -2))},
		"answered unscheduled": {TimesIncorrect: 1},
		"future":               {TimesCorrect: 3, NextReview: reviewAt(qnow.AddDate(0, 0, 4))},
	}

	q := BuildQueue(items, prog, qnow)

	var names []string
	for _, e := range q.Entries() {
		names = append(names, e.Item.Name)
	}
	want := []string{"overdue ten", "overdue two", "answered unscheduled", "fresh", "future"}
	if len(names) != len(want) {
		t.Fatalf("queue = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("queue = %v, want %v", names, want)
		}
	}

	stats := q.Stats()
	if stats.Due != 3 || stats.New != 1 || stats.Mastered != 1 || stats.Total != 5 {
		t.Fatalf("stats = %+v", stats)
	}

	// Partition sanity: every due entry before every new entry, every
	// new before every mastered.
	lastDue, firstMastered := -1, -1
	for i, e := range q.Entries() {
		switch e.Priority {
		case PriorityDue:
			lastDue = i
		case PriorityMastered:
			if firstMastered == -1 {
				firstMastered = i
			}
		}
	}
	if lastDue >= firstMastered {
		t.Fatalf("due entry at %d after mastered entry at %d", lastDue, firstMastered)
	}
}

func TestBuildQueue_OverdueDays(t *testing.T) {
	qnow := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	halfDayAgo := qnow.Add(-12 * time.Hour)

	items := []catalog.Item{item("a")}
	prog := map[string]*progress.ItemProgress{
		"a": {TimesCorrect: 1, NextReview: &halfDayAgo},
	}

	q := BuildQueue(items, prog, qnow)
	if got := q.Entries()[0].OverdueDays; got != 0 {
		t.Fatalf("overdue by half a day floors to %d, want 0", got)
	}
}

func TestBuildQueue_TieBreakIsStable(t *testing.T) {
	qnow := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := qnow.AddDate(0, 0, -3)

	items := []catalog.Item{item("beta"), item("alpha")}
	prog := map[string]*progress.ItemProgress{
		"alpha": {TimesCorrect: 1, NextReview: &past},
		"beta":  {TimesCorrect: 1, NextReview: &past},
	}

	q := BuildQueue(items, prog, qnow)
	if q.Entries()[0].Item.Name != "alpha" {
		t.Fatalf("equal overdue must order by name, got %q first", q.Entries()[0].Item.Name)
	}
}

func TestNextToStudy(t *testing.T) {
	qnow := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	items := []catalog.Item{item("a"), item("b")}

	q := BuildQueue(items, nil, qnow)

	e, ok := q.NextToStudy(nil)
	if !ok || e.Item.Name != "a" {
		t.Fatalf("NextToStudy = (%v, %v)", e.Item.Name, ok)
	}

	e, ok = q.NextToStudy(map[string]bool{"a": true})
	if !ok || e.Item.Name != "b" {
		t.Fatalf("NextToStudy excluding a = (%v, %v)", e.Item.Name, ok)
	}

	_, ok = q.NextToStudy(map[string]bool{"a": true, "b": true})
	if ok {
		t.Fatal("NextToStudy returned an excluded item")
	}
}
