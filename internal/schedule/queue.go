package schedule

import (
	"sort"
	"time"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/progress"
)

// Priority classifies a queue entry.
type Priority string

const (
	PriorityDue      Priority = "due"
	PriorityNew      Priority = "new"
	PriorityMastered Priority = "mastered"
)

// Entry is one catalog item with its review standing.
type Entry struct {
	Item        catalog.Item
	Priority    Priority
	OverdueDays int // 0 unless Priority is due
}

// Stats summarizes a queue for study and reporting surfaces.
type Stats struct {
	Due      int
	New      int
	Mastered int
	Total    int
}

// Queue is the priority-ordered review queue: due items (most overdue
// first), then never-answered items, then items scheduled in the
// future.
type Queue struct {
	entries []Entry
	stats   Stats
}

// BuildQueue partitions the item pool against progress state as of
// now. An item that has been answered but carries no scheduled review
// is treated as immediately due.
func BuildQueue(items []catalog.Item, prog map[string]*progress.ItemProgress, now time.Time) *Queue {
	var due, fresh, mastered []Entry

	for _, it := range items {
		ip := prog[it.Name]
		switch {
		case ip == nil || ip.Attempts() == 0:
			fresh = append(fresh, Entry{Item: it, Priority: PriorityNew})
		case ip.NextReview == nil:
			due = append(due, Entry{Item: it, Priority: PriorityDue})
		case !ip.NextReview.After(now):
			overdue := int(now.Sub(*ip.NextReview).Hours() / 24)
			due = append(due, Entry{Item: it, Priority: PriorityDue, OverdueDays: overdue})
		default:
			mastered = append(mastered, Entry{Item: it, Priority: PriorityMastered})
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].OverdueDays != due[j].OverdueDays {
			return due[i].OverdueDays > due[j].OverdueDays
		}
		return due[i].Item.Name < due[j].Item.Name
	})

	entries := make([]Entry, 0, len(due)+len(fresh)+len(mastered))
	entries = append(entries, due...)
	entries = append(entries, fresh...)
	entries = append(entries, mastered...)

	return &Queue{
		entries: entries,
		stats: Stats{
			Due:      len(due),
			New:      len(fresh),
			Mastered: len(mastered),
			Total:    len(entries),
		},
	}
}

// Entries returns the ordered queue.
func (q *Queue) Entries() []Entry {
	return q.entries
}

// Stats returns the queue's partition counts.
func (q *Queue) Stats() Stats {
	return q.stats
}

// NextToStudy returns the first entry whose item name is not in
// exclude, or false when the queue is exhausted.
func (q *Queue) NextToStudy(exclude map[string]bool) (Entry, bool) {
	for _, e := range q.entries {
		if !exclude[e.Item.Name] {
			return e, true
		}
	}
	return Entry{}, false
}
