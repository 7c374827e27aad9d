package progress

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Store owns the snapshot and is the single writer of persisted state.
// Every command is atomic under the store's lock and persists
// fire-and-forget afterwards: a persistence failure degrades the store
// to memory-only operation but never fails the command.
type Store struct {
	mu       sync.Mutex
	snap     Snapshot
	backend  Backend
	now      func() time.Time
	degraded bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore constructs a Store over the given backend, reading any
// persisted snapshot. Absent or unparseable data yields the structural
// default, so the store is always structurally complete.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.snap = DefaultSnapshot()
	raw, err := backend.Load()
	if err != nil {
		s.degraded = true
		return s
	}
	if len(raw) == 0 {
		return s
	}
	if merged, err := mergeSnapshot(raw); err == nil {
		s.snap = merged
	}
	return s
}

// Degraded reports whether persistence has failed; the session
// continues in memory when it has.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// Snapshot returns a deep copy of the current state for readers.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copySnapshot()
}

// Item returns a copy of one item's record and whether it exists.
func (s *Store) Item(name string) (ItemProgress, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ip, ok := s.snap.ItemProgress[name]
	if !ok {
		return ItemProgress{}, false
	}
	return *ip, true
}

// Settings returns a copy of the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySettings(s.snap.Settings)
}

// RecordAnswer increments the item's tally, stamps lastSeen, and, when
// a category id is supplied, increments the category tally. Scheduling
// fields are untouched; the scheduler applies them via ApplySchedule.
func (s *Store) RecordAnswer(itemName, categoryID string, isCorrect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if itemName != "" {
		ip, ok := s.snap.ItemProgress[itemName]
		if !ok {
			ip = newItemProgress()
			s.snap.ItemProgress[itemName] = ip
		}
		if isCorrect {
			ip.TimesCorrect++
		} else {
			ip.TimesIncorrect++
		}
		now := s.now()
		ip.LastSeen = &now
	}

	if categoryID != "" {
		cp, ok := s.snap.CategoryProgress[categoryID]
		if !ok {
			cp = &CategoryProgress{}
			s.snap.CategoryProgress[categoryID] = cp
		}
		if isCorrect {
			cp.TimesCorrect++
		} else {
			cp.TimesIncorrect++
		}
	}

	s.persist()
}

// ApplySchedule stores the scheduler's output for an item. The record
// is created if the item has never been answered.
func (s *Store) ApplySchedule(itemName string, interval int, easeFactor float64, nextReview time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ip, ok := s.snap.ItemProgress[itemName]
	if !ok {
		ip = newItemProgress()
		s.snap.ItemProgress[itemName] = ip
	}
	ip.Interval = interval
	ip.EaseFactor = easeFactor
	ip.NextReview = &nextReview

	s.persist()
}

// MarkStudyStatus sets the learner's manual mark on an item, creating
// the record if absent.
func (s *Store) MarkStudyStatus(itemName string, status StudyStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ip, ok := s.snap.ItemProgress[itemName]
	if !ok {
		ip = newItemProgress()
		s.snap.ItemProgress[itemName] = ip
	}
	ip.StudyStatus = status

	s.persist()
}

// CompleteSession advances the streak using calendar-day arithmetic
// and increments the session counter.
func (s *Store) CompleteSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Format(DateLayout)
	st := &s.snap.Streak

	switch {
	case st.LastActiveDate == "":
		st.CurrentStreak = 1
	default:
		gap := daysBetween(st.LastActiveDate, today)
		switch {
		case gap == 0:
			// same day, streak unchanged
		case gap == 1:
			st.CurrentStreak++
		default:
			st.CurrentStreak = 1
		}
	}
	if st.CurrentStreak > st.LongestStreak {
		st.LongestStreak = st.CurrentStreak
	}
	st.LastActiveDate = today
	s.snap.Stats.TotalSessions++

	s.persist()
}

// IncrementQuestionCount bumps the lifetime question counter.
func (s *Store) IncrementQuestionCount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Stats.TotalQuestions++
	s.persist()
}

// SettingsPatch carries a partial settings update; nil fields are
// left unchanged.
type SettingsPatch struct {
	EnabledModes        []string
	FocusCategories     []string
	Difficulty          *string
	QuestionsPerSession *int
	DarkMode            *bool
}

// UpdateSettings shallow-merges the patch into settings. A patch that
// would leave no modes enabled is rejected as a no-op.
func (s *Store) UpdateSettings(patch SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.EnabledModes != nil && len(patch.EnabledModes) == 0 {
		return fmt.Errorf("progress: at least one question mode must stay enabled")
	}

	if patch.EnabledModes != nil {
		s.snap.Settings.EnabledModes = append([]string(nil), patch.EnabledModes...)
	}
	if patch.FocusCategories != nil {
		s.snap.Settings.FocusCategories = append([]string(nil), patch.FocusCategories...)
	}
	if patch.Difficulty != nil {
		s.snap.Settings.Difficulty = *patch.Difficulty
	}
	if patch.QuestionsPerSession != nil {
		s.snap.Settings.QuestionsPerSession = *patch.QuestionsPerSession
	}
	if patch.DarkMode != nil {
		s.snap.Settings.DarkMode = *patch.DarkMode
	}

	s.persist()
	return nil
}

// Reset replaces the snapshot with the structural default and clears
// persisted storage.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = DefaultSnapshot()
	if err := s.backend.Clear(); err != nil {
		s.degraded = true
	}
}

// Export serializes the full snapshot as pretty-printed JSON and
// returns it with a date-stamped suggested filename.
func (s *Store) Export() (filename string, data []byte, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err = json.MarshalIndent(s.snap, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("serialize snapshot: %w", err)
	}
	if rec, ok := s.backend.(ExportRecorder); ok {
		// Best effort; the returned bytes are the export of record.
		_ = rec.RecordExport(data)
	}
	filename = fmt.Sprintf("somm-progress-%s.json", s.now().Format(DateLayout))
	return filename, data, nil
}

// Import parses raw JSON, merges it over the structural default, and
// replaces the state. On parse failure the current state is untouched.
func (s *Store) Import(raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := mergeSnapshot(raw)
	if err != nil {
		return fmt.Errorf("import snapshot: %w", err)
	}
	s.snap = merged
	s.persist()
	return nil
}

// persist writes the snapshot through the backend. Callers hold the
// lock. Failures flip the degraded flag; the command still succeeds.
func (s *Store) persist() {
	raw, err := json.Marshal(s.snap)
	if err != nil {
		s.degraded = true
		return
	}
	if err := s.backend.Save(raw); err != nil {
		s.degraded = true
	}
}

func (s *Store) copySnapshot() Snapshot {
	out := s.snap
	out.ItemProgress = make(map[string]*ItemProgress, len(s.snap.ItemProgress))
	for k, v := range s.snap.ItemProgress {
		cp := *v
		out.ItemProgress[k] = &cp
	}
	out.CategoryProgress = make(map[string]*CategoryProgress, len(s.snap.CategoryProgress))
	for k, v := range s.snap.CategoryProgress {
		cp := *v
		out.CategoryProgress[k] = &cp
	}
	out.Settings = copySettings(s.snap.Settings)
	return out
}

func copySettings(in Settings) Settings {
	out := in
	out.EnabledModes = append([]string(nil), in.EnabledModes...)
	out.FocusCategories = append([]string(nil), in.FocusCategories...)
	return out
}

// daysBetween returns whole calendar days from a to b. Malformed
// dates count as a broken streak.
func daysBetween(a, b string) int {
	ta, errA := time.Parse(DateLayout, a)
	tb, errB := time.Parse(DateLayout, b)
	if errA != nil || errB != nil {
		return -1
	}
	return int(tb.Sub(ta).Hours() / 24)
}
