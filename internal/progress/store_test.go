package progress

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestStore() *Store {
	return NewStore(NewMemoryBackend(), WithClock(fixedClock("2026-03-10T18:00:00Z")))
}

func TestRecordAnswer_CreatesRecordLazily(t *testing.T) {
	s := newTestStore()

	s.RecordAnswer("Albariño", "aromatic-white", true)

	ip, ok := s.Item("Albariño")
	if !ok {
		t.Fatal("item record not created")
	}
	if ip.TimesCorrect != 1 || ip.TimesIncorrect != 0 {
		t.Fatalf("tally = %d/%d, want 1/0", ip.TimesCorrect, ip.TimesIncorrect)
	}
	if ip.EaseFactor != DefaultEaseFactor {
		t.Fatalf("easeFactor = %v, want %v", ip.EaseFactor, DefaultEaseFactor)
	}
	if ip.Interval != 0 {
		t.Fatalf("interval = %d, want 0", ip.Interval)
	}
	if ip.LastSeen == nil {
		t.Fatal("lastSeen not stamped")
	}
	if ip.NextReview != nil {
		t.Fatal("recordAnswer must not schedule reviews")
	}

	snap := s.Snapshot()
	cp := snap.CategoryProgress["aromatic-white"]
	if cp == nil || cp.TimesCorrect != 1 {
		t.Fatalf("category tally not incremented: %+v", cp)
	}
}

func TestRecordAnswer_NoCategory(t *testing.T) {
	s := newTestStore()

	s.RecordAnswer("Gamay", "", false)

	ip, _ := s.Item("Gamay")
	if ip.TimesIncorrect != 1 {
		t.Fatalf("timesIncorrect = %d, want 1", ip.TimesIncorrect)
	}
	if len(s.Snapshot().CategoryProgress) != 0 {
		t.Fatal("category tally created without a category id")
	}
}

func TestApplySchedule(t *testing.T) {
	s := newTestStore()
	next := time.Date(2026, 3, 16, 18, 0, 0, 0, time.UTC)

	s.ApplySchedule("Gamay", 6, 2.6, next)

	ip, ok := s.Item("Gamay")
	if !ok {
		t.Fatal("record not created")
	}
	if ip.Interval != 6 || ip.EaseFactor != 2.6 {
		t.Fatalf("schedule = %d/%v, want 6/2.6", ip.Interval, ip.EaseFactor)
	}
	if ip.NextReview == nil || !ip.NextReview.Equal(next) {
		t.Fatalf("nextReview = %v, want %v", ip.NextReview, next)
	}
}

func TestMarkStudyStatus(t *testing.T) {
	s := newTestStore()

	s.MarkStudyStatus("Port", StudyNeedsStudy)

	ip, ok := s.Item("Port")
	if !ok {
		t.Fatal("record not created by study mark")
	}
	if ip.StudyStatus != StudyNeedsStudy {
		t.Fatalf("studyStatus = %q, want %q", ip.StudyStatus, StudyNeedsStudy)
	}
	if ip.Attempts() != 0 {
		t.Fatal("study mark must not touch tallies")
	}
}

func TestCompleteSession_StreakArithmetic(t *testing.T) {
	tests := []struct {
		name        string
		lastActive  string
		prevStreak  int
		prevLongest int
		today       string
		wantStreak  int
		wantLongest int
	}{
		{"first session ever", "", 0, 0, "2026-03-10", 1, 1},
		{"same day", "2026-03-10", 3, 5, "2026-03-10", 3, 5},
		{"consecutive day", "2026-03-09", 3, 3, "2026-03-10", 4, 4},
		{"gap breaks streak", "2026-03-07", 9, 9, "2026-03-10", 1, 9},
		{"clock moved backwards", "2026-03-12", 4, 6, "2026-03-10", 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(NewMemoryBackend(), WithClock(fixedClock(tt.today+"T20:00:00Z")))
			s.snap.Streak = StreakState{
				CurrentStreak:  tt.prevStreak,
				LongestStreak:  tt.prevLongest,
				LastActiveDate: tt.lastActive,
			}

			s.CompleteSession()

			st := s.Snapshot().Streak
			if st.CurrentStreak != tt.wantStreak {
				t.Errorf("currentStreak = %d, want %d", st.CurrentStreak, tt.wantStreak)
			}
			if st.LongestStreak != tt.wantLongest {
				t.Errorf("longestStreak = %d, want %d", st.LongestStreak, tt.wantLongest)
			}
			if st.LastActiveDate != tt.today {
				t.Errorf("lastActiveDate = %q, want %q", st.LastActiveDate, tt.today)
			}
		})
	}
}

func TestCompleteSession_CountsSessions(t *testing.T) {
	s := newTestStore()
	s.CompleteSession()
	s.CompleteSession()
	if got := s.Snapshot().Stats.TotalSessions; got != 2 {
		t.Fatalf("totalSessions = %d, want 2", got)
	}
}

func TestUpdateSettings_RejectsEmptyModes(t *testing.T) {
	s := newTestStore()

	err := s.UpdateSettings(SettingsPatch{EnabledModes: []string{}})
	if err == nil {
		t.Fatal("expected rejection of empty enabledModes")
	}
	if got := len(s.Settings().EnabledModes); got != len(DefaultModes) {
		t.Fatalf("enabledModes mutated on rejected update: %d modes", got)
	}
}

func TestUpdateSettings_PartialMerge(t *testing.T) {
	s := newTestStore()
	hard := "hard"

	if err := s.UpdateSettings(SettingsPatch{Difficulty: &hard}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Settings()
	if got.Difficulty != "hard" {
		t.Fatalf("difficulty = %q, want %q", got.Difficulty, "hard")
	}
	if got.QuestionsPerSession != 10 {
		t.Fatalf("questionsPerSession changed: %d", got.QuestionsPerSession)
	}
	if !equalStrings(got.EnabledModes, DefaultModes) {
		t.Fatalf("enabledModes changed: %v", got.EnabledModes)
	}
}

func TestReset(t *testing.T) {
	b := NewMemoryBackend()
	s := NewStore(b, WithClock(fixedClock("2026-03-10T18:00:00Z")))
	s.RecordAnswer("Cava", "sparkling", true)

	s.Reset()

	if len(s.Snapshot().ItemProgress) != 0 {
		t.Fatal("item progress survived reset")
	}
	if raw, _ := b.Load(); len(raw) != 0 {
		t.Fatal("persisted storage not cleared")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	s := newTestStore()
	s.RecordAnswer("Albariño", "aromatic-white", true)
	s.RecordAnswer("Albariño", "aromatic-white", false)
	s.MarkStudyStatus("Port", StudyKnown)
	s.CompleteSession()
	before := s.Snapshot()

	name, data, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if name != "somm-progress-2026-03-10.json" {
		t.Fatalf("suggested filename = %q", name)
	}

	other := newTestStore()
	if err := other.Import(data); err != nil {
		t.Fatalf("import: %v", err)
	}
	after := other.Snapshot()

	b1, _ := json.Marshal(before)
	b2, _ := json.Marshal(after)
	if string(b1) != string(b2) {
		t.Fatalf("round trip mismatch:\n%s\n%s", b1, b2)
	}
}

func TestImport_MalformedLeavesStateUntouched(t *testing.T) {
	s := newTestStore()
	s.RecordAnswer("Cava", "sparkling", true)

	if err := s.Import([]byte(`{"itemProgress": {"x"`)); err == nil {
		t.Fatal("expected parse error")
	}

	ip, ok := s.Item("Cava")
	if !ok || ip.TimesCorrect != 1 {
		t.Fatal("state changed by failed import")
	}
}

func TestImport_MergesOverDefaults(t *testing.T) {
	s := newTestStore()

	// An older export: missing settings, stats, and easeFactor.
	raw := []byte(`{
		"itemProgress": {"Sherry": {"timesCorrect": 2, "timesIncorrect": 1}},
		"streak": {"currentStreak": 2}
	}`)
	if err := s.Import(raw); err != nil {
		t.Fatalf("import: %v", err)
	}

	snap := s.Snapshot()
	if snap.Settings.QuestionsPerSession != 10 {
		t.Fatalf("defaults not filled: %+v", snap.Settings)
	}
	ip := snap.ItemProgress["Sherry"]
	if ip == nil || ip.TimesCorrect != 2 {
		t.Fatalf("imported item lost: %+v", ip)
	}
	if ip.EaseFactor != DefaultEaseFactor {
		t.Fatalf("easeFactor not repaired: %v", ip.EaseFactor)
	}
	if snap.Streak.CurrentStreak != 2 || snap.Streak.LongestStreak != 0 {
		t.Fatalf("streak merge wrong: %+v", snap.Streak)
	}
}

// A setting that was explicitly stored as zero must survive
// export→import; only absent fields fall back to defaults.
func TestImport_PresentZeroSettingsRoundTrip(t *testing.T) {
	s := newTestStore()
	zero := 0
	if err := s.UpdateSettings(SettingsPatch{QuestionsPerSession: &zero}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	_, data, err := s.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	other := newTestStore()
	if err := other.Import(data); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := other.Settings().QuestionsPerSession; got != 0 {
		t.Fatalf("questionsPerSession = %d after round trip, want 0", got)
	}
}

type failingBackend struct{ loadOK bool }

func (f *failingBackend) Load() ([]byte, error) {
	if f.loadOK {
		return nil, nil
	}
	return nil, errors.New("disk on fire")
}
func (f *failingBackend) Save([]byte) error { return errors.New("disk on fire") }
func (f *failingBackend) Clear() error      { return errors.New("disk on fire") }

func TestDegradedMode_CommandsStillSucceed(t *testing.T) {
	s := NewStore(&failingBackend{loadOK: true}, WithClock(fixedClock("2026-03-10T18:00:00Z")))

	s.RecordAnswer("Tokaji", "dessert", true)

	if !s.Degraded() {
		t.Fatal("store not marked degraded after save failure")
	}
	ip, ok := s.Item("Tokaji")
	if !ok || ip.TimesCorrect != 1 {
		t.Fatal("command failed in degraded mode")
	}
}

func TestNewStore_CorruptStorageFallsBackToDefault(t *testing.T) {
	b := NewMemoryBackend()
	_ = b.Save([]byte(`not json at all`))

	s := NewStore(b)

	snap := s.Snapshot()
	if len(snap.Settings.EnabledModes) != len(DefaultModes) {
		t.Fatalf("not structurally complete: %+v", snap.Settings)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
