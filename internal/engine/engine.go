// Package engine ties the catalog, progress store, scheduler, and
// question generator together behind one command surface. The display
// layers (TUI and CLI) talk only to this package.
package engine

import (
	"time"

	"github.com/tzehon/somm/internal/catalog"
	"github.com/tzehon/somm/internal/mastery"
	"github.com/tzehon/somm/internal/progress"
	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/random"
	"github.com/tzehon/somm/internal/schedule"
)

// Engine coordinates one learner's quiz lifecycle over a loaded
// catalog and an open progress store.
type Engine struct {
	cat     *catalog.Catalog
	store   *progress.Store
	gen     *quiz.Generator
	sampler *random.Sampler
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSampler injects the randomness source. Tests seed it.
func WithSampler(s *random.Sampler) Option {
	return func(e *Engine) { e.sampler = s }
}

// WithClock injects the time source. Tests pin it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the catalog and store.
func New(cat *catalog.Catalog, store *progress.Store, opts ...Option) *Engine {
	e := &Engine{
		cat:   cat,
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.sampler == nil {
		e.sampler = random.New(nil)
	}
	e.gen = quiz.NewGenerator(cat, e.sampler)
	return e
}

// Catalog returns the loaded catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Settings returns the learner's current settings.
func (e *Engine) Settings() progress.Settings {
	return e.store.Settings()
}

// Degraded reports whether progress persistence has failed.
func (e *Engine) Degraded() bool {
	return e.store.Degraded()
}

// SessionConfig overrides the stored settings for one session. Zero
// values fall back to settings.
type SessionConfig struct {
	Modes      []string
	Categories []string
	Count      int
	Difficulty string
}

// StartSession assembles a quiz session from settings plus overrides.
// Unknown mode ids are skipped; a config that leaves no valid mode
// falls back to the full set.
func (e *Engine) StartSession(cfg SessionConfig) *quiz.Session {
	settings := e.store.Settings()

	modeIDs := cfg.Modes
	if len(modeIDs) == 0 {
		modeIDs = settings.EnabledModes
	}
	var modes []quiz.Mode
	for _, id := range modeIDs {
		if m, err := quiz.ParseMode(id); err == nil {
			modes = append(modes, m)
		}
	}
	if len(modes) == 0 {
		modes = append(modes, quiz.AllModes...)
	}

	categories := cfg.Categories
	if len(categories) == 0 {
		categories = settings.FocusCategories
	}

	count := cfg.Count
	if count <= 0 {
		count = settings.QuestionsPerSession
	}
	if count <= 0 {
		// Imported documents may carry a zero; the session still needs
		// to hold something.
		count = 10
	}

	difficulty := quiz.Difficulty(cfg.Difficulty)
	if cfg.Difficulty == "" {
		difficulty = quiz.Difficulty(settings.Difficulty)
	}

	return quiz.NewSession(e.gen, e.sampler, modes, categories, count, difficulty)
}

// SubmitAnswer grades the session's current question, then records the
// outcome: answer tallies, the next spaced-repetition review, and the
// lifetime question counter. Completing the last question also closes
// the session, advancing the daily streak. The hesitated flag lowers
// the recall quality fed to the scheduler.
func (e *Engine) SubmitAnswer(s *quiz.Session, a quiz.Answer, hesitated bool) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, quiz.ErrSessionComplete
	}

	correct, err := s.Submit(a)
	if err != nil {
		return false, err
	}

	itemName := q.ItemName()
	e.store.RecordAnswer(itemName, q.CategoryID(), correct)
	if itemName != "" {
		prev, _ := e.store.Item(itemName)
		res := schedule.Next(schedule.Quality(correct, hesitated), prev.Interval, prev.EaseFactor, e.now())
		e.store.ApplySchedule(itemName, res.Interval, res.EaseFactor, res.NextReview)
	}
	e.store.IncrementQuestionCount()

	if s.Done() {
		e.store.CompleteSession()
	}
	return correct, nil
}

// ReviewQueue returns the prioritized study queue over the learner's
// focused categories.
func (e *Engine) ReviewQueue() *schedule.Queue {
	settings := e.store.Settings()
	items := catalog.Items(e.cat.FilterStyles(settings.FocusCategories))
	snap := e.store.Snapshot()
	return schedule.BuildQueue(items, snap.ItemProgress, e.now())
}

// MarkStudyStatus records the learner's manual known/needs-study mark.
func (e *Engine) MarkStudyStatus(itemName string, status progress.StudyStatus) {
	e.store.MarkStudyStatus(itemName, status)
}

// Report is a read-only aggregate of the learner's standing.
type Report struct {
	OverallMastery int
	Learned        int
	TotalWines     int
	Streak         progress.StreakState
	Stats          progress.AggregateStats
	Queue          schedule.Stats
	Categories     []CategoryReport
	Items          map[string]progress.ItemProgress
}

// CategoryReport is one style's standing.
type CategoryReport struct {
	StyleID   string
	StyleName string
	Mastery   int
	Level     mastery.Level
}

// Report assembles the stats surface in one pass over the snapshot.
func (e *Engine) Report() Report {
	snap := e.store.Snapshot()
	queue := e.ReviewQueue()

	r := Report{
		OverallMastery: mastery.Overall(snap.ItemProgress),
		Learned:        mastery.Learned(snap.ItemProgress),
		TotalWines:     len(e.cat.AllItems()),
		Streak:         snap.Streak,
		Stats:          snap.Stats,
		Queue:          queue.Stats(),
		Items:          make(map[string]progress.ItemProgress, len(snap.ItemProgress)),
	}
	for name, ip := range snap.ItemProgress {
		r.Items[name] = *ip
	}
	for _, style := range e.cat.Styles {
		score := mastery.Category(snap.CategoryProgress[style.ID])
		r.Categories = append(r.Categories, CategoryReport{
			StyleID:   style.ID,
			StyleName: style.Name,
			Mastery:   score,
			Level:     mastery.LevelFor(score),
		})
	}
	return r
}

// UpdateSettings applies a partial settings change.
func (e *Engine) UpdateSettings(patch progress.SettingsPatch) error {
	return e.store.UpdateSettings(patch)
}

// Reset wipes all progress.
func (e *Engine) Reset() {
	e.store.Reset()
}

// Export serializes the snapshot for backup, returning the suggested
// filename and the JSON document.
func (e *Engine) Export() (string, []byte, error) {
	return e.store.Export()
}

// Import merges a previously exported snapshot.
func (e *Engine) Import(raw []byte) error {
	return e.store.Import(raw)
}
