package progress

import "encoding/json"

// Patch shapes mirror the snapshot document with every field optional,
// so a partial or older export can be overlaid on the structural
// default one field at a time. This replaces the original's dynamic
// object-spread with an explicit fill-missing-fields merge.

type snapshotPatch struct {
	ItemProgress     map[string]*ItemProgress     `json:"itemProgress"`
	CategoryProgress map[string]*CategoryProgress `json:"categoryProgress"`
	Streak           *streakPatch                 `json:"streak"`
	Settings         *settingsPatch               `json:"settings"`
	Stats            *statsPatch                  `json:"stats"`
}

type streakPatch struct {
	CurrentStreak  *int    `json:"currentStreak"`
	LongestStreak  *int    `json:"longestStreak"`
	LastActiveDate *string `json:"lastActiveDate"`
}

type settingsPatch struct {
	EnabledModes        []string `json:"enabledModes"`
	FocusCategories     []string `json:"focusCategories"`
	Difficulty          *string  `json:"difficulty"`
	QuestionsPerSession *int     `json:"questionsPerSession"`
	DarkMode            *bool    `json:"darkMode"`
}

type statsPatch struct {
	TotalSessions  *int `json:"totalSessions"`
	TotalQuestions *int `json:"totalQuestions"`
}

// mergeSnapshot decodes raw and overlays its present fields on the
// structural default. A decode failure is returned untouched so the
// caller can keep its current state.
func mergeSnapshot(raw []byte) (Snapshot, error) {
	var patch snapshotPatch
	if err := json.Unmarshal(raw, &patch); err != nil {
		return Snapshot{}, err
	}

	snap := DefaultSnapshot()

	for name, ip := range patch.ItemProgress {
		if ip == nil {
			continue
		}
		normalizeItem(ip)
		snap.ItemProgress[name] = ip
	}
	for id, cp := range patch.CategoryProgress {
		if cp == nil {
			continue
		}
		snap.CategoryProgress[id] = cp
	}

	if p := patch.Streak; p != nil {
		if p.CurrentStreak != nil {
			snap.Streak.CurrentStreak = *p.CurrentStreak
		}
		if p.LongestStreak != nil {
			snap.Streak.LongestStreak = *p.LongestStreak
		}
		if p.LastActiveDate != nil {
			snap.Streak.LastActiveDate = *p.LastActiveDate
		}
	}

	if p := patch.Settings; p != nil {
		if len(p.EnabledModes) > 0 {
			snap.Settings.EnabledModes = p.EnabledModes
		}
		if p.FocusCategories != nil {
			snap.Settings.FocusCategories = p.FocusCategories
		}
		// Pointer presence distinguishes "absent" from a stored zero
		// value, so any exported setting round-trips exactly. Values are
		// clamped on use, not here.
		if p.Difficulty != nil {
			snap.Settings.Difficulty = *p.Difficulty
		}
		if p.QuestionsPerSession != nil {
			snap.Settings.QuestionsPerSession = *p.QuestionsPerSession
		}
		if p.DarkMode != nil {
			snap.Settings.DarkMode = *p.DarkMode
		}
	}

	if p := patch.Stats; p != nil {
		if p.TotalSessions != nil {
			snap.Stats.TotalSessions = *p.TotalSessions
		}
		if p.TotalQuestions != nil {
			snap.Stats.TotalQuestions = *p.TotalQuestions
		}
	}

	return snap, nil
}

// normalizeItem repairs records from older exports that predate the
// ease-factor field. The easeFactor >= 1.3 invariant must hold for
// every record the scheduler can see.
func normalizeItem(ip *ItemProgress) {
	if ip.EaseFactor < MinEaseFactor {
		ip.EaseFactor = DefaultEaseFactor
	}
	if ip.Interval < 0 {
		ip.Interval = 0
	}
}
