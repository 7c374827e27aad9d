// Package settings implements the preferences screen: question modes,
// category focus, difficulty, session length, and appearance.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/engine"
	"github.com/tzehon/somm/internal/progress"
	"github.com/tzehon/somm/internal/quiz"
	"github.com/tzehon/somm/internal/router"
	"github.com/tzehon/somm/internal/screen"
	"github.com/tzehon/somm/internal/ui/components"
	"github.com/tzehon/somm/internal/ui/layout"
	"github.com/tzehon/somm/internal/ui/theme"
)

type rowKind int

const (
	rowMode rowKind = iota
	rowCategory
	rowDifficulty
	rowCount
	rowDarkMode
)

type row struct {
	kind  rowKind
	id    string // mode id or style id
	label string
}

var difficulties = []string{"easy", "medium", "hard"}

// SettingsScreen edits learner preferences. Every change is applied
// immediately through the engine.
type SettingsScreen struct {
	eng      *engine.Engine
	rows     []row
	cursor   int
	editing  bool
	input    components.TextInput
	errMsg   string
	settings progress.Settings
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen over the current settings.
func New(eng *engine.Engine) *SettingsScreen {
	var rows []row
	for _, m := range quiz.AllModes {
		rows = append(rows, row{kind: rowMode, id: string(m), label: m.Label()})
	}
	for _, st := range eng.Catalog().Styles {
		rows = append(rows, row{kind: rowCategory, id: st.ID, label: st.Name})
	}
	rows = append(rows,
		row{kind: rowDifficulty, label: "Difficulty"},
		row{kind: rowCount, label: "Questions per session"},
		row{kind: rowDarkMode, label: "Dark mode"},
	)

	return &SettingsScreen{
		eng:      eng,
		rows:     rows,
		settings: eng.Settings(),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space/Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.editing {
		return s.updateEditing(msg)
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	s.errMsg = ""
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "space", " ", "enter", "left", "right":
		return s.activate(kmsg.String())
	}

	return s, nil
}

func (s *SettingsScreen) updateEditing(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.editing = false
			return s, nil
		case "enter":
			n, err := s.input.NumericValue()
			if err != nil || n < 1 || n > 50 {
				s.errMsg = "Session length must be between 1 and 50"
				return s, nil
			}
			s.editing = false
			s.apply(progress.SettingsPatch{QuestionsPerSession: &n})
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SettingsScreen) activate(key string) (screen.Screen, tea.Cmd) {
	r := s.rows[s.cursor]
	switch r.kind {
	case rowMode:
		enabled := toggle(s.settings.EnabledModes, r.id)
		s.apply(progress.SettingsPatch{EnabledModes: enabled})

	case rowCategory:
		focused := toggle(s.settings.FocusCategories, r.id)
		s.apply(progress.SettingsPatch{FocusCategories: focused})

	case rowDifficulty:
		cur := 0
		for i, d := range difficulties {
			if d == s.settings.Difficulty {
				cur = i
			}
		}
		if key == "left" {
			cur = (cur + len(difficulties) - 1) % len(difficulties)
		} else {
			cur = (cur + 1) % len(difficulties)
		}
		d := difficulties[cur]
		s.apply(progress.SettingsPatch{Difficulty: &d})

	case rowCount:
		s.editing = true
		s.input = components.NewTextInput(fmt.Sprintf("%d", s.settings.QuestionsPerSession), true, 2)
		return s, s.input.Init()

	case rowDarkMode:
		dark := !s.settings.DarkMode
		s.apply(progress.SettingsPatch{DarkMode: &dark})
		theme.SetDark(dark)
	}

	return s, nil
}

func (s *SettingsScreen) apply(patch progress.SettingsPatch) {
	if err := s.eng.UpdateSettings(patch); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.settings = s.eng.Settings()
}

// toggle flips membership of id in the set, preserving order.
func toggle(set []string, id string) []string {
	var out []string
	found := false
	for _, v := range set {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func (s *SettingsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	section := func(label string) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + label))
		b.WriteString("\n")
	}

	lastKind := rowKind(-1)
	for i, r := range s.rows {
		if r.kind != lastKind {
			switch r.kind {
			case rowMode:
				section("Question modes")
			case rowCategory:
				section("Category focus (none = all)")
			case rowDifficulty:
				section("Session")
			}
			lastKind = r.kind
			if r.kind == rowDifficulty {
				lastKind = rowDarkMode // session rows group together
			}
		}

		prefix := "    "
		if i == s.cursor {
			prefix = "  ▸ "
		}

		line := prefix + s.renderRow(r)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")

		if r.kind == rowMode && i == len(quiz.AllModes)-1 {
			b.WriteString("\n")
		}
		if r.kind == rowCategory && (i+1 < len(s.rows) && s.rows[i+1].kind != rowCategory) {
			b.WriteString("\n")
		}
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *SettingsScreen) renderRow(r row) string {
	switch r.kind {
	case rowMode:
		return fmt.Sprintf("%s %s", checkbox(contains(s.settings.EnabledModes, r.id)), r.label)
	case rowCategory:
		return fmt.Sprintf("%s %s", checkbox(contains(s.settings.FocusCategories, r.id)), r.label)
	case rowDifficulty:
		return fmt.Sprintf("%-24s ‹ %s ›", r.label, s.settings.Difficulty)
	case rowCount:
		if s.editing {
			return fmt.Sprintf("%-24s %s", r.label, s.input.View())
		}
		return fmt.Sprintf("%-24s %d", r.label, s.settings.QuestionsPerSession)
	case rowDarkMode:
		return fmt.Sprintf("%-24s %s", r.label, onOff(s.settings.DarkMode))
	}
	return r.label
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func contains(set []string, id string) bool {
	for _, v := range set {
		if v == id {
			return true
		}
	}
	return false
}
