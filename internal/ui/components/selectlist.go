package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/ui/theme"
)

// SelectList is a multi-select answer list: space toggles, enter
// submits the checked set. After Submit every correct option renders
// green and wrongly checked ones red.
type SelectList struct {
	Options   []Option
	Selected  int
	Checked   map[int]bool
	Submitted bool
}

// NewSelectList creates a multi-select list with nothing checked.
func NewSelectList(options []Option) SelectList {
	return SelectList{
		Options: options,
		Checked: make(map[int]bool),
	}
}

// Update handles cursor movement, toggling, and submission. The second
// return is true when the user submitted.
func (l SelectList) Update(msg tea.Msg) (SelectList, bool) {
	if l.Submitted {
		return l, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Options)-1 {
			l.Selected++
		}
	case "space", " ":
		l.Checked[l.Selected] = !l.Checked[l.Selected]
	case "enter":
		l.Submitted = true
		return l, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(l.Options) {
				l.Selected = i
				l.Checked[i] = !l.Checked[i]
			}
		}
	}

	return l, false
}

// View renders the list with checkboxes.
func (l SelectList) View() string {
	var s string
	for i, opt := range l.Options {
		prefix := "  "
		if i == l.Selected && !l.Submitted {
			prefix = "▸ "
		}

		box := "[ ]"
		if l.Checked[i] {
			box = "[x]"
		}

		line := fmt.Sprintf("%s%s %d)  %s", prefix, box, i+1, opt.Label)
		if opt.Detail != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  · " + opt.Detail)
		}

		switch {
		case l.Submitted && opt.Correct:
			s += theme.Correct.Render(line) + "\n"
		case l.Submitted && l.Checked[i]:
			s += theme.Incorrect.Render(line) + "\n"
		case l.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == l.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// CheckedLabels returns the labels of every checked option.
func (l SelectList) CheckedLabels() []string {
	var out []string
	for i, opt := range l.Options {
		if l.Checked[i] {
			out = append(out, opt.Label)
		}
	}
	return out
}

// CheckedCount returns how many options are checked.
func (l SelectList) CheckedCount() int {
	n := 0
	for _, v := range l.Checked {
		if v {
			n++
		}
	}
	return n
}
