package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tzehon/somm/internal/ui/theme"
)

// Option is one selectable entry in an OptionList.
type Option struct {
	Label   string
	Detail  string // dim suffix, e.g. a wine's style
	Correct bool
}

// OptionList is a single-select answer list. After Submit it renders
// the correct option green and a wrong pick red.
type OptionList struct {
	Options   []Option
	Selected  int
	Submitted bool
	Chosen    int
}

// NewOptionList creates an option list with the cursor on the first entry.
func NewOptionList(options []Option) OptionList {
	return OptionList{
		Options: options,
		Chosen:  -1,
	}
}

// Update handles cursor movement and number-key selection. Selection
// by number also submits, matching the menu feel of the session screen.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if o.Submitted {
		return o, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
		o.Chosen = o.Selected
		return o, true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(o.Options) {
				o.Selected = i
				o.Submitted = true
				o.Chosen = i
				return o, true
			}
		}
	}

	return o, false
}

// View renders the list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt.Label)
		if opt.Detail != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  · " + opt.Detail)
		}

		switch {
		case o.Submitted && opt.Correct:
			s += theme.Correct.Render(line) + "\n"
		case o.Submitted && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// ChosenOption returns the submitted option.
func (o OptionList) ChosenOption() (Option, bool) {
	if !o.Submitted || o.Chosen < 0 || o.Chosen >= len(o.Options) {
		return Option{}, false
	}
	return o.Options[o.Chosen], true
}
