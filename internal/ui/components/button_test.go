package components

import (
	"strings"
	"testing"
)

func TestButton_View(t *testing.T) {
	b := NewButton("T", "True", true)
	view := b.View()
	if !strings.Contains(view, "T") || !strings.Contains(view, "True") {
		t.Errorf("button view missing key or label: %q", view)
	}
}

func TestButton_ActiveAndInactiveDiffer(t *testing.T) {
	active := NewButton("Y", "End session", true).View()
	inactive := NewButton("Y", "End session", false).View()
	if active == inactive {
		t.Error("active and inactive buttons must render differently")
	}
	if !strings.Contains(inactive, "╭") {
		t.Error("inactive button should carry its border")
	}
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow(
		NewButton("T", "True", true),
		NewButton("F", "False", false),
	)
	if !strings.Contains(row, "True") || !strings.Contains(row, "False") {
		t.Errorf("button row missing a label: %q", row)
	}
}
