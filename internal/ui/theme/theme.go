package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — cellar tones, wine-forward but readable
var (
	Primary   = lipgloss.Color("#9A3B5A") // Burgundy
	Secondary = lipgloss.Color("#C9A227") // Gold
	Accent    = lipgloss.Color("#D98E5F") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#191020") // Cellar
	BgCard    = lipgloss.Color("#281A30") // Plum
	Border    = lipgloss.Color("#43304C") // Dusty Plum
)

// SetDark switches between the dark cellar palette and a light one,
// then rebuilds every derived style. Call before the program starts.
func SetDark(dark bool) {
	if dark {
		Text = lipgloss.Color("#F8FAFC")
		TextDim = lipgloss.Color("#94A3B8")
		BgDark = lipgloss.Color("#191020")
		BgCard = lipgloss.Color("#281A30")
		Border = lipgloss.Color("#43304C")
	} else {
		Text = lipgloss.Color("#1C1017")
		TextDim = lipgloss.Color("#6B5B66")
		BgDark = lipgloss.Color("#FAF4EE")
		BgCard = lipgloss.Color("#F0E4D8")
		Border = lipgloss.Color("#C9B8A8")
	}
	rebuild()
}

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

func rebuild() {
	Subtitle = Subtitle.Foreground(TextDim)
	Body = Body.Foreground(Text)
	Hint = Hint.Foreground(TextDim)
	Header = Header.Background(BgCard)
	Footer = Footer.Background(BgCard)
	Card = Card.Background(BgCard).BorderForeground(Border)
	Unselected = Unselected.Foreground(Text)
	ProgressEmpty = ProgressEmpty.Background(Border)
	ButtonActive = ButtonActive.Foreground(Text)
	ButtonInactive = ButtonInactive.Background(BgCard).BorderForeground(Border)
}
