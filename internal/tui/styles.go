package tui

import "github.com/charmbracelet/lipgloss"

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
	minHeight     = 5
	borderPadding = 2

	// listChromeHeight is the number of lines taken by everything except the cards.
	listChromeHeight = 9
)

// Color palette.
const (
	colorAccent  = lipgloss.Color("63")
	colorSubtle  = lipgloss.Color("241")
	colorBorder  = lipgloss.Color("240")
	colorHighFg  = lipgloss.Color("229")
	colorHighBg  = lipgloss.Color("57")
	colorUpvotes = lipgloss.Color("214")
)

//nolint:gochecknoglobals // Lipgloss styles are immutable values shared by all renderers.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	BoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	SelectedCardStyle = CardStyle.BorderForeground(colorAccent)
	AuthorStyle       = lipgloss.NewStyle().Italic(true).Foreground(colorSubtle)
	UpvotesStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorUpvotes)

	ButtonStyle        = lipgloss.NewStyle().Padding(0, 1)
	ActiveButtonStyle  = ButtonStyle.Bold(true).Underline(true).Foreground(colorAccent)
	FocusedButtonStyle = ButtonStyle.Foreground(colorHighFg).Background(colorHighBg)

	SuggestionStyle            = lipgloss.NewStyle().PaddingLeft(2) //nolint:mnd // Indent under the search field.
	HighlightedSuggestionStyle = SuggestionStyle.Foreground(colorHighFg).Background(colorHighBg)

	FocusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
)
