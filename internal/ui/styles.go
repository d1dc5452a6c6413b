package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, totals
	ColorHighlight = "205" // Magenta - focused row, borders
	ColorDanger    = "196" // Red - input hints
	ColorMuted     = "241" // Gray - labels, hints
	ColorText      = "252" // Light gray - normal text
	ColorHeaderBg  = "183" // Lavender - total per person card
	ColorHeaderFg  = "235"
)

// Styles contains shared style definitions for the calculator screen.
var Styles = struct {
	Header       lipgloss.Style // Total-per-person card
	HeaderLabel  lipgloss.Style
	HeaderAmount lipgloss.Style

	Form        lipgloss.Style // Bordered box around the inputs
	FormFocused lipgloss.Style

	Label        lipgloss.Style // Row labels (Split, Tip)
	LabelFocused lipgloss.Style
	Value        lipgloss.Style
	Button       lipgloss.Style // [-] and [+]
	Hint         lipgloss.Style
	Error        lipgloss.Style
	Status       lipgloss.Style // Last committed bill
}{
	Header: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHeaderBg)).
		Foreground(lipgloss.Color(ColorHeaderFg)).
		Padding(1, 4).
		Margin(1, 2).
		Align(lipgloss.Center),
	HeaderLabel: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHeaderBg)).
		Foreground(lipgloss.Color(ColorHeaderFg)),
	HeaderAmount: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHeaderBg)).
		Foreground(lipgloss.Color(ColorHeaderFg)).
		Bold(true),
	Form: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	FormFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Width(8),
	LabelFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Width(8),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}
