package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it mirrors Bubble Tea's Init/Update/View
// but returns itself from Update so callers keep the concrete type.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
