package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding of the calculator screen.
// Bindings are scoped by the focused field; see ForField.
type KeyMap struct {
	Submit    key.Binding
	NextField key.Binding
	PrevField key.Binding

	SplitUp   key.Binding
	SplitDown key.Binding

	TipUp      key.Binding
	TipDown    key.Binding
	TipUpBig   key.Binding
	TipDownBig key.Binding
	TipMin     key.Binding
	TipMax     key.Binding

	Help key.Binding
	Quit key.Binding
}

// Slider steps for the tip bindings, as fractions of the full range.
const (
	tipStep    = 0.01
	tipBigStep = 0.10
)

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "done"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		SplitUp: key.NewBinding(
			key.WithKeys("+", "=", "right", "l", "up", "k"),
			key.WithHelp("+/→", "add person"),
		),
		SplitDown: key.NewBinding(
			key.WithKeys("-", "_", "left", "h", "down", "j"),
			key.WithHelp("-/←", "remove person"),
		),
		TipUp: key.NewBinding(
			key.WithKeys("right", "l", "+", "="),
			key.WithHelp("→", "+1%"),
		),
		TipDown: key.NewBinding(
			key.WithKeys("left", "h", "-", "_"),
			key.WithHelp("←", "-1%"),
		),
		TipUpBig: key.NewBinding(
			key.WithKeys("pgup", "up", "k"),
			key.WithHelp("↑/pgup", "+10%"),
		),
		TipDownBig: key.NewBinding(
			key.WithKeys("pgdown", "down", "j"),
			key.WithHelp("↓/pgdn", "-10%"),
		),
		TipMin: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "0%"),
		),
		TipMax: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "100%"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ForField returns a help.KeyMap listing only the bindings that act on
// field. multiField reports whether tab rotation is available.
func (km KeyMap) ForField(field Field, multiField bool) help.KeyMap {
	return fieldKeyMap{km: km, field: field, multiField: multiField}
}

// fieldKeyMap implements help.KeyMap for one focused field.
type fieldKeyMap struct {
	km         KeyMap
	field      Field
	multiField bool
}

// ShortHelp implements help.KeyMap.
func (f fieldKeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	switch f.field {
	case FieldBill:
		out = append(out, f.km.Submit)
	case FieldSplit:
		out = append(out, f.km.SplitUp, f.km.SplitDown)
	case FieldTip:
		out = append(out, f.km.TipUp, f.km.TipDown)
	}
	if f.multiField {
		out = append(out, f.km.NextField)
	}
	if f.field != FieldBill {
		out = append(out, f.km.Help)
	}
	return append(out, f.km.Quit)
}

// FullHelp implements help.KeyMap.
func (f fieldKeyMap) FullHelp() [][]key.Binding {
	cols := [][]key.Binding{f.ShortHelp()}
	if f.field == FieldTip {
		cols = append(cols, []key.Binding{f.km.TipUpBig, f.km.TipDownBig, f.km.TipMin, f.km.TipMax})
	}
	if f.multiField {
		cols = append(cols, []key.Binding{f.km.NextField, f.km.PrevField})
	}
	return cols
}
