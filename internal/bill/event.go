package bill

import (
	"strings"

	"tipcalc/internal/tip"
)

// Event is an input delivered to the calculator, one at a time.
type Event interface {
	// Kind names the event for logs and traces.
	Kind() string
	isEvent()
}

// EditBill replaces the bill text with whatever the user has typed.
type EditBill struct {
	Text string
}

// IncrementSplit adds one payer, up to tip.MaxSplit.
type IncrementSplit struct{}

// DecrementSplit removes one payer, down to tip.MinSplit.
type DecrementSplit struct{}

// MoveSlider sets the tip slider to Position in [0, 1].
type MoveSlider struct {
	Position float64
}

// Submit is the "done" gesture on the bill field.
type Submit struct{}

func (EditBill) Kind() string       { return "edit_bill" }
func (IncrementSplit) Kind() string { return "increment_split" }
func (DecrementSplit) Kind() string { return "decrement_split" }
func (MoveSlider) Kind() string     { return "move_slider" }
func (Submit) Kind() string         { return "submit" }

func (EditBill) isEvent()       {}
func (IncrementSplit) isEvent() {}
func (DecrementSplit) isEvent() {}
func (MoveSlider) isEvent()     {}
func (Submit) isEvent()         {}

// Effect is an outbound action the host performs after a transition.
type Effect interface {
	isEffect()
}

// Commit carries the trimmed bill text of a successful submit.
type Commit struct {
	Bill string
}

// DismissInput asks the host to release the text input (hide the keyboard,
// blur the field).
type DismissInput struct{}

func (Commit) isEffect()       {}
func (DismissInput) isEffect() {}

// Apply returns the state that follows s after ev, plus the effects to run.
// Every input change recomputes the derived values, including bill edits.
// Unknown events leave s unchanged.
func Apply(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case EditBill:
		s.BillText = ev.Text
	case IncrementSplit:
		s.SplitCount = tip.ClampSplit(s.SplitCount + 1)
	case DecrementSplit:
		s.SplitCount = tip.ClampSplit(s.SplitCount - 1)
	case MoveSlider:
		s.SliderPosition = tip.ClampPosition(ev.Position)
	case Submit:
		if !s.IsValid() {
			return s, nil
		}
		return s, []Effect{Commit{Bill: strings.TrimSpace(s.BillText)}, DismissInput{}}
	default:
		return s, nil
	}
	return s.recompute(), nil
}
