// Package bill holds the calculator screen's interaction state and the pure
// transition function that moves it from one input event to the next.
//
// A State is a plain value. Apply never mutates its input; it returns the
// next State plus any effects the host should perform (commit callback,
// input dismissal). Machine wraps Apply for hosts that want an owned state
// with callbacks and observers.
package bill

import (
	"strings"

	"tipcalc/internal/tip"
)

// State is the full input and derived state of the calculator screen.
type State struct {
	BillText       string  `json:"bill_text"`
	SplitCount     int     `json:"split_count"`
	SliderPosition float64 `json:"slider_position"`
	TipAmount      float64 `json:"tip_amount"`
	TotalPerPerson float64 `json:"total_per_person"`
}

// New returns the initial state: empty bill, one payer, slider at 0.
func New() State {
	return State{SplitCount: tip.MinSplit}
}

// IsValid reports whether the bill text is non-blank. It gates whether the
// split, tip and total sections are presented at all.
func (s State) IsValid() bool {
	return strings.TrimSpace(s.BillText) != ""
}

// Amount returns the parsed bill and whether the text is a usable amount.
func (s State) Amount() (float64, bool) {
	v, err := tip.ParseBill(s.BillText)
	return v, err == nil
}

// TipPercentage is the whole percentage selected by the slider.
func (s State) TipPercentage() int {
	return tip.Percentage(s.SliderPosition)
}

// recompute refreshes the derived values from the current inputs.
// A bill that does not parse zeroes both derived values.
func (s State) recompute() State {
	// States decoded from JSON or built by hand may carry out-of-range inputs.
	s.SplitCount = tip.ClampSplit(s.SplitCount)
	s.SliderPosition = tip.ClampPosition(s.SliderPosition)
	amount, ok := s.Amount()
	if !ok {
		s.TipAmount = 0
		s.TotalPerPerson = 0
		return s
	}
	pct := s.TipPercentage()
	s.TipAmount = tip.ComputeTip(amount, pct)
	s.TotalPerPerson = tip.ComputeTotalPerPerson(amount, pct, s.SplitCount)
	return s
}
