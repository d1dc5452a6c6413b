// Package ui hosts the calculator screen on Bubble Tea.
//
// The screen owns no arithmetic. Key presses become bill events dispatched on
// a bill.Machine, and rendering reads the machine's State:
//   - CalculatorView: bill field, split row, tip slider, total header
//   - FocusManager: tab order across the rows; split and tip only while the bill is valid
//   - KeyMap: per-field bindings rendered with bubbles/help
//   - AppModel: root model handling commits and quitting
package ui
