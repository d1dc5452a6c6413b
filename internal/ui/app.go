package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"tipcalc/internal/bill"
)

// AppModel is the root model. It hosts the calculator screen and forwards
// committed bills to OnCommit.
type AppModel struct {
	Calculator *CalculatorView
	// OnCommit receives every committed bill text. May be nil.
	OnCommit func(bill string)
	Logger   *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Calculator.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommittedMsg:
		a.logger().Info("bill committed", "bill", msg.Bill)
		if a.OnCommit != nil {
			a.OnCommit(msg.Bill)
		}
		return a, nil
	}

	v, cmd := a.Calculator.Update(msg)
	if c, ok := v.(*CalculatorView); ok {
		a.Calculator = c
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Calculator.View()
}

func (a *AppModel) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// NewAppModel creates the root model around m.
func NewAppModel(m *bill.Machine) *AppModel {
	return &AppModel{
		Calculator: NewCalculatorView(m),
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// TransitionLogger returns a bill.Observer that logs each transition at
// debug level. The bill text is logged only as valid/numeric flags.
func TransitionLogger(logger *slog.Logger) bill.Observer {
	return bill.ObserverFunc(func(ev bill.Event, before, after bill.State, effects []bill.Effect) {
		_, numeric := after.Amount()
		logger.Debug("transition",
			"event", ev.Kind(),
			"valid", after.IsValid(),
			"numeric", numeric,
			"split", after.SplitCount,
			"tip_pct", after.TipPercentage(),
			"tip", after.TipAmount,
			"per_person", after.TotalPerPerson,
			"effects", len(effects),
		)
	})
}
