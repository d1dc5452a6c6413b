package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tipcalc/internal/bill"
)

const (
	defaultWidth       = 60
	defaultSliderWidth = 36
)

// CalculatorView is the single calculator screen: bill entry, split and tip
// rows, and the total-per-person header. Key presses are translated to
// bill events and dispatched on Machine; the view only renders its state.
//
// The view installs its own OnCommit and OnDismiss on Machine.
type CalculatorView struct {
	Machine *bill.Machine
	Focus   *FocusManager
	Keys    KeyMap

	// LastCommit is the most recently committed bill text.
	LastCommit string

	input   textinput.Model
	slider  progress.Model
	help    help.Model
	width   int
	pending []tea.Cmd
}

// Ensure CalculatorView implements View.
var _ View = (*CalculatorView)(nil)

// NewCalculatorView creates the screen around m, with the bill field focused.
func NewCalculatorView(m *bill.Machine) *CalculatorView {
	ti := textinput.New()
	ti.Placeholder = "0.00"
	ti.Prompt = "$ "
	ti.Width = 20
	ti.CharLimit = 32
	ti.SetValue(m.State().BillText)
	ti.Focus()

	v := &CalculatorView{
		Machine: m,
		Keys:    DefaultKeyMap(),
		input:   ti,
		slider: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(defaultSliderWidth),
		),
		help:  help.New(),
		width: defaultWidth,
	}
	v.Focus = &FocusManager{
		Current:  FieldBill,
		Order:    []Field{FieldBill},
		OnChange: v.focusChanged,
	}
	m.OnCommit = v.committed
	m.OnDismiss = v.dismissInput
	v.syncFocusOrder()
	return v
}

// State returns the machine's current state.
func (v *CalculatorView) State() bill.State {
	return v.Machine.State()
}

// Init implements View.
func (v *CalculatorView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *CalculatorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.slider.Width = min(max(msg.Width-12, 10), defaultSliderWidth)
		v.help.Width = msg.Width
		return v, nil
	case tea.KeyMsg:
		v.handleKey(msg)
		return v, v.flush()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *CalculatorView) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, v.Keys.Quit):
		v.pending = append(v.pending, tea.Quit)
		return
	case key.Matches(msg, v.Keys.NextField):
		v.Focus.Next()
		return
	case key.Matches(msg, v.Keys.PrevField):
		v.Focus.Prev()
		return
	}

	switch v.Focus.Current {
	case FieldBill:
		if key.Matches(msg, v.Keys.Submit) {
			v.dispatch(bill.Submit{})
			return
		}
		before := v.input.Value()
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		v.pending = append(v.pending, cmd)
		if after := v.input.Value(); after != before {
			v.dispatch(bill.EditBill{Text: after})
		}
	case FieldSplit:
		switch {
		case key.Matches(msg, v.Keys.Help):
			v.help.ShowAll = !v.help.ShowAll
		case key.Matches(msg, v.Keys.SplitUp):
			v.dispatch(bill.IncrementSplit{})
		case key.Matches(msg, v.Keys.SplitDown):
			v.dispatch(bill.DecrementSplit{})
		}
	case FieldTip:
		switch {
		case key.Matches(msg, v.Keys.Help):
			v.help.ShowAll = !v.help.ShowAll
		case key.Matches(msg, v.Keys.TipUp):
			v.nudgeTip(1)
		case key.Matches(msg, v.Keys.TipDown):
			v.nudgeTip(-1)
		case key.Matches(msg, v.Keys.TipUpBig):
			v.nudgeTip(10)
		case key.Matches(msg, v.Keys.TipDownBig):
			v.nudgeTip(-10)
		case key.Matches(msg, v.Keys.TipMin):
			v.dispatch(bill.MoveSlider{Position: 0})
		case key.Matches(msg, v.Keys.TipMax):
			v.dispatch(bill.MoveSlider{Position: 1})
		}
	}
}

// nudgeTip moves the slider by whole percentage points so repeated steps do
// not accumulate float error.
func (v *CalculatorView) nudgeTip(points int) {
	pct := min(max(v.State().TipPercentage()+points, 0), 100)
	v.dispatch(bill.MoveSlider{Position: float64(pct) / 100})
}

func (v *CalculatorView) dispatch(ev bill.Event) {
	v.Machine.Dispatch(ev)
	v.syncFocusOrder()
}

// syncFocusOrder exposes the split and tip rows only while the bill is valid.
func (v *CalculatorView) syncFocusOrder() {
	if v.State().IsValid() {
		v.Focus.SetOrder([]Field{FieldBill, FieldSplit, FieldTip})
	} else {
		v.Focus.SetOrder([]Field{FieldBill})
	}
}

func (v *CalculatorView) focusChanged(_, to Field) {
	if to == FieldBill {
		v.pending = append(v.pending, v.input.Focus())
		return
	}
	v.input.Blur()
}

func (v *CalculatorView) committed(b string) {
	v.LastCommit = b
	v.pending = append(v.pending, func() tea.Msg { return CommittedMsg{Bill: b} })
}

// dismissInput releases the text field and hands focus to the split row.
func (v *CalculatorView) dismissInput() {
	v.input.Blur()
	v.syncFocusOrder()
	v.Focus.SetFocus(FieldSplit)
}

func (v *CalculatorView) flush() tea.Cmd {
	cmds := v.pending
	v.pending = nil
	return tea.Batch(cmds...)
}

// View implements View.
func (v *CalculatorView) View() string {
	s := v.State()

	var b strings.Builder
	b.WriteString(v.renderHeader(s.TotalPerPerson))
	b.WriteString("\n")
	b.WriteString(v.renderForm(s))
	b.WriteString("\n")
	if v.LastCommit != "" {
		b.WriteString(Styles.Status.Render("Bill entered: "+v.LastCommit) + "\n")
	}
	b.WriteString(v.help.View(v.Keys.ForField(v.Focus.Current, s.IsValid())))
	return b.String()
}

func (v *CalculatorView) renderHeader(total float64) string {
	content := Styles.HeaderLabel.Render("Total Per Person") + "\n" +
		Styles.HeaderAmount.Render(FormatMoney(total))
	return Styles.Header.Render(content)
}

func (v *CalculatorView) renderForm(s bill.State) string {
	var rows []string
	rows = append(rows, v.label(FieldBill, "Enter Bill Amount", 0))
	rows = append(rows, v.input.View())

	if s.IsValid() {
		if _, ok := s.Amount(); !ok {
			rows = append(rows, Styles.Error.Render("not a number, try e.g. 42.50"))
		}
		rows = append(rows, "")
		rows = append(rows, v.label(FieldSplit, "Split", 8)+
			Styles.Button.Render("[-]")+
			Styles.Value.Render(fmt.Sprintf(" %3d ", s.SplitCount))+
			Styles.Button.Render("[+]"))
		rows = append(rows, v.label(FieldTip, "Tip", 8)+Styles.Value.Render(FormatMoney(s.TipAmount)))
		rows = append(rows, "")
		rows = append(rows, Styles.Value.Render(fmt.Sprintf("%d %%", s.TipPercentage())))
		rows = append(rows, v.slider.ViewAs(s.SliderPosition))
	}

	box := Styles.Form
	if v.Focus.Current == FieldBill {
		box = Styles.FormFocused
	}
	return box.Width(max(v.width-4, 20)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// label renders a row label; width 0 leaves it unpadded.
func (v *CalculatorView) label(f Field, text string, width int) string {
	style := Styles.Label
	if v.Focus.Current == f {
		style = Styles.LabelFocused
	}
	if width == 0 {
		return style.UnsetWidth().Render(text)
	}
	return style.Width(width).Render(text)
}

// FormatMoney renders an amount with two decimals and a dollar sign.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
