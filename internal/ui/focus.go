package ui

// Field identifies a focusable row of the calculator form.
type Field int

const (
	FieldBill Field = iota
	FieldSplit
	FieldTip
)

func (f Field) String() string {
	switch f {
	case FieldBill:
		return "Bill"
	case FieldSplit:
		return "Split"
	case FieldTip:
		return "Tip"
	default:
		return "Unknown"
	}
}

// FocusManager tracks and rotates focus across form fields.
// Order is the tab order; Current is always a member of Order once set.
type FocusManager struct {
	Current  Field
	Order    []Field
	OnChange func(from, to Field)
}

// Next advances focus to the next field in order and returns it.
func (f *FocusManager) Next() Field {
	return f.step(1)
}

// Prev moves focus to the previous field in order and returns it.
func (f *FocusManager) Prev() Field {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) Field {
	if len(f.Order) == 0 {
		return f.Current
	}
	idx := f.indexOf(f.Current)
	if idx < 0 {
		// Current dropped out of Order; restart from the first field.
		return f.set(f.Order[0])
	}
	n := len(f.Order)
	return f.set(f.Order[((idx+delta)%n+n)%n])
}

// SetFocus focuses field. Returns false if field is not in Order.
func (f *FocusManager) SetFocus(field Field) bool {
	if f.indexOf(field) < 0 {
		return false
	}
	f.set(field)
	return true
}

// SetOrder replaces the tab order. If the current field is no longer
// present, focus moves to the first field of the new order.
func (f *FocusManager) SetOrder(order []Field) {
	f.Order = order
	if len(order) > 0 && f.indexOf(f.Current) < 0 {
		f.set(order[0])
	}
}

func (f *FocusManager) set(to Field) Field {
	from := f.Current
	f.Current = to
	if f.OnChange != nil && from != to {
		f.OnChange(from, to)
	}
	return to
}

func (f *FocusManager) indexOf(field Field) int {
	for i, o := range f.Order {
		if o == field {
			return i
		}
	}
	return -1
}
