package ui

import "testing"

func TestFocusManager_NextPrevWrap(t *testing.T) {
	f := &FocusManager{Current: FieldBill, Order: []Field{FieldBill, FieldSplit, FieldTip}}

	if got := f.Next(); got != FieldSplit {
		t.Errorf("Next from Bill = %s, want Split", got)
	}
	f.Next()
	if got := f.Next(); got != FieldBill {
		t.Errorf("Next from Tip should wrap to Bill, got %s", got)
	}
	if got := f.Prev(); got != FieldTip {
		t.Errorf("Prev from Bill should wrap to Tip, got %s", got)
	}
}

func TestFocusManager_OnChange(t *testing.T) {
	var changes [][2]Field
	f := &FocusManager{
		Current: FieldBill,
		Order:   []Field{FieldBill, FieldSplit},
		OnChange: func(from, to Field) {
			changes = append(changes, [2]Field{from, to})
		},
	}
	f.Next()
	f.SetFocus(FieldSplit) // no change
	f.SetFocus(FieldBill)

	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %v", changes)
	}
	if changes[0] != [2]Field{FieldBill, FieldSplit} || changes[1] != [2]Field{FieldSplit, FieldBill} {
		t.Errorf("unexpected changes %v", changes)
	}
}

func TestFocusManager_SetFocusUnknownField(t *testing.T) {
	f := &FocusManager{Current: FieldBill, Order: []Field{FieldBill}}
	if f.SetFocus(FieldTip) {
		t.Error("SetFocus should reject a field outside the order")
	}
	if f.Current != FieldBill {
		t.Errorf("Current changed to %s", f.Current)
	}
}

func TestFocusManager_SetOrderDropsCurrent(t *testing.T) {
	f := &FocusManager{Current: FieldTip, Order: []Field{FieldBill, FieldSplit, FieldTip}}
	f.SetOrder([]Field{FieldBill})
	if f.Current != FieldBill {
		t.Errorf("expected focus to fall back to Bill, got %s", f.Current)
	}
}

func TestFocusManager_SingleField(t *testing.T) {
	f := &FocusManager{Current: FieldBill, Order: []Field{FieldBill}}
	if f.Next() != FieldBill || f.Prev() != FieldBill {
		t.Error("single-field order should keep focus in place")
	}
}

func TestField_String(t *testing.T) {
	tests := map[Field]string{FieldBill: "Bill", FieldSplit: "Split", FieldTip: "Tip", Field(9): "Unknown"}
	for f, want := range tests {
		if f.String() != want {
			t.Errorf("Field(%d).String() = %q, want %q", int(f), f.String(), want)
		}
	}
}
