package trace

import (
	"go.opentelemetry.io/otel/attribute"

	"tipcalc/internal/bill"
)

// Attribute keys recorded on transition spans.
const (
	KeyEvent          = attribute.Key("tipcalc.event")
	KeyBillValid      = attribute.Key("tipcalc.bill.valid")
	KeyBillNumeric    = attribute.Key("tipcalc.bill.numeric")
	KeySplitCount     = attribute.Key("tipcalc.split.count")
	KeyTipPercentage  = attribute.Key("tipcalc.tip.percentage")
	KeyTipAmount      = attribute.Key("tipcalc.tip.amount")
	KeyTotalPerPerson = attribute.Key("tipcalc.total_per_person")
	KeyCommitted      = attribute.Key("tipcalc.committed")
)

// SpanName is the span name used for a dispatched event.
func SpanName(ev bill.Event) string {
	return "bill." + ev.Kind()
}

// transitionAttributes describes the state after ev. The bill text itself is
// not recorded, only whether it is usable.
func transitionAttributes(ev bill.Event, after bill.State, effects []bill.Effect) []attribute.KeyValue {
	_, numeric := after.Amount()
	committed := false
	for _, eff := range effects {
		if _, ok := eff.(bill.Commit); ok {
			committed = true
		}
	}
	return []attribute.KeyValue{
		KeyEvent.String(ev.Kind()),
		KeyBillValid.Bool(after.IsValid()),
		KeyBillNumeric.Bool(numeric),
		KeySplitCount.Int(after.SplitCount),
		KeyTipPercentage.Int(after.TipPercentage()),
		KeyTipAmount.Float64(after.TipAmount),
		KeyTotalPerPerson.Float64(after.TotalPerPerson),
		KeyCommitted.Bool(committed),
	}
}
