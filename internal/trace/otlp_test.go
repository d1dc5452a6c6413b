package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"tipcalc/internal/bill"
)

func newRecordingExporter(t *testing.T) (*Exporter, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return NewExporter(tp), sr
}

func attrMap(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	e, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, e)

	// Nil exporter is inert.
	assert.Nil(t, e.Observer())
	e.StartSession(context.Background())
	e.EndSession()
	assert.NoError(t, e.Shutdown(context.Background()))
}

func TestExporter_RecordsOneSpanPerTransition(t *testing.T) {
	e, sr := newRecordingExporter(t)

	m := bill.NewMachine()
	m.Observer = e.Observer()
	m.Dispatch(bill.EditBill{Text: "50.00"})
	m.Dispatch(bill.IncrementSplit{})
	m.Dispatch(bill.MoveSlider{Position: 0.18})
	m.Dispatch(bill.Submit{})

	spans := sr.Ended()
	require.Len(t, spans, 4)
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name()
	}
	assert.Equal(t, []string{
		"bill.edit_bill", "bill.increment_split", "bill.move_slider", "bill.submit",
	}, names)

	slider := attrMap(spans[2].Attributes())
	assert.Equal(t, "move_slider", slider[KeyEvent].AsString())
	assert.Equal(t, int64(2), slider[KeySplitCount].AsInt64())
	assert.Equal(t, int64(18), slider[KeyTipPercentage].AsInt64())
	assert.InDelta(t, 9.0, slider[KeyTipAmount].AsFloat64(), 1e-9)
	assert.InDelta(t, 29.5, slider[KeyTotalPerPerson].AsFloat64(), 1e-9)
	assert.True(t, slider[KeyBillNumeric].AsBool())
	assert.False(t, slider[KeyCommitted].AsBool())

	submit := attrMap(spans[3].Attributes())
	assert.True(t, submit[KeyCommitted].AsBool())
}

func TestExporter_SessionParentsTransitions(t *testing.T) {
	e, sr := newRecordingExporter(t)
	e.StartSession(context.Background())

	obs := e.Observer()
	obs.OnTransition(bill.EditBill{Text: "abc"}, bill.New(), bill.New(), nil)
	e.EndSession()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	child, root := spans[0], spans[1]
	assert.Equal(t, "tipcalc.session", root.Name())
	assert.Equal(t, root.SpanContext().SpanID(), child.Parent().SpanID())
	assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
}

func TestExporter_ShutdownEndsSession(t *testing.T) {
	e, sr := newRecordingExporter(t)
	e.StartSession(context.Background())
	require.NoError(t, e.Shutdown(context.Background()))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tipcalc.session", spans[0].Name())
}
