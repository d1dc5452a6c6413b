// Package trace records calculator transitions as OpenTelemetry spans.
// Export is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT nothing is created
// and the returned *Exporter is nil, which every method accepts.
package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tipcalc/internal/bill"
)

const (
	// EndpointEnv enables export when set (host:port or full URL).
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// ServiceNameEnv overrides the reported service name.
	ServiceNameEnv = "OTEL_SERVICE_NAME"

	defaultServiceName = "tipcalc"
	tracerName         = "tipcalc/bill"
)

// Exporter owns a tracer provider and turns transitions into spans.
type Exporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
	session  context.Context
	end      func()
}

// NewOTLPExporter creates an OTLP/HTTP exporter if EndpointEnv is set.
// Returns nil, nil when the endpoint is not configured.
func NewOTLPExporter(ctx context.Context) (*Exporter, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	var opt otlptracehttp.Option
	if strings.Contains(endpoint, "://") {
		opt = otlptracehttp.WithEndpointURL(endpoint)
	} else {
		opt = otlptracehttp.WithEndpoint(endpoint)
	}
	exporter, err := otlptracehttp.New(ctx, opt, otlptracehttp.WithInsecure())
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))

	return NewExporter(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewExporter wraps an existing provider. Tests pass one backed by a
// tracetest.SpanRecorder.
func NewExporter(provider *sdktrace.TracerProvider) *Exporter {
	return &Exporter{
		provider: provider,
		tracer:   provider.Tracer(tracerName),
		session:  context.Background(),
		end:      func() {},
	}
}

// StartSession opens a root span that parents every later transition span.
// EndSession closes it.
func (e *Exporter) StartSession(ctx context.Context) {
	if e == nil {
		return
	}
	ctx, span := e.tracer.Start(ctx, "tipcalc.session")
	e.session = ctx
	e.end = func() { span.End() }
}

// EndSession ends the root span opened by StartSession, if any.
func (e *Exporter) EndSession() {
	if e == nil {
		return
	}
	e.end()
	e.end = func() {}
	e.session = context.Background()
}

// Observer returns a bill.Observer that records one span per transition.
// A nil Exporter yields a nil Observer.
func (e *Exporter) Observer() bill.Observer {
	if e == nil {
		return nil
	}
	return bill.ObserverFunc(e.recordTransition)
}

func (e *Exporter) recordTransition(ev bill.Event, _, after bill.State, effects []bill.Effect) {
	_, span := e.tracer.Start(e.session, SpanName(ev),
		oteltrace.WithAttributes(transitionAttributes(ev, after, effects)...),
	)
	span.End()
}

// Shutdown ends any open session, then flushes and closes the provider.
func (e *Exporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.EndSession()
	return e.provider.Shutdown(ctx)
}
