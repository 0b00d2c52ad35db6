package route

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for wayfind applications.
const defaultTracerName = "wayfind"

// TraceConfig configures the OpenTelemetry evaluation observer.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "wayfind").
	TracerName string

	// AttributeExtractor extracts custom attributes per evaluation.
	AttributeExtractor func(ev Evaluation) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry evaluation observer.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithTraceAttributes sets a custom attribute extractor.
func WithTraceAttributes(extractor func(ev Evaluation) []attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.AttributeExtractor = extractor
	}
}

// TraceObserver records one span per outlet evaluation.
type TraceObserver struct {
	cfg TraceConfig
}

// NewTraceObserver creates an OpenTelemetry observer using the global
// tracer provider.
func NewTraceObserver(opts ...TraceOption) *TraceObserver {
	cfg := TraceConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)
	return &TraceObserver{cfg: cfg}
}

// ObserveEvaluation implements Observer. The span is backdated to the
// evaluation's start so its duration matches Match's.
func (t *TraceObserver) ObserveEvaluation(ev Evaluation) {
	start := time.Now().Add(-ev.Duration)

	_, span := t.cfg.tracer.Start(context.Background(), "route.evaluate",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithTimestamp(start),
	)

	span.SetAttributes(
		attribute.String("route.location", ev.Location),
		attribute.String("route.pattern", ev.Pattern),
		attribute.Bool("route.matched", ev.Matched),
	)
	if t.cfg.AttributeExtractor != nil {
		span.SetAttributes(t.cfg.AttributeExtractor(ev)...)
	}

	if !ev.Matched {
		span.SetStatus(codes.Error, "no pattern matched")
	}

	span.End(trace.WithTimestamp(start.Add(ev.Duration)))
}
