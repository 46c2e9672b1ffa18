package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// NoOpProvider is a telemetry provider that does nothing
type NoOpProvider struct {
	tracer trace.Tracer
}

// NewNoOp creates a new no-op telemetry provider
func NewNoOp() *NoOpProvider {
	return &NoOpProvider{tracer: noop.NewTracerProvider().Tracer(tracerName)}
}

// StartSpan returns a non-recording span
func (n *NoOpProvider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return n.tracer.Start(ctx, name)
}

// RecordFetch does nothing
func (n *NoOpProvider) RecordFetch(ctx context.Context, record FetchRecord) {}
