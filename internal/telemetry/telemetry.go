package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Provider defines the interface for telemetry providers
type Provider interface {
	// StartSpan starts a span as a child of any span already in ctx.
	StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span)

	// RecordFetch records the outcome of one config fetch.
	RecordFetch(ctx context.Context, record FetchRecord)
}

// FetchRecord describes a finished fetch.
type FetchRecord struct {
	Endpoint string
	Source   string
	Reason   string
	Duration time.Duration
}
