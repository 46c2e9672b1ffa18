package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	meterName  = "github.com/togglit/togglit-go"
	tracerName = "github.com/togglit/togglit-go"
)

// OTelProvider implements Provider using OpenTelemetry
type OTelProvider struct {
	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	fetches       metric.Int64Counter
	fallbacks     metric.Int64Counter
	fetchDuration metric.Float64Histogram
}

// NewOTel creates a provider backed by the global OpenTelemetry providers.
func NewOTel() (*OTelProvider, error) {
	return NewOTelWithProviders(otel.GetTracerProvider(), otel.GetMeterProvider())
}

// NewOTelWithProviders creates a provider backed by explicit providers.
func NewOTelWithProviders(tp trace.TracerProvider, mp metric.MeterProvider) (*OTelProvider, error) {
	provider := &OTelProvider{
		tracer: tp.Tracer(tracerName),
		meter:  mp.Meter(meterName),
	}

	if err := provider.initMetrics(); err != nil {
		return nil, err
	}

	return provider, nil
}

// initMetrics initializes all metrics
func (o *OTelProvider) initMetrics() error {
	var err error

	o.fetches, err = o.meter.Int64Counter(
		"togglit.fetch.requests",
		metric.WithDescription("Number of config fetches"),
	)
	if err != nil {
		return err
	}

	o.fallbacks, err = o.meter.Int64Counter(
		"togglit.fetch.fallbacks",
		metric.WithDescription("Number of fetches answered with the fallback config"),
	)
	if err != nil {
		return err
	}

	o.fetchDuration, err = o.meter.Float64Histogram(
		"togglit.fetch.duration",
		metric.WithDescription("Duration of config fetches"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	return nil
}

// StartSpan creates a new trace span
func (o *OTelProvider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, name, trace.WithAttributes(attrs...), trace.WithSpanKind(trace.SpanKindClient))
}

// RecordFetch records request count, fallback count and latency.
func (o *OTelProvider) RecordFetch(ctx context.Context, record FetchRecord) {
	attrs := metric.WithAttributes(
		attribute.String("endpoint", record.Endpoint),
		attribute.String("source", record.Source),
		attribute.String("reason", record.Reason),
	)

	o.fetches.Add(ctx, 1, attrs)
	if record.Source == "fallback" {
		o.fallbacks.Add(ctx, 1, attrs)
	}

	o.fetchDuration.Record(ctx, float64(record.Duration.Microseconds())/1000,
		metric.WithAttributes(attribute.String("endpoint", record.Endpoint)))
}
