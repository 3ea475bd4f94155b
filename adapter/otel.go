package adapter

import (
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/srediag/wob-shm/pkg/canvas"
)

const instrumentationName = "github.com/srediag/wob-shm"

// OTel carries the providers wob-shm reports to. Nil providers fall back to noop.
type OTel struct {
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// Meter returns the wob-shm meter.
func (o OTel) Meter() metric.Meter {
	if o.MeterProvider == nil {
		return metricnoop.NewMeterProvider().Meter(instrumentationName)
	}
	return o.MeterProvider.Meter(instrumentationName)
}

// Tracer returns the wob-shm tracer.
func (o OTel) Tracer() trace.Tracer {
	if o.TracerProvider == nil {
		return tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}
	return o.TracerProvider.Tracer(instrumentationName)
}

// Options returns canvas options wiring the providers in.
func (o OTel) Options() []canvas.Option {
	return []canvas.Option{canvas.WithMeter(o.Meter()), canvas.WithTracer(o.Tracer())}
}
