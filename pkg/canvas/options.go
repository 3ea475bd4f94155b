package canvas

import (
	"io"
	"os"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/srediag/wob-shm/pkg/canvas"

type options struct {
	shmDir     string
	namePrefix string
	probeLimit int
	radius     float64
	debug      io.Writer
	meter      metric.Meter
	tracer     trace.Tracer
}

// Option configures Create, NewRenderer and NewBar.
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{radius: DefaultRadius}
	if debugMode {
		o.debug = os.Stderr
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.tracer == nil {
		o.tracer = tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}
	return o
}

// WithShmDir sets the directory shm objects are created in.
func WithShmDir(dir string) Option {
	return func(o *options) { o.shmDir = dir }
}

// WithNamePrefix sets the shm object name prefix.
func WithNamePrefix(prefix string) Option {
	return func(o *options) { o.namePrefix = prefix }
}

// WithProbeLimit bounds the number of shm names tried.
func WithProbeLimit(n int) Option {
	return func(o *options) { o.probeLimit = n }
}

// WithRadius sets the corner radius of every filled rectangle.
func WithRadius(r float64) Option {
	return func(o *options) { o.radius = r }
}

// WithDebug dumps a text rendering of every fill to w. nil disables it.
func WithDebug(w io.Writer) Option {
	return func(o *options) { o.debug = w }
}

// WithMeter sets the OTel meter used by the allocator.
func WithMeter(m metric.Meter) Option {
	return func(o *options) { o.meter = m }
}

// WithTracer sets the OTel tracer used by the allocator and renderer.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}
