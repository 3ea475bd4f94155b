package shm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	internalshm "github.com/srediag/wob-shm/internal/shm"
)

const instrumentationName = "github.com/srediag/wob-shm/pkg/shm"

var (
	ErrNameSpaceExhausted = internalshm.ErrNameSpaceExhausted
	ErrNoSpaceLeft        = internalshm.ErrNoSpaceLeft
	ErrInvalidSize        = internalshm.ErrInvalidSize
	ErrUnsupported        = internalshm.ErrUnsupported
	ErrBufferClosed       = errors.New("buffer closed")
)

// AllocationError is returned when any step of building a shared memory
// buffer fails. Op names the failing step (size, context, shm_open,
// shm_unlink, statfs, ftruncate, mmap).
type AllocationError struct {
	Op  string
	Err error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%s() failed: %s", e.Op, e.Err.Error())
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// Buffer is an anonymous shared memory mapping.
type Buffer struct {
	mu     sync.Mutex
	region *internalshm.MappedRegion
	id     uint64
	ins    instruments
}

// OpenOptions defines options for creating a shared memory buffer.
type OpenOptions struct {
	// Size is the total mapping size in bytes.
	Size int
	// Dir is the directory holding shm objects, /dev/shm by default.
	Dir string
	// Prefix is the object name prefix, "wob" by default.
	Prefix string
	// ProbeLimit bounds the candidate names tried, 255 by default.
	ProbeLimit int
	Meter      metric.Meter
	Tracer     trace.Tracer
}

type instruments struct {
	allocations metric.Int64Counter
	failures    metric.Int64Counter
	bytes       metric.Int64UpDownCounter
}

func newInstruments(m metric.Meter) instruments {
	var ins instruments
	var err error
	if ins.allocations, err = m.Int64Counter("wob.shm.allocations",
		metric.WithDescription("Shared memory buffers created.")); err != nil {
		ins.allocations, _ = metricnoop.Meter{}.Int64Counter("")
	}
	if ins.failures, err = m.Int64Counter("wob.shm.allocation_failures",
		metric.WithDescription("Shared memory buffer creations that failed.")); err != nil {
		ins.failures, _ = metricnoop.Meter{}.Int64Counter("")
	}
	if ins.bytes, err = m.Int64UpDownCounter("wob.shm.mapped_bytes",
		metric.WithUnit("By"), metric.WithDescription("Bytes currently mapped.")); err != nil {
		ins.bytes, _ = metricnoop.Meter{}.Int64UpDownCounter("")
	}
	return ins
}

// Open creates a shared memory buffer of opts.Size bytes. On failure no
// resources are held and the error is an *AllocationError.
func Open(ctx context.Context, opts OpenOptions) (*Buffer, error) {
	meter := opts.Meter
	if meter == nil {
		meter = metricnoop.NewMeterProvider().Meter(instrumentationName)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = tracenoop.NewTracerProvider().Tracer(instrumentationName)
	}
	ins := newInstruments(meter)

	ctx, span := tracer.Start(ctx, "shm.Open", trace.WithAttributes(attribute.Int("shm.size", opts.Size)))
	defer span.End()

	region, err := internalshm.MapAnonymous(ctx, internalshm.MapOptions{
		Dir:        opts.Dir,
		Prefix:     opts.Prefix,
		ProbeLimit: opts.ProbeLimit,
		Size:       opts.Size,
	})
	if err != nil {
		aerr := toAllocationError(err)
		ins.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("op", aerr.Op)))
		span.RecordError(aerr)
		span.SetStatus(codes.Error, aerr.Op)
		return nil, aerr
	}
	ins.allocations.Add(ctx, 1)
	ins.bytes.Add(ctx, int64(region.Size))

	b := &Buffer{region: region, ins: ins}
	b.id = register(b)
	span.SetAttributes(attribute.Int("shm.fd", region.Fd), attribute.String("shm.name", region.Name))
	return b, nil
}

func toAllocationError(err error) *AllocationError {
	var opErr *internalshm.OpError
	if errors.As(err, &opErr) {
		return &AllocationError{Op: opErr.Op, Err: opErr.Err}
	}
	return &AllocationError{Op: "shm_open", Err: err}
}

// Bytes returns the whole mapping, or nil once closed.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.region == nil {
		return nil
	}
	return b.region.Addr
}

// Words returns the mapping as native-endian 32-bit words.
func (b *Buffer) Words() []uint32 {
	return internalshm.Uint32s(b.Bytes())
}

// Fd returns the descriptor of the backing object, -1 once closed.
func (b *Buffer) Fd() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.region == nil {
		return -1
	}
	return b.region.Fd
}

// Size returns the mapping size in bytes.
func (b *Buffer) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.region == nil {
		return 0
	}
	return b.region.Size
}

// Close unmaps the buffer and closes its descriptor. Closing twice is a no-op.
func (b *Buffer) Close() error {
	b.mu.Lock()
	region := b.region
	b.region = nil
	b.mu.Unlock()
	if region == nil {
		return nil
	}
	unregister(b.id)
	size := region.Size
	err := internalshm.UnmapRegion(context.Background(), region)
	b.ins.bytes.Add(context.Background(), -int64(size))
	return err
}
