package canvas

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/srediag/wob-shm/pkg/color"
)

// Renderer composites bars into images.
type Renderer struct {
	fill   FillOptions
	tracer trace.Tracer
}

// NewRenderer builds a Renderer; WithRadius, WithDebug and WithTracer apply.
func NewRenderer(opts ...Option) *Renderer {
	o := newOptions(opts)
	return &Renderer{
		fill:   FillOptions{Radius: o.radius, Debug: o.debug},
		tracer: o.tracer,
	}
}

var defaultRenderer = NewRenderer()

// Draw composites a bar into img with the default renderer.
func Draw(img *Image, colors color.Colors, dims Dimensions, percentage, maximum uint64) {
	defaultRenderer.Draw(img, colors, dims, percentage, maximum)
}

// Draw composites the bar in four passes, each inset from the last: the
// background over the whole box, the border, the background again inside
// the border, and the bar. A vertical bar is anchored to the bottom of its
// area.
//
// Each inset of o starts o*(dims.Width+1) pixels into the buffer, i.e. o rows
// down and o columns right when dims.Width is the image width.
func (r *Renderer) Draw(img *Image, colors color.Colors, dims Dimensions, percentage, maximum uint64) {
	_, span := r.tracer.Start(context.Background(), "canvas.Draw", trace.WithAttributes(
		attribute.String("orientation", dims.Orientation.String()),
		attribute.Int64("percentage", int64(percentage)),
		attribute.Int64("maximum", int64(maximum)),
	))
	defer span.End()

	barColor := colors.Value.PremultipliedARGB()
	backgroundColor := colors.Background.PremultipliedARGB()
	borderColor := colors.Border.PremultipliedARGB()

	data := img.Data()
	stride := img.Width
	inset := func(offset int) []uint32 {
		return tail(data, offset*(dims.Width+1))
	}

	r.fillRect(data, dims.Width, dims.Height, stride, backgroundColor)

	offset := dims.BorderOffset
	r.fillRect(inset(offset), img.Width-2*offset, img.Height-2*offset, stride, borderColor)

	offset += dims.BorderSize
	r.fillRect(inset(offset), img.Width-2*offset, img.Height-2*offset, stride, backgroundColor)

	offset += dims.BarPadding
	width, height := dims.BarSize(percentage, maximum)
	start := offset * (dims.Width + 1)
	if dims.Orientation == Vertical {
		full := clampZero(dims.Height - 2*offset)
		start += (full - height) * dims.Width
	}
	r.fillRect(tail(data, start), width, height, stride, barColor)

	draws.WithLabelValues(dims.Orientation.String()).Inc()
	internalLogger.tracef("drew %s bar %d/%d: %dx%d at %d", dims.Orientation, percentage, maximum, width, height, start)
}

func (r *Renderer) fillRect(pixels []uint32, width, height, stride int, argb uint32) {
	FillRectangle(pixels, clampZero(width), clampZero(height), stride, argb, r.fill)
}

// tail returns data[start:], or nil when start lies outside data.
func tail(data []uint32, start int) []uint32 {
	if start < 0 || start > len(data) {
		return nil
	}
	return data[start:]
}
