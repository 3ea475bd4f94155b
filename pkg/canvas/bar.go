package canvas

import (
	"errors"

	"github.com/srediag/wob-shm/api"
	"github.com/srediag/wob-shm/pkg/color"
)

var ErrBarClosed = errors.New("bar closed")

var (
	_ api.Bar     = (*Bar)(nil)
	_ api.Surface = (*Image)(nil)
)

// Bar ties an image to the colours and geometry it is drawn with.
type Bar struct {
	img      *Image
	colors   color.Colors
	dims     Dimensions
	renderer *Renderer
}

// NewBar allocates a dims.Width x dims.Height image for a bar.
func NewBar(dims Dimensions, colors color.Colors, opts ...Option) (*Bar, error) {
	img, err := Create(dims.Width, dims.Height, opts...)
	if err != nil {
		return nil, err
	}
	return &Bar{
		img:      img,
		colors:   colors,
		dims:     dims,
		renderer: NewRenderer(opts...),
	}, nil
}

// Render redraws the bar at percentage/maximum.
func (b *Bar) Render(percentage, maximum uint64) error {
	if b.img == nil {
		return ErrBarClosed
	}
	b.renderer.Draw(b.img, b.colors, b.dims, percentage, maximum)
	return nil
}

// SetColors changes the colours used by later renders.
func (b *Bar) SetColors(colors color.Colors) {
	b.colors = colors
}

// Image returns the backing image, nil after Close.
func (b *Bar) Image() *Image {
	return b.img
}

// Fd returns the descriptor to hand to the display layer.
func (b *Bar) Fd() int {
	return b.img.Fd()
}

// Close destroys the image.
func (b *Bar) Close() error {
	if b.img == nil {
		return nil
	}
	err := b.img.Destroy()
	b.img = nil
	return err
}
