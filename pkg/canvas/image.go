// Package canvas draws progress bars into shared memory images.
//
// An Image is a width x height ARGB8888 pixel buffer, premultiplied alpha,
// row-major with a stride of Width pixels, backed by an anonymous shared
// memory object whose descriptor can be handed to a display server. Twice the
// pixel size is reserved so the mapping can hold a second frame.
package canvas

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/srediag/wob-shm/pkg/shm"
)

const bytesPerPixel = 4

// checkSize rejects geometry whose double-sized reservation cannot be
// expressed in an int.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt/(2*bytesPerPixel)/height {
		return &shm.AllocationError{
			Op:  "size",
			Err: fmt.Errorf("%w: %dx%d image", shm.ErrInvalidSize, width, height),
		}
	}
	return nil
}

// Image is a shared memory backed ARGB8888 pixel buffer.
type Image struct {
	Width       int
	Height      int
	SizeInBytes int

	buf  *shm.Buffer
	data []uint32
}

// Create allocates an image of width x height pixels. Any failure is logged
// and returned as an *shm.AllocationError; no resources are held afterwards.
func Create(width, height int, opts ...Option) (*Image, error) {
	o := newOptions(opts)
	if err := checkSize(width, height); err != nil {
		allocationFailures.WithLabelValues("size").Inc()
		internalLogger.errorf("create %dx%d image: %s", width, height, err.Error())
		return nil, err
	}
	size := width * height * bytesPerPixel
	buf, err := shm.Open(context.Background(), shm.OpenOptions{
		Size:       size * 2,
		Dir:        o.shmDir,
		Prefix:     o.namePrefix,
		ProbeLimit: o.probeLimit,
		Meter:      o.meter,
		Tracer:     o.tracer,
	})
	if err != nil {
		var aerr *shm.AllocationError
		if errors.As(err, &aerr) {
			allocationFailures.WithLabelValues(aerr.Op).Inc()
		}
		internalLogger.errorf("create %dx%d image: %s", width, height, err.Error())
		return nil, err
	}
	imagesAllocated.Inc()
	internalLogger.debugf("created %dx%d image on fd %d, %d bytes reserved", width, height, buf.Fd(), buf.Size())
	return &Image{
		Width:       width,
		Height:      height,
		SizeInBytes: size,
		buf:         buf,
		data:        buf.Words(),
	}, nil
}

// Destroy unmaps the image and closes its descriptor. It is safe to call
// more than once.
func (img *Image) Destroy() error {
	if img == nil || img.buf == nil {
		return nil
	}
	err := img.buf.Close()
	img.buf = nil
	img.data = nil
	if err != nil {
		internalLogger.warnf("destroy image: %v", err)
		return err
	}
	imagesDestroyed.Inc()
	return nil
}

// Pixels returns the visible width x height pixels.
func (img *Image) Pixels() []uint32 {
	n := img.Width * img.Height
	if n > len(img.data) {
		return img.data
	}
	return img.data[:n:n]
}

// Data returns every reserved pixel, visible frame first.
func (img *Image) Data() []uint32 {
	return img.data
}

// Capacity returns the reserved size in bytes.
func (img *Image) Capacity() int {
	if img.buf == nil {
		return 0
	}
	return img.buf.Size()
}

// Fd returns the descriptor of the backing shm object, -1 after Destroy.
func (img *Image) Fd() int {
	if img == nil || img.buf == nil {
		return -1
	}
	return img.buf.Fd()
}

// Stride returns the row stride in bytes.
func (img *Image) Stride() int {
	return img.Width * bytesPerPixel
}

// At returns the packed pixel at (x, y).
func (img *Image) At(x, y int) uint32 {
	return img.data[y*img.Width+x]
}

// Frames splits the reservation into a front and a back frame.
func (img *Image) Frames() (*shm.FramePool, error) {
	if img.buf == nil {
		return nil, shm.ErrBufferClosed
	}
	return img.buf.Frames(2)
}

// RGBA copies the visible pixels into an image.RGBA, which shares the
// premultiplied representation.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for i, p := range img.Pixels() {
		o := i * 4
		out.Pix[o+0] = uint8(p >> 16)
		out.Pix[o+1] = uint8(p >> 8)
		out.Pix[o+2] = uint8(p)
		out.Pix[o+3] = uint8(p >> 24)
	}
	return out
}
