package canvas

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// DefaultRadius is the corner radius used when none is configured.
const DefaultRadius = 15

// FillOptions tune FillRectangle.
type FillOptions struct {
	// Radius of the rounded corners.
	Radius float64
	// Debug, when set, receives a text rendering of the mask: '0' for
	// filled pixels, ' ' for cleared ones, one line per row.
	Debug io.Writer
}

// FillRectangle writes color to every pixel of the width x height region at
// the start of pixels that lies inside a rounded rectangle anchored at (0, 0),
// and zero to the pixels outside it. Consecutive rows start stride pixels
// apart. Rows that would run past the end of pixels are not written, and no
// row writes beyond its own stride.
func FillRectangle(pixels []uint32, width, height, stride int, color uint32, opts FillOptions) {
	if width <= 0 || height <= 0 || stride <= 0 {
		return
	}
	if width > stride {
		width = stride
	}

	var dump *bytebufferpool.ByteBuffer
	if opts.Debug != nil {
		dump = bytebufferpool.Get()
		defer bytebufferpool.Put(dump)
		_ = dump.WriteByte('\n')
	}

	fw, fh := float64(width), float64(height)
	for y := 0; y < height; y++ {
		start := y * stride
		if start+width > len(pixels) {
			internalLogger.debugf("fill clipped at row %d of %d: buffer holds %d pixels", y, height, len(pixels))
			break
		}
		row := pixels[start : start+width]
		fy := float64(y)
		for x := range row {
			if OutsideRoundedRect(float64(x), fy, 0, 0, fw, fh, opts.Radius) {
				row[x] = 0
				if dump != nil {
					_ = dump.WriteByte(' ')
				}
			} else {
				row[x] = color
				if dump != nil {
					_ = dump.WriteByte('0')
				}
			}
		}
		if dump != nil {
			_ = dump.WriteByte('\n')
		}
	}

	if dump != nil {
		if _, err := opts.Debug.Write(dump.B); err != nil {
			internalLogger.warnf("fill debug dump failed: %v", err)
		}
	}
}
