package canvas

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sentinel = 0xaaaaaaaa

func filled(n int) []uint32 {
	buf := make([]uint32, n)
	for i := range buf {
		buf[i] = sentinel
	}
	return buf
}

func TestFillRectangleRespectsStride(t *testing.T) {
	const w, h, stride = 3, 4, 5
	buf := filled(h * stride)
	FillRectangle(buf, w, h, stride, 0xff112233, FillOptions{})
	for y := 0; y < h; y++ {
		for x := 0; x < stride; x++ {
			got := buf[y*stride+x]
			if x < w {
				assert.Equal(t, uint32(0xff112233), got, "(%d,%d)", x, y)
			} else {
				assert.Equal(t, uint32(sentinel), got, "(%d,%d) written past row width", x, y)
			}
		}
	}
}

func TestFillRectangleClearsCorners(t *testing.T) {
	const w, h = 40, 30
	buf := filled(w * h)
	FillRectangle(buf, w, h, w, 0xffffffff, FillOptions{Radius: DefaultRadius})

	assert.Equal(t, uint32(0), buf[0])
	assert.Equal(t, uint32(0), buf[w-1])
	assert.Equal(t, uint32(0), buf[(h-1)*w])
	assert.Equal(t, uint32(0), buf[h*w-1])
	assert.Equal(t, uint32(0xffffffff), buf[15*w+20])
	assert.Equal(t, uint32(0xffffffff), buf[20])
	assert.Equal(t, uint32(0xffffffff), buf[15*w])
}

func TestFillRectangleClipsToBuffer(t *testing.T) {
	buf := filled(10)
	assert.NotPanics(t, func() {
		FillRectangle(buf, 4, 5, 4, 1, FillOptions{})
	})
	assert.Equal(t, []uint32{1, 1, 1, 1, 1, 1, 1, 1, sentinel, sentinel}, buf)

	assert.NotPanics(t, func() {
		FillRectangle(nil, 4, 5, 4, 1, FillOptions{})
		FillRectangle(buf, -1, 5, 4, 1, FillOptions{})
		FillRectangle(buf, 4, 5, 0, 1, FillOptions{})
	})
}

func TestFillRectangleWidthBeyondStride(t *testing.T) {
	buf := filled(6)
	FillRectangle(buf, 5, 2, 3, 2, FillOptions{})
	assert.Equal(t, []uint32{2, 2, 2, 2, 2, 2}, buf)
}

func TestFillRectangleDebugDump(t *testing.T) {
	var out bytes.Buffer
	buf := filled(6)
	FillRectangle(buf, 3, 2, 3, 9, FillOptions{Debug: &out})
	assert.Equal(t, "\n000\n000\n", out.String())

	out.Reset()
	FillRectangle(filled(16), 4, 4, 4, 9, FillOptions{Radius: 3, Debug: &out})
	// the mask spans [0, w] so the far edges keep one more column and row
	assert.Equal(t, "\n    \n 000\n 000\n 000\n", out.String())

	out.Reset()
	FillRectangle(buf, 3, 2, 3, 9, FillOptions{})
	assert.Empty(t, out.String())
}
