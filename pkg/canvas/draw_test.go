package canvas

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/srediag/wob-shm/pkg/color"
)

var testColors = color.Colors{
	Value:      color.MustParseHex("FF0000FF"),
	Background: color.MustParseHex("000000FF"),
	Border:     color.MustParseHex("FFFFFFFF"),
}

const (
	valuePixel      = 0xffff0000
	backgroundPixel = 0xff000000
	borderPixel     = 0xffffffff
)

type DrawTestSuite struct {
	suite.Suite
	dir string
}

func (s *DrawTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *DrawTestSuite) TestHorizontal() {
	dims := Dimensions{Width: 100, Height: 20, BorderOffset: 2, BorderSize: 2, BarPadding: 2, Orientation: Horizontal}
	img, err := Create(dims.Width, dims.Height, WithShmDir(s.dir))
	s.Require().NoError(err)
	defer img.Destroy()

	before := counterValue(draws.WithLabelValues("horizontal"))
	Draw(img, testColors, dims, 50, 100)
	s.Equal(before+1, counterValue(draws.WithLabelValues("horizontal")))

	w, h := dims.BarSize(50, 100)
	s.Equal((100-2*(2+2+2))*50/100, w)
	s.Equal(8, h)

	// rounded-off outer corner
	s.Equal(uint32(0), img.At(0, 0))
	s.Equal(uint32(0), img.At(99, 19))
	// top of the border ring
	s.Equal(uint32(borderPixel), img.At(50, 2))
	s.Equal(uint32(borderPixel), img.At(50, 3))
	// inner background
	s.Equal(uint32(backgroundPixel), img.At(50, 4))
	// bar, and the unfilled rest of the bar area
	s.Equal(uint32(valuePixel), img.At(6+22, 10))
	s.Equal(uint32(backgroundPixel), img.At(60, 10))
	// outer background strip
	s.Equal(uint32(backgroundPixel), img.At(50, 0))

	// nothing spills into the reserved second frame
	for _, p := range img.Data()[len(img.Pixels()):] {
		s.Require().Equal(uint32(0), p)
	}
}

func (s *DrawTestSuite) TestVerticalIsBottomAnchored() {
	dims := Dimensions{Width: 20, Height: 100, BorderOffset: 2, BorderSize: 2, BarPadding: 2, Orientation: Vertical}
	img, err := Create(dims.Width, dims.Height, WithShmDir(s.dir))
	s.Require().NoError(err)
	defer img.Destroy()

	Draw(img, testColors, dims, 25, 100)
	w, h := dims.BarSize(25, 100)
	s.Equal(8, w)
	s.Equal(22, h)

	// bar occupies rows 72..93
	s.Equal(uint32(valuePixel), img.At(10, 83))
	s.Equal(uint32(backgroundPixel), img.At(10, 50))
	s.Equal(uint32(backgroundPixel), img.At(10, 70))
}

func (s *DrawTestSuite) TestRedrawShrinks() {
	dims := Dimensions{Width: 100, Height: 20, BorderOffset: 2, BorderSize: 2, BarPadding: 2}
	bar, err := NewBar(dims, testColors, WithShmDir(s.dir))
	s.Require().NoError(err)
	defer bar.Close()

	s.Require().NoError(bar.Render(100, 100))
	s.Equal(uint32(valuePixel), bar.Image().At(60, 10))
	s.Require().NoError(bar.Render(10, 100))
	s.Equal(uint32(backgroundPixel), bar.Image().At(60, 10))

	bar.SetColors(color.Colors{Value: color.White, Background: color.Black, Border: color.White})
	s.Require().NoError(bar.Render(100, 100))
	s.Equal(uint32(borderPixel), bar.Image().At(60, 10))

	fd := bar.Fd()
	s.GreaterOrEqual(fd, 0)
	s.Require().NoError(bar.Close())
	s.ErrorIs(bar.Render(1, 2), ErrBarClosed)
	s.Equal(-1, bar.Fd())
	s.NoError(bar.Close())
}

func (s *DrawTestSuite) TestDebugDump() {
	var out bytes.Buffer
	dims := Dimensions{Width: 10, Height: 8, BorderOffset: 1, BorderSize: 1, BarPadding: 1}
	img, err := Create(dims.Width, dims.Height, WithShmDir(s.dir))
	s.Require().NoError(err)
	defer img.Destroy()

	NewRenderer(WithRadius(0), WithDebug(&out)).Draw(img, testColors, dims, 1, 1)

	dump := func(w, h int) string {
		return "\n" + strings.Repeat(strings.Repeat("0", w)+"\n", h)
	}
	s.Equal(dump(10, 8)+dump(8, 6)+dump(6, 4)+dump(4, 2), out.String())
	s.Equal(uint32(valuePixel), img.At(3, 3))
	s.Equal(uint32(backgroundPixel), img.At(0, 0))
	s.Equal(uint32(borderPixel), img.At(1, 1))
}

func TestDrawTestSuite(t *testing.T) {
	suite.Run(t, new(DrawTestSuite))
}

func TestBarSizeClamps(t *testing.T) {
	dims := Dimensions{Width: 10, Height: 10, BorderOffset: 4, BorderSize: 4, BarPadding: 4}
	w, h := dims.BarSize(1, 1)
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)

	dims = Dimensions{Width: 100, Height: 20}
	w, _ = dims.BarSize(150, 100)
	assert.Equal(t, 100, w)
	w, _ = dims.BarSize(5, 0)
	assert.Equal(t, 0, w)

	dims.Orientation = Vertical
	w, h = dims.BarSize(1, 3)
	assert.Equal(t, 100, w)
	assert.Equal(t, 6, h)
}

func TestBarSizeLargeMaximum(t *testing.T) {
	dims := Dimensions{Width: 100, Height: 20}
	w, _ := dims.BarSize(math.MaxUint64/2, math.MaxUint64)
	assert.Equal(t, 49, w)
	w, _ = dims.BarSize(math.MaxUint64-1, math.MaxUint64)
	assert.Equal(t, 99, w)
	w, _ = dims.BarSize(math.MaxUint64, math.MaxUint64)
	assert.Equal(t, 100, w)

	dims.Orientation = Vertical
	_, h := dims.BarSize(3*(math.MaxUint64/4), math.MaxUint64)
	assert.Equal(t, 14, h)
}

func TestDrawOversizedInsetsDoNotPanic(t *testing.T) {
	img, err := Create(10, 4, WithShmDir(t.TempDir()))
	require.NoError(t, err)
	defer img.Destroy()

	dims := Dimensions{Width: 10, Height: 4, BorderOffset: 3, BorderSize: 3, BarPadding: 3, Orientation: Vertical}
	assert.NotPanics(t, func() {
		Draw(img, testColors, dims, 1, 1)
	})
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, o)
	o, err = ParseOrientation("horizontal")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, o)
	_, err = ParseOrientation("diagonal")
	assert.Error(t, err)
	assert.Equal(t, "Orientation(7)", Orientation(7).String())
}
