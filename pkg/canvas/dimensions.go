package canvas

import (
	"fmt"
	"math/bits"
	"strings"
)

// Orientation is the axis along which the bar grows.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "horizontal" or "vertical", case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Dimensions describe the nested rectangles of a bar: the outer box, the
// border ring BorderOffset in from it and BorderSize thick, and the bar
// BarPadding in from the ring.
type Dimensions struct {
	Width        int
	Height       int
	BorderOffset int
	BorderSize   int
	BarPadding   int
	Orientation  Orientation
}

// barInset is the distance from the outer edge to the bar.
func (d Dimensions) barInset() int {
	return d.BorderOffset + d.BorderSize + d.BarPadding
}

// BarSize returns the bar's width and height for percentage/maximum. The
// fraction is clamped to [0, 1] and a zero maximum yields an empty bar.
func (d Dimensions) BarSize(percentage, maximum uint64) (width, height int) {
	offset := d.barInset()
	width = clampZero(d.Width - 2*offset)
	height = clampZero(d.Height - 2*offset)
	if maximum == 0 {
		percentage = 0
		maximum = 1
	}
	if percentage > maximum {
		percentage = maximum
	}
	switch d.Orientation {
	case Vertical:
		height = scale(height, percentage, maximum)
	default:
		width = scale(width, percentage, maximum)
	}
	return width, height
}

// scale returns n*p/m rounded down, with a 128-bit intermediate. p <= m.
func scale(n int, p, m uint64) int {
	hi, lo := bits.Mul64(uint64(n), p)
	q, _ := bits.Div64(hi, lo, m)
	return int(q)
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
