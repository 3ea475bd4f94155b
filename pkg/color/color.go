// Package color holds the float RGBA colours of a bar and their packed
// premultiplied ARGB8888 form.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Colors are the three colours a bar is drawn with.
type Colors struct {
	Value      Color
	Background Color
	Border     Color
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// Premultiply returns c with the colour channels scaled by alpha.
func (c Color) Premultiply() Color {
	return Color{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// ARGB packs c as 0xAARRGGBB. Channels are clamped to [0, 1] and rounded.
func (c Color) ARGB() uint32 {
	return channel(c.A)<<24 | channel(c.R)<<16 | channel(c.G)<<8 | channel(c.B)
}

// PremultipliedARGB is the pixel value stored in an image buffer.
func (c Color) PremultipliedARGB() uint32 {
	return c.Premultiply().ARGB()
}

func channel(v float64) uint32 {
	return uint32(math.Round(math.Max(0, math.Min(1, v)) * 0xff))
}

// Hex formats c as RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X%02X", channel(c.R), channel(c.G), channel(c.B), channel(c.A))
}

// ParseHex parses RRGGBB or RRGGBBAA, with or without a leading '#'.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	alpha := 1.0
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 0xff
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("invalid color %q: want RRGGBB or RRGGBBAA", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// MustParseHex is ParseHex for literals; it panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
