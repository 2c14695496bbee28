// Package color represents single colors that can be viewed in either the RGB
// or the CIE Lab color space.
package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"strings"
)

// Space names a color space a Color can be expressed in.
type Space string

const (
	RGB Space = "RGB"
	LAB Space = "LAB"
)

var (
	// ErrInvalidColorSpace is returned when a color space is not recognized.
	ErrInvalidColorSpace = errors.New("invalid color space")
	// ErrOutOfGamut is returned for Lab values with no sRGB equivalent.
	ErrOutOfGamut = errors.New("color out of sRGB gamut")
)

// gamutTolerance is the largest Lab distance allowed between a Lab value and
// the round trip through its clamped RGB conversion.
const gamutTolerance = 2.0

// ParseSpace parses a color space name, ignoring case.
func ParseSpace(s string) (Space, error) {
	switch Space(strings.ToUpper(s)) {
	case RGB:
		return RGB, nil
	case LAB:
		return LAB, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColorSpace, s)
}

// Triple holds the three channel values of a color or pixel.
type Triple [3]float64

// Mul returns the elementwise product of t and o.
func (t Triple) Mul(o Triple) Triple {
	return Triple{t[0] * o[0], t[1] * o[1], t[2] * o[2]}
}

// Add returns the elementwise sum of t and o.
func (t Triple) Add(o Triple) Triple {
	return Triple{t[0] + o[0], t[1] + o[1], t[2] + o[2]}
}

// Color is an immutable color. Both its RGB and Lab representations are
// computed on construction so they always describe the same color.
type Color struct {
	rgb Triple
	lab Triple
}

// New creates a Color from a value expressed in space. RGB channels are on
// the 0-255 scale, Lab lightness on the 0-100 scale.
//
// Lab values that fall outside the sRGB gamut are rejected with
// ErrOutOfGamut, since clamping their RGB view would describe a different
// color than the Lab one.
func New(value Triple, space Space) (Color, error) {
	switch space {
	case RGB:
		return Color{rgb: value, lab: RGBToLab(value)}, nil
	case LAB:
		rgb := LabToRGB(value)
		if d := distance(value, RGBToLab(rgb)); d > gamutTolerance {
			return Color{}, fmt.Errorf("%w: lab(%.1f, %.1f, %.1f) is off by %.1f", ErrOutOfGamut, value[0], value[1], value[2], d)
		}
		return Color{rgb: rgb, lab: value}, nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorSpace, space)
}

// MustNew is like New but panics on error.
func MustNew(value Triple, space Space) Color {
	c, err := New(value, space)
	if err != nil {
		panic(err)
	}
	return c
}

// FromStd converts a standard library color, dropping alpha.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return MustNew(Triple{float64(n.R), float64(n.G), float64(n.B)}, RGB)
}

// Array returns the color's channel values in the given space.
func (c Color) Array(space Space) (Triple, error) {
	switch space {
	case RGB:
		return c.rgb, nil
	case LAB:
		return c.lab, nil
	}
	return Triple{}, fmt.Errorf("%w: %q", ErrInvalidColorSpace, space)
}

// Std returns the color as an opaque 8-bit NRGBA value.
func (c Color) Std() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: to8(c.rgb[0]), G: to8(c.rgb[1]), B: to8(c.rgb[2]), A: 255}
}

// Hex returns the color as a #rrggbb string.
func (c Color) Hex() string {
	n := c.Std()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func (c Color) String() string {
	return fmt.Sprintf("%s lab(%.1f, %.1f, %.1f)", c.Hex(), c.lab[0], c.lab[1], c.lab[2])
}

func distance(a, b Triple) float64 {
	d0, d1, d2 := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(d0*d0 + d1*d1 + d2*d2)
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
