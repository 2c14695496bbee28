package image

import (
	"image"
	"image/color"
	"math"

	rcolor "github.com/mmuldo/recolor/color"
)

// Image is a height x width x 3 array of float channel values, stored row
// major. Channels are in RGB order on the 0-255 scale unless noted
// otherwise. Values are not clamped.
type Image struct {
	Width, Height int
	Pix           []float64
}

// New allocates a zeroed w x h Image.
func New(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]float64, w*h*3)}
}

// FromImage converts img to 8-bit scaled RGB floats. Alpha is dropped.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			n := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			f.Set(x, y, rcolor.Triple{float64(n.R), float64(n.G), float64(n.B)})
		}
	}
	return f
}

func (f *Image) offset(x, y int) int { return (y*f.Width + x) * 3 }

// At returns the channels of the pixel at (x, y).
func (f *Image) At(x, y int) rcolor.Triple {
	i := f.offset(x, y)
	return rcolor.Triple{f.Pix[i], f.Pix[i+1], f.Pix[i+2]}
}

// Set stores the channels of the pixel at (x, y).
func (f *Image) Set(x, y int, t rcolor.Triple) {
	i := f.offset(x, y)
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = t[0], t[1], t[2]
}

// Clone returns a deep copy of f.
func (f *Image) Clone() *Image {
	c := &Image{Width: f.Width, Height: f.Height, Pix: make([]float64, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// Map returns a new Image with fn applied to every pixel.
func (f *Image) Map(fn func(rcolor.Triple) rcolor.Triple) *Image {
	out := New(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out.Set(x, y, fn(f.At(x, y)))
		}
	}
	return out
}

// ToNRGBA encodes f for display, rounding and clamping each channel to
// [0, 255].
func (f *Image) ToNRGBA() *image.NRGBA {
	o := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := f.At(x, y)
			o.SetNRGBA(x, y, color.NRGBA{R: clamp8(t[0]), G: clamp8(t[1]), B: clamp8(t[2]), A: 255})
		}
	}
	return o
}

func clamp8(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
