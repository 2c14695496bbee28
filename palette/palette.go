// Package palette extracts named representative colors from images.
package palette

import (
	"errors"
	"fmt"
	"github.com/esimov/colorquant"
	"github.com/mmuldo/recolor/cluster"
	"github.com/mmuldo/recolor/color"
	rimage "github.com/mmuldo/recolor/image"
	"image"
	"image/draw"
	"sort"
)

// ErrNotEnoughColors is returned when an image quantizes to no usable colors.
var ErrNotEnoughColors = errors.New("not enough colors")

// Palette maps a color name, as labelled by a cluster model, to the color
// that represents it in an image.
type Palette map[string]color.Color

// Names returns the palette's names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for n := range p {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Quantizer reduces img to at most num colors, drawing the result into dst.
type Quantizer interface {
	Quantize(img image.Image, dst draw.Image, num int) error
}

// Median is the default Quantizer, backed by colorquant without dithering.
type Median struct{}

func (Median) Quantize(img image.Image, dst draw.Image, num int) error {
	colorquant.NoDither.Quantize(img, dst, num, false, true)
	return nil
}

// Options tune Extract.
type Options struct {
	// Colors is the number of colors the image is quantized to.
	Colors int
	// Step samples every Step-th pixel when counting colors.
	Step int
	// Quantizer defaults to Median.
	Quantizer Quantizer
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Colors: 16, Step: 5, Quantizer: Median{}}
}

// Extract builds the palette of img. The image is quantized, every resulting
// color is named after its nearest cluster, and each name keeps its most
// prevalent color.
func Extract(img image.Image, model *cluster.Model, opts Options) (Palette, error) {
	if opts.Colors < 1 {
		return nil, fmt.Errorf("color count must be at least 1, got %d", opts.Colors)
	}
	if opts.Quantizer == nil {
		opts.Quantizer = Median{}
	}

	// quantize image
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	if e := opts.Quantizer.Quantize(img, o, opts.Colors); e != nil {
		return nil, fmt.Errorf("failed to quantize image: %w", e)
	}

	ranked := rimage.RankColors(rimage.GetColors(o, opts.Step))
	if len(ranked) == 0 {
		return nil, ErrNotEnoughColors
	}

	// ranked is most prevalent first, so the first color per label wins
	p := make(Palette)
	for _, cc := range ranked {
		c := color.FromStd(cc.Color)
		label, _ := model.Nearest(c)
		if _, ok := p[label]; !ok {
			p[label] = c
		}
	}

	return p, nil
}
