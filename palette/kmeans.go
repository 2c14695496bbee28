package palette

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"math"

	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// KMeans quantizes by partitioning sampled pixels with k-means in RGB space
// and painting every pixel with its nearest centroid.
type KMeans struct {
	// MaxSamples bounds the number of pixels clustered. Zero means 2000.
	MaxSamples int
}

func (q KMeans) Quantize(img image.Image, dst draw.Image, num int) error {
	limit := q.MaxSamples
	if limit <= 0 {
		limit = 2000
	}

	b := img.Bounds()
	step := int(math.Sqrt(float64(b.Dx()*b.Dy()) / float64(limit)))
	if step < 1 {
		step = 1
	}

	var dataset clusters.Observations
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			dataset = append(dataset, coordinates(img.At(x, y)))
		}
	}
	if len(dataset) == 0 {
		return ErrNotEnoughColors
	}
	if num > len(dataset) {
		num = len(dataset)
	}

	cc, err := kmeans.New().Partition(dataset, num)
	if err != nil {
		return fmt.Errorf("failed to partition pixels: %w", err)
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := cc[cc.Nearest(coordinates(img.At(x, y)))].Center
			dst.Set(x, y, stdcolor.NRGBA{R: channel(c[0]), G: channel(c[1]), B: channel(c[2]), A: 255})
		}
	}
	return nil
}

func coordinates(c stdcolor.Color) clusters.Coordinates {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return clusters.Coordinates{float64(n.R), float64(n.G), float64(n.B)}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
