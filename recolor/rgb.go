package recolor

import (
	"errors"
	"fmt"

	"github.com/mmuldo/recolor/cluster"
	"github.com/mmuldo/recolor/color"
	"github.com/mmuldo/recolor/image"
	"github.com/mmuldo/recolor/palette"
)

// RGBFactor computes the per-channel multiplier that moves target toward
// reference. For every name matched in both palettes, the ratio
// reference/target is averaged per channel, weighted by that name's cluster
// centroid in RGB.
//
// A channel whose target value is 0 does not contribute. A channel left with
// no weight gets factor 1.
func RGBFactor(target, reference palette.Palette, model *cluster.Model, names []string) (color.Triple, error) {
	var rate, total color.Triple
	matched := 0

	for _, name := range names {
		tc, ok := target[name]
		if !ok {
			continue
		}
		rc, ok := reference[name]
		if !ok {
			continue
		}
		matched++

		center, ok := model.Center(name)
		if !ok {
			return color.Triple{}, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
		}
		w, _ := center.Array(color.RGB)
		t, _ := tc.Array(color.RGB)
		r, _ := rc.Array(color.RGB)

		for ch := range t {
			if t[ch] == 0 {
				continue
			}
			total[ch] += w[ch]
			rate[ch] += w[ch] * r[ch] / t[ch]
		}
	}

	if matched == 0 {
		return color.Triple{}, ErrNoMatchingColors
	}
	if total == (color.Triple{}) {
		return color.Triple{}, fmt.Errorf("%w: every matched channel has zero weight", ErrDivisionByZero)
	}

	factor := color.Triple{1, 1, 1}
	for ch := range total {
		if total[ch] != 0 {
			factor[ch] = rate[ch] / total[ch]
		}
	}
	return factor, nil
}

// RGBWeightedAverage scales every pixel of img by RGBFactor. The result is
// not clamped.
//
// When nothing matches, it returns a copy of img along with
// ErrNoMatchingColors so callers may keep the image unchanged.
func RGBWeightedAverage(img *image.Image, target, reference palette.Palette, model *cluster.Model, names []string) (*image.Image, error) {
	factor, err := RGBFactor(target, reference, model, names)
	if errors.Is(err, ErrNoMatchingColors) {
		return img.Clone(), err
	}
	if err != nil {
		return nil, err
	}
	return scale(img, factor), nil
}

func scale(img *image.Image, factor color.Triple) *image.Image {
	return img.Map(func(t color.Triple) color.Triple { return t.Mul(factor) })
}
