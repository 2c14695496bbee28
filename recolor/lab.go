package recolor

import (
	"fmt"

	"github.com/mmuldo/recolor/color"
	"github.com/mmuldo/recolor/image"
	"github.com/mmuldo/recolor/palette"
)

// LabFactor returns the mean ratio of reference to target Lab lightness over
// the names matched in both palettes. It reports false when nothing matched.
func LabFactor(target, reference palette.Palette, names []string) (float64, bool, error) {
	total, n := 0.0, 0

	for _, name := range names {
		tc, ok := target[name]
		if !ok {
			continue
		}
		rc, ok := reference[name]
		if !ok {
			continue
		}

		t, _ := tc.Array(color.LAB)
		r, _ := rc.Array(color.LAB)
		if t[0] == 0 {
			return 0, false, fmt.Errorf("%w: target %q has zero lightness", ErrDivisionByZero, name)
		}
		total += r[0] / t[0]
		n++
	}

	if n == 0 {
		return 1, false, nil
	}
	return total / float64(n), true, nil
}

// LabL scales only the lightness of img by LabFactor. If nothing matched, or
// the factor is exactly 1, img itself is returned.
func LabL(img *image.Image, target, reference palette.Palette, names []string) (*image.Image, error) {
	factor, ok, err := LabFactor(target, reference, names)
	if err != nil {
		return nil, err
	}
	if !ok {
		return img, nil
	}
	return scaleLightness(img, factor), nil
}

func scaleLightness(img *image.Image, factor float64) *image.Image {
	if factor == 1 {
		return img
	}
	return FromLab(ScaleLuminance(ToLab(img), factor))
}

// ToLab converts an RGB image to one whose channels are L, a and b.
func ToLab(img *image.Image) *image.Image {
	return img.Map(color.RGBToLab)
}

// FromLab converts an L, a, b image back to RGB. Out of gamut values are
// clamped to [0, 255].
func FromLab(lab *image.Image) *image.Image {
	return lab.Map(color.LabToRGB)
}

// ScaleLuminance multiplies the L channel of a Lab image by factor.
func ScaleLuminance(lab *image.Image, factor float64) *image.Image {
	return lab.Map(func(t color.Triple) color.Triple {
		t[0] *= factor
		return t
	})
}
