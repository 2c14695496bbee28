package color

import (
	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

var (
	// for RGB-to-Lab conversion
	targetIlluminant = &chromath.IlluminantRefD50
	rgb2Xyz          = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		targetIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(targetIlluminant)
	klch    = &deltae.KLChDefault
)

// RGBToLab converts an 8-bit scaled RGB triple to its Lab equivalent.
func RGBToLab(rgb Triple) Triple {
	xyz := rgb2Xyz.Convert(chromath.RGB(rgb))
	return Triple(lab2Xyz.Invert(xyz))
}

// LabToRGB converts a Lab triple back to 8-bit scaled RGB. Channels falling
// outside the sRGB gamut are clamped to [0, 255].
func LabToRGB(lab Triple) Triple {
	xyz := lab2Xyz.Convert(chromath.Lab(lab))
	return Triple(rgb2Xyz.Invert(xyz))
}

// DeltaE returns the CIEDE2000 difference between two colors.
func DeltaE(a, b Color) float64 {
	return deltae.CIE2000(chromath.Lab(a.lab), chromath.Lab(b.lab), klch)
}
