package recolor

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmuldo/recolor/cluster"
	"github.com/mmuldo/recolor/color"
	"github.com/mmuldo/recolor/image"
	"github.com/mmuldo/recolor/palette"
)

func rgb(r, g, b float64) color.Color {
	return color.MustNew(color.Triple{r, g, b}, color.RGB)
}

func lab(l, a, b float64) color.Color {
	return color.MustNew(color.Triple{l, a, b}, color.LAB)
}

func testModel(t *testing.T) *cluster.Model {
	t.Helper()
	m, err := cluster.NewModel(
		[]string{"red", "blue"},
		[]color.Color{rgb(230, 20, 30), rgb(20, 40, 230)},
	)
	require.NoError(t, err)
	return m
}

func testImage() *image.Image {
	img := image.New(3, 2)
	px := []color.Triple{
		{120, 100, 90}, {90, 110, 130}, {140, 120, 60},
		{60, 70, 80}, {150, 140, 130}, {100, 60, 70},
	}
	for i, p := range px {
		img.Set(i%3, i/3, p)
	}
	return img
}

func TestRGBFactor(t *testing.T) {
	names := DefaultNames()

	tests := []struct {
		name      string
		target    palette.Palette
		reference palette.Palette
		want      color.Triple
		wantErr   error
	}{
		{
			name:      "identical palettes",
			target:    palette.Palette{"red": rgb(200, 30, 40), "blue": rgb(20, 50, 210)},
			reference: palette.Palette{"red": rgb(200, 30, 40), "blue": rgb(20, 50, 210)},
			want:      color.Triple{1, 1, 1},
		},
		{
			name:      "red only with zero channels",
			target:    palette.Palette{"red": rgb(100, 0, 0)},
			reference: palette.Palette{"red": rgb(150, 0, 0), "blue": rgb(0, 0, 200)},
			want:      color.Triple{1.5, 1, 1},
		},
		{
			name:      "weighted by centroids",
			target:    palette.Palette{"red": rgb(100, 100, 100), "blue": rgb(100, 100, 100)},
			reference: palette.Palette{"red": rgb(200, 100, 100), "blue": rgb(100, 100, 300)},
			want:      color.Triple{480.0 / 250, 1, 720.0 / 260},
		},
		{
			name:      "no matches",
			target:    palette.Palette{"red": rgb(100, 0, 0)},
			reference: palette.Palette{"blue": rgb(0, 0, 100)},
			wantErr:   ErrNoMatchingColors,
		},
		{
			name:      "empty palettes",
			target:    palette.Palette{},
			reference: palette.Palette{},
			wantErr:   ErrNoMatchingColors,
		},
		{
			name:      "black target",
			target:    palette.Palette{"red": rgb(0, 0, 0)},
			reference: palette.Palette{"red": rgb(100, 0, 0)},
			wantErr:   ErrDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RGBFactor(tt.target, tt.reference, testModel(t), names)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for ch := range tt.want {
				assert.InDelta(t, tt.want[ch], got[ch], 1e-9, "channel %d", ch)
			}
		})
	}
}

func TestRGBFactorUnknownLabel(t *testing.T) {
	p := palette.Palette{"green": rgb(10, 200, 10)}
	_, err := RGBFactor(p, p, testModel(t), []string{"green"})
	assert.ErrorIs(t, err, ErrUnknownLabel)
}

func TestRGBWeightedAverageIdentity(t *testing.T) {
	img := testImage()
	p := palette.Palette{"red": rgb(200, 30, 40), "blue": rgb(20, 50, 210)}

	out, err := RGBWeightedAverage(img, p, p, testModel(t), DefaultNames())
	require.NoError(t, err)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestRGBWeightedAverageScales(t *testing.T) {
	img := testImage()
	target := palette.Palette{"red": rgb(100, 0, 0)}
	reference := palette.Palette{"red": rgb(150, 0, 0)}

	out, err := RGBWeightedAverage(img, target, reference, testModel(t), DefaultNames())
	require.NoError(t, err)

	got := out.At(0, 0)
	assert.InDelta(t, 180, got[0], 1e-9)
	assert.InDelta(t, 100, got[1], 1e-9)
	assert.InDelta(t, 90, got[2], 1e-9)

	// not clamped
	img.Set(0, 0, color.Triple{250, 0, 0})
	out, err = RGBWeightedAverage(img, target, reference, testModel(t), DefaultNames())
	require.NoError(t, err)
	assert.InDelta(t, 375, out.At(0, 0)[0], 1e-9)
}

func TestRGBWeightedAverageNoMatch(t *testing.T) {
	img := testImage()

	out, err := RGBWeightedAverage(img, palette.Palette{}, palette.Palette{}, testModel(t), DefaultNames())
	assert.ErrorIs(t, err, ErrNoMatchingColors)
	require.NotNil(t, out)
	assert.NotSame(t, img, out)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestLabFactor(t *testing.T) {
	names := DefaultNames()

	tests := []struct {
		name      string
		target    palette.Palette
		reference palette.Palette
		want      float64
		wantOK    bool
	}{
		{
			name:      "empty",
			target:    palette.Palette{},
			reference: palette.Palette{},
			want:      1,
		},
		{
			name:      "single match",
			target:    palette.Palette{"red": lab(50, 60, 40)},
			reference: palette.Palette{"red": lab(60, 10, 10), "blue": lab(30, 0, -40)},
			want:      1.2,
			wantOK:    true,
		},
		{
			name:      "mean of two ratios",
			target:    palette.Palette{"red": lab(50, 60, 40), "blue": lab(40, 10, -30)},
			reference: palette.Palette{"red": lab(60, 60, 40), "blue": lab(20, 10, -30)},
			want:      (1.2 + 0.5) / 2,
			wantOK:    true,
		},
		{
			name:      "equal lightness",
			target:    palette.Palette{"red": lab(50, 60, 40), "blue": lab(40, 10, -30)},
			reference: palette.Palette{"red": lab(50, -10, 20), "blue": lab(40, 30, -20)},
			want:      1,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := LabFactor(tt.target, tt.reference, names)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestLabFactorZeroLightness(t *testing.T) {
	_, _, err := LabFactor(
		palette.Palette{"red": lab(0, 0, 0)},
		palette.Palette{"red": lab(50, 0, 0)},
		DefaultNames(),
	)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestLabFactorMonotonic(t *testing.T) {
	target := palette.Palette{"red": lab(50, 60, 40), "blue": lab(40, 10, -30)}
	reference := palette.Palette{"red": lab(30, 20, 15), "blue": lab(25, 5, -20)}
	doubled := palette.Palette{"red": lab(60, 20, 15), "blue": lab(50, 5, -20)}

	f, _, err := LabFactor(target, reference, DefaultNames())
	require.NoError(t, err)
	f2, _, err := LabFactor(target, doubled, DefaultNames())
	require.NoError(t, err)
	assert.InDelta(t, 2*f, f2, 1e-12)
}

func TestLabLIdentity(t *testing.T) {
	img := testImage()

	out, err := LabL(img, palette.Palette{}, palette.Palette{}, DefaultNames())
	require.NoError(t, err)
	assert.Same(t, img, out)

	p := palette.Palette{"red": lab(50, 60, 40), "blue": lab(40, 10, -30)}
	out, err = LabL(img, p, p, DefaultNames())
	require.NoError(t, err)
	assert.Equal(t, img.Pix, out.Pix)
}

func TestScaleLuminance(t *testing.T) {
	in := ToLab(testImage())
	out := ScaleLuminance(in, 0.5)

	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			a, b := in.At(x, y), out.At(x, y)
			assert.Equal(t, a[0]*0.5, b[0])
			assert.Equal(t, a[1], b[1])
			assert.Equal(t, a[2], b[2])
		}
	}
}

func TestLabLOnlyChangesLightness(t *testing.T) {
	img := testImage()
	target := palette.Palette{"red": lab(50, 60, 40)}
	reference := palette.Palette{"red": lab(42.5, 60, 40)}

	out, err := LabL(img, target, reference, DefaultNames())
	require.NoError(t, err)

	before, after := ToLab(img), ToLab(out)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			b, a := before.At(x, y), after.At(x, y)
			assert.InDelta(t, b[0]*0.85, a[0], 1.0)
			assert.InDelta(t, b[1], a[1], 1.5)
			assert.InDelta(t, b[2], a[2], 1.5)
		}
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("RGB")
	require.NoError(t, err)
	assert.Equal(t, MethodRGB, m)

	m, err = ParseMethod("lab")
	require.NoError(t, err)
	assert.Equal(t, MethodLab, m)

	_, err = ParseMethod("hsv")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestRecolorerApply(t *testing.T) {
	ctx := context.Background()
	r := New(cluster.Static(testModel(t)), WithLogger(hclog.NewNullLogger()))
	assert.Equal(t, DefaultNames(), r.Names())

	target := palette.Palette{"red": rgb(100, 50, 50)}
	reference := palette.Palette{"red": rgb(150, 50, 50), "blue": rgb(0, 0, 200)}

	res, err := r.Apply(ctx, MethodRGB, testImage(), target, reference)
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, res.Matched)
	assert.InDelta(t, 1.5, res.Factor[0], 1e-9)
	assert.InDelta(t, 180, res.Image.At(0, 0)[0], 1e-9)

	res, err = r.Apply(ctx, MethodLab, testImage(), target, target)
	require.NoError(t, err)
	assert.Equal(t, color.Triple{1, 1, 1}, res.Factor)

	_, err = r.Apply(ctx, Method("hsv"), testImage(), target, reference)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestRecolorerApplyNoMatch(t *testing.T) {
	r := New(cluster.Static(testModel(t)), WithNames("green"))
	img := testImage()
	p := palette.Palette{"red": rgb(100, 50, 50)}

	res, err := r.Apply(context.Background(), MethodRGB, img, p, p)
	assert.ErrorIs(t, err, ErrNoMatchingColors)
	require.NotNil(t, res)
	assert.Empty(t, res.Matched)
	assert.Equal(t, img.Pix, res.Image.Pix)
}

func TestRecolorerApplyLab(t *testing.T) {
	ctx := context.Background()
	r := New(cluster.Static(testModel(t)))
	img := testImage()
	target := palette.Palette{"red": lab(50, 60, 40)}
	reference := palette.Palette{"red": lab(42.5, 60, 40)}

	res, err := r.Apply(ctx, MethodLab, img, target, reference)
	require.NoError(t, err)
	for ch := range res.Factor {
		assert.InDelta(t, 0.85, res.Factor[ch], 1e-12)
	}

	want, err := LabL(img, target, reference, DefaultNames())
	require.NoError(t, err)
	assert.Equal(t, want.Pix, res.Image.Pix)

	res, err = r.Apply(ctx, MethodLab, img, palette.Palette{}, reference)
	require.NoError(t, err)
	assert.Same(t, img, res.Image)
	assert.Equal(t, color.Triple{1, 1, 1}, res.Factor)
}
