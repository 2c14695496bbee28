// Package recolor shifts a target image's colors toward a reference image's
// palette.
//
// Two heuristics are provided. RGBWeightedAverage scales each RGB channel by
// a centroid-weighted average of reference/target ratios. LabL scales only
// the Lab lightness channel by the mean reference/target lightness ratio.
// Both compare the palettes on a configurable, ordered set of color names.
package recolor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/mmuldo/recolor/cluster"
	"github.com/mmuldo/recolor/color"
	"github.com/mmuldo/recolor/image"
	"github.com/mmuldo/recolor/palette"
)

// Method selects a recoloring heuristic.
type Method string

const (
	MethodRGB Method = "rgb"
	MethodLab Method = "lab"
)

// ParseMethod parses a method name, ignoring case.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(s)); m {
	case MethodRGB, MethodLab:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// DefaultNames are the palette names compared when none are configured.
func DefaultNames() []string {
	return []string{"red", "blue"}
}

// Result describes a completed recoloring.
type Result struct {
	Method Method
	Image  *image.Image
	// Matched lists the names found in both palettes, in configured order.
	Matched []string
	// Factor is the per-channel RGB multiplier, or the Lab lightness
	// multiplier repeated in every channel.
	Factor color.Triple
}

// Recolorer applies a method using a shared cluster model.
type Recolorer struct {
	models *cluster.Provider
	names  []string
	logger hclog.Logger
}

// Option configures a Recolorer.
type Option func(*Recolorer)

// WithNames sets the ordered palette names that are compared.
func WithNames(names ...string) Option {
	return func(r *Recolorer) {
		if len(names) > 0 {
			r.names = names
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Recolorer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a Recolorer that loads its cluster model from models.
func New(models *cluster.Provider, opts ...Option) *Recolorer {
	r := &Recolorer{
		models: models,
		names:  DefaultNames(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.Named("recolor")
	return r
}

// Names returns the configured palette names.
func (r *Recolorer) Names() []string {
	return r.names
}

// Apply recolors img with method. Errors from the chosen method are returned
// unchanged. For ErrNoMatchingColors the Result still carries an unmodified
// copy of img.
func (r *Recolorer) Apply(ctx context.Context, method Method, img *image.Image, target, reference palette.Palette) (*Result, error) {
	res := &Result{Method: method, Matched: matched(r.names, target, reference)}
	r.logger.Debug("recoloring", "method", method, "names", r.names, "matched", res.Matched)

	switch method {
	case MethodRGB:
		model, err := r.models.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load cluster model: %w", err)
		}
		res.Factor, err = RGBFactor(target, reference, model, r.names)
		if errors.Is(err, ErrNoMatchingColors) {
			r.logger.Warn("no palette names matched, image left unchanged", "names", r.names)
			res.Factor = color.Triple{1, 1, 1}
			res.Image = img.Clone()
			return res, err
		}
		if err != nil {
			return nil, err
		}
		res.Image = scale(img, res.Factor)

	case MethodLab:
		f, ok, err := LabFactor(target, reference, r.names)
		if err != nil {
			return nil, err
		}
		res.Factor = color.Triple{f, f, f}
		res.Image = img
		if ok {
			res.Image = scaleLightness(img, f)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}

	r.logger.Debug("recolored", "method", method, "factor", res.Factor)
	return res, nil
}

func matched(names []string, target, reference palette.Palette) []string {
	var out []string
	for _, n := range names {
		_, inTarget := target[n]
		_, inReference := reference[n]
		if inTarget && inReference {
			out = append(out, n)
		}
	}
	return out
}
