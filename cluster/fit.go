package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/mmuldo/recolor/color"
)

// FitSource fits a Model from a Corpus. Each corpus name becomes one cluster
// whose center is the mean of its samples in Lab space.
type FitSource struct {
	Corpus Corpus
}

// Load implements Source.
func (s FitSource) Load(ctx context.Context) (*Model, error) {
	names := make([]string, 0, len(s.Corpus))
	for name, samples := range s.Corpus {
		if len(samples) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty corpus", ErrInvalidModel)
	}
	sort.Strings(names)

	centers := make([]color.Color, len(names))
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := mean(s.Corpus[name])
		if err != nil {
			return nil, fmt.Errorf("%w: center of %q: %w", ErrInvalidModel, name, err)
		}
		centers[i] = c
	}

	return NewModel(names, centers)
}

func mean(samples []color.Color) (color.Color, error) {
	var sum color.Triple
	for _, c := range samples {
		lab, _ := c.Array(color.LAB)
		sum = sum.Add(lab)
	}
	n := float64(len(samples))
	return color.New(color.Triple{sum[0] / n, sum[1] / n, sum[2] / n}, color.LAB)
}
