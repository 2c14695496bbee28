// Package cluster provides named color clusters: an ordered list of labels
// and, for each label, a centroid color.
package cluster

import (
	"errors"
	"fmt"
	"math"

	"github.com/mmuldo/recolor/color"
)

// ErrInvalidModel is returned when labels and centers are not aligned.
var ErrInvalidModel = errors.New("invalid cluster model")

// Model is a fitted clustering. Labels[i] names Centers[i].
type Model struct {
	Labels  []string
	Centers []color.Color
}

// NewModel validates and builds a Model.
func NewModel(labels []string, centers []color.Color) (*Model, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no clusters", ErrInvalidModel)
	}
	if len(labels) != len(centers) {
		return nil, fmt.Errorf("%w: %d labels but %d centers", ErrInvalidModel, len(labels), len(centers))
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if l == "" {
			return nil, fmt.Errorf("%w: empty label", ErrInvalidModel)
		}
		if seen[l] {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidModel, l)
		}
		seen[l] = true
	}
	return &Model{Labels: labels, Centers: centers}, nil
}

// Index returns the position of label in the model.
func (m *Model) Index(label string) (int, bool) {
	for i, l := range m.Labels {
		if l == label {
			return i, true
		}
	}
	return -1, false
}

// Center returns the centroid color of label.
func (m *Model) Center(label string) (color.Color, bool) {
	i, ok := m.Index(label)
	if !ok {
		return color.Color{}, false
	}
	return m.Centers[i], true
}

// Nearest returns the label whose centroid is perceptually closest to c,
// along with the CIEDE2000 distance to it.
func (m *Model) Nearest(c color.Color) (string, float64) {
	label, best := "", math.MaxFloat64
	for i, center := range m.Centers {
		if d := color.DeltaE(c, center); d < best {
			label, best = m.Labels[i], d
		}
	}
	return label, best
}
