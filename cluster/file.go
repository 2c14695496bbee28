package cluster

import (
	"context"
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/mmuldo/recolor/color"
)

// FileSource loads a precomputed Model from a YAML, JSON or TOML file:
//
//	space: rgb
//	clusters:
//	  - label: red
//	    center: [220, 30, 40]
type FileSource struct {
	Path string
}

type fileCluster struct {
	Label  string    `mapstructure:"label"`
	Center []float64 `mapstructure:"center"`
}

type fileModel struct {
	Space    string        `mapstructure:"space"`
	Clusters []fileCluster `mapstructure:"clusters"`
}

// Load implements Source.
func (s FileSource) Load(ctx context.Context) (*Model, error) {
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand model path: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read model %s: %w", path, err)
	}

	var fm fileModel
	if err := v.Unmarshal(&fm); err != nil {
		return nil, fmt.Errorf("failed to decode model %s: %w", path, err)
	}

	space := color.RGB
	if fm.Space != "" {
		if space, err = color.ParseSpace(fm.Space); err != nil {
			return nil, err
		}
	}

	labels := make([]string, len(fm.Clusters))
	centers := make([]color.Color, len(fm.Clusters))
	for i, fc := range fm.Clusters {
		if len(fc.Center) != 3 {
			return nil, fmt.Errorf("%w: cluster %q has %d channels", ErrInvalidModel, fc.Label, len(fc.Center))
		}
		labels[i] = fc.Label
		centers[i], err = color.New(color.Triple{fc.Center[0], fc.Center[1], fc.Center[2]}, space)
		if err != nil {
			return nil, err
		}
	}

	return NewModel(labels, centers)
}
