package cluster

import "github.com/mmuldo/recolor/color"

// Corpus maps a color name to sample colors known to carry that name.
type Corpus map[string][]color.Color

func rgb(r, g, b float64) color.Color {
	return color.MustNew(color.Triple{r, g, b}, color.RGB)
}

// DefaultCorpus returns the built-in set of named sample colors.
func DefaultCorpus() Corpus {
	return Corpus{
		"red": {
			rgb(255, 0, 0), rgb(220, 20, 60), rgb(178, 34, 34),
			rgb(205, 40, 40), rgb(240, 60, 50),
		},
		"orange": {
			rgb(255, 140, 0), rgb(255, 165, 0), rgb(240, 130, 40),
		},
		"yellow": {
			rgb(255, 255, 0), rgb(240, 230, 60), rgb(255, 215, 0),
		},
		"green": {
			rgb(0, 128, 0), rgb(34, 139, 34), rgb(50, 205, 50),
			rgb(60, 170, 70),
		},
		"blue": {
			rgb(0, 0, 255), rgb(30, 60, 200), rgb(65, 105, 225),
			rgb(0, 70, 180), rgb(25, 25, 160),
		},
		"purple": {
			rgb(128, 0, 128), rgb(148, 0, 211), rgb(120, 60, 160),
		},
		"white": {
			rgb(255, 255, 255), rgb(245, 245, 240), rgb(235, 235, 235),
		},
		"black": {
			rgb(0, 0, 0), rgb(20, 20, 25), rgb(35, 30, 30),
		},
	}
}
