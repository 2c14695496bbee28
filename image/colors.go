package image

import (
	"image"
	"image/color"
	"sort"
)

type ColorCount struct {
	Color color.Color
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return key(ccl[i].Color) < key(ccl[j].Color)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// GetColors returns a map of an image's colors and the number of times each
// color occurs, visiting every step-th pixel in both directions. Fully
// transparent pixels are skipped.
func GetColors(img image.Image, step int) map[color.Color]int {
	if step < 1 {
		step = 1
	}
	m := make(map[color.Color]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := img.At(x, y)
			if _, _, _, a := c.RGBA(); a != 0 {
				m[c]++
			}
		}
	}

	return m
}

// RankColors sorts colors by prevalence, most common first.
func RankColors(m map[color.Color]int) ColorCountList {
	cc := make(ColorCountList, len(m))

	i := 0
	for k, v := range m {
		cc[i] = ColorCount{k, v}
		i++
	}

	sort.Sort(cc)
	return cc
}

// key orders equally common colors so ranking is deterministic.
func key(c color.Color) uint64 {
	r, g, b, a := c.RGBA()
	return uint64(r)<<48 | uint64(g)<<32 | uint64(b)<<16 | uint64(a)
}
