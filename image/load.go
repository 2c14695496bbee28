package image

import (
	"fmt"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/webp"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
)

// Load loads an image for use given a file path.
// Supported formats: PNG, JPEG, GIF, WebP.
func Load(path string) (image.Image, error) {
	path, e := homedir.Expand(path)
	if e != nil {
		return nil, e
	}

	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("failed to open image: %w", e)
	}
	defer f.Close()

	i, format, e := image.Decode(f)
	if e != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, e)
	}

	return i, nil
}

// Save encodes img as a PNG at path.
func Save(path string, img image.Image) error {
	path, e := homedir.Expand(path)
	if e != nil {
		return e
	}

	f, e := os.Create(path)
	if e != nil {
		return fmt.Errorf("failed to create image: %w", e)
	}

	if e = png.Encode(f, img); e != nil {
		f.Close()
		return fmt.Errorf("failed to encode image: %w", e)
	}
	return f.Close()
}
