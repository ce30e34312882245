package raster

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"chosenoffset.com/kaiju/internal/render"
)

// Loader implements render.ResourceLoader by decoding files from disk.
type Loader struct{}

// NewLoader creates a file-backed loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadImage decodes a PNG file into a raster image.
func (l *Loader) LoadImage(path string) (render.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage copies an in-memory image.
func (l *Loader) FromImage(img image.Image) render.Image {
	return FromImage(img)
}
