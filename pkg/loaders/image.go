package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

var logger = log.New("loaders")

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes a PNG or JPEG stream (auto-detected from the header)
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	logger.Debugf("decoded %dx%d %s image", width, height, format)

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// LoadImageTexture loads an image texture, substituting the mid-gray
// fallback texture when the file is missing or cannot be decoded.
func LoadImageTexture(filename string) *material.ImageTexture {
	data, err := LoadImage(filename)
	if err != nil {
		logger.Warningf("using fallback texture: %v", err)
		return material.NewFallbackTexture()
	}
	if data.Width == 0 || data.Height == 0 {
		logger.Warningf("using fallback texture: %s is empty", filename)
		return material.NewFallbackTexture()
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels)
}
