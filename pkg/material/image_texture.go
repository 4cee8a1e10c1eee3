package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 is the top of the image
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewFallbackTexture returns the 1x1 mid-gray texture used when an image cannot be loaded
func NewFallbackTexture() *ImageTexture {
	gray := 128.0 / 255.0
	return NewImageTexture(1, 1, []core.Vec3{core.NewVec3(gray, gray, gray)})
}

// Value samples the texture at given UV coordinates using nearest-neighbor
// filtering; coordinates outside [0,1] are clamped to the border.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// Clamp to image bounds
	x = max(0, min(t.Width-1, x))
	y = max(0, min(t.Height-1, y))

	return t.Pixels[y*t.Width+x]
}
