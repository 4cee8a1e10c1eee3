package material

import (
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// TestImageTextureValue tests basic texture sampling
func TestImageTextureValue(t *testing.T) {
	// Create a 2x2 checkerboard pattern
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), // Row 0 (top in image coords)
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), // Row 1 (bottom in image coords)
	}
	texture := NewImageTexture(2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, black},
		{"bottom-right", 0.9, 0.1, white},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := texture.Value(tt.u, tt.v, core.Vec3{}); result != tt.expected {
				t.Errorf("UV(%.1f,%.1f): expected %v, got %v", tt.u, tt.v, tt.expected, result)
			}
		})
	}
}

// TestImageTextureClamping tests that out-of-range UVs read the border pixels
func TestImageTextureClamping(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 0),
	}
	texture := NewImageTexture(2, 2, pixels)

	if got := texture.Value(-3, 5, core.Vec3{}); got != pixels[0] {
		t.Errorf("Expected top-left border %v, got %v", pixels[0], got)
	}
	if got := texture.Value(1.0, 0.0, core.Vec3{}); got != pixels[3] {
		t.Errorf("Expected bottom-right border %v, got %v", pixels[3], got)
	}
}

func TestFallbackTexture(t *testing.T) {
	texture := NewFallbackTexture()
	got := texture.Value(0.3, 0.7, core.NewVec3(1, 2, 3))
	gray := 128.0 / 255.0
	if got != core.NewVec3(gray, gray, gray) {
		t.Errorf("Expected mid gray, got %v", got)
	}
}
