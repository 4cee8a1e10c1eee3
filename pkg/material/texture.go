package material

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/noise"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at given UV coordinates and 3D point.
	// UV is used for image textures, point for procedural (solid) textures.
	Value(u, v float64, point core.Vec3) core.Vec3
}

// ConstantTexture provides uniform color
type ConstantTexture struct {
	Color core.Vec3
}

// NewConstantTexture creates a new solid color texture
func NewConstantTexture(color core.Vec3) *ConstantTexture {
	return &ConstantTexture{Color: color}
}

// Value returns the solid color regardless of UV or position
func (c *ConstantTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	return c.Color
}

// CheckerTexture alternates two textures in a 3D checker pattern
type CheckerTexture struct {
	Odd       Texture
	Even      Texture
	Frequency float64 // Spatial frequency of the sine product
}

// NewCheckerTexture creates a checker pattern with the usual frequency of 10
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Frequency: 10}
}

// Value picks Odd where sin(fx)·sin(fy)·sin(fz) is negative, Even otherwise
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Frequency*point.X) * math.Sin(c.Frequency*point.Y) * math.Sin(c.Frequency*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// NoiseMode selects how a NoiseTexture turns noise into a gray level
type NoiseMode int

const (
	// NoiseMarble modulates a sine along z by turbulence
	NoiseMarble NoiseMode = iota
	// NoisePlain maps raw gradient noise from [-1,1] to [0,1]
	NoisePlain
	// NoiseTurbulence uses the turbulence sum directly
	NoiseTurbulence
)

// NoiseTexture is a gray procedural texture driven by Perlin noise
type NoiseTexture struct {
	Scale float64
	Mode  NoiseMode
}

// NewNoiseTexture creates a marble-like noise texture
func NewNoiseTexture(scale float64) *NoiseTexture {
	return &NoiseTexture{Scale: scale, Mode: NoiseMarble}
}

// Value evaluates the noise pattern at the scaled point
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	scaled := point.Multiply(n.Scale)

	var gray float64
	switch n.Mode {
	case NoisePlain:
		gray = 0.5 * (1 + noise.Noise(scaled))
	case NoiseTurbulence:
		gray = noise.Turbulence(scaled, noise.DefaultTurbulenceDepth)
	default:
		gray = 0.5 * (1 + math.Sin(n.Scale*point.Z+10*noise.Turbulence(scaled, noise.DefaultTurbulenceDepth)))
	}
	return core.NewVec3(gray, gray, gray)
}
