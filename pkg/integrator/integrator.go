package integrator

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

const (
	// MaxDepth is the number of bounces after which a path only contributes its local emission
	MaxDepth = 50

	// ShadowEpsilon is the minimum hit distance, keeping scattered rays off their own surface
	ShadowEpsilon = 0.001
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the linear RGB radiance arriving along the ray.
	// depth counts the bounces taken so far, starting at 0 for camera rays.
	RayColor(ray core.Ray, world geometry.Surface, sampler core.Sampler, depth int) core.Vec3
}

// Background is the radiance seen by rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SkyGradient blends linearly from Horizon (looking down) to Zenith (looking up)
type SkyGradient struct {
	Horizon core.Vec3
	Zenith  core.Vec3
}

// NewSkyGradient returns the white to light-blue sky
func NewSkyGradient() *SkyGradient {
	return &SkyGradient{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color blends by t = 0.5·(dir.y + 1) on the unit direction
func (s *SkyGradient) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.Horizon.Multiply(1.0 - t).Add(s.Zenith.Multiply(t))
}

// SolidBackground returns the same radiance in every direction
type SolidBackground struct {
	Radiance core.Vec3
}

// NewSolidBackground creates a uniform background; black for enclosed scenes
func NewSolidBackground(radiance core.Vec3) *SolidBackground {
	return &SolidBackground{Radiance: radiance}
}

// Color returns the fixed radiance
func (s *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return s.Radiance
}
