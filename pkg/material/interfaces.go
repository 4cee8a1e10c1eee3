package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Material decides how light leaves a surface: it may scatter the incoming
// ray (with a color attenuation) and may emit radiance of its own.
// Materials are immutable after construction and shared by many surfaces.
type Material interface {
	// Scatter returns the attenuation and outgoing ray, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the radiance emitted at the surface point
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// Normal orientation is decided by the primitive that produced the hit.
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal at intersection
	U, V     float64   // Texture coordinates
	Material Material  // Material of the hit object
}

// nonEmissive provides the black Emitted result shared by every material that does not glow
type nonEmissive struct{}

// Emitted returns black
func (nonEmissive) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}
