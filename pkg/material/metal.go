package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmissive
	Albedo   Texture // Metal color
	Fuzzness float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return NewTexturedMetal(NewConstantTexture(albedo), fuzzness)
}

// NewTexturedMetal creates a metal whose color comes from a texture
func NewTexturedMetal(albedo Texture, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Perturb the mirror direction by a point in a sphere of radius Fuzzness
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.SampleInUnitSphere(sampler).Multiply(m.Fuzzness))
	}

	scattered := core.NewRayAtTime(hit.Point, reflected, rayIn.Time)

	// Directions pointing into the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo.Value(hit.U, hit.V, hit.Point),
	}, scatters
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
