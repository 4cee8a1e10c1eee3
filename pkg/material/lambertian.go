package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	nonEmissive
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewConstantTexture(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture Texture) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter implements the Material interface for lambertian scattering.
// The outgoing direction points at a uniform random point inside the unit
// sphere tangent to the surface at the hit point.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.SampleInUnitSphere(sampler))
	scattered := core.NewRayAtTime(hit.Point, target.Subtract(hit.Point), rayIn.Time)

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
