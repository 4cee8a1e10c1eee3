package material

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	nonEmissive
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// The ray is always continued: reflected with the Schlick probability (or
// always, under total internal reflection) and refracted otherwise.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	reflected := Reflect(direction, hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dirDotN := direction.Dot(hit.Normal)
	if dirDotN > 0 {
		// Exiting the medium
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotN / direction.Length()
	} else {
		// Entering the medium
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotN / direction.Length()
	}

	reflectProbability := 1.0
	refracted, canRefract := Refract(direction, outwardNormal, niOverNt)
	if canRefract {
		reflectProbability = Schlick(cosine, d.RefractiveIndex)
	}

	out := refracted
	if sampler.Get1D() < reflectProbability {
		out = reflected
	}

	return ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, out, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Refract bends v through a surface with normal n using Snell's law.
// It reports false when the discriminant is non-positive (total internal reflection).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}

// Schlick approximates the Fresnel reflectance for the given cosine
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
