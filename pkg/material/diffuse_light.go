package material

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// DiffuseLight is an area light material: it emits and never scatters
type DiffuseLight struct {
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a light with a uniform emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewConstantTexture(emission)}
}

// NewTexturedDiffuseLight creates a light whose emission is read from a texture
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs the incoming ray
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission texture's value at the surface point
func (l *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return l.Emit.Value(u, v, point)
}
