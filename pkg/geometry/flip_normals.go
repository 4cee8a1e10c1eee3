package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// FlipNormals wraps a surface and reverses the normals it reports
type FlipNormals struct {
	Surface Surface
}

// NewFlipNormals creates a normal-flipping wrapper
func NewFlipNormals(surface Surface) *FlipNormals {
	return &FlipNormals{Surface: surface}
}

// Hit delegates to the wrapped surface and negates the normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Surface.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox is the wrapped surface's box
func (f *FlipNormals) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Surface.BoundingBox(t0, t1)
}
