package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Translate moves a surface by a fixed offset
type Translate struct {
	Surface Surface
	Offset  core.Vec3
}

// NewTranslate wraps a surface so it appears moved by offset
func NewTranslate(surface Surface, offset core.Vec3) *Translate {
	return &Translate{Surface: surface, Offset: offset}
}

// Hit moves the ray into the surface's frame and the hit point back out
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	hit, ok := t.Surface.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox is the wrapped box shifted by the offset
func (t *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := t.Surface.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}

// RotateY rotates a surface about the y axis
type RotateY struct {
	Surface  Surface
	Degrees  float64
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps a surface so it appears rotated by angle degrees about y
func NewRotateY(surface Surface, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180
	return &RotateY{
		Surface:  surface,
		Degrees:  degrees,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// toObject applies the inverse rotation
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

// toWorld applies the rotation
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

// Hit rotates the ray into the surface's frame and the hit back out
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)
	hit, ok := r.Surface.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox bounds the eight rotated corners of the wrapped box
func (r *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := r.Surface.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	corners := box.Corners()
	for i := range corners {
		corners[i] = r.toWorld(corners[i])
	}
	return core.NewAABBFromPoints(corners[:]...), true
}
