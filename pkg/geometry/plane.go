package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal.
// It has no bounding box, so it can live in a List but not in a BVH.
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal, reported as-is on both sides
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel rays never hit
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}

// BoundingBox reports that a plane cannot be bounded
func (p *Plane) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}
