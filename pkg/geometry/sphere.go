package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves |o + t·d - c|² = r² and keeps the nearer root inside the interval
func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	// Vector from ray origin to sphere center
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if !(discriminant > 0) {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !(root > tMin && root < tMax) {
		root = (-halfB + sqrtD) / a
		if !(root > tMin && root < tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Divide(radius)
	u, v := sphereUV(normal)

	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		U:        u,
		V:        v,
		Material: mat,
	}, true
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u follows the azimuth around y, v the polar angle from -y (0) to +y (1).
func sphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(max(-1, min(1, p.Y)))
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}
