package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at
// Time0 to Center1 at Time1. Rays pick the center for their own time.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// Center returns the sphere center at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	return s.Center0.Lerp(s.Center1, (time-s.Time0)/(s.Time1-s.Time0))
}

// Hit intersects the ray with the sphere positioned at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center(ray.Time), s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox is the union of the boxes at both ends of the shutter interval
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.SurroundingBox(
		sphereBox(s.Center(t0), s.Radius),
		sphereBox(s.Center(t1), s.Radius),
	), true
}
