package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// List is a flat collection of surfaces searched by linear scan. It can
// hold unbounded surfaces and serves as the reference for BVH results.
type List struct {
	Surfaces []Surface
}

// NewList creates a list of surfaces
func NewList(surfaces ...Surface) *List {
	return &List{Surfaces: surfaces}
}

// Add appends surfaces to the list
func (l *List) Add(surfaces ...Surface) {
	l.Surfaces = append(l.Surfaces, surfaces...)
}

// Hit returns the closest hit among all surfaces
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, surface := range l.Surfaces {
		if hit, ok := surface.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox unions every member's box; an empty list or any unbounded member has none
func (l *List) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Surfaces) == 0 {
		return core.AABB{}, false
	}

	box, ok := l.Surfaces[0].BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	for _, surface := range l.Surfaces[1:] {
		next, ok := surface.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		box = core.SurroundingBox(box, next)
	}
	return box, true
}
