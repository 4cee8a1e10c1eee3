package geometry

import (
	"errors"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

var (
	// ErrNoBoundingBox is returned when a surface handed to BVH construction cannot be bounded
	ErrNoBoundingBox = errors.New("surface has no bounding box")
	// ErrEmptySurfaceList is returned when a BVH is built over no surfaces
	ErrEmptySurfaceList = errors.New("surface list is empty")
)

// Surface is anything a ray can intersect
type Surface interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the surface for the whole shutter
	// interval [t0, t1], or false if the surface is unbounded
	BoundingBox(t0, t1 float64) (core.AABB, bool)
}
