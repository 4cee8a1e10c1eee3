package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// rectThickness pads the flat axis so rectangles have a non-degenerate box
const rectThickness = 1e-4

// XYRect is an axis-aligned rectangle in the plane z=K with normal +z
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z=k
func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// Hit tests the ray against the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, a, b, ok := hitAxisRect(ray, 2, 0, 1, r.K, r.X0, r.X1, r.Y0, r.Y1, tMin, tMax)
	if !ok {
		return nil, false
	}
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(0, 0, 1),
		U:        (a - r.X0) / (r.X1 - r.X0),
		V:        (b - r.Y0) / (r.Y1 - r.Y0),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle padded along z
func (r *XYRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+rectThickness),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y=K with normal +y
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y=k
func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit tests the ray against the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, a, b, ok := hitAxisRect(ray, 1, 0, 2, r.K, r.X0, r.X1, r.Z0, r.Z1, tMin, tMax)
	if !ok {
		return nil, false
	}
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(0, 1, 0),
		U:        (a - r.X0) / (r.X1 - r.X0),
		V:        (b - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle padded along y
func (r *XZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+rectThickness, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x=K with normal +x
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x=k
func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// Hit tests the ray against the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	t, a, b, ok := hitAxisRect(ray, 0, 1, 2, r.K, r.Y0, r.Y1, r.Z0, r.Z1, tMin, tMax)
	if !ok {
		return nil, false
	}
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0),
		U:        (a - r.Y0) / (r.Y1 - r.Y0),
		V:        (b - r.Z0) / (r.Z1 - r.Z0),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle padded along x
func (r *YZRect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+rectThickness, r.Y1, r.Z1),
	), true
}

// hitAxisRect intersects the ray with the plane where axis `flat` equals k
// and checks the in-plane coordinates on axes a and b against their bounds.
// Comparisons are written so that NaN (a ray lying in the plane) and ±Inf
// (a ray parallel to it) both fall through to "no hit".
func hitAxisRect(ray core.Ray, flat, axisA, axisB int, k, a0, a1, b0, b1, tMin, tMax float64) (t, a, b float64, ok bool) {
	t = (k - ray.Origin.Axis(flat)) / ray.Direction.Axis(flat)
	if !(t > tMin && t < tMax) {
		return 0, 0, 0, false
	}
	a = ray.Origin.Axis(axisA) + t*ray.Direction.Axis(axisA)
	b = ray.Origin.Axis(axisB) + t*ray.Direction.Axis(axisB)
	if !(a >= a0 && a <= a1 && b >= b0 && b <= b1) {
		return 0, 0, 0, false
	}
	return t, a, b, true
}
