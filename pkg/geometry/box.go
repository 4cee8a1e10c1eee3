package geometry

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// Box is an axis-aligned box between two corners, made of six rectangles.
// The faces on the Min side are flipped so every face normal points outward.
type Box struct {
	Min, Max core.Vec3
	faces    *List
}

// NewBox creates an axis-aligned box spanning p0 to p1 (p0 ≤ p1 componentwise)
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	faces := NewList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipNormals(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipNormals(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipNormals(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)
	return &Box{Min: p0, Max: p1, faces: faces}
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax)
}

// BoundingBox is the corner pair itself
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
