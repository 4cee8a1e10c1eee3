package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// BVHNode is an internal node of a Bounding Volume Hierarchy. Its box is
// the union of its children's boxes, computed once at construction.
type BVHNode struct {
	Left  Surface
	Right Surface
	Box   core.AABB

	// single marks a node built over one surface, where Left and Right alias it
	single bool
}

// boxedSurface pairs a surface with its box so construction asks for each box once
type boxedSurface struct {
	surface Surface
	box     core.AABB
}

// NewBVH builds a hierarchy over the surfaces for the shutter interval [t0, t1].
// The split axis at every level is drawn from the sampler. The caller's slice
// is not reordered.
func NewBVH(surfaces []Surface, t0, t1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(surfaces) == 0 {
		return nil, ErrEmptySurfaceList
	}

	// Work on a copy so concurrent builds from a shared scene description don't race
	boxed := make([]boxedSurface, len(surfaces))
	for i, surface := range surfaces {
		box, ok := surface.BoundingBox(t0, t1)
		if !ok {
			return nil, fmt.Errorf("bvh construction: surface %d (%T): %w", i, surface, ErrNoBoundingBox)
		}
		boxed[i] = boxedSurface{surface: surface, box: box}
	}

	return buildBVH(boxed, sampler), nil
}

// buildBVH recursively splits at the median of a random axis
func buildBVH(items []boxedSurface, sampler core.Sampler) *BVHNode {
	switch len(items) {
	case 1:
		return &BVHNode{Left: items[0].surface, Right: items[0].surface, Box: items[0].box, single: true}
	case 2:
		return &BVHNode{
			Left:  items[0].surface,
			Right: items[1].surface,
			Box:   core.SurroundingBox(items[0].box, items[1].box),
		}
	}

	axis := min(int(3*sampler.Get1D()), 2)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})

	mid := len(items) / 2
	left := buildBVH(items[:mid], sampler)
	right := buildBVH(items[mid:], sampler)

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   core.SurroundingBox(left.Box, right.Box),
	}
}

// Hit prunes by the node box, then searches the right child only up to the left child's hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if n.single {
		return leftHit, hitLeft
	}

	closest := tMax
	if hitLeft {
		closest = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, closest); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached box
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.Box, true
}
