package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

func TestNewBVH_Empty(t *testing.T) {
	if _, err := NewBVH(nil, 0, 1, core.NewSeededSampler(1)); !errors.Is(err, ErrEmptySurfaceList) {
		t.Errorf("Expected ErrEmptySurfaceList, got %v", err)
	}
}

func TestNewBVH_SingleSurfaceAliases(t *testing.T) {
	sphere := NewSphere(core.Vec3{}, 1, nil)
	bvh, err := NewBVH([]Surface{sphere}, 0, 1, core.NewSeededSampler(1))
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	if bvh.Left != Surface(sphere) || bvh.Right != Surface(sphere) {
		t.Error("Expected both children to alias the single surface")
	}

	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok || math.Abs(hit.T-4) > 1e-12 {
		t.Errorf("Expected hit at t=4, got %v", hit)
	}
}

func TestNewBVH_TwoSurfacesAreDirectChildren(t *testing.T) {
	a := NewSphere(core.NewVec3(-2, 0, 0), 1, nil)
	b := NewSphere(core.NewVec3(2, 0, 0), 1, nil)
	bvh, err := NewBVH([]Surface{a, b}, 0, 1, core.NewSeededSampler(1))
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	if bvh.Left != Surface(a) || bvh.Right != Surface(b) {
		t.Error("Expected the two surfaces as direct children")
	}
	if bvh.Box.Min != core.NewVec3(-3, -1, -1) || bvh.Box.Max != core.NewVec3(3, 1, 1) {
		t.Errorf("Unexpected root box %v", bvh.Box)
	}
}

func TestNewBVH_DoesNotReorderInput(t *testing.T) {
	surfaces := []Surface{
		NewSphere(core.NewVec3(5, 0, 0), 1, nil),
		NewSphere(core.NewVec3(-5, 0, 0), 1, nil),
		NewSphere(core.NewVec3(0, 5, 0), 1, nil),
		NewSphere(core.NewVec3(0, -5, 0), 1, nil),
	}
	original := append([]Surface(nil), surfaces...)
	if _, err := NewBVH(surfaces, 0, 1, core.NewSeededSampler(3)); err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}
	for i := range surfaces {
		if surfaces[i] != original[i] {
			t.Fatalf("Input slice was reordered at index %d", i)
		}
	}
}

func TestBVH_BoxContainsChildren(t *testing.T) {
	sampler := core.NewSeededSampler(7)
	surfaces := randomSurfaces(sampler, 50)
	bvh, err := NewBVH(surfaces, 0, 1, sampler)
	if err != nil {
		t.Fatalf("NewBVH failed: %v", err)
	}

	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		for _, child := range []Surface{node.Left, node.Right} {
			box, ok := child.BoundingBox(0, 1)
			if !ok {
				t.Fatalf("Child %T has no bounding box", child)
			}
			for _, corner := range box.Corners() {
				if !node.Box.Contains(corner) {
					t.Fatalf("Node box %v does not contain child corner %v", node.Box, corner)
				}
			}
			if inner, ok := child.(*BVHNode); ok {
				check(inner)
			}
		}
	}
	check(bvh)
}

// randomSurfaces creates a mix of spheres, moving spheres, rectangles and boxes
func randomSurfaces(sampler core.Sampler, n int) []Surface {
	randomPoint := func() core.Vec3 {
		return core.NewVec3(20*sampler.Get1D()-10, 20*sampler.Get1D()-10, 20*sampler.Get1D()-10)
	}

	surfaces := make([]Surface, 0, n)
	for i := 0; i < n; i++ {
		mat := material.NewLambertian(core.NewVec3(sampler.Get1D(), sampler.Get1D(), sampler.Get1D()))
		p := randomPoint()
		switch i % 5 {
		case 0:
			surfaces = append(surfaces, NewSphere(p, 0.2+sampler.Get1D(), mat))
		case 1:
			surfaces = append(surfaces, NewMovingSphere(p, p.Add(core.NewVec3(0, sampler.Get1D(), 0)), 0, 1, 0.5, mat))
		case 2:
			surfaces = append(surfaces, NewXYRect(p.X, p.X+1+sampler.Get1D(), p.Y, p.Y+1, p.Z, mat))
		case 3:
			surfaces = append(surfaces, NewXZRect(p.X, p.X+1, p.Z, p.Z+1+sampler.Get1D(), p.Y, mat))
		default:
			surfaces = append(surfaces, NewRotateY(NewBox(p, p.Add(core.NewVec3(1, 2, 1)), mat), 360*sampler.Get1D()))
		}
	}
	return surfaces
}

func TestBVH_MatchesLinearScan(t *testing.T) {
	for _, count := range []int{1, 2, 3, 7, 64, 257} {
		sampler := core.NewSeededSampler(int64(count))
		surfaces := randomSurfaces(sampler, count)
		list := NewList(surfaces...)
		bvh, err := NewBVH(surfaces, 0, 1, sampler)
		if err != nil {
			t.Fatalf("NewBVH(%d) failed: %v", count, err)
		}

		for i := 0; i < 2000; i++ {
			origin := core.NewVec3(30*sampler.Get1D()-15, 30*sampler.Get1D()-15, 30*sampler.Get1D()-15)
			direction := core.SampleInUnitSphere(sampler)
			ray := core.NewRayAtTime(origin, direction, sampler.Get1D())

			want, wantOK := list.Hit(ray, 0.001, math.Inf(1))
			got, gotOK := bvh.Hit(ray, 0.001, math.Inf(1))
			if wantOK != gotOK {
				t.Fatalf("count=%d ray %d: list hit=%t, bvh hit=%t", count, i, wantOK, gotOK)
			}
			if !wantOK {
				continue
			}
			if math.Abs(want.T-got.T) > 1e-9 {
				t.Fatalf("count=%d ray %d: list t=%f, bvh t=%f", count, i, want.T, got.T)
			}
			if want.Material != got.Material {
				t.Fatalf("count=%d ray %d: materials differ at t=%f", count, i, want.T)
			}
		}
	}
}

func TestList(t *testing.T) {
	near := material.NewMetal(core.NewVec3(1, 1, 1), 0)
	far := material.NewLambertian(core.NewVec3(1, 1, 1))
	list := NewList(NewSphere(core.NewVec3(0, 0, -10), 1, far))
	list.Add(NewSphere(core.NewVec3(0, 0, -5), 1, near))

	hit, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !ok || math.Abs(hit.T-4) > 1e-12 || hit.Material != near {
		t.Errorf("Expected nearest sphere at t=4, got %v", hit)
	}

	box, ok := list.BoundingBox(0, 1)
	if !ok || box.Min != core.NewVec3(-1, -1, -11) || box.Max != core.NewVec3(1, 1, -4) {
		t.Errorf("Unexpected list bounding box %v", box)
	}

	if _, ok := NewList().BoundingBox(0, 1); ok {
		t.Error("Expected empty list to have no bounding box")
	}
	if _, ok := NewList().Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); ok {
		t.Error("Expected empty list to report no hit")
	}
}
