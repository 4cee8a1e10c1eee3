package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestTranslate_MatchesMovedSphere(t *testing.T) {
	offset := core.NewVec3(2, -1, 3)
	translated := NewTranslate(NewSphere(core.Vec3{}, 1, nil), offset)
	reference := NewSphere(offset, 1, nil)
	sampler := core.NewSeededSampler(11)

	for i := 0; i < 200; i++ {
		origin := core.NewVec3(10*sampler.Get1D()-5, 10*sampler.Get1D()-5, 10*sampler.Get1D()-5)
		direction := offset.Subtract(origin).Add(core.SampleInUnitSphere(sampler))
		ray := core.NewRay(origin, direction)

		got, gotOK := translated.Hit(ray, 0.001, math.Inf(1))
		want, wantOK := reference.Hit(ray, 0.001, math.Inf(1))
		if gotOK != wantOK {
			t.Fatalf("Ray %d: translated hit=%t, reference hit=%t", i, gotOK, wantOK)
		}
		if !gotOK {
			continue
		}
		if math.Abs(got.T-want.T) > 1e-9 || !vecClose(got.Point, want.Point, 1e-9) || !vecClose(got.Normal, want.Normal, 1e-9) {
			t.Fatalf("Ray %d: translated %+v, reference %+v", i, got, want)
		}
	}

	box, _ := translated.BoundingBox(0, 1)
	want, _ := reference.BoundingBox(0, 1)
	if !vecClose(box.Min, want.Min, 1e-12) || !vecClose(box.Max, want.Max, 1e-12) {
		t.Errorf("Expected bounding box %v, got %v", want, box)
	}
}

func TestRotateY_Quarter(t *testing.T) {
	// A slab extending along +x; rotated 90° about y it extends along -z
	slab := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 1, 1), nil)
	rotated := NewRotateY(slab, 90)

	ray := core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1))
	hit, ok := rotated.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on rotated box")
	}
	// The +x end face at x=2 lands at z=-2 and faces -z
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}
	if !vecClose(hit.Normal, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected normal (0,0,-1), got %v", hit.Normal)
	}
	if !vecClose(hit.Point, core.NewVec3(0.5, 0.5, -2), 1e-9) {
		t.Errorf("Expected hit point (0.5,0.5,-2), got %v", hit.Point)
	}

	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounding box")
	}
	if !vecClose(box.Min, core.NewVec3(0, 0, -2), 1e-9) || !vecClose(box.Max, core.NewVec3(1, 1, 0), 1e-9) {
		t.Errorf("Unexpected rotated bounding box %v", box)
	}
}

func TestRotateY_UnboundedChild(t *testing.T) {
	rotated := NewRotateY(NewPlane(core.Vec3{}, core.NewVec3(0, 1, 0), nil), 30)
	if _, ok := rotated.BoundingBox(0, 1); ok {
		t.Error("Expected rotated plane to stay unbounded")
	}
}
