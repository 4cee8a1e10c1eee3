package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.5) > 1e-12 {
		t.Errorf("Expected t=0.5, got t=%f", hit.T)
	}
	if !vecClose(hit.Normal, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
	if hit.Material != mat {
		t.Error("Expected hit to carry the sphere's material")
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_TangentRayMisses(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Grazing ray has a zero discriminant
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected tangent ray to miss")
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(hit.T-1.0) > 1e-12 {
		t.Errorf("Expected far root t=1, got %f", hit.T)
	}
	// Normals always point away from the center
	if !vecClose(hit.Normal, core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := sphere.Hit(ray, 0.001, 1.5); isHit {
		t.Error("Expected miss when both roots lie beyond tMax")
	}
	hit, isHit := sphere.Hit(ray, 2.5, 10)
	if !isHit || math.Abs(hit.T-4) > 1e-12 {
		t.Errorf("Expected far root t=4 when near root is below tMin, got %v", hit)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{"north pole", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"south pole", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"+x", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.u) > 1e-12 || math.Abs(v-tt.v) > 1e-12 {
				t.Errorf("Expected (%f,%f), got (%f,%f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)
	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected sphere to have a bounding box")
	}
	if box.Min != core.NewVec3(0.5, 1.5, 2.5) || box.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -1), core.NewVec3(0, 2, -1), 0, 1, 0.5, nil)

	if c := sphere.Center(0.5); !vecClose(c, core.NewVec3(0, 1, -1), 1e-12) {
		t.Errorf("Expected midpoint center (0,1,-1), got %v", c)
	}

	// At time 0 the sphere is in front of the camera, at time 1 it has moved up out of the way
	early := core.NewRayAtTime(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	late := core.NewRayAtTime(core.Vec3{}, core.NewVec3(0, 0, -1), 1)
	if hit, ok := sphere.Hit(early, 0.001, math.Inf(1)); !ok || math.Abs(hit.T-0.5) > 1e-12 {
		t.Errorf("Expected hit at t=0.5 for time 0, got %v", hit)
	}
	if _, ok := sphere.Hit(late, 0.001, math.Inf(1)); ok {
		t.Error("Expected miss at time 1")
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected moving sphere to have a bounding box")
	}
	if box.Min != core.NewVec3(-0.5, -0.5, -1.5) || box.Max != core.NewVec3(0.5, 2.5, -0.5) {
		t.Errorf("Expected box spanning both endpoints, got %v", box)
	}
}

func TestMovingSphere_ZeroShutter(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(1, 0, 0), core.NewVec3(5, 0, 0), 0.5, 0.5, 1, nil)
	if c := sphere.Center(0.5); c != sphere.Center0 {
		t.Errorf("Expected Center0 for an empty time window, got %v", c)
	}
}
