package core

import (
	"math"
	"testing"
)

func TestVec3Algebra(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Min", a.Min(b), NewVec3(1, -5, 3)},
		{"Max", a.Max(b), NewVec3(4, 2, 6)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
		{"Sqrt", NewVec3(4, 9, 0.25).Sqrt(), NewVec3(2, 3, 0.5)},
		{"Lerp", NewVec3(1, 1, 1).Lerp(NewVec3(0.5, 0.7, 1.0), 0.5), NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if a.Dot(b) != 12 {
		t.Errorf("Expected dot product 12, got %f", a.Dot(b))
	}
}

func TestVec3Normalize(t *testing.T) {
	n := NewVec3(3, 4, 0).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("Expected zero vector to normalize to zero")
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("Expected NaN to be reported as non-finite")
	}
	if NewVec3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Expected Inf to be reported as non-finite")
	}
}

func TestRayAt(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 0, 0), NewVec3(0, 2, 0), 0.25)
	if p := ray.At(1.5); p != NewVec3(1, 3, 0) {
		t.Errorf("Expected (1,3,0), got %v", p)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
	if NewRay(Vec3{}, Vec3{}).Time != 0 {
		t.Error("Expected default ray time of 0")
	}
}
