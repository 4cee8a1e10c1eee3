package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestAABBHit_UnitBox(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	toward := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
	if !box.Hit(toward, 0, math.Inf(1)) {
		t.Error("Expected ray pointing at the box to hit")
	}

	away := NewRay(NewVec3(2, 0.5, 0.5), NewVec3(1, 0, 0))
	if box.Hit(away, 0, math.Inf(1)) {
		t.Error("Expected ray pointing away from the box to miss")
	}
}

func TestAABBHit_ZeroDirectionComponent(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	// Direction has zero Y and Z components; the slabs become ±Inf and must not panic
	inside := NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0))
	if !box.Hit(inside, 0.001, math.Inf(1)) {
		t.Error("Expected axis-parallel ray inside the slab to hit")
	}

	outside := NewRay(NewVec3(-1, 2, 0.5), NewVec3(1, 0, 0))
	if outside.Direction.Y != 0 {
		t.Fatal("test ray must have a zero Y component")
	}
	if box.Hit(outside, 0.001, math.Inf(1)) {
		t.Error("Expected axis-parallel ray outside the slab to miss")
	}
}

func TestAABBHit_RespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	ray := NewRay(NewVec3(-5, 0.5, 0.5), NewVec3(1, 0, 0))

	// Box spans t in [5, 6]
	if box.Hit(ray, 0, 4) {
		t.Error("Expected miss when interval ends before the box")
	}
	if box.Hit(ray, 7, 100) {
		t.Error("Expected miss when interval starts after the box")
	}
	if !box.Hit(ray, 5.5, 100) {
		t.Error("Expected hit when interval starts inside the box")
	}
}

func TestSurroundingBox_ContainsBothBoxes(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		a := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		b := NewVec3(random.Float64()*20-10, random.Float64()*20-10, random.Float64()*20-10)
		return NewAABB(a.Min(b), a.Max(b))
	}

	for i := 0; i < 200; i++ {
		a, b := randomBox(), randomBox()
		merged := SurroundingBox(a, b)

		if !merged.IsValid() {
			t.Fatalf("Expected valid merged box, got %v", merged)
		}
		cornersA, cornersB := a.Corners(), b.Corners()
		for _, corner := range append(cornersA[:], cornersB[:]...) {
			if !merged.Contains(corner) {
				t.Fatalf("Merged box %v does not contain corner %v", merged, corner)
			}
		}
		if SurroundingBox(b, a) != merged {
			t.Errorf("Expected SurroundingBox to be commutative for %v and %v", a, b)
		}
	}
}

func TestSurroundingBox_Associative(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0), NewVec3(0, 3, 0.5))
	c := NewAABB(NewVec3(1, -1, -4), NewVec3(2, 0, 9))

	left := SurroundingBox(SurroundingBox(a, b), c)
	right := SurroundingBox(a, SurroundingBox(b, c))
	if left != right {
		t.Errorf("Expected %v, got %v", left, right)
	}
}

func TestAABBCorners(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(1, 2, 3))
	corners := box.Corners()

	seen := make(map[Vec3]bool)
	for _, c := range corners {
		if math.Abs(c.X) != 1 || math.Abs(c.Y) != 2 || math.Abs(c.Z) != 3 {
			t.Errorf("Unexpected corner %v", c)
		}
		seen[c] = true
	}
	if len(seen) != 8 {
		t.Errorf("Expected 8 distinct corners, got %d", len(seen))
	}
	if NewAABBFromPoints(corners[:]...) != box {
		t.Errorf("Expected corners to rebuild the original box")
	}
}
