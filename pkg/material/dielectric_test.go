package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// fixedSampler always returns the same value
type fixedSampler float64

func (f fixedSampler) Get1D() float64 { return float64(f) }

func TestDielectric_AlwaysScattersWithWhiteAttenuation(t *testing.T) {
	glass := NewDielectric(1.5)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0))
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0)}

	for _, u := range []float64{0, 0.5, 0.999} {
		result, scattered := glass.Scatter(ray, hit, fixedSampler(u))
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected white attenuation, got %v", result.Attenuation)
		}
	}
}

func TestDielectric_HeadOnEntryRefractsStraight(t *testing.T) {
	glass := NewDielectric(1.5)
	// Head-on hit of a sphere from outside: direction opposes the outward normal
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := &HitRecord{Point: core.NewVec3(0, 0, -0.5), Normal: core.NewVec3(0, 0, 1)}

	// Schlick at normal incidence is 0.04; a draw of 0.5 must refract
	result, _ := glass.Scatter(ray, hit, fixedSampler(0.5))
	if d := result.Scattered.Direction.Subtract(core.NewVec3(0, 0, -1)).Length(); d > 1e-12 {
		t.Errorf("Expected undeviated refraction, got %v", result.Scattered.Direction)
	}

	// A draw below the reflectance must reflect
	result, _ = glass.Scatter(ray, hit, fixedSampler(0.01))
	if d := result.Scattered.Direction.Subtract(core.NewVec3(0, 0, 1)).Length(); d > 1e-12 {
		t.Errorf("Expected reflection back along the normal, got %v", result.Scattered.Direction)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting the glass: direction has a positive dot with the outward normal.
	// The critical angle for 1.5 is asin(1/1.5) ≈ 41.8°, use 60° from the normal.
	angle := 60.0 * math.Pi / 180.0
	direction := core.NewVec3(math.Sin(angle), math.Cos(angle), 0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), direction)
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0)}

	if _, ok := Refract(direction, hit.Normal.Negate(), 1.5); ok {
		t.Fatal("Expected non-positive discriminant beyond the critical angle")
	}

	expected := Reflect(direction, hit.Normal)
	// Even a draw of 0.999 must reflect: the reflect probability is 1
	for _, u := range []float64{0, 0.5, 0.999} {
		result, _ := glass.Scatter(ray, hit, fixedSampler(u))
		if result.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
			t.Errorf("Draw %.3f: expected reflection %v, got %v", u, expected, result.Scattered.Direction)
		}
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	angle := 30.0 * math.Pi / 180.0
	v := core.NewVec3(math.Sin(angle), -math.Cos(angle), 0)
	n := core.NewVec3(0, 1, 0)

	refracted, ok := Refract(v, n, 1.0/1.5)
	if !ok {
		t.Fatal("Expected refraction entering glass")
	}
	refracted = refracted.Normalize()

	sinOut := refracted.X
	expected := math.Sin(angle) / 1.5
	if math.Abs(sinOut-expected) > 1e-9 {
		t.Errorf("Expected sin(theta_t)=%f, got %f", expected, sinOut)
	}
	if refracted.Y >= 0 {
		t.Errorf("Expected refracted ray to continue below the surface, got %v", refracted)
	}
}

func TestSchlick(t *testing.T) {
	if r := Schlick(1.0, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 at normal incidence, got %f", r)
	}
	if r := Schlick(0.0, 1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected 1.0 at grazing incidence, got %f", r)
	}
}
