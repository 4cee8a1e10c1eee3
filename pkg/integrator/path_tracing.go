package integrator

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
)

// PathTracer implements the recursive Monte Carlo estimator with a fixed depth cutoff
type PathTracer struct {
	Background Background
	MaxDepth   int
}

// NewPathTracer creates a path tracer; a non-positive maxDepth selects MaxDepth
func NewPathTracer(background Background, maxDepth int) *PathTracer {
	if maxDepth <= 0 {
		maxDepth = MaxDepth
	}
	if background == nil {
		background = NewSolidBackground(core.Vec3{})
	}
	return &PathTracer{
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// RayColor computes the color for a single ray.
// A path ends when it escapes (background), is absorbed, or reaches the
// depth limit; in the last two cases only the local emission is returned.
func (pt *PathTracer) RayColor(ray core.Ray, world geometry.Surface, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(ray)
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	// The depth check comes first so a terminated path draws no random numbers
	if depth >= pt.MaxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth+1)))
}
