package renderer

import (
	"image"
	"time"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

var logger = log.New("raytracer")

// Raytracer turns camera samples into pixel estimates. It holds only
// read-only state, so any number of workers may share one.
type Raytracer struct {
	world      geometry.Surface
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world geometry.Surface, camera *Camera, integ integrator.Integrator, config SamplingConfig) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
	}
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// SamplePixel estimates the radiance through pixel (x, y) with one camera ray.
// y counts image rows from the top; the camera's t runs from the bottom.
func (rt *Raytracer) SamplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	du, dv := 0.5, 0.5
	if rt.config.Jitter {
		du, dv = sampler.Get1D(), sampler.Get1D()
	}

	s := (float64(x) + du) / float64(rt.config.Width)
	t := (float64(rt.config.Height-1-y) + dv) / float64(rt.config.Height)

	ray := rt.camera.GetRay(s, t, sampler)
	return rt.integrator.RayColor(ray, rt.world, sampler, 0)
}

// RenderBounds tops up every pixel inside bounds to targetSamples
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frame *Frame, targetSamples int) RenderStats {
	stats := newRenderStats(bounds.Dx()*bounds.Dy(), targetSamples)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ps := frame.At(x, y)
			before := ps.SampleCount
			for ps.SampleCount < targetSamples {
				ps.AddSample(rt.SamplePixel(x, y, &ps.sampler))
			}
			stats.addPixel(ps.SampleCount - before)
		}
	}

	stats.finalize()
	return stats
}

// RenderFrame renders the whole image on the calling goroutine with the
// configured samples per pixel. Results match the parallel renderer exactly.
func (rt *Raytracer) RenderFrame() (*Frame, RenderStats) {
	start := time.Now()
	frame := NewFrame(rt.config.Width, rt.config.Height, rt.config.Seed)
	stats := rt.RenderBounds(image.Rect(0, 0, rt.config.Width, rt.config.Height), frame, rt.config.SamplesPerPixel)
	stats.Elapsed = time.Since(start)

	logger.Debugf("rendered %dx%d at %d spp in %v", rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, stats.Elapsed)
	return frame, stats
}
