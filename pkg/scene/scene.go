package scene

import (
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Surfaces       []geometry.Surface      // Objects in the scene, materials attached
	CameraConfig   renderer.CameraConfig   // Camera; its shutter interval bounds the BVH
	Background     integrator.Background   // Radiance for escaping rays
	SamplingConfig renderer.SamplingConfig // Recommended render settings
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// Build constructs the BVH over the scene's surfaces. The split axes are
// drawn from a stream seeded by seed so a seeded render is reproducible.
func (s *Scene) Build(seed int64) (*geometry.BVHNode, error) {
	bvh, err := geometry.NewBVH(s.Surfaces, s.CameraConfig.Time0, s.CameraConfig.Time1, core.NewSeededSampler(seed))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	logger.Debugf("built BVH for %s over %d surfaces", s.Name, len(s.Surfaces))
	return bvh, nil
}

// NewRaytracer builds the scene and wires a raytracer for the given sampling settings.
// The camera aspect ratio follows the image size.
func (s *Scene) NewRaytracer(config renderer.SamplingConfig) (*renderer.Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := s.CameraConfig
	cameraConfig.AspectRatio = config.AspectRatio()
	if err := cameraConfig.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}

	world, err := s.Build(config.Seed)
	if err != nil {
		return nil, err
	}

	pathTracer := integrator.NewPathTracer(s.Background, config.MaxDepth)
	return renderer.NewRaytracer(world, renderer.NewCamera(cameraConfig), pathTracer, config), nil
}
