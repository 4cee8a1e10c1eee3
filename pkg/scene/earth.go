package scene

import (
	"path/filepath"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/loaders"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// EarthTexture is the file the earth scene looks for in Options.TextureDir
const EarthTexture = "earthmap.jpg"

// NewEarthScene wraps an image texture around a sphere. A missing texture
// renders as a plain gray globe.
func NewEarthScene(opts Options) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.Seed = opts.Seed

	s := &Scene{
		Name:           "earth",
		CameraConfig:   farCamera(0),
		Background:     integrator.NewSkyGradient(),
		SamplingConfig: sampling,
	}

	texture := loaders.LoadImageTexture(filepath.Join(opts.TextureDir, EarthTexture))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)))
	return s
}
