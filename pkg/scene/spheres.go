package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// NewTwoSpheresScene is a diffuse sphere on a large ground sphere, seen by the canonical camera
func NewTwoSpheresScene(opts Options) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.Width, sampling.Height = 200, 100
	sampling.Seed = opts.Seed

	s := &Scene{
		Name:           "two-spheres",
		CameraConfig:   renderer.DefaultCameraConfig(),
		Background:     integrator.NewSkyGradient(),
		SamplingConfig: sampling,
	}
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
	)
	return s
}

// farCamera is the wide shot shared by the sphere showcase scenes
func farCamera(aperture float64) renderer.CameraConfig {
	lookFrom := core.NewVec3(13, 2, 3)
	lookAt := core.NewVec3(0, 0, 0)
	return renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   2,
		Aperture:      aperture,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// NewRandomSpheresScene scatters small spheres on a checker ground around three large ones.
// Diffuse small spheres bounce upward during the shutter interval.
func NewRandomSpheresScene(opts Options) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.Seed = opts.Seed

	s := &Scene{
		Name:           "random-spheres",
		CameraConfig:   farCamera(0.1),
		Background:     integrator.NewSkyGradient(),
		SamplingConfig: sampling,
	}

	checker := material.NewCheckerTexture(
		material.NewConstantTexture(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewConstantTexture(core.NewVec3(0.9, 0.9, 0.9)),
	)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	random := core.NewSeededSampler(opts.Seed)
	r := random.Get1D
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := r()
			center := core.NewVec3(float64(a)+0.9*r(), 0.2, float64(b)+0.9*r())
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(r()*r(), r()*r(), r()*r())
				center1 := center.Add(core.NewVec3(0, 0.5*r(), 0))
				s.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(0.5*(1+r()), 0.5*(1+r()), 0.5*(1+r()))
				s.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*r())))
			default:
				s.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s
}

// perlinSpheres are the two marble spheres shared by the noise scenes
func perlinSpheres() []geometry.Surface {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4))
	return []geometry.Surface{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewPerlinSpheresScene shows the marble noise texture
func NewPerlinSpheresScene(opts Options) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.Seed = opts.Seed

	s := &Scene{
		Name:           "perlin-spheres",
		CameraConfig:   farCamera(0),
		Background:     integrator.NewSkyGradient(),
		SamplingConfig: sampling,
	}
	s.Add(perlinSpheres()...)
	return s
}

// NewSimpleLightScene lights the marble spheres with a sphere light and a rectangle light
func NewSimpleLightScene(opts Options) *Scene {
	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 400
	sampling.Seed = opts.Seed

	camera := farCamera(0)
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)

	s := &Scene{
		Name:           "simple-light",
		CameraConfig:   camera,
		Background:     integrator.NewSolidBackground(core.Vec3{}),
		SamplingConfig: sampling,
	}

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	s.Add(perlinSpheres()...)
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)
	return s
}
