package scene

import (
	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// NewCornellScene creates a classic Cornell box with a ceiling light and two rotated boxes
func NewCornellScene(opts Options) *Scene {
	config := renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40.0,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 10.0,
	}

	sampling := renderer.DefaultSamplingConfig()
	sampling.Width, sampling.Height = 400, 400
	sampling.SamplesPerPixel = 400
	sampling.Seed = opts.Seed

	s := &Scene{
		Name:           "cornell-box",
		CameraConfig:   config,
		Background:     integrator.NewSolidBackground(core.Vec3{}), // Enclosed, nothing escapes
		SamplingConfig: sampling,
	}

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Cornell box dimensions (standard 555x555x555 units), every wall facing inward
	const boxSize = 555.0
	s.Add(
		geometry.NewFlipNormals(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light),
		geometry.NewFlipNormals(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)),
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),
		geometry.NewFlipNormals(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	)

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	s.Add(
		geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65)),
		geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295)),
	)

	return s
}
