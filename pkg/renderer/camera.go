package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	VUp           core.Vec3 // Up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole
	FocusDistance float64   // Distance to the plane of perfect focus
	Time0, Time1  float64   // Shutter interval
}

// DefaultCameraConfig returns the canonical camera at the origin looking down -z,
// whose image plane at z=-1 spans x in [-2,2] and y in [-1,1]
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   2,
		Aperture:      0,
		FocusDistance: 1,
	}
}

// Validate checks that the configuration spans a usable basis
func (c CameraConfig) Validate() error {
	w := c.LookFrom.Subtract(c.LookAt)
	switch {
	case w.LengthSquared() == 0:
		return fmt.Errorf("%w: camera looks at its own position", ErrInvalidConfig)
	case c.VUp.Cross(w).LengthSquared() == 0:
		return fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidConfig)
	case !(c.VFov > 0 && c.VFov < 180):
		return fmt.Errorf("%w: vertical field of view %g", ErrInvalidConfig, c.VFov)
	case !(c.AspectRatio > 0):
		return fmt.Errorf("%w: aspect ratio %g", ErrInvalidConfig, c.AspectRatio)
	case !(c.FocusDistance > 0):
		return fmt.Errorf("%w: focus distance %g", ErrInvalidConfig, c.FocusDistance)
	case c.Aperture < 0:
		return fmt.Errorf("%w: aperture %g", ErrInvalidConfig, c.Aperture)
	case c.Time1 < c.Time0:
		return fmt.Errorf("%w: shutter interval [%g, %g]", ErrInvalidConfig, c.Time0, c.Time1)
	}
	return nil
}

// Camera generates rays for rendering
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera derives the orthonormal basis and focal-plane rectangle
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	focus := config.FocusDistance
	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focus)).
		Subtract(v.Multiply(halfHeight * focus)).
		Subtract(w.Multiply(focus))

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focus),
		vertical:        v.Multiply(2 * halfHeight * focus),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1,
// (0,0) being the lower left corner. A pinhole camera with an empty shutter
// interval draws no random numbers.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SampleInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	time := c.config.Time0
	if c.config.Time1 > c.config.Time0 {
		time += sampler.Get1D() * (c.config.Time1 - c.config.Time0)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAtTime(origin, direction, time)
}
