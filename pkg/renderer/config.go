package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
)

// ErrInvalidConfig is wrapped by every configuration validation failure
var ErrInvalidConfig = errors.New("invalid render configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for every random stream of the render
	Jitter          bool  // Jitter samples within the pixel; false samples pixel centres
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          200,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.MaxDepth,
		Seed:            42,
		Jitter:          true,
	}
}

// Validate reports the first invalid field
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// AspectRatio returns width / height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// ProgressiveConfig contains configuration for progressive rendering
type ProgressiveConfig struct {
	TileSize           int // Size of each tile (64x64 recommended)
	InitialSamples     int // Samples for first pass (1 recommended)
	MaxSamplesPerPixel int // Maximum total samples per pixel
	MaxPasses          int // Maximum number of passes
	NumWorkers         int // Number of parallel workers (0 = use CPU count)
}

// DefaultProgressiveConfig returns sensible default values
func DefaultProgressiveConfig() ProgressiveConfig {
	return ProgressiveConfig{
		TileSize:           64,
		InitialSamples:     1,
		MaxSamplesPerPixel: 50,
		MaxPasses:          7, // 1, 9, 17, ... then the remainder on the last pass
		NumWorkers:         0, // Auto-detect CPU count
	}
}

// Validate reports the first invalid field
func (c ProgressiveConfig) Validate() error {
	switch {
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.MaxPasses <= 0:
		return fmt.Errorf("%w: max passes %d", ErrInvalidConfig, c.MaxPasses)
	case c.MaxSamplesPerPixel <= 0:
		return fmt.Errorf("%w: max samples per pixel %d", ErrInvalidConfig, c.MaxSamplesPerPixel)
	case c.MaxPasses > 1 && (c.InitialSamples <= 0 || c.InitialSamples > c.MaxSamplesPerPixel):
		return fmt.Errorf("%w: initial samples %d not in [1, %d]", ErrInvalidConfig, c.InitialSamples, c.MaxSamplesPerPixel)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}
