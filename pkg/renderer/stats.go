package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	MaxSamples     int           // Maximum samples allowed per pixel
	MinSamples     int           // Minimum samples taken per pixel
	MaxSamplesUsed int           // Maximum samples actually used by any pixel
	Elapsed        time.Duration // Wall time spent rendering
}

// newRenderStats initializes statistics for a pixel count and sample target
func newRenderStats(pixelCount, maxSamples int) RenderStats {
	return RenderStats{
		TotalPixels: pixelCount,
		MaxSamples:  maxSamples,
		MinSamples:  maxSamples, // Start with max, will be reduced
	}
}

// addPixel records the samples held by one pixel
func (s *RenderStats) addPixel(samples int) {
	s.TotalSamples += samples
	s.MinSamples = min(s.MinSamples, samples)
	s.MaxSamplesUsed = max(s.MaxSamplesUsed, samples)
}

// finalize calculates the averages once all pixels are recorded
func (s *RenderStats) finalize() {
	if s.TotalPixels > 0 {
		s.AverageSamples = float64(s.TotalSamples) / float64(s.TotalPixels)
	}
}
