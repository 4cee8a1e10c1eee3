package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator for noise estimates
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken

	// sampler is the pixel's private stream; it persists across passes
	sampler core.PCGSampler
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the pixel's luminance
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return math.Max(0, (ps.LuminanceSqAccum/n-mean*mean)*n/(n-1))
}

// Frame holds the accumulated samples of an image, row 0 at the top.
// Tiles write disjoint pixel ranges, so workers can share a Frame without locking.
type Frame struct {
	Width, Height int
	Pixels        []PixelStats
}

// NewFrame creates an empty frame whose pixel streams derive from seed
func NewFrame(width, height int, seed int64) *Frame {
	pixels := make([]PixelStats, width*height)
	for i := range pixels {
		pixels[i].sampler = core.NewStreamSampler(seed, uint64(i))
	}
	return &Frame{Width: width, Height: height, Pixels: pixels}
}

// At returns the statistics for pixel (x, y)
func (f *Frame) At(x, y int) *PixelStats {
	return &f.Pixels[y*f.Width+x]
}

// Linear returns the mean linear RGB of every pixel in row-major order
func (f *Frame) Linear() []core.Vec3 {
	colors := make([]core.Vec3, len(f.Pixels))
	for i := range f.Pixels {
		colors[i] = f.Pixels[i].GetColor()
	}
	return colors
}

// Image quantizes the frame into an 8-bit RGBA image
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := ToRGB8(f.At(x, y).GetColor())
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// ToRGB8 converts linear RGB to 8-bit channels: clamp to [0,1], gamma 2
// (square root), scale by 255.99 and truncate. Non-finite channels become 0.
func ToRGB8(c core.Vec3) (r, g, b uint8) {
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = max(0, min(1, v))
	return uint8(255.99 * math.Sqrt(v))
}
