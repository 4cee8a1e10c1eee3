package core

import (
	"math/rand"
	randv2 "math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

// maxRejectionDraws bounds rejection sampling loops; a correct uniform source
// accepts within a handful of draws so hitting the cap means the source is broken.
const maxRejectionDraws = 1_000_000

var logger = log.New("core")

// Sampler provides uniform random numbers in [0, 1) for every stochastic
// decision made while rendering. Each render worker owns its own Sampler.
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with a deterministic stream for the seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// PCGSampler is a small-state generator cheap enough to keep one per pixel
type PCGSampler struct {
	src randv2.PCG
}

// NewPCGSampler seeds a PCG stream from two 64-bit words
func NewPCGSampler(seed1, seed2 uint64) PCGSampler {
	return PCGSampler{src: *randv2.NewPCG(seed1, seed2)}
}

// NewStreamSampler returns the stream for one (seed, index) pair, e.g. a pixel of a seeded render.
// Both words are scrambled so neighbouring indices start far apart.
func NewStreamSampler(seed int64, index uint64) PCGSampler {
	return NewPCGSampler(mix64(uint64(seed)), mix64(index^0x9e3779b97f4a7c15))
}

// Get1D returns a random float64 in [0, 1) built from the top 53 bits
func (p *PCGSampler) Get1D() float64 {
	return float64(p.src.Uint64()>>11) * 0x1p-53
}

// mix64 is the splitmix64 finalizer
func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// SampleInUnitSphere draws points in [-1,1]³ until one falls strictly inside the unit sphere
func SampleInUnitSphere(sampler Sampler) Vec3 {
	for i := 0; i < maxRejectionDraws; i++ {
		p := NewVec3(
			2*sampler.Get1D()-1,
			2*sampler.Get1D()-1,
			2*sampler.Get1D()-1,
		)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
	logger.Warningf("unit sphere rejection sampling gave up after %d draws", maxRejectionDraws)
	return Vec3{}
}

// SampleInUnitDisk draws points in [-1,1]² (z=0) until one falls strictly inside the unit disk
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for i := 0; i < maxRejectionDraws; i++ {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
	logger.Warningf("unit disk rejection sampling gave up after %d draws", maxRejectionDraws)
	return Vec3{}
}
