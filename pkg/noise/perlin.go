// Package noise implements gradient (Perlin) noise and turbulence for
// procedural textures. The lattice tables are built once per process from a
// fixed seed and are read-only afterwards, so concurrent lookups are safe.
package noise

import (
	"math"
	"math/rand"
	"sync"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

const (
	tableSize = 256
	tableMask = tableSize - 1

	// DefaultTurbulenceDepth is the number of octaves used by textures
	DefaultTurbulenceDepth = 7

	tableSeed = 1984
)

type tables struct {
	gradients [tableSize]core.Vec3
	permX     [tableSize]int
	permY     [tableSize]int
	permZ     [tableSize]int
}

var (
	lattice     *tables
	latticeOnce sync.Once
)

func getTables() *tables {
	latticeOnce.Do(func() {
		lattice = buildTables(rand.New(rand.NewSource(tableSeed)))
	})
	return lattice
}

func buildTables(random *rand.Rand) *tables {
	t := &tables{}
	for i := range t.gradients {
		t.gradients[i] = core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		).Normalize()
	}
	t.permX = permutation(random)
	t.permY = permutation(random)
	t.permZ = permutation(random)
	return t
}

// permutation returns a Fisher-Yates shuffle of 0..255
func permutation(random *rand.Rand) [tableSize]int {
	var p [tableSize]int
	for i := range p {
		p[i] = i
	}
	for i := tableSize - 1; i > 0; i-- {
		target := random.Intn(i + 1)
		p[i], p[target] = p[target], p[i]
	}
	return p
}

// Noise returns gradient noise at p, roughly in [-1, 1]
func Noise(p core.Vec3) float64 {
	t := getTables()

	fx, fy, fz := math.Floor(p.X), math.Floor(p.Y), math.Floor(p.Z)
	u, v, w := p.X-fx, p.Y-fy, p.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = t.gradients[t.permX[(i+di)&tableMask]^
					t.permY[(j+dj)&tableMask]^
					t.permZ[(k+dk)&tableMask]]
			}
		}
	}
	return interpolate(&c, u, v, w)
}

// interpolate blends the eight corner gradients with hermite smoothing
func interpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise with halving weight and doubling
// frequency and returns the absolute value of the sum.
func Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}
	return math.Abs(accum)
}
