package texture

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

const perlinPointCount = 256

// Perlin is gradient noise over unit vectors with trilinear Hermite
// interpolation, plus a turbulence accumulator for marble patterns.
type Perlin struct {
	randVec             []core.Vec3
	permX, permY, permZ []int
}

// NewPerlin creates a noise generator seeded from the given sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	randVec := make([]core.Vec3, perlinPointCount)
	for i := range randVec {
		s := sampler.Get3D()
		randVec[i] = core.NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1).Normalize()
	}

	return &Perlin{
		randVec: randVec,
		permX:   generatePerm(sampler),
		permY:   generatePerm(sampler),
		permZ:   generatePerm(sampler),
	}
}

// Noise returns smooth gradient noise in [-1, 1] at the given point
func (n *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = n.randVec[n.permX[(i+di)&255]^
					n.permY[(j+dj)&255]^
					n.permZ[(k+dk)&255]]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

// Turbulence sums noise at doubling frequencies and halving weights
func (n *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * n.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	if accum < 0 {
		return -accum
	}
	return accum
}

func generatePerm(sampler core.Sampler) []int {
	perm := make([]int, perlinPointCount)
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := int(sampler.Get1D() * float64(i+1))
		if target > i {
			target = i
		}
		perm[i], perm[target] = perm[target], perm[i]
	}
	return perm
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
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
