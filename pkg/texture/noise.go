package texture

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

const turbulenceDepth = 7

// Noise is a marble-like texture: a sine wave along z with its phase
// displaced by Perlin turbulence.
type Noise struct {
	perlin *Perlin
	Scale  float64
}

// NewNoise creates a marble texture with the given frequency scale
func NewNoise(scale float64, sampler core.Sampler) *Noise {
	return &Noise{perlin: NewPerlin(sampler), Scale: scale}
}

// Value returns the marble intensity as a grey colour
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	intensity := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.perlin.Turbulence(p, turbulenceDepth)))
	return core.NewVec3(1, 1, 1).Multiply(intensity)
}
