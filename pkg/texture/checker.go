package texture

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Checker alternates between two textures in a 3D checkerboard pattern
// driven by the sign of sin(10x)·sin(10y)·sin(10z) at the hit point.
type Checker struct {
	Even, Odd core.Texture
}

// NewChecker creates a checkerboard from two component textures
func NewChecker(even, odd core.Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// Value selects the even or odd texture based on the hit point
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}
