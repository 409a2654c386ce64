// Package texture implements procedural and image-based colour sources
// sampled by materials at hit points.
package texture

import "github.com/hackmad/raytracing-series/pkg/core"

// Solid is a uniform colour everywhere
type Solid struct {
	Colour core.Vec3
}

// NewSolid creates a texture with a single colour
func NewSolid(colour core.Vec3) *Solid {
	return &Solid{Colour: colour}
}

// NewSolidRGB creates a single-colour texture from components
func NewSolidRGB(r, g, b float64) *Solid {
	return &Solid{Colour: core.NewVec3(r, g, b)}
}

// Value returns the colour regardless of coordinates
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Colour
}
