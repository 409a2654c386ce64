package core

import "math"

// CosinePDF samples directions with density cos(θ)/π around a surface
// normal via an orthonormal basis.
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine density function for a surface normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, 0 below
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction around the basis normal
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.uvw.Local(CosineDirection(sampler.Get2D()))
}

// HittablePDF samples directions toward a hittable object (typically
// the scene's lights) and reports the solid-angle density of hitting it.
type HittablePDF struct {
	object LightSampler
	origin Vec3
}

// NewHittablePDF creates a density function toward an object from a point
func NewHittablePDF(object LightSampler, origin Vec3) *HittablePDF {
	return &HittablePDF{object: object, origin: origin}
}

// Value returns the object's solid-angle density for the direction
func (p *HittablePDF) Value(direction Vec3) float64 {
	return p.object.PDFValue(p.origin, direction)
}

// Generate draws a direction toward the object
func (p *HittablePDF) Generate(sampler Sampler) Vec3 {
	return p.object.Random(p.origin, sampler)
}

// MixturePDF mixes two PDFs 50/50. Half of the generated directions are
// drawn from each, and the density is the mean of both densities, which
// keeps estimates that divide by it unbiased.
type MixturePDF struct {
	p0, p1 PDF
}

// NewMixturePDF creates an even mixture of two density functions
func NewMixturePDF(p0, p1 PDF) *MixturePDF {
	return &MixturePDF{p0: p0, p1: p1}
}

// Value returns the arithmetic mean of both densities
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.p0.Value(direction) + 0.5*p.p1.Value(direction)
}

// Generate draws from either PDF with equal probability
func (p *MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.p0.Generate(sampler)
	}
	return p.p1.Generate(sampler)
}
