package renderer

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Integrator evaluates radiance along rays by recursive Monte-Carlo
// path tracing with light importance sampling. Recursion stops at a
// hard depth cutoff; Russian roulette is deliberately not used.
type Integrator struct {
	World      core.Hittable
	Lights     core.LightSampler // nil when the scene has no sampleable lights
	Background func(core.Ray) core.Vec3
	MaxDepth   int
}

// RayColour returns the radiance arriving along the ray
func (i *Integrator) RayColour(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	rec, ok := i.World.Hit(ray, core.RayEpsilon, math.Inf(1))
	if !ok {
		return i.Background(ray)
	}

	emission := rec.Material.Emission(ray, rec)

	srec, ok := rec.Material.Scatter(ray, rec, sampler)
	if !ok {
		return emission
	}

	switch {
	case srec.SpecularRay != nil:
		return emission.Add(srec.Attenuation.MultiplyVec(
			i.RayColour(*srec.SpecularRay, depth-1, sampler)))

	case srec.ScatteredRay != nil:
		return emission.Add(srec.Attenuation.MultiplyVec(
			i.RayColour(*srec.ScatteredRay, depth-1, sampler)))

	case srec.PDF != nil:
		var pdf core.PDF = srec.PDF
		if i.Lights != nil {
			pdf = core.NewMixturePDF(core.NewHittablePDF(i.Lights, rec.Point), srec.PDF)
		}

		direction := pdf.Generate(sampler)
		pdfValue := pdf.Value(direction)
		if pdfValue <= 0 {
			// Both distributions assigned zero density to the drawn
			// direction. Degenerate but harmless; skip the sample.
			return emission
		}

		scattered := core.NewRay(rec.Point, direction, ray.Time)
		scatteringPDF := rec.Material.ScatteringPDF(ray, rec, scattered)

		return emission.Add(srec.Attenuation.
			Multiply(scatteringPDF / pdfValue).
			MultiplyVec(i.RayColour(scattered, depth-1, sampler)))

	default:
		return emission
	}
}
