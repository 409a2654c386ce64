package material

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Dielectric is a clear refractive material such as glass or water.
// Reflection vs refraction is chosen probabilistically from the Fresnel
// reflectance, approximated with Schlick's polynomial.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a refractive material with the given index
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the ray depending on the refraction
// ratio and Fresnel reflectance. Always returns a specular ray.
func (d *Dielectric) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (*core.ScatterRecord, bool) {
	refractionRatio := d.RefractiveIndex
	if rec.FrontFace {
		refractionRatio = 1 / d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1)
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1

	var direction core.Vec3
	if cannotRefract || schlick(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(rec.Normal)
	} else {
		direction = unitDirection.Refract(rec.Normal, refractionRatio)
	}

	ray := core.NewRay(rec.Point, direction, rayIn.Time)
	return &core.ScatterRecord{
		SpecularRay: &ray,
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// ScatteringPDF returns 0; specular rays bypass PDF weighting
func (d *Dielectric) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emission returns black; dielectrics do not emit
func (d *Dielectric) Emission(rayIn core.Ray, rec *core.HitRecord) core.Vec3 {
	return core.NewVec3(0, 0, 0)
}

// schlick approximates the Fresnel reflectance at the interface
func schlick(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
