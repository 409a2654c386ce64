// Package material implements the surface and volume materials the
// integrator scatters against. Each material either produces a concrete
// ray (specular or medium scattering) or a PDF for importance sampling.
package material

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Lambertian is an ideal diffuse surface. It never returns a concrete
// scattered ray; instead it hands the integrator a cosine-weighted PDF
// oriented to the surface normal.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a diffuse material with the given albedo texture
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter returns a cosine PDF about the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (*core.ScatterRecord, bool) {
	return &core.ScatterRecord{
		PDF:         core.NewCosinePDF(rec.Normal),
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// ScatteringPDF returns the cosine-weighted density of the scattered
// direction. This must match what the cosine PDF actually samples.
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	cosine := rec.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

// Emission returns black; diffuse surfaces do not emit
func (l *Lambertian) Emission(rayIn core.Ray, rec *core.HitRecord) core.Vec3 {
	return core.NewVec3(0, 0, 0)
}
