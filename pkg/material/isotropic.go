package material

import "github.com/hackmad/raytracing-series/pkg/core"

// Isotropic scatters into a uniformly random direction, modelling the
// phase function of a participating medium. Used by constant-density
// volumes.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic phase function with the given albedo
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction inside the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (*core.ScatterRecord, bool) {
	ray := core.NewRay(rec.Point, core.SampleInUnitSphere(sampler), rayIn.Time)
	return &core.ScatterRecord{
		ScatteredRay: &ray,
		Attenuation:  i.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// ScatteringPDF returns 0; medium scattering bypasses PDF weighting
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emission returns black; the medium does not emit
func (i *Isotropic) Emission(rayIn core.Ray, rec *core.HitRecord) core.Vec3 {
	return core.NewVec3(0, 0, 0)
}
