package material

import "github.com/hackmad/raytracing-series/pkg/core"

// Metal is a specular reflector with an optional fuzz factor that
// perturbs the reflected direction for a brushed look.
type Metal struct {
	Albedo core.Texture
	Fuzz   float64
}

// NewMetal creates a reflective material. Fuzz is clamped to [0, 1];
// zero gives a perfect mirror.
func NewMetal(albedo core.Texture, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the incoming ray about the normal and perturbs it by
// the fuzz factor. Samples that end up inside the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (*core.ScatterRecord, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(rec.Normal)
	direction := reflected.Add(core.SampleInUnitSphere(sampler).Multiply(m.Fuzz))

	if direction.Dot(rec.Normal) <= 0 {
		return nil, false
	}

	ray := core.NewRay(rec.Point, direction, rayIn.Time)
	return &core.ScatterRecord{
		SpecularRay: &ray,
		Attenuation: m.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// ScatteringPDF returns 0; specular rays bypass PDF weighting
func (m *Metal) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emission returns black; metals do not emit
func (m *Metal) Emission(rayIn core.Ray, rec *core.HitRecord) core.Vec3 {
	return core.NewVec3(0, 0, 0)
}
