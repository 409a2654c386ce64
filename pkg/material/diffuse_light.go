package material

import "github.com/hackmad/raytracing-series/pkg/core"

// DiffuseLight is a pure emitter. It absorbs every incoming ray and
// emits the configured colour from its front face only, so area lights
// do not spill light behind themselves.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight creates an emissive material with the given texture
func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter absorbs the ray; lights do not scatter
func (d *DiffuseLight) Scatter(rayIn core.Ray, rec *core.HitRecord, sampler core.Sampler) (*core.ScatterRecord, bool) {
	return nil, false
}

// ScatteringPDF returns 0; lights do not scatter
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, rec *core.HitRecord, scattered core.Ray) float64 {
	return 0
}

// Emission returns the emissive colour on the front face, black on the
// back face
func (d *DiffuseLight) Emission(rayIn core.Ray, rec *core.HitRecord) core.Vec3 {
	if !rec.FrontFace {
		return core.NewVec3(0, 0, 0)
	}
	return d.Emit.Value(rec.U, rec.V, rec.Point)
}
