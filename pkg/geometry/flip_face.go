package geometry

import "github.com/hackmad/raytracing-series/pkg/core"

// FlipFace inverts the front-face flag of a wrapped object. One-sided
// lights use it to emit from the intended side only.
type FlipFace struct {
	Object core.Hittable
}

// NewFlipFace wraps an object with inverted face orientation
func NewFlipFace(object core.Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates to the wrapped object and flips the face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rec, ok := f.Object.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	return rec.FlipFrontFace(), true
}

// BoundingBox delegates to the wrapped object
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

// PDFValue delegates to the wrapped object when it can be sampled
func (f *FlipFace) PDFValue(origin, direction core.Vec3) float64 {
	if ls, ok := f.Object.(core.LightSampler); ok {
		return ls.PDFValue(origin, direction)
	}
	return 0
}

// Random delegates to the wrapped object when it can be sampled
func (f *FlipFace) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if ls, ok := f.Object.(core.LightSampler); ok {
		return ls.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
