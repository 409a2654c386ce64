package geometry

import "github.com/hackmad/raytracing-series/pkg/core"

// Translate shifts a wrapped object by a fixed offset. The ray is moved
// into the object's frame for intersection and the hit point moved back.
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps an object with a translation. Panics if the object
// has no bounding box, which indicates a scene-construction bug.
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	if _, ok := object.BoundingBox(0, 1); !ok {
		panic("geometry: translate requires an object with a bounding box")
	}
	return &Translate{Object: object, Offset: offset}
}

// Hit intersects the offset ray and shifts the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Object.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	out := *rec
	out.Point = rec.Point.Add(t.Offset)
	return &out, true
}

// BoundingBox returns the wrapped object's box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}
