package geometry

import "github.com/hackmad/raytracing-series/pkg/core"

// HittableList is a collection of objects tested in sequence. It keeps
// the closest hit found across all members.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty list
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit tests the ray against every object and returns the closest hit
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestT := tMax

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, tMin, closestT); ok {
			closest = rec
			closestT = rec.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the box surrounding all objects. Returns false
// for an empty list or when any member has no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		childBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = childBox
			first = false
		} else {
			box = core.SurroundingBox(box, childBox)
		}
	}

	return box, true
}

// PDFValue averages the density over all sampleable members
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		if ls, ok := object.(core.LightSampler); ok {
			sum += weight * ls.PDFValue(origin, direction)
		}
	}
	return sum
}

// Random generates a direction toward a uniformly chosen member
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	i := int(sampler.Get1D() * float64(len(l.Objects)))
	if i >= len(l.Objects) {
		i = len(l.Objects) - 1
	}
	if ls, ok := l.Objects[i].(core.LightSampler); ok {
		return ls.Random(origin, sampler)
	}
	return core.NewVec3(1, 0, 0)
}
