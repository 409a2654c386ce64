package geometry

import "github.com/hackmad/raytracing-series/pkg/core"

// Box is an axis-aligned box assembled from six rectangles. The three
// faces at the minimum corner are flipped so all normals face outward.
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates an axis-aligned box between two opposite corners
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	sides := NewHittableList()

	sides.Add(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material))
	sides.Add(NewFlipFace(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)))

	sides.Add(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material))
	sides.Add(NewFlipFace(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)))

	sides.Add(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material))
	sides.Add(NewFlipFace(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)))

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit tests the ray against all six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
