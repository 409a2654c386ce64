package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// SurroundingBox returns a box that bounds both given boxes. It is
// commutative and associative.
func SurroundingBox(box0, box1 AABB) AABB {
	small := Vec3{
		X: math.Min(box0.Min.X, box1.Min.X),
		Y: math.Min(box0.Min.Y, box1.Min.Y),
		Z: math.Min(box0.Min.Z, box1.Min.Z),
	}
	big := Vec3{
		X: math.Max(box0.Max.X, box1.Max.X),
		Y: math.Max(box0.Max.Y, box1.Max.Y),
		Z: math.Max(box0.Max.Z, box1.Max.Z),
	}
	return AABB{Min: small, Max: big}
}

// Hit tests if a ray intersects this AABB within (tMin, tMax) using the
// slab method.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (aabb.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD

		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Pad returns an AABB with zero-thickness axes widened by BoxPadding so
// that planar primitives still yield valid bounds.
func (aabb AABB) Pad() AABB {
	min, max := aabb.Min, aabb.Max
	if max.X-min.X < BoxPadding {
		min.X -= BoxPadding
		max.X += BoxPadding
	}
	if max.Y-min.Y < BoxPadding {
		min.Y -= BoxPadding
		max.Y += BoxPadding
	}
	if max.Z-min.Z < BoxPadding {
		min.Z -= BoxPadding
		max.Z += BoxPadding
	}
	return AABB{Min: min, Max: max}
}

// Contains reports whether other lies entirely inside this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// ContainsPoint reports whether a point lies inside the box
func (aabb AABB) ContainsPoint(p Vec3) bool {
	return aabb.Min.X <= p.X && p.X <= aabb.Max.X &&
		aabb.Min.Y <= p.Y && p.Y <= aabb.Max.Y &&
		aabb.Min.Z <= p.Z && p.Z <= aabb.Max.Z
}

// IsValid returns true if min <= max on every axis
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
