package geometry

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Axis identifies a coordinate axis
type Axis int

// Coordinate axes
const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// Rotate rotates a wrapped object about a coordinate axis. The bounding
// box is computed once at construction by rotating the child box's
// eight corners and taking componentwise extrema.
type Rotate struct {
	Object   core.Hittable
	Axis     Axis
	sinTheta float64
	cosTheta float64
	box      core.AABB
}

// NewRotate wraps an object with a rotation of the given angle in
// degrees. Panics if the object has no bounding box, which indicates a
// scene-construction bug.
func NewRotate(object core.Hittable, axis Axis, degrees float64) *Rotate {
	radians := degrees * math.Pi / 180
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	childBox, ok := object.BoundingBox(0, 1)
	if !ok {
		panic("geometry: rotate requires an object with a bounding box")
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*childBox.Max.X + float64(1-i)*childBox.Min.X
				y := float64(j)*childBox.Max.Y + float64(1-j)*childBox.Min.Y
				z := float64(k)*childBox.Max.Z + float64(1-k)*childBox.Min.Z

				corner := rotatePoint(core.NewVec3(x, y, z), axis, sinTheta, cosTheta)

				min.X = math.Min(min.X, corner.X)
				min.Y = math.Min(min.Y, corner.Y)
				min.Z = math.Min(min.Z, corner.Z)
				max.X = math.Max(max.X, corner.X)
				max.Y = math.Max(max.Y, corner.Y)
				max.Z = math.Max(max.Z, corner.Z)
			}
		}
	}

	return &Rotate{
		Object:   object,
		Axis:     axis,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		box:      core.NewAABB(min, max),
	}
}

// Hit rotates the ray into the object's frame, intersects, and rotates
// the hit point and normal back into world space.
func (r *Rotate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	origin := rotatePoint(ray.Origin, r.Axis, -r.sinTheta, r.cosTheta)
	direction := rotatePoint(ray.Direction, r.Axis, -r.sinTheta, r.cosTheta)
	rotated := core.NewRay(origin, direction, ray.Time)

	rec, ok := r.Object.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	out := *rec
	out.Point = rotatePoint(rec.Point, r.Axis, r.sinTheta, r.cosTheta)
	out.Normal = rotatePoint(rec.Normal, r.Axis, r.sinTheta, r.cosTheta)
	return &out, true
}

// BoundingBox returns the box computed at construction
func (r *Rotate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, true
}

// rotatePoint rotates p about the given axis by the angle whose sine
// and cosine are supplied.
func rotatePoint(p core.Vec3, axis Axis, sinTheta, cosTheta float64) core.Vec3 {
	switch axis {
	case XAxis:
		return core.NewVec3(
			p.X,
			cosTheta*p.Y-sinTheta*p.Z,
			sinTheta*p.Y+cosTheta*p.Z,
		)
	case YAxis:
		return core.NewVec3(
			cosTheta*p.X+sinTheta*p.Z,
			p.Y,
			-sinTheta*p.X+cosTheta*p.Z,
		)
	default:
		return core.NewVec3(
			cosTheta*p.X-sinTheta*p.Y,
			sinTheta*p.X+cosTheta*p.Y,
			p.Z,
		)
	}
}
