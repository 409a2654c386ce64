package geometry

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          core.Material
}

// NewXYRect creates a rectangle in the xy-plane at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *XYRect {
	return &XYRect{
		X0: math.Min(x0, x1), X1: math.Max(x0, x1),
		Y0: math.Min(y0, y1), Y1: math.Max(y0, y1),
		K: k, Material: material,
	}
}

// Hit tests if a ray intersects the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t <= tMin || t >= tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return nil, false
	}

	u := (x - r.X0) / (r.X1 - r.X0)
	v := (y - r.Y0) / (r.Y1 - r.Y0)
	return core.NewHitRecord(ray, t, ray.At(t), core.NewVec3(0, 0, 1), r.Material, u, v), true
}

// BoundingBox returns an epsilon-thin box around the rectangle's plane
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-core.BoxPadding),
		core.NewVec3(r.X1, r.Y1, r.K+core.BoxPadding),
	), true
}

// PDFValue returns the solid-angle density of sampling the rectangle
func (r *XYRect) PDFValue(origin, direction core.Vec3) float64 {
	area := (r.X1 - r.X0) * (r.Y1 - r.Y0)
	return rectPDFValue(r, origin, direction, area)
}

// Random generates a direction toward a uniform point on the rectangle
func (r *XYRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	point := core.NewVec3(r.X0+s.X*(r.X1-r.X0), r.Y0+s.Y*(r.Y1-r.Y0), r.K)
	return point.Subtract(origin)
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          core.Material
}

// NewXZRect creates a rectangle in the xz-plane at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *XZRect {
	return &XZRect{
		X0: math.Min(x0, x1), X1: math.Max(x0, x1),
		Z0: math.Min(z0, z1), Z1: math.Max(z0, z1),
		K: k, Material: material,
	}
}

// Hit tests if a ray intersects the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t <= tMin || t >= tMax {
		return nil, false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	u := (x - r.X0) / (r.X1 - r.X0)
	v := (z - r.Z0) / (r.Z1 - r.Z0)
	return core.NewHitRecord(ray, t, ray.At(t), core.NewVec3(0, 1, 0), r.Material, u, v), true
}

// BoundingBox returns an epsilon-thin box around the rectangle's plane
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-core.BoxPadding, r.Z0),
		core.NewVec3(r.X1, r.K+core.BoxPadding, r.Z1),
	), true
}

// PDFValue returns the solid-angle density of sampling the rectangle
func (r *XZRect) PDFValue(origin, direction core.Vec3) float64 {
	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	return rectPDFValue(r, origin, direction, area)
}

// Random generates a direction toward a uniform point on the rectangle
func (r *XZRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	point := core.NewVec3(r.X0+s.X*(r.X1-r.X0), r.K, r.Z0+s.Y*(r.Z1-r.Z0))
	return point.Subtract(origin)
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          core.Material
}

// NewYZRect creates a rectangle in the yz-plane at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *YZRect {
	return &YZRect{
		Y0: math.Min(y0, y1), Y1: math.Max(y0, y1),
		Z0: math.Min(z0, z1), Z1: math.Max(z0, z1),
		K: k, Material: material,
	}
}

// Hit tests if a ray intersects the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t <= tMin || t >= tMax {
		return nil, false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return nil, false
	}

	u := (y - r.Y0) / (r.Y1 - r.Y0)
	v := (z - r.Z0) / (r.Z1 - r.Z0)
	return core.NewHitRecord(ray, t, ray.At(t), core.NewVec3(1, 0, 0), r.Material, u, v), true
}

// BoundingBox returns an epsilon-thin box around the rectangle's plane
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-core.BoxPadding, r.Y0, r.Z0),
		core.NewVec3(r.K+core.BoxPadding, r.Y1, r.Z1),
	), true
}

// PDFValue returns the solid-angle density of sampling the rectangle
func (r *YZRect) PDFValue(origin, direction core.Vec3) float64 {
	area := (r.Y1 - r.Y0) * (r.Z1 - r.Z0)
	return rectPDFValue(r, origin, direction, area)
}

// Random generates a direction toward a uniform point on the rectangle
func (r *YZRect) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	point := core.NewVec3(r.K, r.Y0+s.X*(r.Y1-r.Y0), r.Z0+s.Y*(r.Z1-r.Z0))
	return point.Subtract(origin)
}

// rectPDFValue converts a rectangle's area density to a solid-angle
// density for the given direction: distance² / (cosθ · area).
func rectPDFValue(rect core.Hittable, origin, direction core.Vec3, area float64) float64 {
	rec, ok := rect.Hit(core.NewRay(origin, direction, 0), core.RayEpsilon, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal)) / direction.Length()
	if cosine == 0 {
		return 0
	}

	return distanceSquared / (cosine * area)
}
