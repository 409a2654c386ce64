package geometry

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly between two
// keyframe times, producing motion blur.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to
// center1 at time1.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the interpolated center at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	if s.Time0 == s.Time1 {
		return s.Center0 // no motion, avoid dividing by zero
	}
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

// Hit tests if a ray intersects the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.Center(ray.Time)
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)
	return core.NewHitRecord(ray, root, point, outwardNormal, s.Material, u, v), true
}

// BoundingBox returns a box covering the sphere over the time interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)

	box0 := core.NewAABB(s.Center(time0).Subtract(radius), s.Center(time0).Add(radius))
	box1 := core.NewAABB(s.Center(time1).Subtract(radius), s.Center(time1).Add(radius))
	return core.SurroundingBox(box0, box1), true
}
