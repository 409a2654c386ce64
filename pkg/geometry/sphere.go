package geometry

import (
	"math"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// Sphere represents a sphere shape. A negative radius turns the normals
// inward, which is used to build hollow glass bubbles.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	return s.hitRecord(ray, root), true
}

// hitRecord builds the record for an intersection at parameter t
func (s *Sphere) hitRecord(ray core.Ray, t float64) *core.HitRecord {
	point := ray.At(t)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)
	return core.NewHitRecord(ray, t, point, outwardNormal, s.Material, u, v)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	// Negative radii are used for hollow bubbles
	r := math.Abs(s.Radius)
	radius := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius)), true
}

// PDFValue returns the solid-angle density of the cone of directions
// from origin that hit the sphere.
func (s *Sphere) PDFValue(origin, direction core.Vec3) float64 {
	if _, ok := s.Hit(core.NewRay(origin, direction, 0), core.RayEpsilon, math.Inf(1)); !ok {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// Random generates a direction from origin toward the sphere, uniform
// over its visible solid angle.
func (s *Sphere) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.Center.Subtract(origin)
	uvw := core.NewONB(direction)
	return uvw.Local(core.SampleToSphere(s.Radius, direction.LengthSquared(), sampler.Get2D()))
}

// sphereUV maps a point on the unit sphere to (u, v) surface coordinates
func sphereUV(p core.Vec3) (float64, float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))

	u := 1 - (phi+math.Pi)/(2*math.Pi)
	v := (theta + math.Pi/2) / math.Pi
	return u, v
}
