package geometry

import (
	"math"
	"sync"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// ConstantMedium is a volume of constant density bounded by another
// object. Rays scatter inside it at exponentially distributed distances,
// which renders as smoke or fog. The boundary must be convex.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64

	// Free-flight sampling happens during Hit, which carries no sampler,
	// so each medium owns a generator seeded at construction. The mutex
	// makes Hit safe across render workers while keeping renders
	// seed-reproducible.
	mu      sync.Mutex
	sampler core.Sampler
}

// NewConstantMedium creates a constant-density volume with the given
// phase function, typically an isotropic material. A seed for the
// medium's free-flight generator is drawn from the given sampler, so
// media built from the same seeded sampler scatter identically from
// render to render.
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material, sampler core.Sampler) *ConstantMedium {
	seed := int64(sampler.Get1D() * float64(1<<62))
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1 / density,
		sampler:       core.NewSeededSampler(seed),
	}
}

// Hit finds the ray's span through the boundary and samples a scatter
// distance along it. Entry and exit are located with two boundary hits
// so the medium works for rays starting inside it.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}

	rec2, ok := m.Boundary.Hit(ray, rec1.T+core.RayEpsilon, math.Inf(1))
	if !ok {
		return nil, false
	}

	t1 := math.Max(rec1.T, tMin)
	t2 := math.Min(rec2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength

	m.mu.Lock()
	u := m.sampler.Get1D()
	m.mu.Unlock()
	hitDistance := m.negInvDensity * math.Log(u)

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
