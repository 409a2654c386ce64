package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a deterministic sampler from a seed
func NewSeededSampler(seed int64) *RandomSampler {
	return &RandomSampler{random: rand.New(rand.NewSource(seed))}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// CosineDirection returns a direction distributed with density
// cos(θ)/π about the +Z axis. Transform through an ONB to orient it
// around a surface normal.
func CosineDirection(sample Vec2) Vec3 {
	phi := 2 * math.Pi * sample.X
	z := math.Sqrt(1 - sample.Y)

	r := math.Sqrt(sample.Y)
	x := math.Cos(phi) * r
	y := math.Sin(phi) * r

	return NewVec3(x, y, z)
}

// SampleInUnitSphere returns a random point inside the unit sphere.
// The result is not normalized.
func SampleInUnitSphere(sampler Sampler) Vec3 {
	for {
		s := sampler.Get3D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 2*s.Z-1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleInUnitDisk returns a random point inside the unit disk in the
// xy-plane (used for depth of field).
func SampleInUnitDisk(sampler Sampler) Vec3 {
	for {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// SampleUnitVector returns a uniformly distributed unit vector
func SampleUnitVector(sampler Sampler) Vec3 {
	s := sampler.Get2D()
	a := 2 * math.Pi * s.X
	z := 2*s.Y - 1
	r := math.Sqrt(1 - z*z)
	return NewVec3(r*math.Cos(a), r*math.Sin(a), z)
}

// SampleToSphere returns a direction uniformly sampled from the solid
// angle subtended by a sphere of the given radius at the given squared
// distance, about the +Z axis.
func SampleToSphere(radius, distanceSquared float64, sample Vec2) Vec3 {
	rr := radius * radius / distanceSquared
	z := 1 + sample.Y*(math.Sqrt(1-rr)-1)

	phi := 2 * math.Pi * sample.X

	r := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * r
	y := math.Sin(phi) * r

	return NewVec3(x, y, z)
}
