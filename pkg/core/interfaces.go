package core

// RayEpsilon is the minimum ray parameter used when intersecting the
// scene. Starting slightly off the surface avoids self-intersection
// caused by floating point error at the previous bounce's origin.
const RayEpsilon = 0.001

// BoxPadding widens zero-thickness bounding boxes of planar primitives
const BoxPadding = 0.0001

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Hittable is the intersection contract shared by every primitive and
// composite in the scene.
type Hittable interface {
	// Hit returns the closest intersection with parameter in the open
	// interval (tMin, tMax), or false if there is none.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box covering the object across the given
	// time interval. False only for objects with no finite bound.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// LightSampler is implemented by hittables that can be importance
// sampled, i.e. light-emitting shapes and collections of them.
type LightSampler interface {
	Hittable

	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin toward this object.
	PDFValue(origin, direction Vec3) float64

	// Random generates a direction from origin toward this object.
	Random(origin Vec3, sampler Sampler) Vec3
}

// Material determines how incident rays scatter off a surface
type Material interface {
	// Scatter an incident ray. False signals full absorption (the
	// default for pure light materials).
	Scatter(rayIn Ray, rec *HitRecord, sampler Sampler) (*ScatterRecord, bool)

	// ScatteringPDF returns the density of the material's own BRDF at
	// the sampled direction. Zero for materials that produce concrete
	// rays directly, since those bypass PDF weighting.
	ScatteringPDF(rayIn Ray, rec *HitRecord, scattered Ray) float64

	// Emission returns the emitted colour, black for non-lights
	Emission(rayIn Ray, rec *HitRecord) Vec3
}

// Texture maps surface coordinates and a point to a colour
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}

// PDF is a sampling capability: a density over directions plus a way to
// draw directions distributed according to it.
type PDF interface {
	Value(direction Vec3) float64
	Generate(sampler Sampler) Vec3
}

// HitRecord contains information about a ray-object intersection. It is
// never mutated after creation; updates return a copy.
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, flipped to oppose the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
	U, V      float64  // Parametric surface coordinates
}

// NewHitRecord creates a hit record, orienting the normal against the
// incident ray.
func NewHitRecord(ray Ray, t float64, point, outwardNormal Vec3, material Material, u, v float64) *HitRecord {
	frontFace := ray.Direction.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}
	return &HitRecord{
		T:         t,
		Point:     point,
		Normal:    normal,
		FrontFace: frontFace,
		Material:  material,
		U:         u,
		V:         v,
	}
}

// FlipFrontFace returns a copy of the record with the face flag inverted
func (h *HitRecord) FlipFrontFace() *HitRecord {
	rec := *h
	rec.FrontFace = !rec.FrontFace
	return &rec
}

// ScatterRecord is the result of a material interaction. At most one of
// SpecularRay, ScatteredRay and PDF is populated per call.
type ScatterRecord struct {
	SpecularRay  *Ray // Reflection/refraction ray for specular materials
	ScatteredRay *Ray // Concrete scattered ray for isotropic media
	PDF          PDF  // Sampling distribution for diffuse materials
	Attenuation  Vec3 // Colour attenuation
}
