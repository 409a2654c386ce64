package geometry

import (
	"math"
	"testing"

	"github.com/hackmad/raytracing-series/pkg/core"
)

func randomSphereScene(n int, sampler core.Sampler) []core.Hittable {
	objects := make([]core.Hittable, 0, n)
	for i := 0; i < n; i++ {
		center := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
		objects = append(objects, &Sphere{
			Center:   center,
			Radius:   0.2 + sampler.Get1D(),
			Material: testMaterial{},
		})
	}
	return objects
}

func TestBVHMatchesLinearScan(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	objects := randomSphereScene(50, sampler)

	bvh := NewBVH(objects, 0, 1, sampler)
	list := NewHittableList(objects...)

	for i := 0; i < 1000; i++ {
		origin := sampler.Get3D().Multiply(30).Subtract(core.NewVec3(15, 15, 15))
		direction := core.SampleUnitVector(sampler)
		ray := core.NewRay(origin, direction, 0)

		bvhRec, bvhHit := bvh.Hit(ray, 0.001, math.Inf(1))
		listRec, listHit := list.Hit(ray, 0.001, math.Inf(1))

		if bvhHit != listHit {
			t.Fatalf("ray %d: BVH hit=%v, linear scan hit=%v", i, bvhHit, listHit)
		}
		if !bvhHit {
			continue
		}
		if math.Abs(bvhRec.T-listRec.T) > 1e-9 {
			t.Fatalf("ray %d: BVH t=%v, linear scan t=%v", i, bvhRec.T, listRec.T)
		}
		if bvhRec.Point.Subtract(listRec.Point).Length() > 1e-9 {
			t.Fatalf("ray %d: BVH point=%v, linear scan point=%v", i, bvhRec.Point, listRec.Point)
		}
		if bvhRec.Material != listRec.Material {
			t.Fatalf("ray %d: materials differ", i)
		}
	}
}

func TestBVHRestrictedRange(t *testing.T) {
	sampler := core.NewSeededSampler(7)
	objects := randomSphereScene(30, sampler)

	bvh := NewBVH(objects, 0, 1, sampler)
	list := NewHittableList(objects...)

	ranges := []struct{ tMin, tMax float64 }{
		{0.001, 5}, {2, 10}, {0.001, math.Inf(1)},
	}
	for i := 0; i < 200; i++ {
		origin := sampler.Get3D().Multiply(30).Subtract(core.NewVec3(15, 15, 15))
		ray := core.NewRay(origin, core.SampleUnitVector(sampler), 0)

		for _, rng := range ranges {
			bvhRec, bvhHit := bvh.Hit(ray, rng.tMin, rng.tMax)
			listRec, listHit := list.Hit(ray, rng.tMin, rng.tMax)
			if bvhHit != listHit {
				t.Fatalf("range %v: BVH hit=%v, linear scan hit=%v", rng, bvhHit, listHit)
			}
			if bvhHit && math.Abs(bvhRec.T-listRec.T) > 1e-9 {
				t.Fatalf("range %v: BVH t=%v, linear scan t=%v", rng, bvhRec.T, listRec.T)
			}
		}
	}
}

func TestBVHSingleObject(t *testing.T) {
	sampler := core.NewSeededSampler(42)
	bvh := NewBVH([]core.Hittable{unitSphere()}, 0, 1, sampler)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	rec, ok := bvh.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > epsilon {
		t.Errorf("t = %v, want 4", rec.T)
	}
}

func TestBVHEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an empty object list")
		}
	}()
	NewBVH(nil, 0, 1, core.NewSeededSampler(42))
}

func TestBVHBoundingBoxCoversAll(t *testing.T) {
	sampler := core.NewSeededSampler(11)
	objects := randomSphereScene(25, sampler)
	bvh := NewBVH(objects, 0, 1, sampler)

	box, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	for _, object := range objects {
		childBox, _ := object.BoundingBox(0, 1)
		if !box.Contains(childBox) {
			t.Fatalf("root box %v does not cover child %v", box, childBox)
		}
	}
}

func TestBVHPreservesInputOrder(t *testing.T) {
	sampler := core.NewSeededSampler(3)
	objects := randomSphereScene(10, sampler)
	first := objects[0]

	NewBVH(objects, 0, 1, sampler)
	if objects[0] != first {
		t.Error("construction reordered the caller's slice")
	}
}
