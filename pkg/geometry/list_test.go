package geometry

import (
	"math"
	"testing"

	"github.com/hackmad/raytracing-series/pkg/core"
)

func TestHittableListClosestHit(t *testing.T) {
	near := &Sphere{Center: core.NewVec3(0, 0, 2), Radius: 0.5, Material: testMaterial{}}
	far := &Sphere{Center: core.NewVec3(0, 0, -2), Radius: 0.5, Material: testMaterial{}}
	// Order in the list must not matter.
	list := NewHittableList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	rec, ok := list.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-2.5) > epsilon {
		t.Errorf("t = %v, want 2.5 (near sphere)", rec.T)
	}
}

func TestHittableListEmpty(t *testing.T) {
	list := NewHittableList()
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	if _, ok := list.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("empty list reported a hit")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("empty list reported a bounding box")
	}
}

func TestHittableListBoundingBox(t *testing.T) {
	list := NewHittableList(
		&Sphere{Center: core.NewVec3(-2, 0, 0), Radius: 1, Material: testMaterial{}},
		&Sphere{Center: core.NewVec3(2, 0, 0), Radius: 1, Material: testMaterial{}},
	)

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Min != core.NewVec3(-3, -1, -1) || box.Max != core.NewVec3(3, 1, 1) {
		t.Errorf("box = %v", box)
	}
}

func TestHittableListPDFAverages(t *testing.T) {
	a := NewXZRect(0, 1, 0, 1, 0, testMaterial{})
	b := NewXZRect(10, 11, 0, 1, 0, testMaterial{})
	list := NewHittableList(a, b)

	origin := core.NewVec3(0.5, 2, 0.5)
	direction := core.NewVec3(0, -1, 0)

	// Only rect a lies along the direction, so the list density is half
	// of a's density.
	want := 0.5 * a.PDFValue(origin, direction)
	got := list.PDFValue(origin, direction)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PDFValue = %v, want %v", got, want)
	}
}

func TestConstantMediumDenseAlwaysScatters(t *testing.T) {
	boundary := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1, Material: testMaterial{}}
	phase := testMaterial{}
	medium := NewConstantMedium(boundary, 1e6, phase, core.NewSeededSampler(42))

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 100; i++ {
		rec, ok := medium.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			t.Fatal("ray through a near-opaque medium did not scatter")
		}
		// Scatter point stays inside the boundary span [4, 6].
		if rec.T < 4 || rec.T > 6 {
			t.Fatalf("scatter t = %v outside the boundary span", rec.T)
		}
		if rec.Material != phase {
			t.Fatal("scatter did not use the phase function material")
		}
	}
}

func TestConstantMediumMissesOutsideBoundary(t *testing.T) {
	boundary := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1, Material: testMaterial{}}
	medium := NewConstantMedium(boundary, 1e6, testMaterial{}, core.NewSeededSampler(42))

	ray := core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := medium.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("ray missing the boundary scattered anyway")
	}
}

func TestConstantMediumDeterministicForSeed(t *testing.T) {
	build := func() *ConstantMedium {
		boundary := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 1, Material: testMaterial{}}
		return NewConstantMedium(boundary, 0.5, testMaterial{}, core.NewSeededSampler(7))
	}
	first := build()
	second := build()

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 200; i++ {
		rec1, ok1 := first.Hit(ray, 0.001, math.Inf(1))
		rec2, ok2 := second.Hit(ray, 0.001, math.Inf(1))
		if ok1 != ok2 {
			t.Fatalf("draw %d: scatter decisions diverge for identical seeds", i)
		}
		if ok1 && rec1.T != rec2.T {
			t.Fatalf("draw %d: scatter t %v != %v for identical seeds", i, rec1.T, rec2.T)
		}
	}
}

func TestConstantMediumBoundingBox(t *testing.T) {
	boundary := &Sphere{Center: core.NewVec3(0, 0, 0), Radius: 2, Material: testMaterial{}}
	medium := NewConstantMedium(boundary, 0.1, testMaterial{}, core.NewSeededSampler(42))

	box, ok := medium.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	want, _ := boundary.BoundingBox(0, 1)
	if box != want {
		t.Errorf("box = %v, want boundary box %v", box, want)
	}
}
