package geometry

import (
	"math"
	"testing"

	"github.com/hackmad/raytracing-series/pkg/core"
)

func TestXZRectHit(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 2, 1, testMaterial{})
	ray := core.NewRay(core.NewVec3(1, 5, 1), core.NewVec3(0, -1, 0), 0)

	rec, ok := rect.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > epsilon {
		t.Errorf("t = %v, want 4", rec.T)
	}
	if rec.Normal.Subtract(core.NewVec3(0, 1, 0)).Length() > epsilon {
		t.Errorf("normal = %v, want (0,1,0)", rec.Normal)
	}
	if math.Abs(rec.U-0.5) > epsilon || math.Abs(rec.V-0.5) > epsilon {
		t.Errorf("uv = (%v, %v), want (0.5, 0.5)", rec.U, rec.V)
	}
}

func TestXZRectMissOutsideBounds(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 2, 1, testMaterial{})
	ray := core.NewRay(core.NewVec3(5, 5, 1), core.NewVec3(0, -1, 0), 0)
	if _, ok := rect.Hit(ray, 0.001, math.Inf(1)); ok {
		t.Error("expected a miss outside the rectangle bounds")
	}
}

func TestRectBoundingBoxPadded(t *testing.T) {
	box, ok := NewXYRect(0, 1, 0, 1, 3, testMaterial{}).BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if box.Max.Z-box.Min.Z <= 0 {
		t.Error("planar rectangle box has zero thickness")
	}
}

func TestXZRectPDF(t *testing.T) {
	// Unit-area rectangle viewed straight on from distance 2: the
	// solid-angle density is distance²/(cosθ·area) = 4.
	rect := NewXZRect(0, 1, 0, 1, 0, testMaterial{})
	origin := core.NewVec3(0.5, 2, 0.5)

	got := rect.PDFValue(origin, core.NewVec3(0, -1, 0))
	if math.Abs(got-4) > 1e-9 {
		t.Errorf("PDFValue = %v, want 4", got)
	}

	if got := rect.PDFValue(origin, core.NewVec3(0, 1, 0)); got != 0 {
		t.Errorf("PDFValue away from the rectangle = %v, want 0", got)
	}
}

func TestXZRectRandomHitsRect(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 2, 1, testMaterial{})
	origin := core.NewVec3(1, 5, 1)
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 500; i++ {
		dir := rect.Random(origin, sampler)
		if _, ok := rect.Hit(core.NewRay(origin, dir, 0), 0.001, math.Inf(1)); !ok {
			t.Fatalf("generated direction %v misses the rectangle", dir)
		}
	}
}

func TestBoxHit(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial{})
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1), 0)

	rec, ok := box.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(rec.T-4) > epsilon {
		t.Errorf("t = %v, want 4 (near face at z=1)", rec.T)
	}

	bbox, ok := box.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected a bounding box")
	}
	if bbox.Min != core.NewVec3(0, 0, 0) || bbox.Max != core.NewVec3(1, 1, 1) {
		t.Errorf("box = %v", bbox)
	}
}

func TestFlipFaceInvertsFlag(t *testing.T) {
	rect := NewXZRect(0, 2, 0, 2, 1, testMaterial{})
	flipped := NewFlipFace(rect)
	ray := core.NewRay(core.NewVec3(1, 5, 1), core.NewVec3(0, -1, 0), 0)

	rec, _ := rect.Hit(ray, 0.001, math.Inf(1))
	frec, ok := flipped.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if frec.FrontFace == rec.FrontFace {
		t.Error("front_face flag not inverted")
	}
	if frec.T != rec.T || frec.Normal != rec.Normal {
		t.Error("flip changed more than the face flag")
	}
}

func TestTranslateShiftsHit(t *testing.T) {
	sphere := unitSphere()
	moved := NewTranslate(sphere, core.NewVec3(5, 0, 0))

	ray := core.NewRay(core.NewVec3(5, 0, 5), core.NewVec3(0, 0, -1), 0)
	rec, ok := moved.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit on the translated sphere")
	}
	if rec.Point.Subtract(core.NewVec3(5, 0, 1)).Length() > epsilon {
		t.Errorf("point = %v, want (5,0,1)", rec.Point)
	}

	box, _ := moved.BoundingBox(0, 1)
	if box.Min != core.NewVec3(4, -1, -1) || box.Max != core.NewVec3(6, 1, 1) {
		t.Errorf("box = %v", box)
	}

	// The original position no longer intersects.
	origin := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := moved.Hit(origin, 0.001, math.Inf(1)); ok {
		t.Error("translated sphere still hit at its original position")
	}
}

func TestRotateYQuarterTurn(t *testing.T) {
	// A sphere at +x rotated 90° about y moves to -z.
	sphere := &Sphere{Center: core.NewVec3(2, 0, 0), Radius: 1, Material: testMaterial{}}
	rotated := NewRotate(sphere, YAxis, 90)

	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)
	rec, ok := rotated.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit on the rotated sphere")
	}
	if rec.Point.Subtract(core.NewVec3(0, 0, -3)).Length() > 1e-9 {
		t.Errorf("point = %v, want (0,0,-3)", rec.Point)
	}

	box, _ := rotated.BoundingBox(0, 1)
	if !box.ContainsPoint(core.NewVec3(0, 0, -2)) {
		t.Errorf("box %v does not contain the rotated centre", box)
	}
}

func TestRotateMissingBoxPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unbounded object")
		}
	}()
	NewRotate(unboundedObject{}, YAxis, 45)
}

func TestTranslateMissingBoxPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an unbounded object")
		}
	}()
	NewTranslate(unboundedObject{}, core.NewVec3(1, 0, 0))
}

// unboundedObject has no bounding box
type unboundedObject struct{}

func (unboundedObject) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return nil, false
}

func (unboundedObject) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}
