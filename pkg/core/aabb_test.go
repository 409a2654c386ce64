package core

import (
	"math"
	"testing"
)

func randomBox(sampler Sampler) AABB {
	a := sampler.Get3D().Multiply(10)
	b := sampler.Get3D().Multiply(10)
	return NewAABBFromPoints(a, b)
}

func TestSurroundingBoxContainsBoth(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 100; i++ {
		a := randomBox(sampler)
		b := randomBox(sampler)
		s := SurroundingBox(a, b)

		if !s.Contains(a) || !s.Contains(b) {
			t.Fatalf("surrounding box %v does not contain %v and %v", s, a, b)
		}
	}
}

func TestSurroundingBoxCommutative(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		a := randomBox(sampler)
		b := randomBox(sampler)

		ab := SurroundingBox(a, b)
		ba := SurroundingBox(b, a)
		if ab != ba {
			t.Fatalf("surrounding_box not commutative: %v vs %v", ab, ba)
		}
	}
}

func TestSurroundingBoxAssociative(t *testing.T) {
	sampler := NewSeededSampler(13)
	for i := 0; i < 100; i++ {
		a := randomBox(sampler)
		b := randomBox(sampler)
		c := randomBox(sampler)

		left := SurroundingBox(SurroundingBox(a, b), c)
		right := SurroundingBox(a, SurroundingBox(b, c))
		if left != right {
			t.Fatalf("surrounding_box not associative: %v vs %v", left, right)
		}
	}
}

func TestAABBHit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	through := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1), 0)
	if !box.Hit(through, 0.001, math.Inf(1)) {
		t.Error("ray through the box centre reported a miss")
	}

	past := NewRay(NewVec3(5, 0, 5), NewVec3(0, 0, -1), 0)
	if box.Hit(past, 0.001, math.Inf(1)) {
		t.Error("ray beside the box reported a hit")
	}

	away := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, 1), 0)
	if box.Hit(away, 0.001, math.Inf(1)) {
		t.Error("ray pointing away reported a hit")
	}
}

func TestAABBPad(t *testing.T) {
	thin := NewAABB(NewVec3(0, 0, 5), NewVec3(1, 1, 5)).Pad()
	if thin.Max.Z-thin.Min.Z <= 0 {
		t.Error("padded box still has zero thickness on z")
	}
	if !almostEqual(thin.Min.X, 0) || !almostEqual(thin.Max.X, 1) {
		t.Error("padding changed non-degenerate axes")
	}
}
