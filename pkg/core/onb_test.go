package core

import "testing"

func TestONBOrthonormal(t *testing.T) {
	sampler := NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		normal := SampleUnitVector(sampler)
		uvw := NewONB(normal)

		for name, axis := range map[string]Vec3{"u": uvw.U, "v": uvw.V, "w": uvw.W} {
			if !almostEqual(axis.Length(), 1) {
				t.Fatalf("%s not unit length: %v", name, axis.Length())
			}
		}
		if !almostEqual(uvw.U.Dot(uvw.V), 0) ||
			!almostEqual(uvw.V.Dot(uvw.W), 0) ||
			!almostEqual(uvw.U.Dot(uvw.W), 0) {
			t.Fatalf("basis for %v not orthogonal", normal)
		}
		if !vecAlmostEqual(uvw.W, normal.Normalize()) {
			t.Fatalf("w = %v, want %v", uvw.W, normal)
		}
	}
}

func TestONBLocal(t *testing.T) {
	uvw := NewONB(NewVec3(0, 0, 1))
	if got := uvw.Local(NewVec3(0, 0, 1)); !vecAlmostEqual(got, NewVec3(0, 0, 1)) {
		t.Errorf("Local(z) = %v, want z", got)
	}

	// Transformed vectors keep their length.
	v := NewVec3(1, 2, 3)
	if got := uvw.Local(v); !almostEqual(got.Length(), v.Length()) {
		t.Errorf("Local changed length: %v vs %v", got.Length(), v.Length())
	}
}
