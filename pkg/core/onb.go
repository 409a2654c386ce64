package core

import "math"

// ONB is an orthonormal basis built around a surface normal. The W axis
// points along the normal; U and V span the tangent plane.
type ONB struct {
	U, V, W Vec3
}

// NewONB creates an orthonormal basis using the normalized vector n as
// the W axis.
func NewONB(n Vec3) ONB {
	w := n.Normalize()

	a := NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	}

	v := w.Cross(a).Normalize()
	u := w.Cross(v)

	return ONB{U: u, V: v, W: w}
}

// Local transforms a vector from basis coordinates to world coordinates
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
