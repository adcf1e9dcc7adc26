package math3d

import "math"

const (
	// Epsilon guards divisions against near-zero denominators.
	Epsilon = 1e-8
)

// Vec4 is a homogeneous point (W=1) or direction.
//
// Dot, Cross, Len and Normalize only look at X, Y and Z.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec3 returns the X, Y, Z portion.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// Add returns the component-wise sum, including W.
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference, including W.
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the component-wise product with s, including W.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Div divides X, Y and Z by s and sets W to 1. A near-zero s yields the
// origin.
func (v Vec4) Div(s float64) Vec4 {
	if math.Abs(s) < Epsilon {
		return Vec4{0, 0, 0, 1}
	}
	return Vec4{v.X / s, v.Y / s, v.Z / s, 1}
}

// Dot returns the 3-component dot product.
func (a Vec4) Dot(b Vec4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the 3-component cross product with W=1.
func (a Vec4) Cross(b Vec4) Vec4 {
	return Vec4{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		1,
	}
}

// Len returns the 3-component length.
func (v Vec4) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector with W=1. Vectors shorter than Epsilon
// normalize to (0, 0, 0, 1).
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l < Epsilon {
		return Vec4{0, 0, 0, 1}
	}
	return Vec4{v.X / l, v.Y / l, v.Z / l, 1}
}

// Lerp interpolates all four components.
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}
