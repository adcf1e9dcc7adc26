package math3d

import "math"

// Mat4 is a 4x4 matrix stored row-major as m[row][col].
//
// Vectors are rows, so a point transforms as v' = v·M:
//
//	| Xx Xy Xz 0 |   X,Y,Z = basis rows (rotation/scale)
//	| Yx Yy Yz 0 |   T = translation
//	| Zx Zy Zz 0 |
//	| Tx Ty Tz 1 |
type Mat4 [4][4]float64

var identity = Mat4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return identity
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == identity
}

// Translate creates a translation matrix.
func Translate(v Vec3) Mat4 {
	m := identity
	m[3][0], m[3][1], m[3][2] = v.X, v.Y, v.Z
	return m
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Mat4 {
	return Mat4{
		{v.X, 0, 0, 0},
		{0, v.Y, 0, 0},
		{0, 0, v.Z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX creates a rotation matrix around the X axis.
func RotateX(angle float64) Mat4 {
	return RotationX(math.Sincos(angle))
}

// RotateY creates a rotation matrix around the Y axis.
func RotateY(angle float64) Mat4 {
	return RotationY(math.Sincos(angle))
}

// RotateZ creates a rotation matrix around the Z axis.
func RotateZ(angle float64) Mat4 {
	return RotationZ(math.Sincos(angle))
}

// RotationX builds an X rotation from a precomputed sine and cosine, so
// callers can supply their own trig.
func RotationX(s, c float64) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationY builds a Y rotation from a precomputed sine and cosine.
func RotationY(s, c float64) Mat4 {
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotationZ builds a Z rotation from a precomputed sine and cosine.
func RotationZ(s, c float64) Mat4 {
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Perspective creates a left-handed perspective projection.
// fovDeg is the vertical field of view in degrees and aspect is
// height/width. View-space z in [near, far] maps to [0, 1] after the
// divide by w.
func Perspective(fovDeg, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovDeg*0.5/180*math.Pi)
	return Mat4{
		{aspect * f, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, far / (far - near), 1},
		{0, 0, -far * near / (far - near), 0},
	}
}

// Mul returns m·n, applying m first when used as v·(m·n).
// Multiplying by the identity returns the other operand unchanged.
func (m Mat4) Mul(n Mat4) Mat4 {
	if m == identity {
		return n
	}
	if n == identity {
		return m
	}
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			out[r][c] = m[r][0]*n[0][c] + m[r][1]*n[1][c] + m[r][2]*n[2][c] + m[r][3]*n[3][c]
		}
	}
	return out
}

// MulVec4 transforms v as a row vector: v·m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// MulTriangle transforms every vertex of t.
func (m Mat4) MulTriangle(t Triangle) Triangle {
	return Triangle{m.MulVec4(t[0]), m.MulVec4(t[1]), m.MulVec4(t[2])}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// QuickInverse inverts a matrix made only of an orthonormal rotation and a
// translation: the rotation block is transposed and the translation becomes
// -T·Rᵀ. The result is wrong for matrices with scale, shear or projection.
func (m Mat4) QuickInverse() Mat4 {
	var o Mat4
	for r := range 3 {
		for c := range 3 {
			o[r][c] = m[c][r]
		}
	}
	for c := range 3 {
		o[3][c] = -(m[3][0]*o[0][c] + m[3][1]*o[1][c] + m[3][2]*o[2][c])
	}
	o[3][3] = 1
	return o
}

// PointAt builds the camera-to-world matrix for an eye at pos looking at
// target. up is re-orthogonalized against the forward axis.
func PointAt(pos, target, up Vec3) Mat4 {
	p := pos.Point()
	forward := target.Point().Sub(p).Normalize()
	u := up.Point()
	u = u.Sub(forward.Scale(u.Dot(forward))).Normalize()
	right := u.Cross(forward)
	return Mat4{
		{right.X, right.Y, right.Z, 0},
		{u.X, u.Y, u.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}
}

// Array flattens m row by row.
func (m Mat4) Array() [16]float64 {
	var out [16]float64
	for r := range 4 {
		copy(out[r*4:r*4+4], m[r][:])
	}
	return out
}

// FromArray builds a matrix from 16 row-major values.
func FromArray(a [16]float64) Mat4 {
	var m Mat4
	for r := range 4 {
		copy(m[r][:], a[r*4:r*4+4])
	}
	return m
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(n Mat4, eps float64) bool {
	for r := range 4 {
		for c := range 4 {
			if math.Abs(m[r][c]-n[r][c]) > eps {
				return false
			}
		}
	}
	return true
}
