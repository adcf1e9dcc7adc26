package math3d

import "math"

// Triangle is three homogeneous vertices. The same type carries a triangle
// through object, view, clip and screen space.
type Triangle [3]Vec4

// Plane is a clipping plane given by a point on it and a normal pointing
// toward the kept half-space. The normal need not be unit length.
type Plane struct {
	Point  Vec4
	Normal Vec4
}

// NewPlane creates a plane through point facing normal.
func NewPlane(point, normal Vec3) Plane {
	return Plane{Point: point.Point(), Normal: normal.Point()}
}

// IntersectPlane returns the point where the segment start→end crosses the
// plane {p : dot(p, n) = d}. n must be unit length. The parameter is clamped
// to [0, 1], and a segment parallel to the plane returns start.
func IntersectPlane(n Vec4, d float64, start, end Vec4) Vec4 {
	ad := start.Dot(n)
	bd := end.Dot(n)
	denom := bd - ad
	if math.Abs(denom) < Epsilon {
		return start
	}
	t := min(max((d-ad)/denom, 0), 1)
	return start.Lerp(end, t)
}

// ClipTriangle clips tri against p and writes the surviving pieces to out.
// It returns how many of out were written:
//
//   - 0 when every vertex is outside
//   - 1 with tri unchanged when every vertex is inside or on the plane
//   - 1 new triangle when one vertex is inside
//   - 2 triangles covering the remaining quad when two vertices are inside
func ClipTriangle(p Plane, tri Triangle, out *[2]Triangle) int {
	n := p.Normal.Normalize()
	d := n.Dot(p.Point)

	var inside, outside [3]Vec4
	var nIn, nOut int
	for _, v := range tri {
		if v.Dot(n)-d >= 0 {
			inside[nIn] = v
			nIn++
		} else {
			outside[nOut] = v
			nOut++
		}
	}

	switch nIn {
	case 3:
		out[0] = tri
		return 1
	case 1:
		out[0] = Triangle{
			inside[0],
			IntersectPlane(n, d, inside[0], outside[0]),
			IntersectPlane(n, d, inside[0], outside[1]),
		}
		return 1
	case 2:
		shared := IntersectPlane(n, d, inside[0], outside[0])
		out[0] = Triangle{inside[0], inside[1], shared}
		out[1] = Triangle{inside[1], shared, IntersectPlane(n, d, inside[1], outside[0])}
		return 2
	}
	return 0
}
