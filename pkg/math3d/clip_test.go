package math3d

import (
	"math"
	"testing"
)

var nearPlane = NewPlane(V3(0, 0, 0.1), V3(0, 0, 1))

func tri(a, b, c Vec3) Triangle {
	return Triangle{a.Point(), b.Point(), c.Point()}
}

func TestClipTriangle(t *testing.T) {
	tests := []struct {
		name  string
		plane Plane
		in    Triangle
		count int
	}{
		{"all inside", nearPlane, tri(V3(-1, -1, 0.5), V3(0, 1, 0.5), V3(1, -1, 0.5)), 1},
		{"on plane counts as inside", nearPlane, tri(V3(-1, -1, 0.1), V3(0, 1, 0.1), V3(1, -1, 0.1)), 1},
		{"all outside", nearPlane, tri(V3(-1, -1, 0.05), V3(0, 1, 0.05), V3(1, -1, 0.05)), 0},
		{"one inside", nearPlane, tri(V3(0, 0, 1), V3(-1, 0, -1), V3(1, 0, -1)), 1},
		{"two inside", nearPlane, tri(V3(-1, 0, 1), V3(1, 0, 1), V3(0, 0, -1)), 2},
		{"unnormalized normal", NewPlane(V3(0, 0, 0.1), V3(0, 0, 5)), tri(V3(-1, 0, 1), V3(1, 0, 1), V3(0, 0, -1)), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out [2]Triangle
			n := ClipTriangle(tt.plane, tt.in, &out)
			if n != tt.count {
				t.Fatalf("count = %d, want %d", n, tt.count)
			}
			for i := range n {
				for j, v := range out[i] {
					if v.Z < 0.1-1e-12 {
						t.Errorf("out[%d][%d].Z = %v, outside plane", i, j, v.Z)
					}
				}
			}
		})
	}
}

func TestClipTriangleUnchangedWhenInside(t *testing.T) {
	in := tri(V3(-1, -1, 2), V3(0, 1, 3), V3(1, -1, 4))
	var out [2]Triangle
	if n := ClipTriangle(nearPlane, in, &out); n != 1 || out[0] != in {
		t.Errorf("got %d %v, want the input triangle", n, out[0])
	}
}

func TestClipTriangleIntersections(t *testing.T) {
	in := tri(V3(0, 0, 1.1), V3(-1, 0, -0.9), V3(1, 0, -0.9))
	var out [2]Triangle
	if n := ClipTriangle(nearPlane, in, &out); n != 1 {
		t.Fatalf("count = %d, want 1", n)
	}
	if out[0][0] != in[0] {
		t.Errorf("inside vertex moved: %v", out[0][0])
	}
	// Each edge is cut halfway.
	want := []Vec4{V4(-0.5, 0, 0.1, 1), V4(0.5, 0, 0.1, 1)}
	for i, w := range want {
		if !vecApprox(out[0][i+1], w, 1e-12) {
			t.Errorf("intersection %d = %v, want %v", i, out[0][i+1], w)
		}
	}
}

func TestClipTriangleTwoInsideSharesEdge(t *testing.T) {
	in := tri(V3(-1, 0, 1), V3(1, 0, 1), V3(0, 0, -1))
	var out [2]Triangle
	ClipTriangle(nearPlane, in, &out)
	if out[0][2] != out[1][1] {
		t.Errorf("pieces do not share the cut vertex: %v vs %v", out[0][2], out[1][1])
	}
	if out[0][0] != in[0] || out[0][1] != in[1] || out[1][0] != in[1] {
		t.Error("inside vertices not carried through")
	}
}

func TestIntersectPlane(t *testing.T) {
	n := V4(0, 0, 1, 1)

	t.Run("parallel returns start", func(t *testing.T) {
		a, b := V4(0, 0, 1, 1), V4(5, 5, 1, 1)
		if got := IntersectPlane(n, 0.1, a, b); got != a {
			t.Errorf("got %v, want start", got)
		}
	})

	t.Run("clamped to segment", func(t *testing.T) {
		a, b := V4(0, 0, 1, 1), V4(0, 0, 2, 1)
		if got := IntersectPlane(n, 0.1, a, b); got != a {
			t.Errorf("got %v, want start (t clamped to 0)", got)
		}
		if got := IntersectPlane(n, 5, a, b); got != b {
			t.Errorf("got %v, want end (t clamped to 1)", got)
		}
	})

	t.Run("interpolates w", func(t *testing.T) {
		got := IntersectPlane(n, 0.5, V4(0, 0, 0, 1), V4(0, 0, 1, 3))
		if math.Abs(got.W-2) > 1e-12 {
			t.Errorf("W = %v, want 2", got.W)
		}
	})
}
