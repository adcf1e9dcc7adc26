package models

import (
	"math"
	"strings"
	"testing"

	"github.com/taigrr/b3d/pkg/math3d"
)

type recordingDrawer struct {
	colors  []uint32
	normals []math3d.Vec3
	reject  bool
}

func (d *recordingDrawer) TriangleLit(a, b, c, normal math3d.Vec3, color uint32) bool {
	d.colors = append(d.colors, color)
	d.normals = append(d.normals, normal)
	return !d.reject
}

func triangleMesh() *Mesh {
	m := NewMesh("tri")
	a := m.AddVertex(math3d.V3(0, 0, 0))
	b := m.AddVertex(math3d.V3(2, 0, 0))
	c := m.AddVertex(math3d.V3(0, 4, 0))
	m.AddFace(a, b, c)
	m.CalculateNormals()
	m.CalculateBounds()
	return m
}

func TestMeshBounds(t *testing.T) {
	m := triangleMesh()
	if got := m.Center(); got != math3d.V3(1, 2, 0) {
		t.Errorf("Center() = %v", got)
	}
	if got := m.Size(); got != math3d.V3(2, 4, 0) {
		t.Errorf("Size() = %v", got)
	}

	empty := NewMesh("empty")
	empty.CalculateBounds()
	if empty.Size() != (math3d.Vec3{}) {
		t.Errorf("empty Size() = %v", empty.Size())
	}
}

func TestMeshNormalize(t *testing.T) {
	m := triangleMesh()
	m.Normalize(2)

	if c := m.Center(); c.Len() > 1e-12 {
		t.Errorf("Center() after Normalize = %v", c)
	}
	s := m.Size()
	if math.Abs(max(s.X, s.Y, s.Z)-2) > 1e-12 {
		t.Errorf("Size() after Normalize = %v, want largest 2", s)
	}
	if math.Abs(s.X-1) > 1e-12 {
		t.Errorf("scale not uniform: %v", s)
	}
	if n := m.Faces[0].Normal; math.Abs(n.Z-1) > 1e-12 {
		t.Errorf("normal = %v, want +Z", n)
	}
}

func TestMeshDraw(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatal(err)
	}
	m.Faces[3].Color, m.Faces[3].HasColor = 0x00FF00, true

	d := &recordingDrawer{}
	if n := m.Draw(d, 0xFF0000); n != 12 {
		t.Errorf("Draw() = %d, want 12", n)
	}
	for i, c := range d.colors {
		want := uint32(0xFF0000)
		if i == 3 {
			want = 0x00FF00
		}
		if c != want {
			t.Errorf("face %d color = %#06x, want %#06x", i, c, want)
		}
		if d.normals[i] != m.Faces[i].Normal {
			t.Errorf("face %d normal not passed through", i)
		}
	}

	if n := m.Draw(&recordingDrawer{reject: true}, 0); n != 0 {
		t.Errorf("Draw() with rejecting drawer = %d", n)
	}
}

func TestMeshClone(t *testing.T) {
	m := triangleMesh()
	c := m.Clone()
	c.Vertices[0] = math3d.V3(9, 9, 9)
	c.Faces[0].Color = 1
	if m.Vertices[0] == c.Vertices[0] || m.Faces[0].Color == 1 {
		t.Error("Clone shares storage")
	}
}
