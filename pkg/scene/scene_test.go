package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/models"
	"github.com/taigrr/b3d/pkg/render"
)

func newRenderer(t testing.TB, b render.Backend, cam render.Camera) render.Renderer {
	t.Helper()
	r, err := render.New(b, 64, 48, 60)
	if err != nil {
		t.Fatalf("New(%v): %v", b, err)
	}
	r.SetCamera(cam)
	return r
}

func litPixels(r render.Renderer) int {
	n := 0
	for _, p := range r.Pixels() {
		if p != 0 {
			n++
		}
	}
	return n
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(strings.ToUpper(name))
		if err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
			continue
		}
		if s.Name != name || s.Draw == nil {
			t.Errorf("Lookup(%q) = %+v", name, s)
		}
	}
	if _, err := Lookup("teapot"); err == nil || !strings.Contains(err.Error(), "cubes") {
		t.Errorf("Lookup(teapot) error = %v", err)
	}
}

func TestScenesDraw(t *testing.T) {
	backends := []render.Backend{render.BackendFloat, render.BackendFixed, render.BackendFixed16}
	for _, name := range Names() {
		s, _ := Lookup(name)
		for _, b := range backends {
			t.Run(name+"/"+b.String(), func(t *testing.T) {
				r := newRenderer(t, b, s.Camera)
				if n := s.Draw(r, 1.2); n == 0 {
					t.Fatal("no triangles drawn")
				}
				if litPixels(r) == 0 {
					t.Error("no pixels written")
				}
			})
		}
	}
}

func TestScenesAnimate(t *testing.T) {
	for _, name := range Names() {
		s, _ := Lookup(name)
		t.Run(name, func(t *testing.T) {
			r := newRenderer(t, render.BackendFloat, s.Camera)
			s.Draw(r, 0)
			first := append([]uint32(nil), r.Pixels()...)

			r.Clear()
			s.Draw(r, 2.5)
			changed := 0
			for i, p := range r.Pixels() {
				if p != first[i] {
					changed++
				}
			}
			if changed == 0 {
				t.Error("frame at t=2.5 identical to t=0")
			}
		})
	}
}

func assertOutward(t *testing.T, m *models.Mesh) {
	t.Helper()
	center := m.Center()
	for i, f := range m.Faces {
		a, b, c := m.Triangle(i)
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		if d := f.Normal.Dot(centroid.Sub(center)); d <= 0 {
			t.Errorf("%s face %d normal %v points inward", m.Name, i, f.Normal)
		}
		if math.Abs(f.Normal.Len()-1) > 1e-9 {
			t.Errorf("%s face %d normal not unit: %v", m.Name, i, f.Normal)
		}
	}
}

func TestCubeMesh(t *testing.T) {
	m := Cube()
	if m.VertexCount() != 8 || m.TriangleCount() != 12 {
		t.Fatalf("cube has %d vertices, %d faces", m.VertexCount(), m.TriangleCount())
	}
	if m.Size() != math3d.V3(1, 1, 1) {
		t.Errorf("Size() = %v", m.Size())
	}
	for i, f := range m.Faces {
		if !f.HasColor || f.Color != CubeColors[i] {
			t.Errorf("face %d color = %#06x", i, f.Color)
		}
	}
	assertOutward(t, m)
}

func TestPyramidMesh(t *testing.T) {
	m := Pyramid()
	if m.VertexCount() != 5 || m.TriangleCount() != 6 {
		t.Fatalf("pyramid has %d vertices, %d faces", m.VertexCount(), m.TriangleCount())
	}
	assertOutward(t, m)
}

func TestDrawCubeCullsBackFaces(t *testing.T) {
	r := newRenderer(t, render.BackendFloat, render.Camera{Position: math3d.V3(0, 0, -3)})
	// A convex cube shows at most three sides.
	if n := DrawCube(r, 0.7); n < 2 || n > 6 {
		t.Errorf("DrawCube drew %d triangles, want 2..6", n)
	}
}

func TestDrawCubesCount(t *testing.T) {
	r := newRenderer(t, render.BackendFloat, render.Camera{Position: math3d.V3(0, 0, -2)})
	if n := DrawCubes(r, 1, 0); n != 0 {
		t.Errorf("zero cubes drew %d triangles", n)
	}
	if n := DrawCubes(r, 1, 10); n == 0 || n > 10*12 {
		t.Errorf("ten cubes drew %d triangles", n)
	}
}

func TestDrawLightingSetsLight(t *testing.T) {
	r := newRenderer(t, render.BackendFloat, render.Camera{Position: math3d.V3(0, 0, -3)})
	DrawLighting(r, 0)
	want := OrbitLight(0.5, 0.5)
	got := r.LightDirection()
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("light = %v, want %v", got, want)
	}
}

func TestOrbitLightIsUnit(t *testing.T) {
	for _, a := range []float64{0, 0.5, 1.3, math.Pi, -2} {
		if l := OrbitLight(a, a/2).Len(); math.Abs(l-1) > 1e-12 {
			t.Errorf("OrbitLight(%v) length %v", a, l)
		}
	}
}

func TestTerrain(t *testing.T) {
	for _, tm := range []float64{0, 1, 7.5} {
		for x := range 10 {
			if h := TerrainHeight(float64(x), float64(x*3), tm); math.Abs(h) > 1 {
				t.Errorf("TerrainHeight = %v, want within [-1, 1]", h)
			}
		}
	}

	tests := []struct {
		h    float64
		want uint32
	}{
		{-5, 80<<16 | 140<<8 | 90},
		{5, 180<<16 | 250<<8 | 170},
	}
	for _, tt := range tests {
		if got := terrainColor(tt.h); got != tt.want {
			t.Errorf("terrainColor(%v) = %#06x, want %#06x", tt.h, got, tt.want)
		}
	}
}

func TestDonutShade(t *testing.T) {
	if got := donutShade(-1); got != donutPalette[0] {
		t.Errorf("shade(-1) = %#06x", got)
	}
	if got := donutShade(2); got != donutPalette[len(donutPalette)-1] {
		t.Errorf("shade(2) = %#06x", got)
	}
}

func BenchmarkScenes(b *testing.B) {
	for _, name := range Names() {
		s, _ := Lookup(name)
		b.Run(name, func(b *testing.B) {
			r := newRenderer(b, render.BackendFloat, s.Camera)
			t := 0.0
			for b.Loop() {
				r.Clear()
				s.Draw(r, t)
				t += 1.0 / 60
			}
		})
	}
}
