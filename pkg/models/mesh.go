// Package models provides triangle meshes and the loaders that read them
// from Wavefront OBJ and glTF/GLB files.
package models

import (
	"github.com/taigrr/b3d/pkg/math3d"
)

// Mesh is an indexed triangle mesh with one normal per face.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle with vertex indices, its unit normal and an optional
// packed 0xRRGGBB color.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Normal   math3d.Vec3
	Color    uint32
	HasColor bool
}

// Drawer is the part of a renderer a mesh needs. render.Renderer
// satisfies it.
type Drawer interface {
	TriangleLit(a, b, c, normal math3d.Vec3, color uint32) bool
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a triangle over existing vertices.
func (m *Mesh) AddFace(a, b, c int) {
	m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CalculateNormals sets each face normal from its winding: the normal
// points to the side from which the vertices run counter-clockwise.
func (m *Mesh) CalculateNormals() {
	for i := range m.Faces {
		f := &m.Faces[i]
		v0 := m.Vertices[f.V[0]]
		v1 := m.Vertices[f.V[1]]
		v2 := m.Vertices[f.V[2]]
		f.Normal = v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
	}
}

// Transform applies a transformation matrix to all vertices and
// recomputes normals and bounds.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = mat.MulVec4(v.Point()).Vec3()
	}
	m.CalculateNormals()
	m.CalculateBounds()
}

// Normalize centers the mesh on the origin and scales it uniformly so its
// largest dimension equals size. An empty or flat-to-a-point mesh is only
// centered.
func (m *Mesh) Normalize(size float64) {
	m.CalculateBounds()
	mat := math3d.Translate(m.Center().Scale(-1))
	s := m.Size()
	if extent := max(s.X, s.Y, s.Z); extent > math3d.Epsilon {
		k := size / extent
		mat = mat.Mul(math3d.Scale(math3d.V3(k, k, k)))
	}
	m.Transform(mat)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Triangle returns the corners of face i.
func (m *Mesh) Triangle(i int) (a, b, c math3d.Vec3) {
	f := m.Faces[i].V
	return m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
}

// Draw issues one lit triangle per face. Faces without their own color use
// color. It returns how many faces were drawn.
func (m *Mesh) Draw(d Drawer, color uint32) int {
	drawn := 0
	for i, f := range m.Faces {
		c := color
		if f.HasColor {
			c = f.Color
		}
		a, b, v := m.Triangle(i)
		if d.TriangleLit(a, b, v, f.Normal, c) {
			drawn++
		}
	}
	return drawn
}
