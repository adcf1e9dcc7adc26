package scene

import (
	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/models"
)

// CubeColors are the per-triangle colors of Cube, two per side.
var CubeColors = [12]uint32{
	0xfcd0a1, 0xb1b695, // -Z
	0x53917e, 0x63535b, // +X
	0x6d1a36, 0xd4e09b, // +Z
	0xf6f4d2, 0xcbdfbd, // -X
	0xf19c79, 0xa44a3f, // +Y
	0x5465ff, 0x788bff, // -Y
}

// Cube returns a unit cube centered on the origin. Every triangle winds
// counter-clockwise seen from outside and carries its CubeColors entry.
func Cube() *models.Mesh {
	m := models.NewMesh("cube")
	for _, p := range [8][3]float64{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	} {
		m.AddVertex(math3d.V3(p[0], p[1], p[2]))
	}
	tris := [12][3]int{
		{0, 3, 2}, {0, 2, 1},
		{1, 2, 6}, {1, 6, 5},
		{5, 6, 7}, {5, 7, 4},
		{4, 7, 3}, {4, 3, 0},
		{3, 7, 6}, {3, 6, 2},
		{5, 4, 0}, {5, 0, 1},
	}
	for i, t := range tris {
		m.AddFace(t[0], t[1], t[2])
		m.Faces[i].Color = CubeColors[i]
		m.Faces[i].HasColor = true
	}
	m.CalculateNormals()
	m.CalculateBounds()
	return m
}

// Pyramid returns a square pyramid one unit wide and tall, centered on
// the origin, with outward windings.
func Pyramid() *models.Mesh {
	m := models.NewMesh("pyramid")
	for _, p := range [5][3]float64{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5},
		{0, 0.5, 0},
	} {
		m.AddVertex(math3d.V3(p[0], p[1], p[2]))
	}
	for _, t := range [6][3]int{
		{0, 1, 2}, {0, 2, 3}, // base
		{3, 2, 4}, {2, 1, 4}, {1, 0, 4}, {0, 3, 4},
	} {
		m.AddFace(t[0], t[1], t[2])
	}
	m.CalculateNormals()
	m.CalculateBounds()
	return m
}
