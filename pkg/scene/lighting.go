package scene

import (
	"math"

	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/models"
)

const (
	cubeBlue      = 0x4488FF
	pyramidOrange = 0xFF8844
)

// OrbitLight returns the light direction for azimuth theta and elevation
// phi, both in radians.
func OrbitLight(theta, phi float64) math3d.Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return math3d.V3(cp*st, sp, cp*ct)
}

// DrawLighting shows a blue cube and an orange pyramid side by side under
// a light circling them.
func DrawLighting(r Renderer, t float64) int {
	// The orbit never yields a zero vector, so the light is always accepted.
	_ = r.SetLightDirection(OrbitLight(0.5+t*0.7, 0.5))

	drawn := 0
	r.Reset()
	r.RotateY(t * 0.5)
	r.RotateX(t * 0.3)
	r.Scale(0.8, 0.8, 0.8)
	r.Translate(-0.7, 0, 0)
	drawn += drawSolid(r, unitCube(), cubeBlue)

	r.Reset()
	r.RotateY(-t * 0.5)
	r.Scale(0.9, 0.9, 0.9)
	r.Translate(0.75, 0, 0)
	drawn += drawSolid(r, pyramid(), pyramidOrange)
	return drawn
}

// drawSolid draws every face of m lit in one color.
func drawSolid(r Renderer, m *models.Mesh, color uint32) int {
	drawn := 0
	for i, f := range m.Faces {
		a, b, c := m.Triangle(i)
		if r.TriangleLit(a, b, c, f.Normal, color) {
			drawn++
		}
	}
	return drawn
}
