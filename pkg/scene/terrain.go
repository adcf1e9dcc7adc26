package scene

import (
	"math"

	"github.com/taigrr/b3d/pkg/math3d"
)

const (
	terrainGrid = 64
	terrainCell = 0.5
)

// TerrainHeight is the rolling heightfield at grid point (x, z), time t.
func TerrainHeight(x, z, t float64) float64 {
	return math.Sin(x*0.3*0.6+t*0.7)*0.6 + math.Cos(z*0.25*0.5+t*1.1)*0.4
}

// terrainColor runs from dark valleys to pale peaks.
func terrainColor(h float64) uint32 {
	s := min(max((h+1.2)*0.4, 0), 1)
	r := uint32(80 + s*100)
	g := uint32(140 + s*110)
	b := uint32(90 + s*80)
	return r<<16 | g<<8 | b
}

// DrawTerrain draws a slowly turning patch of animated hills, tilted
// toward a camera above it.
func DrawTerrain(r Renderer, t float64) int {
	r.Reset()
	r.RotateY(t * 0.15)
	r.RotateX(-0.55)
	r.Translate(0, -1.4, 12)

	half := float64(terrainGrid-1) * terrainCell / 2
	drawn := 0
	for z := range terrainGrid - 1 {
		for x := range terrainGrid - 1 {
			fx0 := float64(x)*terrainCell - half
			fz0 := float64(z)*terrainCell - half
			fx1 := fx0 + terrainCell
			fz1 := fz0 + terrainCell

			h00 := TerrainHeight(float64(x), float64(z), t)
			h10 := TerrainHeight(float64(x+1), float64(z), t)
			h01 := TerrainHeight(float64(x), float64(z+1), t)
			h11 := TerrainHeight(float64(x+1), float64(z+1), t)

			p00 := math3d.V3(fx0, h00, fz0)
			p10 := math3d.V3(fx1, h10, fz0)
			p01 := math3d.V3(fx0, h01, fz1)
			p11 := math3d.V3(fx1, h11, fz1)

			// Both halves wind upward so the top side faces the camera.
			if r.Triangle(p00, p11, p10, terrainColor((h00+h11+h10)/3)) {
				drawn++
			}
			if r.Triangle(p00, p01, p11, terrainColor((h00+h01+h11)/3)) {
				drawn++
			}
		}
	}
	return drawn
}
