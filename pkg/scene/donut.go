package scene

import (
	"math"

	"github.com/taigrr/b3d/pkg/math3d"
)

// Torus dimensions and tessellation.
const (
	donutMajor = 2.0
	donutMinor = 0.7
	donutSegU  = 96
	donutSegV  = 64
)

// donutPalette runs from night blue to warm orange.
var donutPalette = [...]uint32{
	0x0f1028, 0x14163b, 0x1a1d4e, 0x1f245f, 0x232b70, 0x29327f, 0x2f3990,
	0x3541a1, 0x3c49b3, 0x4352c4, 0x4b5bd4, 0x5365e3, 0x5d6eec, 0x6677f3,
	0x7281f8, 0x7f8bfb, 0x8c94fa, 0x9b9ff5, 0xaaa8ec, 0xbab2e0, 0xcbbbd0,
	0xdcc5bc, 0xeecfa5, 0xf7d88e, 0xfde07a, 0xfdd567, 0xfbc556, 0xf7b445,
	0xf3a235, 0xee9028, 0xe77d1b, 0xdd6911, 0xd05509,
}

// donutLight is fixed to the torus, so the shading turns with it.
var donutLight = math3d.V3(0.3, 0.8, -0.6).Normalize()

func donutShade(dot float64) uint32 {
	dot = math.Pow(max(dot, 0), 0.8)
	dot = min(dot, 1)
	return donutPalette[int(dot*float64(len(donutPalette)-1))]
}

// torusPoint returns the surface point and unit normal at angles u
// (around the ring) and v (around the tube).
func torusPoint(u, v float64) (p, n math3d.Vec3) {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	ring := donutMajor + donutMinor*cv
	return math3d.V3(ring*cu, ring*su, donutMinor*sv), math3d.V3(cu*cv, su*cv, sv)
}

// DrawDonut tumbles a palette-shaded torus.
func DrawDonut(r Renderer, t float64) int {
	r.Reset()
	r.RotateY(t * 0.6)
	r.RotateX(t * 0.35)

	du := 2 * math.Pi / donutSegU
	dv := 2 * math.Pi / donutSegV
	drawn := 0
	for iu := range donutSegU {
		u0, u1 := float64(iu)*du, float64(iu+1)*du
		for iv := range donutSegV {
			v0, v1 := float64(iv)*dv, float64(iv+1)*dv

			p00, n00 := torusPoint(u0, v0)
			p10, n10 := torusPoint(u1, v0)
			p01, n01 := torusPoint(u0, v1)
			p11, n11 := torusPoint(u1, v1)

			d0 := (n00.Dot(donutLight) + n10.Dot(donutLight) + n11.Dot(donutLight)) / 3
			d1 := (n00.Dot(donutLight) + n11.Dot(donutLight) + n01.Dot(donutLight)) / 3
			if r.Triangle(p00, p10, p11, donutShade(d0)) {
				drawn++
			}
			if r.Triangle(p00, p11, p01, donutShade(d1)) {
				drawn++
			}
		}
	}
	return drawn
}
