package render

import (
	"math"

	"github.com/taigrr/b3d/pkg/math3d"
)

// Lighting defaults.
const (
	DefaultAmbient = 0.2
)

// DefaultLightDirection points along +Z, toward the scene from a camera
// at the origin.
var DefaultLightDirection = math3d.V3(0, 0, 1)

// Intensity returns the two-sided diffuse intensity of a surface with the
// given normal under a unit light direction:
//
//	ambient + (1-ambient)·|n·l|
//
// clamped to [0, 1]. Faces turned away from the light are lit the same as
// faces toward it. A zero normal receives ambient light only.
func Intensity(normal, light math3d.Vec3, ambient float64) float64 {
	n := normal.Normalize()
	i := ambient + (1-ambient)*math.Abs(n.Dot(light))
	return min(max(i, 0), 1)
}

// Shade scales each channel of the packed 0xRRGGBB color by the intensity
// of normal under light.
func Shade(normal, light math3d.Vec3, ambient float64, color uint32) uint32 {
	return ScaleColor(color, Intensity(normal, light, ambient))
}

// ScaleColor multiplies each channel of a packed color by k, clamping to
// [0, 255].
func ScaleColor(color uint32, k float64) uint32 {
	scale := func(c uint32) uint32 {
		v := int(float64(c) * k)
		return uint32(min(max(v, 0), 255))
	}
	r := scale((color >> 16) & 0xFF)
	g := scale((color >> 8) & 0xFF)
	b := scale(color & 0xFF)
	return r<<16 | g<<8 | b
}
