package scene

import (
	"math"
	"sync"
)

const defaultCubeCount = 100

// Shared read-only meshes.
var (
	unitCube = sync.OnceValue(Cube)
	pyramid  = sync.OnceValue(Pyramid)
)

// DrawCube spins a single lit cube at the origin.
func DrawCube(r Renderer, t float64) int {
	r.Reset()
	r.RotateY(t * 0.8)
	r.RotateX(t * 0.3)
	return unitCube().Draw(r, 0)
}

// DrawCubes draws n unlit cubes swirling around the origin. Every cube
// shares the same spin and is pushed out along its own offset.
func DrawCubes(r Renderer, t float64, n int) int {
	cube := unitCube()
	drawn := 0
	for i := range n {
		fi := float64(i)
		r.Reset()
		r.RotateZ(t)
		r.RotateY(t)
		r.RotateX(t)
		r.RotateY(fi * 0.1)
		r.Translate(1, 1, math.Mod(fi*0.1, 100))
		r.RotateZ(fi + t)

		for j, f := range cube.Faces {
			a, b, c := cube.Triangle(j)
			if r.Triangle(a, b, c, f.Color) {
				drawn++
			}
		}
	}
	return drawn
}

func cubesOf(n int) func(Renderer, float64) int {
	return func(r Renderer, t float64) int { return DrawCubes(r, t, n) }
}
