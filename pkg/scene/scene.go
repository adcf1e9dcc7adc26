// Package scene holds the built-in animated scenes: a lit cube, a grid of
// spinning cubes, a lighting study, a heightfield and a torus.
package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/render"
)

// Renderer is the part of render.Renderer a scene drives.
type Renderer interface {
	Reset()
	Translate(x, y, z float64)
	RotateX(angle float64)
	RotateY(angle float64)
	RotateZ(angle float64)
	Scale(x, y, z float64)
	PushMatrix() error
	PopMatrix() error

	Triangle(a, b, c math3d.Vec3, color uint32) bool
	TriangleLit(a, b, c, normal math3d.Vec3, color uint32) bool
	SetLightDirection(dir math3d.Vec3) error
}

// Scene is a named animation. Draw issues the frame at time t (seconds)
// into an already cleared renderer and returns how many triangles reached
// the screen.
type Scene struct {
	Name   string
	Camera render.Camera // where the scene is meant to be watched from
	Draw   func(r Renderer, t float64) int
}

var registry = []Scene{
	{Name: "cube", Camera: render.Camera{Position: math3d.V3(0, 0, -3)}, Draw: DrawCube},
	{Name: "cubes", Camera: render.Camera{Position: math3d.V3(0, 0, -2)}, Draw: cubesOf(defaultCubeCount)},
	{Name: "lighting", Camera: render.Camera{Position: math3d.V3(0, 0, -3)}, Draw: DrawLighting},
	{Name: "terrain", Camera: render.Camera{Position: math3d.V3(0, 1.5, -8)}, Draw: DrawTerrain},
	{Name: "donut", Camera: render.Camera{Position: math3d.V3(0, 0, -6)}, Draw: DrawDonut},
}

// Names lists the built-in scenes.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scene by name, ignoring case.
func Lookup(name string) (Scene, error) {
	i := slices.IndexFunc(registry, func(s Scene) bool {
		return strings.EqualFold(s.Name, name)
	})
	if i < 0 {
		return Scene{}, fmt.Errorf("scene: unknown scene %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return registry[i], nil
}
