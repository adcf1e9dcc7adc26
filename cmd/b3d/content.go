package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/taigrr/b3d/pkg/config"
	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/models"
	"github.com/taigrr/b3d/pkg/render"
	"github.com/taigrr/b3d/pkg/scene"
)

// content is what a frame shows: a built-in scene or a loaded model.
type content struct {
	name      string
	camera    render.Camera
	triangles int // per frame, for models; 0 when unknown
	draw      func(r scene.Renderer, t float64) int
}

// modelSize is the extent a loaded model is normalized to.
const modelSize = 2.0

// loadContent picks the model when one is configured, the scene otherwise.
func loadContent(cfg config.Config) (content, error) {
	if cfg.Model == "" {
		s, err := scene.Lookup(cfg.Scene)
		if err != nil {
			return content{}, err
		}
		return content{name: s.Name, camera: s.Camera, draw: s.Draw}, nil
	}

	mesh, err := loadMesh(cfg.Model)
	if err != nil {
		return content{}, fmt.Errorf("load model: %w", err)
	}
	mesh.Normalize(modelSize)

	spin := cfg.SpinRate()
	color := uint32(cfg.Color)
	return content{
		name:      mesh.Name,
		camera:    render.Camera{Position: math3d.V3(0, 0, -3)},
		triangles: mesh.TriangleCount(),
		draw: func(r scene.Renderer, t float64) int {
			r.Reset()
			r.RotateX(spin.X * t)
			r.RotateY(spin.Y * t)
			r.RotateZ(spin.Z * t)
			return mesh.Draw(r, color)
		},
	}, nil
}

func loadMesh(path string) (*models.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	case ".obj":
		return models.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj, .gltf or .glb)", ext)
	}
}

// wireRenderer draws every triangle as its outline instead of filling it.
type wireRenderer struct {
	render.Renderer
	fb    *render.Framebuffer
	color uint32
}

func (w wireRenderer) Triangle(a, b, c math3d.Vec3, _ uint32) bool {
	render.Wireframe(w.Renderer, w.fb, a, b, c, w.color)
	return true
}

func (w wireRenderer) TriangleLit(a, b, c, _ math3d.Vec3, _ uint32) bool {
	return w.Triangle(a, b, c, 0)
}
