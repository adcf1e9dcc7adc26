package render

import "github.com/taigrr/b3d/pkg/math3d"

// Pipeline constants.
const (
	NearDistance = 0.1
	FarDistance  = 100.0

	// CullThreshold keeps near-grazing faces from flickering in and out.
	CullThreshold = 0.01

	// DegenThreshold is the smallest triangle height or span width, in
	// pixels, that the rasterizer will fill.
	DegenThreshold = 0.0001

	MatrixStackSize     = 16
	DefaultClipCapacity = 32
)

var nearPlane = math3d.NewPlane(math3d.V3(0, 0, NearDistance), math3d.V3(0, 0, 1))

// screenPlanes holds the four inward-facing viewport edges in pixel space,
// rebuilt only when the viewport size changes.
type screenPlanes struct {
	width, height int
	planes        [4]math3d.Plane
}

// update rebuilds the planes for a width×height viewport and reports
// whether anything changed.
func (s *screenPlanes) update(width, height int) bool {
	if s.width == width && s.height == height {
		return false
	}
	w, h := float64(width), float64(height)
	s.planes = [4]math3d.Plane{
		math3d.NewPlane(math3d.V3(0, 0.5, 0), math3d.V3(0, 1, 0)), // top
		math3d.NewPlane(math3d.V3(0, h, 0), math3d.V3(0, -1, 0)),  // bottom
		math3d.NewPlane(math3d.V3(0.5, 0, 0), math3d.V3(1, 0, 0)), // left
		math3d.NewPlane(math3d.V3(w, 0, 0), math3d.V3(-1, 0, 0)),  // right
	}
	s.width, s.height = width, height
	return true
}
