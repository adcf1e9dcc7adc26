package render

import "github.com/taigrr/b3d/pkg/math3d"

// Projector maps model-space points to pixels. Every Renderer is one.
type Projector interface {
	ToScreen(p math3d.Vec3) (x, y int, ok bool)
}

// DrawLine3D projects both endpoints and draws the segment between them.
// Nothing is drawn if either endpoint is behind the eye.
func DrawLine3D(p Projector, fb *Framebuffer, a, b math3d.Vec3, color uint32) bool {
	x0, y0, ok0 := p.ToScreen(a)
	x1, y1, ok1 := p.ToScreen(b)
	if !ok0 || !ok1 {
		return false
	}
	fb.DrawLine(x0, y0, x1, y1, color)
	return true
}

// Wireframe draws the three edges of triangle abc. It uses the projector's
// current model matrix and ignores depth, which makes hidden edges visible.
func Wireframe(p Projector, fb *Framebuffer, a, b, c math3d.Vec3, color uint32) {
	DrawLine3D(p, fb, a, b, color)
	DrawLine3D(p, fb, b, c, color)
	DrawLine3D(p, fb, c, a, color)
}

// DrawAxes draws the model-space axes at the origin in red, green and blue.
func DrawAxes(p Projector, fb *Framebuffer, length float64) {
	origin := math3d.Vec3{}
	DrawLine3D(p, fb, origin, math3d.V3(length, 0, 0), ColorRed)
	DrawLine3D(p, fb, origin, math3d.V3(0, length, 0), ColorGreen)
	DrawLine3D(p, fb, origin, math3d.V3(0, 0, length), ColorBlue)
}
