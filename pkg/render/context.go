package render

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/scalar"
)

// Context holds all state of one renderer: the bound buffers, the model,
// view and projection matrices, the matrix stack, lighting and the clip
// buffers. T is the scalar backend used for rasterization and S the depth
// buffer element type.
//
// A Context is not safe for concurrent use. Independent contexts may be
// used from different goroutines.
type Context[T scalar.Scalar[T], S DepthValue] struct {
	opts   options
	raster rasterizer[T, S]

	width, height int
	pixels        []uint32
	depth         []S
	fov           float64

	model, view, proj math3d.Mat4
	modelView         math3d.Mat4
	modelViewDirty    bool

	camera Camera
	eye    math3d.Vec4

	stack    [MatrixStackSize]math3d.Mat4
	stackTop int

	planes screenPlanes

	light   math3d.Vec3
	ambient float64

	clipDrops int
	clipA     []math3d.Triangle
	clipB     []math3d.Triangle
}

// NewContext returns an uninitialized context using codec for depth
// storage. Call Init before drawing.
func NewContext[T scalar.Scalar[T], S DepthValue](codec DepthCodec[T, S], opts ...Option) *Context[T, S] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context[T, S]{
		opts:           o,
		raster:         rasterizer[T, S]{codec: codec},
		model:          math3d.Identity(),
		view:           math3d.Identity(),
		proj:           math3d.Identity(),
		modelViewDirty: true,
		light:          DefaultLightDirection,
		ambient:        DefaultAmbient,
		clipA:          make([]math3d.Triangle, 0, o.clipCapacity),
		clipB:          make([]math3d.Triangle, 0, o.clipCapacity),
	}
}

// Init binds caller-owned buffers and resets the transform state: identity
// model matrix, empty stack, camera at the origin looking down +Z and a
// projection for fov degrees. Both buffers must hold at least width*height
// elements. Both buffers are cleared.
//
// On failure the context is left uninitialized and every draw call fails
// until a later Init succeeds.
func (c *Context[T, S]) Init(pixels []uint32, depth []S, width, height int, fov float64) error {
	if err := c.validate(pixels, depth, width, height, fov); err != nil {
		c.uninit()
		Logger().Warn("render: init rejected",
			slog.Int("width", width), slog.Int("height", height),
			slog.Float64("fov", fov), slog.Any("error", err))
		return err
	}

	c.width, c.height = width, height
	c.pixels, c.depth = pixels, depth
	c.stackTop = 0
	c.modelViewDirty = true
	c.raster.bind(pixels, depth, width, height)
	if c.planes.update(width, height) {
		Logger().Debug("render: screen planes rebuilt", slog.Int("width", width), slog.Int("height", height))
	}
	c.Clear()
	c.Reset()
	c.fov = fov
	c.proj = math3d.Perspective(fov, float64(height)/float64(width), NearDistance, FarDistance)
	c.SetCamera(Camera{})

	Logger().Debug("render: initialized",
		slog.Int("width", width), slog.Int("height", height), slog.Float64("fov", fov),
		slog.Bool("cull", c.opts.cull), slog.Int("clip_capacity", c.opts.clipCapacity))
	return nil
}

func (c *Context[T, S]) validate(pixels []uint32, depth []S, width, height int, fov float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if !validFOV(fov) {
		return fmt.Errorf("%w: %v", ErrInvalidFOV, fov)
	}
	n := BufferSize(width, height, 1)
	if n == 0 || BufferSize(width, height, 4) == 0 {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, width, height)
	}
	if limit := maxViewport[T](); width > limit || height > limit {
		return fmt.Errorf("%w: %dx%d exceeds %d for this backend", ErrInvalidSize, width, height, limit)
	}
	if len(pixels) < n {
		return fmt.Errorf("%w: pixels has %d, need %d", ErrBufferTooSmall, len(pixels), n)
	}
	if len(depth) < n {
		return fmt.Errorf("%w: depth has %d, need %d", ErrBufferTooSmall, len(depth), n)
	}
	return nil
}

// maxViewport is the largest width or height whose pixel coordinates T
// can represent.
func maxViewport[T scalar.Scalar[T]]() int {
	var zero T
	if _, ok := any(zero).(scalar.Fixed); ok {
		return scalar.MaxInt
	}
	return math.MaxInt
}

func validFOV(fov float64) bool {
	return fov > 0 && fov < 180
}

// uninit returns the context to its unbound state.
func (c *Context[T, S]) uninit() {
	c.width, c.height = 0, 0
	c.pixels, c.depth = nil, nil
	c.raster.bind(nil, nil, 0, 0)
	c.stackTop = 0
	c.clipDrops = 0
	c.modelViewDirty = true
}

// IsInitialized reports whether buffers are bound.
func (c *Context[T, S]) IsInitialized() bool {
	return c.width > 0 && c.height > 0 && c.pixels != nil && c.depth != nil
}

// Width returns the viewport width, or 0 when uninitialized.
func (c *Context[T, S]) Width() int { return c.width }

// Height returns the viewport height, or 0 when uninitialized.
func (c *Context[T, S]) Height() int { return c.height }

// Pixels returns the bound pixel buffer (packed 0xRRGGBB, row-major).
func (c *Context[T, S]) Pixels() []uint32 { return c.pixels }

// Depth returns the bound depth buffer.
func (c *Context[T, S]) Depth() []S { return c.depth }

// DepthAt returns the decoded depth at (x, y). Out-of-range coordinates
// report the cleared value.
func (c *Context[T, S]) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return c.raster.codec.ToFloat(c.raster.codec.Far())
	}
	return c.raster.codec.ToFloat(c.depth[y*c.width+x])
}

// Clear zeroes the pixel buffer, resets the depth buffer to the far value
// and resets the clip drop counter.
func (c *Context[T, S]) Clear() {
	if !c.IsInitialized() {
		return
	}
	c.clipDrops = 0
	n := c.width * c.height
	clear(c.pixels[:n])
	fillDepth(c.depth[:n], c.raster.codec.Far())
}

// sinCos evaluates trig with the backend, so fixed-point contexts rotate
// with the same approximation they rasterize with.
func (c *Context[T, S]) sinCos(angle float64) (sin, cos float64) {
	a := scalar.Of[T](angle)
	return a.Sin().Float64(), a.Cos().Float64()
}

func (c *Context[T, S]) setModel(m math3d.Mat4) {
	c.model = m
	c.modelViewDirty = true
}

// Reset sets the model matrix to identity.
func (c *Context[T, S]) Reset() { c.setModel(math3d.Identity()) }

// Translate appends a translation to the model matrix.
func (c *Context[T, S]) Translate(x, y, z float64) {
	c.setModel(c.model.Mul(math3d.Translate(math3d.V3(x, y, z))))
}

// RotateX appends a rotation around X (radians) to the model matrix.
func (c *Context[T, S]) RotateX(angle float64) {
	c.setModel(c.model.Mul(math3d.RotationX(c.sinCos(angle))))
}

// RotateY appends a rotation around Y (radians) to the model matrix.
func (c *Context[T, S]) RotateY(angle float64) {
	c.setModel(c.model.Mul(math3d.RotationY(c.sinCos(angle))))
}

// RotateZ appends a rotation around Z (radians) to the model matrix.
func (c *Context[T, S]) RotateZ(angle float64) {
	c.setModel(c.model.Mul(math3d.RotationZ(c.sinCos(angle))))
}

// Scale appends a scale to the model matrix.
func (c *Context[T, S]) Scale(x, y, z float64) {
	c.setModel(c.model.Mul(math3d.Scale(math3d.V3(x, y, z))))
}

// PushMatrix saves a copy of the model matrix. It fails without changing
// anything once MatrixStackSize matrices are saved.
func (c *Context[T, S]) PushMatrix() error {
	if c.stackTop >= MatrixStackSize {
		return ErrStackOverflow
	}
	c.stack[c.stackTop] = c.model
	c.stackTop++
	return nil
}

// PopMatrix restores the most recently pushed model matrix. It fails
// without changing anything when the stack is empty.
func (c *Context[T, S]) PopMatrix() error {
	if c.stackTop <= 0 {
		return ErrStackUnderflow
	}
	c.stackTop--
	c.setModel(c.stack[c.stackTop])
	return nil
}

// ModelMatrix returns the model matrix as 16 row-major values.
func (c *Context[T, S]) ModelMatrix() [16]float64 { return c.model.Array() }

// SetModelMatrix replaces the model matrix with 16 row-major values.
func (c *Context[T, S]) SetModelMatrix(m [16]float64) { c.setModel(math3d.FromArray(m)) }

// ViewMatrix returns the view matrix as 16 row-major values.
func (c *Context[T, S]) ViewMatrix() [16]float64 { return c.view.Array() }

// ProjectionMatrix returns the projection matrix as 16 row-major values.
func (c *Context[T, S]) ProjectionMatrix() [16]float64 { return c.proj.Array() }

// SetCamera places the eye and derives the view matrix from its yaw, pitch
// and roll.
func (c *Context[T, S]) SetCamera(cam Camera) {
	c.camera = cam
	c.eye = cam.Position.Point()
	c.view = cam.view(c.sinCos)
	c.modelViewDirty = true
}

// Camera returns the camera last passed to SetCamera. LookAt does not
// update its angles.
func (c *Context[T, S]) Camera() Camera { return c.camera }

// LookAt aims the camera at target from its current position with +Y up.
func (c *Context[T, S]) LookAt(target math3d.Vec3) {
	c.view = math3d.PointAt(c.camera.Position, target, math3d.Up()).QuickInverse()
	c.modelViewDirty = true
}

// SetFOV rebuilds the projection for a vertical field of view in degrees.
// It is ignored on an uninitialized context or for a fov outside (0, 180).
func (c *Context[T, S]) SetFOV(fov float64) {
	if c.width <= 0 || c.height <= 0 || !validFOV(fov) {
		return
	}
	c.fov = fov
	c.proj = math3d.Perspective(fov, float64(c.height)/float64(c.width), NearDistance, FarDistance)
}

// FOV returns the vertical field of view in degrees.
func (c *Context[T, S]) FOV() float64 { return c.fov }

// SetLightDirection sets the direction used by TriangleLit. The vector is
// normalized once here; zero, NaN or infinite input is rejected and the
// previous direction kept.
func (c *Context[T, S]) SetLightDirection(dir math3d.Vec3) error {
	if !dir.IsFinite() || dir.Len() < math3d.Epsilon {
		Logger().Warn("render: light direction rejected", slog.Any("dir", dir))
		return fmt.Errorf("%w: %v", ErrInvalidLight, dir)
	}
	c.light = dir.Normalize()
	return nil
}

// LightDirection returns the normalized light direction.
func (c *Context[T, S]) LightDirection() math3d.Vec3 { return c.light }

// SetAmbient sets the ambient term, clamped to [0, 1]. NaN is ignored.
func (c *Context[T, S]) SetAmbient(a float64) {
	if math.IsNaN(a) {
		return
	}
	c.ambient = min(max(a, 0), 1)
}

// Ambient returns the ambient term.
func (c *Context[T, S]) Ambient() float64 { return c.ambient }

// ClipDropCount returns how many triangles were dropped by full clip
// buffers since the last Clear.
func (c *Context[T, S]) ClipDropCount() int { return c.clipDrops }

// ToScreen projects a model-space point to pixel coordinates. It fails for
// points at or behind the eye plane and for points so close to it that
// the coordinates exceed ±2³⁰. The result may lie outside the viewport.
func (c *Context[T, S]) ToScreen(p math3d.Vec3) (x, y int, ok bool) {
	if !c.IsInitialized() {
		return 0, 0, false
	}
	v := c.proj.MulVec4(c.view.MulVec4(c.model.MulVec4(p.Point())))
	if v.W < math3d.Epsilon {
		return 0, 0, false
	}
	v = c.toViewport(v.Div(v.W))
	if !(math.Abs(v.X) <= maxScreenCoord && math.Abs(v.Y) <= maxScreenCoord) {
		return 0, 0, false
	}
	return int(v.X + 0.5), int(v.Y + 0.5), true
}

// maxScreenCoord bounds ToScreen results so they convert to int exactly.
const maxScreenCoord = 1 << 30

// toViewport maps NDC x, y in [-1, 1] to pixels with y growing downward.
func (c *Context[T, S]) toViewport(v math3d.Vec4) math3d.Vec4 {
	v.X = (v.X + 1) * float64(c.width) * 0.5
	v.Y = (1 - v.Y) * float64(c.height) * 0.5
	return v
}

func (c *Context[T, S]) modelViewMatrix() math3d.Mat4 {
	if c.modelViewDirty {
		c.modelView = c.model.Mul(c.view)
		c.modelViewDirty = false
	}
	return c.modelView
}

// Triangle draws a flat-colored triangle given in model space. It reports
// whether any part of it reached the rasterizer; a false result means the
// triangle was culled, clipped away or the context is uninitialized, and no
// pixel was written.
func (c *Context[T, S]) Triangle(a, b, v math3d.Vec3, color uint32) bool {
	drawn, _ := c.draw(a, b, v, color)
	return drawn > 0
}

// DrawTriangle is Triangle with the reason for not drawing. It returns nil
// when the triangle was drawn in full, ErrNotInitialized, ErrCulled or
// ErrClipped when nothing was drawn, and an error wrapping ErrClipOverflow
// when pieces were dropped. With WithFailOnClipOverflow nothing is drawn
// in that case; otherwise the surviving pieces are.
func (c *Context[T, S]) DrawTriangle(a, b, v math3d.Vec3, color uint32) error {
	_, err := c.draw(a, b, v, color)
	return err
}

// TriangleLit shades color by the two-sided diffuse term of normal and
// draws the triangle. Both normal and light are in model space, so shading
// stays attached to the object as it moves.
func (c *Context[T, S]) TriangleLit(a, b, v, normal math3d.Vec3, color uint32) bool {
	return c.Triangle(a, b, v, Shade(normal, c.light, c.ambient, color))
}

// draw runs the pipeline and returns how many screen-space pieces were
// rasterized.
func (c *Context[T, S]) draw(a, b, v math3d.Vec3, color uint32) (int, error) {
	if !c.IsInitialized() {
		return 0, ErrNotInitialized
	}

	tri := math3d.Triangle{a.Point(), b.Point(), v.Point()}
	if c.opts.cull {
		tri = c.model.MulTriangle(tri)
		normal := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
		if normal.Dot(tri[0].Sub(c.eye)) > CullThreshold {
			return 0, ErrCulled
		}
		tri = c.view.MulTriangle(tri)
	} else {
		tri = c.modelViewMatrix().MulTriangle(tri)
	}

	var near [2]math3d.Triangle
	n := math3d.ClipTriangle(nearPlane, tri, &near)
	if n == 0 {
		return 0, ErrClipped
	}

	capacity := c.opts.clipCapacity
	dropped := 0
	src := c.clipA[:0]
	for _, t := range near[:n] {
		t = c.proj.MulTriangle(t)
		if math.Abs(t[0].W) < math3d.Epsilon || math.Abs(t[1].W) < math3d.Epsilon ||
			math.Abs(t[2].W) < math3d.Epsilon {
			continue
		}
		for i := range t {
			t[i] = c.toViewport(t[i].Div(t[i].W))
		}
		if len(src) < capacity {
			src = append(src, t)
		} else {
			dropped++
		}
	}

	dst := c.clipB[:0]
	for _, plane := range c.planes.planes {
		for _, t := range src {
			var out [2]math3d.Triangle
			k := math3d.ClipTriangle(plane, t, &out)
			for _, piece := range out[:k] {
				if len(dst) < capacity {
					dst = append(dst, piece)
				} else {
					dropped++
				}
			}
		}
		src, dst = dst, src[:0]
	}

	var err error
	if dropped > 0 {
		c.clipDrops += dropped
		err = fmt.Errorf("%w: %d triangles dropped", ErrClipOverflow, dropped)
		Logger().Debug("render: clip overflow",
			slog.Int("dropped", dropped), slog.Int("capacity", capacity),
			slog.Bool("fail", c.opts.failOnOverflow))
		if c.opts.failOnOverflow {
			return 0, err
		}
	}
	if len(src) == 0 {
		if err != nil {
			return 0, err
		}
		return 0, ErrClipped
	}

	for _, t := range src {
		var rv [3]rasterVertex[T]
		for i, p := range t {
			rv[i] = rasterVertex[T]{scalar.Of[T](p.X), scalar.Of[T](p.Y), scalar.Of[T](p.Z)}
		}
		c.raster.triangle(rv, color)
	}
	return len(src), err
}
