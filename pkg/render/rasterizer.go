package render

import "github.com/taigrr/b3d/pkg/scalar"

// rasterVertex is a screen-space vertex: pixel x, y and the depth carried
// for interpolation.
type rasterVertex[T scalar.Scalar[T]] struct {
	x, y, z T
}

// edge walks one triangle edge from (x, z) along (dx, dz) as t goes 0→1.
type edge[T scalar.Scalar[T]] struct {
	x, z   T
	dx, dz T
	t      T
	step   T
}

func (e *edge[T]) advance() { e.t += e.step }

// rasterizer fills screen-space triangles into a packed RGB pixel buffer
// with a per-pixel depth test. It never allocates.
type rasterizer[T scalar.Scalar[T], S DepthValue] struct {
	codec  DepthCodec[T, S]
	pixels []uint32
	depth  []S
	width  int
	height int

	// Backend constants, converted once per bind.
	one     T
	degen   T
	fwidth  T
	fheight T
}

func (r *rasterizer[T, S]) bind(pixels []uint32, depth []S, width, height int) {
	r.pixels = pixels
	r.depth = depth
	r.width = width
	r.height = height
	r.one = scalar.One[T]()
	r.degen = scalar.Of[T](DegenThreshold)
	r.fwidth = scalar.FromInt[T](width)
	r.fheight = scalar.FromInt[T](height)
}

// triangle scan-converts v in two halves split at the middle vertex.
func (r *rasterizer[T, S]) triangle(v [3]rasterVertex[T], color uint32) {
	a := rasterVertex[T]{v[0].x.Floor(), v[0].y.Floor(), v[0].z}
	b := rasterVertex[T]{v[1].x.Floor(), v[1].y.Floor(), v[1].z}
	c := rasterVertex[T]{v[2].x.Floor(), v[2].y.Floor(), v[2].z}

	minX, maxX := min(a.x, b.x, c.x), max(a.x, b.x, c.x)
	minY, maxY := min(a.y, b.y, c.y), max(a.y, b.y, c.y)
	if maxX < 0 || minX >= r.fwidth || maxY < 0 || minY >= r.fheight {
		return
	}

	if a.y > b.y {
		a, b = b, a
	}
	if a.y > c.y {
		a, c = c, a
	}
	if b.y > c.y {
		b, c = c, b
	}

	dyTotal := c.y - a.y
	if dyTotal < r.degen {
		return
	}

	left := edge[T]{
		x: a.x, z: a.z,
		dx: c.x - a.x, dz: c.z - a.z,
		step: r.one.Div(dyTotal),
	}
	right := r.edgeBetween(a, b)
	r.half(a.y.Int(), b.y.Int(), &left, &right, color)

	right = r.edgeBetween(b, c)
	r.half(b.y.Int(), c.y.Int(), &left, &right, color)
}

// edgeBetween sets up an edge from p to q. A flat edge gets a zero step so
// it never divides by a vanishing height.
func (r *rasterizer[T, S]) edgeBetween(p, q rasterVertex[T]) edge[T] {
	e := edge[T]{
		x: p.x, z: p.z,
		dx: q.x - p.x, dz: q.z - p.z,
	}
	if dy := q.y - p.y; dy > r.degen {
		e.step = r.one.Div(dy)
	}
	return e
}

// half fills rows [y0, y1) between the left and right edges. Rows outside
// the buffer still advance both edges.
func (r *rasterizer[T, S]) half(y0, y1 int, left, right *edge[T], color uint32) {
	for y := y0; y < y1; y++ {
		if y >= 0 && y < r.height {
			r.row(y, left, right, color)
		}
		left.advance()
		right.advance()
	}
}

func (r *rasterizer[T, S]) row(y int, left, right *edge[T], color uint32) {
	sx := left.x + left.dx.Mul(left.t)
	sz := left.z + left.dz.Mul(left.t)
	ex := right.x + right.dx.Mul(right.t)
	ez := right.z + right.dz.Mul(right.t)
	if sx > ex {
		sx, ex = ex, sx
		sz, ez = ez, sz
	}
	dx := ex - sx
	if dx < r.degen {
		return
	}
	step := (ez - sz).Div(dx)

	start := min(max(sx.Int(), 0), r.width)
	end := min(max(ex.Int(), 0), r.width)
	if start >= end {
		return
	}

	base := y * r.width
	if base+end > len(r.pixels) || base+end > len(r.depth) {
		return
	}
	d := sz + step.Mul(scalar.FromInt[T](start)-sx)
	r.span(r.pixels[base+start:base+end], r.depth[base+start:base+end], d, step, color)
}

// span writes color wherever d is strictly closer than the stored depth.
// Equal depth keeps the fragment already there.
func (r *rasterizer[T, S]) span(pp []uint32, dp []S, d, step T, color uint32) {
	n := min(len(pp), len(dp))
	pp, dp = pp[:n], dp[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		if d < r.codec.Load(dp[i]) {
			dp[i] = r.codec.Store(d)
			pp[i] = color
		}
		d += step
		if d < r.codec.Load(dp[i+1]) {
			dp[i+1] = r.codec.Store(d)
			pp[i+1] = color
		}
		d += step
		if d < r.codec.Load(dp[i+2]) {
			dp[i+2] = r.codec.Store(d)
			pp[i+2] = color
		}
		d += step
		if d < r.codec.Load(dp[i+3]) {
			dp[i+3] = r.codec.Store(d)
			pp[i+3] = color
		}
		d += step
	}
	for ; i < n; i++ {
		if d < r.codec.Load(dp[i]) {
			dp[i] = r.codec.Store(d)
			pp[i] = color
		}
		d += step
	}
}
