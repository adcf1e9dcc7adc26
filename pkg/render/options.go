package render

// Option configures a Context during creation.
//
// Example:
//
//	// Skip back-face culling and fail loudly when clipping overflows.
//	r, err := render.NewFloat(pixels, depth, w, h, 70,
//	    render.WithBackfaceCulling(false),
//	    render.WithFailOnClipOverflow())
type Option func(*options)

type options struct {
	cull           bool
	clipCapacity   int
	failOnOverflow bool
}

func defaultOptions() options {
	return options{
		cull:         true,
		clipCapacity: DefaultClipCapacity,
	}
}

// WithBackfaceCulling enables or disables back-face culling. With culling
// off, the model and view matrices are pre-multiplied once per change
// instead of per triangle.
func WithBackfaceCulling(enabled bool) Option {
	return func(o *options) {
		o.cull = enabled
	}
}

// WithClipCapacity sets how many triangles each clipping stage may hold.
// Values below 1 are ignored.
func WithClipCapacity(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.clipCapacity = n
		}
	}
}

// WithFailOnClipOverflow makes a clip buffer overflow reject the whole
// triangle before any pixel is written. Without it, the surviving pieces
// are drawn and the overflow is only reported.
func WithFailOnClipOverflow() Option {
	return func(o *options) {
		o.failOnOverflow = true
	}
}
