package render

import "errors"

// Configuration errors returned by Init and the constructors.
var (
	ErrInvalidSize    = errors.New("render: width and height must be positive and addressable")
	ErrInvalidFOV     = errors.New("render: field of view must be in (0, 180) degrees")
	ErrBufferTooSmall = errors.New("render: buffer shorter than width*height")
	ErrNotInitialized = errors.New("render: context not initialized")
)

// State errors.
var (
	ErrStackOverflow  = errors.New("render: matrix stack full")
	ErrStackUnderflow = errors.New("render: matrix stack empty")
	ErrInvalidLight   = errors.New("render: light direction must be finite and non-zero")
)

// Draw results. ErrCulled and ErrClipped are geometric rejections, not
// failures: the triangle simply has nothing to show.
var (
	ErrCulled       = errors.New("render: triangle faces away from the camera")
	ErrClipped      = errors.New("render: triangle clipped away")
	ErrClipOverflow = errors.New("render: clip buffer overflow")
)
