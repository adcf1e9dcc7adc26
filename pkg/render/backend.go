package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/b3d/pkg/math3d"
	"github.com/taigrr/b3d/pkg/scalar"
)

// Renderer is the backend-independent surface of a Context. Every
// Context instantiation implements it.
type Renderer interface {
	Clear()
	IsInitialized() bool
	Width() int
	Height() int
	Pixels() []uint32
	DepthAt(x, y int) float64

	Reset()
	Translate(x, y, z float64)
	RotateX(angle float64)
	RotateY(angle float64)
	RotateZ(angle float64)
	Scale(x, y, z float64)
	PushMatrix() error
	PopMatrix() error
	ModelMatrix() [16]float64
	SetModelMatrix(m [16]float64)
	ViewMatrix() [16]float64
	ProjectionMatrix() [16]float64

	SetCamera(cam Camera)
	Camera() Camera
	LookAt(target math3d.Vec3)
	SetFOV(fov float64)
	FOV() float64

	Triangle(a, b, c math3d.Vec3, color uint32) bool
	DrawTriangle(a, b, c math3d.Vec3, color uint32) error
	TriangleLit(a, b, c, normal math3d.Vec3, color uint32) bool
	ToScreen(p math3d.Vec3) (x, y int, ok bool)

	SetLightDirection(dir math3d.Vec3) error
	LightDirection() math3d.Vec3
	SetAmbient(a float64)
	Ambient() float64

	ClipDropCount() int
}

var (
	_ Renderer = (*Context[scalar.Float, float32])(nil)
	_ Renderer = (*Context[scalar.Fixed, int32])(nil)
	_ Renderer = (*Context[scalar.Fixed, uint16])(nil)
)

// Backend selects the scalar representation and depth storage.
type Backend int

const (
	// BackendFloat rasterizes in float32 with a float32 depth buffer.
	BackendFloat Backend = iota
	// BackendFixed rasterizes in Q16.16 with an int32 depth buffer.
	BackendFixed
	// BackendFixed16 rasterizes in Q16.16 with a uint16 depth buffer.
	BackendFixed16
)

var backendNames = [...]string{
	BackendFloat:   "float",
	BackendFixed:   "fixed",
	BackendFixed16: "fixed16",
}

func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return fmt.Sprintf("Backend(%d)", int(b))
	}
	return backendNames[b]
}

// DepthSize returns the size in bytes of one depth buffer element.
func (b Backend) DepthSize() int {
	switch b {
	case BackendFixed16:
		return 2
	default:
		return 4
	}
}

// ParseBackend maps a name as printed by String back to a Backend. Matching
// ignores case.
func ParseBackend(s string) (Backend, error) {
	for i, name := range backendNames {
		if strings.EqualFold(s, name) {
			return Backend(i), nil
		}
	}
	return 0, fmt.Errorf("render: unknown backend %q (want float, fixed or fixed16)", s)
}

// BufferSize returns width*height*elemSize in bytes, or 0 when any argument
// is non-positive or the product does not fit in an int.
func BufferSize(width, height, elemSize int) int {
	if width <= 0 || height <= 0 || elemSize <= 0 {
		return 0
	}
	if width > math.MaxInt/height {
		return 0
	}
	n := width * height
	if n > math.MaxInt/elemSize {
		return 0
	}
	return n * elemSize
}

// NewFloat returns a float32 context initialized over the given buffers.
func NewFloat(pixels []uint32, depth []float32, width, height int, fov float64, opts ...Option) (*Context[scalar.Float, float32], error) {
	c := NewContext[scalar.Float, float32](FloatDepth{}, opts...)
	if err := c.Init(pixels, depth, width, height, fov); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFixed returns a Q16.16 context with an int32 depth buffer.
func NewFixed(pixels []uint32, depth []int32, width, height int, fov float64, opts ...Option) (*Context[scalar.Fixed, int32], error) {
	c := NewContext[scalar.Fixed, int32](Fixed32Depth{}, opts...)
	if err := c.Init(pixels, depth, width, height, fov); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFixed16 returns a Q16.16 context with a 16-bit depth buffer.
func NewFixed16(pixels []uint32, depth []uint16, width, height int, fov float64, opts ...Option) (*Context[scalar.Fixed, uint16], error) {
	c := NewContext[scalar.Fixed, uint16](Fixed16Depth{}, opts...)
	if err := c.Init(pixels, depth, width, height, fov); err != nil {
		return nil, err
	}
	return c, nil
}

// New allocates buffers for a width×height viewport and returns an
// initialized renderer for the chosen backend.
func New(backend Backend, width, height int, fov float64, opts ...Option) (Renderer, error) {
	if BufferSize(width, height, backend.DepthSize()) == 0 || BufferSize(width, height, 4) == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	n := width * height
	pixels := make([]uint32, n)
	var (
		r   Renderer
		err error
	)
	switch backend {
	case BackendFloat:
		r, err = NewFloat(pixels, make([]float32, n), width, height, fov, opts...)
	case BackendFixed:
		r, err = NewFixed(pixels, make([]int32, n), width, height, fov, opts...)
	case BackendFixed16:
		r, err = NewFixed16(pixels, make([]uint16, n), width, height, fov, opts...)
	default:
		return nil, fmt.Errorf("render: unknown backend %v", backend)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}
