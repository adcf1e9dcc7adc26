package render

import (
	"math"

	"github.com/taigrr/b3d/pkg/scalar"
)

// DepthFar is the cleared value of a float depth buffer.
const DepthFar = 1e30

// DepthValue is the set of depth buffer element types.
type DepthValue interface {
	~float32 | ~int32 | ~uint16
}

// DepthCodec converts between a depth buffer element S and the scalar T
// that the rasterizer interpolates and compares.
type DepthCodec[T scalar.Scalar[T], S DepthValue] interface {
	// Load expands a stored value for comparison.
	Load(S) T
	// Store packs an interpolated depth for the buffer.
	Store(T) S
	// Far is the value a cleared buffer holds. Every depth the pipeline
	// produces compares closer than it.
	Far() S
	FromFloat(d float64) S
	ToFloat(v S) float64
}

// FloatDepth stores float32 depth for the Float backend.
type FloatDepth struct{}

func (FloatDepth) Load(v float32) scalar.Float { return scalar.Float(v) }
func (FloatDepth) Store(v scalar.Float) float32 { return float32(v) }
func (FloatDepth) Far() float32 { return DepthFar }
func (FloatDepth) FromFloat(d float64) float32 { return float32(d) }
func (FloatDepth) ToFloat(v float32) float64 { return float64(v) }

// Fixed32Depth stores raw Q16.16 depth for the Fixed backend.
type Fixed32Depth struct{}

func (Fixed32Depth) Load(v int32) scalar.Fixed { return scalar.Fixed(v) }
func (Fixed32Depth) Store(v scalar.Fixed) int32 { return int32(v) }
func (Fixed32Depth) Far() int32 { return math.MaxInt32 }
func (Fixed32Depth) FromFloat(d float64) int32 { return int32(scalar.Of[scalar.Fixed](d)) }
func (Fixed32Depth) ToFloat(v int32) float64 { return scalar.Fixed(v).Float64() }

// Fixed16Depth stores depth normalized to [0, 65535], halving the buffer
// size of Fixed32Depth. Depth is only meaningful in [0, 1], which is what
// the projection produces for points between the near and far planes.
type Fixed16Depth struct{}

// Load maps 0xFFFF to exactly One so the far value round-trips through
// Store unchanged. Other values use v/65535 ≈ (v*65537)>>16.
func (Fixed16Depth) Load(v uint16) scalar.Fixed {
	if v == 0xFFFF {
		return scalar.FixedOne
	}
	return scalar.Fixed((uint32(v) * 65537) >> 16)
}

// Store rounds to nearest before truncating.
func (Fixed16Depth) Store(v scalar.Fixed) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= scalar.FixedOne {
		return 0xFFFF
	}
	return uint16((int64(v)*65535 + int64(scalar.FixedHalf)) >> scalar.Bits)
}

func (Fixed16Depth) Far() uint16 { return 0xFFFF }

func (Fixed16Depth) FromFloat(d float64) uint16 {
	d = min(max(d, 0), 1)
	return uint16(d*65535 + 0.5)
}

func (Fixed16Depth) ToFloat(v uint16) float64 { return float64(v) / 65535 }

// fillDepth sets every element of buf to v using copy-doubling.
func fillDepth[S DepthValue](buf []S, v S) {
	if len(buf) == 0 {
		return
	}
	buf[0] = v
	for i := 1; i < len(buf); i *= 2 {
		copy(buf[i:], buf[:i])
	}
}
