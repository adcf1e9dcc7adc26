package scalar

import "math"

// Float is the IEEE single precision backend.
type Float float32

// Mul returns a*b.
func (a Float) Mul(b Float) Float { return a * b }

// Div returns a/b, or 0 when b is 0.
func (a Float) Div(b Float) Float {
	if b == 0 {
		return 0
	}
	return a / b
}

// Floor rounds toward negative infinity.
func (a Float) Floor() Float { return Float(math.Floor(float64(a))) }

// Int truncates toward zero.
func (a Float) Int() int { return int(a) }

// Float64 widens a to float64.
func (a Float) Float64() float64 { return float64(a) }

// FromFloat narrows f to float32.
func (Float) FromFloat(f float64) Float { return Float(f) }

// FromInt converts i.
func (Float) FromInt(i int) Float { return Float(i) }

func (a Float) Sin() Float { return Float(math.Sin(float64(a))) }
func (a Float) Cos() Float { return Float(math.Cos(float64(a))) }
func (a Float) Abs() Float { return Float(math.Abs(float64(a))) }

// Sqrt returns 0 for non-positive input.
func (a Float) Sqrt() Float {
	if a <= 0 {
		return 0
	}
	return Float(math.Sqrt(float64(a)))
}
