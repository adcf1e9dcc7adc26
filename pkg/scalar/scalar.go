// Package scalar provides the numeric backends used by the rasterizer and
// depth buffer: IEEE float and Q16.16 fixed point.
//
// Both backends satisfy the Scalar constraint, so code written against
// Scalar[T] runs unchanged on either representation. Addition, subtraction
// and comparison use the ordinary Go operators; everything that differs
// between the two representations is a method.
package scalar

// Scalar is the constraint implemented by Float and Fixed.
type Scalar[T any] interface {
	Float | Fixed

	// Mul returns the product.
	Mul(T) T
	// Div returns the quotient, or zero when the divisor is zero.
	Div(T) T
	// Floor rounds toward negative infinity.
	Floor() T
	// Int converts to an integer, discarding the fraction.
	Int() int
	// Float64 converts to float64.
	Float64() float64
	// FromFloat converts f to the receiver's representation. The receiver
	// value is ignored.
	FromFloat(f float64) T
	// FromInt converts i to the receiver's representation. The receiver
	// value is ignored.
	FromInt(i int) T
	Sin() T
	Cos() T
	Sqrt() T
	Abs() T
}

// Of converts f to T.
func Of[T Scalar[T]](f float64) T {
	var zero T
	return zero.FromFloat(f)
}

// FromInt converts i to T.
func FromInt[T Scalar[T]](i int) T {
	var zero T
	return zero.FromInt(i)
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	return FromInt[T](1)
}

// Min returns the smaller of a and b.
func Min[T Scalar[T]](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Scalar[T]](a, b T) T {
	if a > b {
		return a
	}
	return b
}
