package scalar

// Sin returns the sine of x (radians) computed in Q16.16.
func Sin(x float64) float64 {
	return Of[Fixed](x).Sin().Float64()
}

// Cos returns the cosine of x (radians) computed in Q16.16.
func Cos(x float64) float64 {
	return Of[Fixed](x).Cos().Float64()
}

// SinCos returns Sin(x) and Cos(x).
func SinCos(x float64) (sin, cos float64) {
	f := Of[Fixed](x)
	return f.Sin().Float64(), f.Cos().Float64()
}

// Sqrt returns the square root of x computed in Q16.16. Inputs outside the
// Q16.16 range saturate.
func Sqrt(x float64) float64 {
	return Of[Fixed](x).Sqrt().Float64()
}
