package bevel

import (
	"math"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// asinTolerance is how far past ±1 an arcsine argument may land from
	// rounding alone and still be treated as exactly ±1.
	asinTolerance = 1e-12
)

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// isFinite reports whether x is neither NaN nor an infinity.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
