package geomclip

import "math"

// Positive wraps a float64 that is always non-negative.
type Positive struct {
	value float64
}

// NewPositive returns a Positive holding the absolute value of v.
func NewPositive(v float64) Positive {
	return Positive{value: math.Abs(v)}
}

// Value returns the wrapped non-negative float64.
func (p Positive) Value() float64 {
	return p.value
}

// Tolerance bounds the acceptable deviation between two scalars.
//
// The zero value compares exactly: IsClose degenerates to equality.
type Tolerance struct {
	// Relative is the maximum allowed difference, scaled by the larger operand's magnitude.
	Relative Positive
	// Absolute is used to compare values close to zero.
	Absolute Positive
}

// IsClose reports whether a and b differ by no more than the larger of
// tol.Relative*max(|a|,|b|) and tol.Absolute.
func IsClose(a, b float64, tol Tolerance) bool {
	diff := math.Abs(a - b)
	bound := tol.Relative.value * math.Max(math.Abs(a), math.Abs(b))
	if tol.Absolute.value > bound {
		bound = tol.Absolute.value
	}
	return diff <= bound
}
