// Package vmath provides the float64 point/vector algebra for the
// trajectory pipeline, plus a small square-matrix type layered on top.
package vmath

import (
	"math"
)

// Epsilon is the tolerance for approximate float comparison
const Epsilon = 1e-9

// EqualApprox reports whether a and b differ by less than Epsilon
// The a == b fast path keeps equal infinities comparing equal
func EqualApprox(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < Epsilon
}
