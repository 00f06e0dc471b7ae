package vmath

import (
	"fmt"
)

// Mat4 is a 4×4 matrix stored row-major: element (r,c) lives at index r*4+c
type Mat4 [16]float64

// Identity4 returns the 4×4 identity matrix
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func checkIndex(r, c int) {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		panic(fmt.Sprintf("vmath: matrix index (%d,%d) out of range", r, c))
	}
}

// At returns the element at row r, column c
func (m Mat4) At(r, c int) float64 {
	checkIndex(r, c)
	return m[r*4+c]
}

// Set stores v at row r, column c
func (m *Mat4) Set(r, c int, v float64) {
	checkIndex(r, c)
	m[r*4+c] = v
}

// Mul returns the matrix product m × n
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var acc float64
			for k := 0; k < 4; k++ {
				acc += m[r*4+k] * n[k*4+c]
			}
			out[r*4+c] = acc
		}
	}
	return out
}

// Transpose returns m with rows and columns swapped
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r*4+c]
		}
	}
	return out
}

// Equal compares per element within Epsilon
func (m Mat4) Equal(n Mat4) bool {
	for i := range m {
		if !EqualApprox(m[i], n[i]) {
			return false
		}
	}
	return true
}
