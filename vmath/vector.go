package vmath

import (
	"math"
)

// Vector is a displacement in 3-space
// Operations are pure: each returns a new value and never mutates the receiver
type Vector struct {
	X, Y, Z float64
}

// --- Arithmetic ---

// Add returns v + u
func (v Vector) Add(u Vector) Vector {
	return Vector{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns v - u
func (v Vector) Sub(u Vector) Vector {
	return Vector{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Neg returns the opposite vector
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Scale returns v scaled by s
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// Div returns v divided by s
// s == 0 is not guarded: components follow IEEE 754 into infinities or NaNs
func (v Vector) Div(s float64) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// --- Products ---

// Dot returns the dot product
func (v Vector) Dot(u Vector) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the right-handed cross product
// Order matters: v.Cross(u) == u.Cross(v).Neg()
func (v Vector) Cross(u Vector) Vector {
	return Vector{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// --- Length ---

// Magnitude returns the Euclidean length
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v
// A zero vector yields NaN components, see Div
func (v Vector) Normalize() Vector {
	return v.Div(v.Magnitude())
}
