package render

import (
	"math"
)

// Color is a linear-RGB triple with float64 channels
// Channels run free during arithmetic: negative and >1 values are legal
// right up until 8-bit conversion at serialization time
type Color struct {
	R, G, B float64
}

// Predefined colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add performs channel-wise addition
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub performs channel-wise subtraction
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies all channels by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul performs the Hadamard product, blending c by the filter color o
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// channel8 scales a linear channel to 8 bits: multiply by 255, truncate,
// clamp to [0,255]. Clamping rather than letting the narrowing conversion
// wrap keeps every input, NaN included, on a defined value
func channel8(v float64) uint8 {
	s := v * 255.0
	if math.IsNaN(s) {
		return 0
	}
	if s >= 255.0 {
		return 255
	}
	if s <= 0.0 {
		return 0
	}
	return uint8(s)
}

// RGB8 converts to 8-bit channels for serialization
func (c Color) RGB8() (r, g, b uint8) {
	return channel8(c.R), channel8(c.G), channel8(c.B)
}
