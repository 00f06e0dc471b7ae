package render

import (
	"errors"
	"fmt"
	"iter"
)

// ErrOutOfBounds is returned by PixelAt for coordinates outside the canvas
var ErrOutOfBounds = errors.New("render: pixel out of bounds")

// Canvas is a fixed-size pixel grid stored row-major: pixel (x,y) lives at
// index x + width*y. Dimensions never change after creation
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// NewCanvas creates a canvas with every pixel black
// Zero dimensions are legal and give a degenerate empty canvas; negative
// dimensions clamp to zero
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// NewCanvasFilled creates a canvas with every pixel set to col
func NewCanvasFilled(width, height int, col Color) *Canvas {
	c := NewCanvas(width, height)
	c.Fill(col)
	return c
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// Fill sets every pixel to col using exponential copy
func (c *Canvas) Fill(col Color) {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = col
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
}

// inBounds returns true if (x,y) is on the canvas
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// WritePixel sets the pixel at (x,y). Out-of-range writes are silently
// dropped: trajectory plots routinely produce samples that fall off the
// canvas, and those are not errors
func (c *Canvas) WritePixel(x, y int, col Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[x+c.width*y] = col
}

// PixelAt returns the pixel at (x,y)
// Unlike WritePixel, an out-of-range read is an explicit failure wrapping
// ErrOutOfBounds
func (c *Canvas) PixelAt(x, y int) (Color, error) {
	if !c.inBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.pixels[x+c.width*y], nil
}

// Pixels returns a lazy row-major sequence over all pixels
// Each call yields a fresh sequence; ranging twice walks the canvas twice
func (c *Canvas) Pixels() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		for i := range c.pixels {
			if !yield(c.pixels[i]) {
				return
			}
		}
	}
}
