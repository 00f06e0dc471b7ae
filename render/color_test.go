package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/trajectory/vmath"
)

func colorsApproxEqual(a, b Color) bool {
	return vmath.EqualApprox(a.R, b.R) &&
		vmath.EqualApprox(a.G, b.G) &&
		vmath.EqualApprox(a.B, b.B)
}

func TestColorAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want Color
	}{
		{
			name: "Basic",
			a:    Color{R: 0.9, G: 0.6, B: 0.75},
			b:    Color{R: 0.7, G: 0.1, B: 0.25},
			want: Color{R: 1.6, G: 0.7, B: 1.0},
		},
		{
			name: "BlackIdentity",
			a:    Color{R: 0.2, G: 0.3, B: 0.4},
			b:    Black,
			want: Color{R: 0.2, G: 0.3, B: 0.4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Add(tt.b)
			if !colorsApproxEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestColorSub(t *testing.T) {
	a := Color{R: 0.9, G: 0.6, B: 0.75}
	b := Color{R: 0.7, G: 0.1, B: 0.25}
	want := Color{R: 0.2, G: 0.5, B: 0.5}

	got := a.Sub(b)
	if !colorsApproxEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestColorScale(t *testing.T) {
	c := Color{R: 0.2, G: 0.3, B: 0.4}
	want := Color{R: 0.4, G: 0.6, B: 0.8}

	got := c.Scale(2)
	if !colorsApproxEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestColorMul(t *testing.T) {
	a := Color{R: 1, G: 0.2, B: 0.4}
	b := Color{R: 0.9, G: 1, B: 0.1}
	want := Color{R: 0.9, G: 0.2, B: 0.04}

	got := a.Mul(b)
	if !colorsApproxEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestColorRGB8(t *testing.T) {
	tests := []struct {
		name                string
		color               Color
		wantR, wantG, wantB uint8
	}{
		{
			name:  "ClampHigh",
			color: Color{R: 1.5, G: 0, B: 0},
			wantR: 255, wantG: 0, wantB: 0,
		},
		{
			name:  "ClampLow",
			color: Color{R: -0.5, G: 0, B: 1},
			wantR: 0, wantG: 0, wantB: 255,
		},
		{
			name:  "TruncateMidpoint",
			color: Color{R: 0.5, G: 0.5, B: 0.5},
			wantR: 127, wantG: 127, wantB: 127,
		},
		{
			name:  "FullWhite",
			color: White,
			wantR: 255, wantG: 255, wantB: 255,
		},
		{
			name:  "FullBlack",
			color: Black,
			wantR: 0, wantG: 0, wantB: 0,
		},
		{
			name:  "Gold",
			color: Color{R: 1, G: 0.8, B: 0.6},
			wantR: 255, wantG: 204, wantB: 153,
		},
		{
			name:  "NaNToZero",
			color: Color{R: math.NaN(), G: 0.5, B: math.NaN()},
			wantR: 0, wantG: 127, wantB: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.color.RGB8()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB {
				t.Errorf("Expected (%d, %d, %d), got (%d, %d, %d)",
					tt.wantR, tt.wantG, tt.wantB, r, g, b)
			}
		})
	}
}
