package graphics

import (
	"image/color"
	"math"
)

// Color is stored as ARGB (0xAARRGGBB), straight alpha.
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return Color(0xFF<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha component from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / 255
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(math.Round(clamp01(a)*255))<<24 | uint32(c)&0x00FFFFFF)
}

// RGBA implements color.Color with premultiplied 16-bit components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}.RGBA()
}

// Lerp blends from c to other by t in [0, 1], per channel.
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		a := float64(uint8(c >> shift))
		b := float64(uint8(other >> shift))
		out |= uint32(math.Round(a+(b-a)*t)) << shift
	}
	return Color(out)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
