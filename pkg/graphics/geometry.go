// Package graphics provides the pointer-space geometry shared by gestures
// and the side navigation layout.
package graphics

import "math"

// Offset represents a 2D point or vector in logical pixels.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of o and other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the vector from other to o.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Distance returns the length of the offset treated as a vector.
func (o Offset) Distance() float64 {
	return math.Hypot(o.X, o.Y)
}
