package graphics

import (
	"image/color"
	"math"
	"testing"
)

func TestOffset(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: 1, Y: 1}

	if got := a.Add(b); got != (Offset{X: 4, Y: 5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 2, Y: 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Distance(); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := (Offset{}).Distance(); got != 0 {
		t.Errorf("zero Distance = %v", got)
	}
}

func TestColorWithAlpha(t *testing.T) {
	tests := []struct {
		alpha float64
		want  Color
	}{
		{1, 0xFF102030},
		{0, 0x00102030},
		{0.5, 0x80102030},
		{-1, 0x00102030},
		{2, 0xFF102030},
	}
	c := RGB(0x10, 0x20, 0x30)
	for _, tt := range tests {
		got := c.WithAlpha(tt.alpha)
		if got != tt.want {
			t.Errorf("WithAlpha(%v) = %#08x, want %#08x", tt.alpha, uint32(got), uint32(tt.want))
		}
		if math.Abs(got.Alpha()-math.Max(0, math.Min(1, tt.alpha))) > 1.0/255 {
			t.Errorf("Alpha() = %v after WithAlpha(%v)", got.Alpha(), tt.alpha)
		}
	}
}

func TestColorLerp(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(0xFF, 0xFF, 0xFF)
	tests := []struct {
		t    float64
		want Color
	}{
		{0, black},
		{1, white},
		{0.5, RGB(0x80, 0x80, 0x80)},
		{-0.5, black},
		{1.5, white},
	}
	for _, tt := range tests {
		if got := black.Lerp(white, tt.t); got != tt.want {
			t.Errorf("Lerp(%v) = %#08x, want %#08x", tt.t, uint32(got), uint32(tt.want))
		}
	}
}

func TestColorRGBA(t *testing.T) {
	c := RGB(0xFF, 0, 0).WithAlpha(0.5)
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	if got.R != 0xFF || got.G != 0 || got.A != 0x80 {
		t.Errorf("NRGBA = %+v, want red at half alpha", got)
	}
}
