package render

import (
	"image/color"
	"math"
	"testing"
)

func TestRGBScale(t *testing.T) {
	if got := (RGB{180, 0, 0}).Scale(0.5); got != (RGB{90, 0, 0}) {
		t.Errorf("Scale(0.5) = %+v", got)
	}
	if got := (RGB{200, 200, 200}).Scale(2); got != RGBWhite {
		t.Errorf("Scale should clamp, got %+v", got)
	}
	if got := RGBWhite.Scale(-1); got != RGBBlack {
		t.Errorf("Negative scale should give black, got %+v", got)
	}
}

func TestPaint(t *testing.T) {
	p := Opaque(RGB{10, 20, 30}).Fade(0.5)
	if p.Alpha != 127.5 {
		t.Errorf("Fade alpha %v", p.Alpha)
	}
	if got := p.NRGBA(); got != (color.NRGBA{10, 20, 30, 128}) {
		t.Errorf("NRGBA = %v", got)
	}
	if WithAlpha(RGBBlack, 0).Visible() {
		t.Error("Zero alpha should be invisible")
	}
	if got := WithAlpha(RGBBlack, 400).NRGBA().A; got != 255 {
		t.Errorf("Alpha should clamp to 255, got %d", got)
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		v, inMin, inMax, outMin, outMax, want float64
	}{
		{0, 0, 600, 1, 0.7, 1},
		{600, 0, 600, 1, 0.7, 0.7},
		{300, 0, 600, 1, 0.7, 0.85},
		{5, 5, 5, 2, 3, 2},
		{-10, 0, 10, 0, 1, -1},
	}
	for _, tt := range tests {
		if got := MapRange(tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("MapRange(%v, %v, %v, %v, %v) = %v, want %v", tt.v, tt.inMin, tt.inMax, tt.outMin, tt.outMax, got, tt.want)
		}
	}
}
