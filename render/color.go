package render

import "image/color"

// RGB stores explicit 8-bit color channels, opacity is carried separately by Paint
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Scale multiplies each channel by f with clamping
func (dst RGB) Scale(f float64) RGB {
	if f <= 0 {
		return RGBBlack
	}
	return RGB{
		R: clamp(float64(dst.R) * f),
		G: clamp(float64(dst.G) * f),
		B: clamp(float64(dst.B) * f),
	}
}

// Paint is a color plus an independent opacity channel in [0,255]
type Paint struct {
	Color RGB
	Alpha float64
}

// Opaque returns a fully opaque paint
func Opaque(c RGB) Paint {
	return Paint{Color: c, Alpha: 255}
}

// WithAlpha returns a paint with the given opacity
func WithAlpha(c RGB, alpha float64) Paint {
	return Paint{Color: c, Alpha: alpha}
}

// Fade returns the paint with opacity multiplied by f
func (p Paint) Fade(f float64) Paint {
	p.Alpha *= f
	return p
}

// Visible reports whether drawing with this paint has any effect
func (p Paint) Visible() bool {
	return p.Alpha > 0
}

// NRGBA converts to a non-premultiplied color for image compositing
func (p Paint) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: clamp(p.Alpha + 0.5)}
}
