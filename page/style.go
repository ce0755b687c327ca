package page

import "github.com/lixenwraith/lunar-clock/render"

// Palette holds the fixed page colors
type Palette struct {
	Primary render.RGB // header bar, minute numerals, elapsed cells
	Accent  render.RGB // gold: binding holes, rules, current cell, border
	Ink     render.RGB // hour glyph, grid borders, labels, footer
	Paper   render.RGB
	Rule    render.RGB // separator under the minute numerals
	Light   render.RGB // text on filled surfaces
}

// DefaultPalette is the red-and-gold lunar calendar look
func DefaultPalette() Palette {
	return Palette{
		Primary: render.RGB{R: 180, G: 20, B: 20},
		Accent:  render.RGB{R: 200, G: 160, B: 0},
		Ink:     render.RGB{R: 100, G: 50, B: 0},
		Paper:   render.RGB{R: 250, G: 245, B: 235},
		Rule:    render.RGB{R: 180, G: 120, B: 0},
		Light:   render.RGB{R: 255, G: 255, B: 255},
	}
}

// Style is the paint style threaded through one page: palette plus the page-wide opacity
type Style struct {
	Palette Palette
	Alpha   float64
}

// Paint returns c at page opacity
func (s Style) Paint(c render.RGB) render.Paint {
	return render.WithAlpha(c, s.Alpha)
}

// Faded returns c at page opacity times f
func (s Style) Faded(c render.RGB, f float64) render.Paint {
	return s.Paint(c).Fade(f)
}

// Stroke returns an outline of width w at page opacity
func (s Style) Stroke(c render.RGB, w float64) render.Stroke {
	return render.Stroke{Paint: s.Paint(c), Width: w}
}
