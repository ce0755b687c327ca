// Package spiral generates the decorative snake spirals drawn on every page.
// All generators are pure functions of the decorative angle.
package spiral

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/lunar-clock/render"
)

// Accent spiral: Archimedean, 2.5 turns, linear radius growth
const (
	AccentSegments    = 80
	AccentMaxT        = 2 * math.Pi * 2.5
	AccentBaseRadius  = 3.0
	AccentRadiusGrow  = 6.0
	AccentStrokeWidth = 3.0
	AccentBodyFade    = 0.2
	AccentDetailFade  = 0.4
)

var (
	accentTail = render.RGB{R: 30, G: 120, B: 90}
	accentHead = render.RGB{R: 60, G: 160, B: 120}
	tongue     = render.RGB{R: 200, G: 60, B: 60}
)

// AccentShape is the sampled accent spiral relative to its center
type AccentShape struct {
	Body   []render.Point // AccentSegments+1 points from tail to head
	Colors []render.RGB   // stroke color per body point
	Head   render.Point
}

// Accent samples the small snake spiral at the given phase angle
func Accent(angle float64) AccentShape {
	shape := AccentShape{
		Body:   make([]render.Point, AccentSegments+1),
		Colors: make([]render.RGB, AccentSegments+1),
	}
	from := toColorful(accentTail)
	to := toColorful(accentHead)

	for i := 0; i <= AccentSegments; i++ {
		f := float64(i) / AccentSegments
		shape.Body[i] = accentPoint(f*AccentMaxT, angle)
		shape.Colors[i] = fromColorful(from.BlendRgb(to, f))
	}
	shape.Head = accentPoint(AccentMaxT, angle)
	return shape
}

func accentPoint(t, angle float64) render.Point {
	r := AccentBaseRadius + t*AccentRadiusGrow
	return render.Point{X: math.Cos(t+angle) * r, Y: math.Sin(t+angle) * r}
}

// ColorBand is a run of consecutive body points sharing one stroke color
type ColorBand struct {
	Color  render.RGB
	Points []render.Point
}

// Bands groups the body into runs of equal color; adjacent bands share their boundary point
func (s AccentShape) Bands() []ColorBand {
	if len(s.Body) == 0 {
		return nil
	}
	bands := make([]ColorBand, 0, 16)
	start := 0
	for i := 1; i <= len(s.Body); i++ {
		if i < len(s.Body) && s.Colors[i] == s.Colors[start] {
			continue
		}
		end := min(i+1, len(s.Body))
		// A trailing single point is already the boundary of the previous band
		if end-start > 1 || len(bands) == 0 {
			bands = append(bands, ColorBand{Color: s.Colors[start], Points: s.Body[start:end]})
		}
		start = i
	}
	return bands
}

// DrawAccent draws the small snake centered on (cx, cy) with page opacity alpha
func DrawAccent(c render.Canvas, cx, cy, angle, alpha float64) {
	shape := Accent(angle)

	c.Push()
	c.Translate(cx, cy)

	for _, band := range shape.Bands() {
		c.Polyline(band.Points, render.Stroke{
			Paint: render.WithAlpha(band.Color, alpha*AccentBodyFade),
			Width: AccentStrokeWidth,
		})
	}

	hx, hy := shape.Head.X, shape.Head.Y
	c.FillEllipse(hx, hy, 5, 3.5, render.WithAlpha(accentHead, alpha*AccentBodyFade))

	eye := render.WithAlpha(render.RGBBlack, alpha*AccentDetailFade)
	c.FillEllipse(hx-2.2, hy-1.5, 0.75, 0.75, eye)
	c.FillEllipse(hx+2.2, hy-1.5, 0.75, 0.75, eye)

	// Forked tongue: stem then a Y split
	ts := render.Stroke{Paint: render.WithAlpha(tongue, alpha*AccentDetailFade), Width: 2}
	tx, ty := hx+6, hy
	c.Line(hx+5, hy, tx, ty, ts)
	c.Line(tx, ty, tx+2.5, ty-1.5, ts)
	c.Line(tx, ty, tx+2.5, ty+1.5, ts)

	c.Pop()
}

func toColorful(c render.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) render.RGB {
	r, g, b := c.Clamped().RGB255()
	return render.RGB{R: r, G: g, B: b}
}
