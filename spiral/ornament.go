package spiral

import (
	"math"

	"github.com/lixenwraith/lunar-clock/render"
)

// Background ornament: two superposed open spirals, purely ambient texture
const (
	PrimaryMaxT    = 2 * math.Pi * 4
	PrimaryStep    = 0.05
	PrimaryBase    = 10.0
	PrimaryGrow    = 15.0
	PrimaryPhase   = 0.5
	PrimaryWidth   = 20.0
	PrimaryFade    = 0.1
	SecondaryMaxT  = 2 * math.Pi * 3.5
	SecondaryStep  = 0.07
	SecondaryBase  = 8.0
	SecondaryGrow  = 12.0
	SecondaryPhase = 0.3
	SecondaryWidth = 15.0
	SecondaryFade  = 0.08
)

var (
	ornamentGold = render.RGB{R: 200, G: 160, B: 0}
	ornamentRed  = render.RGB{R: 180, G: 20, B: 20}
)

// Ornament samples both background spirals relative to their shared center
// The secondary spiral counter-rotates through its negated parameter
func Ornament(angle float64) (primary, secondary []render.Point) {
	primary = make([]render.Point, 0, int(math.Ceil(PrimaryMaxT/PrimaryStep))+1)
	for i := 0; ; i++ {
		t := float64(i) * PrimaryStep
		if t >= PrimaryMaxT {
			break
		}
		r := PrimaryBase + t*PrimaryGrow
		a := t + angle*PrimaryPhase
		primary = append(primary, render.Point{X: math.Cos(a) * r, Y: math.Sin(a) * r})
	}

	secondary = make([]render.Point, 0, int(math.Ceil(SecondaryMaxT/SecondaryStep))+1)
	for i := 0; ; i++ {
		t := float64(i) * SecondaryStep
		if t >= SecondaryMaxT {
			break
		}
		r := SecondaryBase + t*SecondaryGrow
		a := -t + angle*SecondaryPhase
		secondary = append(secondary, render.Point{X: math.Cos(a) * r, Y: math.Sin(a) * r})
	}
	return primary, secondary
}

// DrawOrnament draws the large translucent snake centered on (cx, cy)
func DrawOrnament(c render.Canvas, cx, cy, angle, alpha float64) {
	primary, secondary := Ornament(angle)

	c.Push()
	c.Translate(cx, cy)
	c.Polyline(primary, render.Stroke{
		Paint: render.WithAlpha(ornamentGold, alpha*PrimaryFade),
		Width: PrimaryWidth,
	})
	c.Polyline(secondary, render.Stroke{
		Paint: render.WithAlpha(ornamentRed, alpha*SecondaryFade),
		Width: SecondaryWidth,
	})
	c.Pop()
}
