// Package page draws one calendar page: paper, header, hour glyph, minute numerals,
// seconds grid and footer, all sharing a single page opacity.
package page

import (
	"github.com/lixenwraith/lunar-clock/clock"
	"github.com/lixenwraith/lunar-clock/flip"
	"github.com/lixenwraith/lunar-clock/render"
)

// Input is everything one page needs for a frame
// Outgoing pages show the previous minute but the current header, hour and seconds
type Input struct {
	Minute        int
	Snapshot      clock.Snapshot
	Progress      float64 // flip progress in [0,1]
	Outgoing      bool
	Transitioning bool
	Angle         float64 // decorative spiral phase
}

// Alpha returns the page opacity, full when no flip is running
func (in Input) Alpha() float64 {
	if !in.Transitioning {
		return flip.FullAlpha
	}
	return flip.Alpha(in.Progress, in.Outgoing)
}

// Scale returns the page scale about the canvas center
func (in Input) Scale() float64 {
	if !in.Transitioning {
		return 1
	}
	return flip.Scale(in.Progress, in.Outgoing)
}

// Context is the per-page state shared by every layer
type Context struct {
	Input Input
	Style Style
}

// Options toggles optional page decoration
type Options struct {
	Ornament bool
}

// DefaultOptions enables everything
func DefaultOptions() Options {
	return Options{Ornament: true}
}

// Renderer composes the page layers in draw order
type Renderer struct {
	palette  Palette
	pipeline *render.Orchestrator[*Context]
}

// NewRenderer builds the layer pipeline
func NewRenderer(p Palette, opts Options) *Renderer {
	pipeline := render.NewOrchestrator[*Context]()
	pipeline.Register(render.LayerFunc[*Context](drawPaper), render.PriorityPaper)
	pipeline.Register(ornamentLayer{enabled: opts.Ornament}, render.PriorityOrnament)
	pipeline.Register(contentLayer(drawHeader), render.PriorityHeader)
	pipeline.Register(contentLayer(drawContent), render.PriorityContent)
	pipeline.Register(contentLayer(drawGrid), render.PriorityGrid)
	pipeline.Register(contentLayer(drawFooter), render.PriorityFooter)

	return &Renderer{
		palette:  p,
		pipeline: pipeline,
	}
}

// Render draws one complete page scaled about the canvas center
func (r *Renderer) Render(c render.Canvas, in Input) {
	ctx := &Context{
		Input: in,
		Style: Style{Palette: r.palette, Alpha: in.Alpha()},
	}

	w, h := c.Size()
	c.Push()
	c.Translate(w/2, h/2)
	c.Scale(in.Scale())
	c.Translate(-w/2, -h/2)
	r.pipeline.Render(c, ctx)
	c.Pop()
}
