package engine

import (
	"time"

	"github.com/lixenwraith/lunar-clock/clock"
	"github.com/lixenwraith/lunar-clock/flip"
	"github.com/lixenwraith/lunar-clock/page"
	"github.com/lixenwraith/lunar-clock/render"
)

// DefaultFPS is the assumed host redraw cadence
const DefaultFPS = 60

// Canvas background: vertical red gradient fading to 70% toward the bottom
var backdropRed = render.RGB{R: 180, G: 0, B: 0}

// Config tunes the animation
type Config struct {
	FPS        int
	FlipFrames int
	AngleStep  float64
	Palette    page.Palette
	Page       page.Options
}

// DefaultConfig is the 60 Hz look with every decoration enabled
func DefaultConfig() Config {
	return Config{
		FPS:        DefaultFPS,
		FlipFrames: flip.DefaultDuration,
		AngleStep:  DefaultAngleStep,
		Palette:    page.DefaultPalette(),
		Page:       page.DefaultOptions(),
	}
}

// FrameInterval converts a frame rate to a ticker period
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// Engine binds a time source, the animation state and the page renderer
// Not safe for concurrent use: a single frame loop owns it
type Engine struct {
	cfg   Config
	tp    clock.TimeProvider
	state *State
	pages *page.Renderer

	last    Plan
	hasLast bool

	onFlip func(from, to int)
	onHour func(hour int)
}

// New creates an engine sampling tp once per frame
func New(cfg Config, tp clock.TimeProvider) *Engine {
	return &Engine{
		cfg:   cfg,
		tp:    tp,
		state: NewState(cfg.FlipFrames, cfg.AngleStep),
		pages: page.NewRenderer(cfg.Palette, cfg.Page),
	}
}

// OnFlip registers a callback fired on the frame a flip starts
func (e *Engine) OnFlip(fn func(from, to int)) {
	e.onFlip = fn
}

// OnHour registers a callback fired on the frame the hour changes
func (e *Engine) OnHour(fn func(hour int)) {
	e.onHour = fn
}

// State returns a copy of the current animation state
func (e *Engine) State() State {
	return *e.state
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Frame samples the clock once and draws a complete frame onto c
func (e *Engine) Frame(c render.Canvas) Plan {
	return e.Draw(c, clock.Sample(e.tp))
}

// Draw renders a frame for an explicit snapshot
func (e *Engine) Draw(c render.Canvas, snap clock.Snapshot) Plan {
	plan := Step(e.state, snap)
	e.last, e.hasLast = plan, true
	e.render(c, plan)

	if plan.FlipStarted && e.onFlip != nil {
		e.onFlip(plan.From, plan.To)
	}
	if plan.HourChanged && e.onHour != nil {
		e.onHour(snap.Hour24)
	}
	return plan
}

// Redraw renders the most recent frame again without advancing the animation
// Before the first frame it steps once from the time provider
func (e *Engine) Redraw(c render.Canvas) Plan {
	if !e.hasLast {
		return e.Frame(c)
	}
	e.render(c, e.last)
	return e.last
}

func (e *Engine) render(c render.Canvas, plan Plan) {
	DrawBackdrop(c)
	for _, in := range plan.Pages {
		e.pages.Render(c, in)
	}
}

// DrawBackdrop paints the canvas gradient behind the pages
func DrawBackdrop(c render.Canvas) {
	w, h := c.Size()
	rows := int(h)
	for i := 0; i < rows; i++ {
		f := render.MapRange(float64(i), 0, h, 1, 0.7)
		c.FillRect(render.Rect{X: 0, Y: float64(i), W: w, H: 1}, render.Radii{}, render.Opaque(backdropRed.Scale(f)))
	}
}
