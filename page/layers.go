package page

import (
	"fmt"

	"github.com/lixenwraith/lunar-clock/render"
	"github.com/lixenwraith/lunar-clock/spiral"
)

// Paper sheet and content margins on the 400x600 canvas
const (
	PaperX       = 30.0
	PaperY       = 27.0
	PaperW       = render.CanvasWidth - 60.0
	PaperH       = render.CanvasHeight - 60.0
	PaperRadius  = 8.0
	ContentX     = 30.0
	ContentY     = 30.0
	ContentWidth = render.CanvasWidth - 60.0
	ContentMidX  = ContentWidth / 2
)

const (
	headerHeight  = 25.0
	headerText    = 11.0
	hourText      = 20.0
	minuteText    = 180.0
	footerText    = 12.0
	cornerText    = 8.0
	dotCount      = 5
	dotSpacing    = (render.CanvasWidth - 120.0) / 4
	footerLine    = "🍀 Happiness   🧧 Good Fortune   🌸 Prosperity"
	footerPlain   = "Happiness   Good Fortune   Prosperity"
	footerY       = render.CanvasHeight - 80.0
	cornerY       = render.CanvasHeight - 50.0
	accentCenterY = 170.0
)

// HeaderText formats the calendar header line
func HeaderText(year, month int, weekday string) string {
	return fmt.Sprintf("Year %d - Month %d - %s", year, month, weekday)
}

// MinuteText zero-pads a minute to two digits
func MinuteText(minute int) string {
	return fmt.Sprintf("%02d", minute)
}

func drawPaper(c render.Canvas, ctx *Context) {
	st := ctx.Style
	sheet := render.Rect{X: PaperX, Y: PaperY, W: PaperW, H: PaperH}
	c.FillRect(sheet, render.Uniform(PaperRadius), st.Paint(st.Palette.Paper))
	c.StrokeRect(sheet, render.Uniform(PaperRadius), st.Stroke(st.Palette.Accent, 3))
}

// ornamentLayer draws the large background snake, skippable on slow hosts
type ornamentLayer struct {
	enabled bool
}

func (l ornamentLayer) IsVisible() bool {
	return l.enabled
}

func (l ornamentLayer) Render(c render.Canvas, ctx *Context) {
	spiral.DrawOrnament(c, render.CanvasWidth/2, render.CanvasHeight/2, ctx.Input.Angle, ctx.Style.Alpha)
}

func drawHeader(c render.Canvas, ctx *Context) {
	st := ctx.Style
	p := st.Palette
	snap := ctx.Input.Snapshot

	c.FillRect(render.Rect{W: ContentWidth, H: headerHeight}, render.Radii{PaperRadius, PaperRadius, 0, 0}, st.Paint(p.Primary))

	// Binding holes
	render.FillCircle(c, 40, 12, 6, st.Paint(p.Accent))
	render.FillCircle(c, render.CanvasWidth-100, 12, 6, st.Paint(p.Accent))

	c.Text(HeaderText(snap.Year, snap.Month, snap.Weekday), ContentMidX, 12,
		render.TextStyle{Size: headerText, Family: render.FontSans}, st.Paint(p.Light))

	c.Line(20, 70, render.CanvasWidth-80, 70, st.Stroke(p.Accent, 2))

	drawDots(c, st)
}

// drawDots places two evenly spaced bands of small dots framing the minute area
func drawDots(c render.Canvas, st Style) {
	dot := st.Faded(st.Palette.Accent, 0.6)
	for i := 0; i < dotCount; i++ {
		x := 30 + float64(i)*dotSpacing
		render.FillCircle(c, x, 75, 3, dot)
		render.FillCircle(c, x, 265, 3, dot)
	}
}

func drawContent(c render.Canvas, ctx *Context) {
	st := ctx.Style
	p := st.Palette
	in := ctx.Input

	sym := HourSymbol(in.Snapshot.Hour12)
	c.Text(sym.Glyph, ContentMidX, 50,
		render.TextStyle{Size: hourText, Family: render.FontSans, Fallback: sym.Name}, st.Paint(p.Ink))

	spiral.DrawAccent(c, ContentMidX, accentCenterY, in.Angle, st.Alpha)
	c.Text(MinuteText(in.Minute), ContentMidX, 180,
		render.TextStyle{Size: minuteText, Family: render.FontDisplay, Weight: render.WeightBold}, st.Paint(p.Primary))

	c.Line(20, 270, render.CanvasWidth-80, 270, st.Stroke(p.Rule, 2))
}

func drawGrid(c render.Canvas, ctx *Context) {
	drawSecondsGrid(c, ctx.Input.Snapshot.Second, ctx.Style)
}

func drawFooter(c render.Canvas, ctx *Context) {
	st := ctx.Style
	p := st.Palette

	c.Text(footerLine, ContentMidX, footerY,
		render.TextStyle{Size: footerText, Family: render.FontSans, Fallback: footerPlain}, st.Paint(p.Ink))

	corner := render.TextStyle{Size: cornerText, Family: render.FontSans}
	c.Text("GOOD", 15, cornerY, corner, st.Faded(p.Accent, 0.7))
	c.Text("LUCK", render.CanvasWidth-75, cornerY, corner, st.Faded(p.Accent, 0.7))
}

// inset runs a layer translated into the paper's content margins
type inset struct {
	layer  render.Layer[*Context]
	dx, dy float64
}

func (l inset) Render(c render.Canvas, ctx *Context) {
	c.Push()
	c.Translate(l.dx, l.dy)
	l.layer.Render(c, ctx)
	c.Pop()
}

func contentLayer(f func(render.Canvas, *Context)) render.Layer[*Context] {
	return inset{layer: render.LayerFunc[*Context](f), dx: ContentX, dy: ContentY}
}
