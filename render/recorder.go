package render

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpFillRect OpKind = iota
	OpStrokeRect
	OpFillEllipse
	OpLine
	OpPolyline
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpFillEllipse:
		return "fill-ellipse"
	case OpLine:
		return "line"
	case OpPolyline:
		return "polyline"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded draw call in logical coordinates plus the transform active at the time
type Op struct {
	Kind   OpKind
	Rect   Rect
	Radii  Radii
	Points []Point // polyline vertices, line endpoints, or ellipse center + radii
	Text   string
	Style  TextStyle
	Paint  Paint // fill or text paint; stroke paint for outline ops
	Width  float64
	Scale  float64 // accumulated uniform scale
	Origin Point   // accumulated translation in device units
	Depth  int     // transform stack depth
}

// Recorder is a Canvas that stores draw calls instead of producing pixels
// Used to assert composition without a display
type Recorder struct {
	Ops []Op
	xf  transformStack
}

// NewRecorder creates an empty recorder with identity transform
func NewRecorder() *Recorder {
	return &Recorder{xf: newTransformStack(identity())}
}

// Reset discards recorded ops and restores the identity transform
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.xf = newTransformStack(identity())
}

// Depth returns the current push depth, zero when every Push was matched
func (r *Recorder) Depth() int {
	return r.xf.depth()
}

// Filter returns recorded ops of the given kind in call order
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every recorded text string in call order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) Size() (float64, float64) {
	return CanvasWidth, CanvasHeight
}

func (r *Recorder) Push() { r.xf.push() }

func (r *Recorder) Pop() { r.xf.pop() }

func (r *Recorder) Translate(dx, dy float64) { r.xf.cur = r.xf.cur.translate(dx, dy) }

func (r *Recorder) Scale(s float64) { r.xf.cur = r.xf.cur.scaled(s) }

func (r *Recorder) FillRect(rect Rect, radii Radii, p Paint) {
	r.record(Op{Kind: OpFillRect, Rect: rect, Radii: radii, Paint: p})
}

func (r *Recorder) StrokeRect(rect Rect, radii Radii, s Stroke) {
	r.record(Op{Kind: OpStrokeRect, Rect: rect, Radii: radii, Paint: s.Paint, Width: s.Width})
}

func (r *Recorder) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	r.record(Op{Kind: OpFillEllipse, Points: []Point{{cx, cy}, {rx, ry}}, Paint: p})
}

func (r *Recorder) Line(x0, y0, x1, y1 float64, s Stroke) {
	r.record(Op{Kind: OpLine, Points: []Point{{x0, y0}, {x1, y1}}, Paint: s.Paint, Width: s.Width})
}

func (r *Recorder) Polyline(pts []Point, s Stroke) {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	r.record(Op{Kind: OpPolyline, Points: cp, Paint: s.Paint, Width: s.Width})
}

func (r *Recorder) Text(text string, x, y float64, style TextStyle, p Paint) {
	r.record(Op{Kind: OpText, Text: text, Points: []Point{{x, y}}, Style: style, Paint: p})
}

func (r *Recorder) record(op Op) {
	op.Scale = r.xf.cur.scale
	op.Origin = Point{X: r.xf.cur.tx, Y: r.xf.cur.ty}
	op.Depth = r.xf.depth()
	r.Ops = append(r.Ops, op)
}
