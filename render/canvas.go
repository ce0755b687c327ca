package render

// Logical canvas dimensions, all page layout constants are relative to this
const (
	CanvasWidth  = 400
	CanvasHeight = 600
)

// Point is a position in logical canvas units
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with origin at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Radii holds per-corner radii: top-left, top-right, bottom-right, bottom-left
type Radii [4]float64

// Uniform returns equal radii for all four corners
func Uniform(r float64) Radii {
	return Radii{r, r, r, r}
}

// IsZero reports whether all corners are square
func (r Radii) IsZero() bool {
	return r[0] == 0 && r[1] == 0 && r[2] == 0 && r[3] == 0
}

// Stroke describes an outline: paint plus line width
type Stroke struct {
	Paint Paint
	Width float64
}

// FontFamily selects a bundled typeface
type FontFamily uint8

const (
	FontSans FontFamily = iota
	FontDisplay
	FontMono
)

// FontWeight selects normal or bold
type FontWeight uint8

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// TextStyle controls centered text output
// Fallback is drawn instead of the text when the selected face lacks any of its glyphs
type TextStyle struct {
	Size     float64
	Family   FontFamily
	Weight   FontWeight
	Fallback string
}

// Canvas is the immediate-mode 2D surface the clock draws on
// Text is centered horizontally and vertically on (x, y)
// Transforms apply to every subsequent call until the matching Pop
type Canvas interface {
	Size() (width, height float64)

	Push()
	Pop()
	Translate(dx, dy float64)
	Scale(s float64)

	FillRect(r Rect, radii Radii, p Paint)
	StrokeRect(r Rect, radii Radii, s Stroke)
	FillEllipse(cx, cy, rx, ry float64, p Paint)
	Line(x0, y0, x1, y1 float64, s Stroke)
	Polyline(pts []Point, s Stroke)
	Text(text string, x, y float64, style TextStyle, p Paint)
}

// FillCircle fills a circle given its diameter
func FillCircle(c Canvas, cx, cy, diameter float64, p Paint) {
	c.FillEllipse(cx, cy, diameter/2, diameter/2, p)
}
