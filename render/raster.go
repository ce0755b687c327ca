package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Raster is a Canvas backed by an RGBA image
// Shapes are anti-aliased with x/image/vector, text uses the bundled Go fonts
type Raster struct {
	img   *image.RGBA
	scale float64 // device pixels per logical unit
	xf    transformStack
	rz    *vector.Rasterizer
	fonts *FontCache
}

// NewRaster creates a raster for the logical canvas at pixelScale device pixels per unit
func NewRaster(pixelScale float64, fonts *FontCache) *Raster {
	if pixelScale <= 0 {
		pixelScale = 1
	}
	w := int(math.Round(CanvasWidth * pixelScale))
	h := int(math.Round(CanvasHeight * pixelScale))
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		scale: pixelScale,
		xf:    newTransformStack(transform{scale: pixelScale}),
		rz:    vector.NewRasterizer(w, h),
		fonts: fonts,
	}
}

// Image exposes the backing image, valid until the next draw call
func (c *Raster) Image() *image.RGBA {
	return c.img
}

// Reset clears to c and drops any transform left from an unbalanced frame
func (c *Raster) Reset(bg RGB) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255}), image.Point{}, draw.Src)
	c.xf = newTransformStack(transform{scale: c.scale})
}

func (c *Raster) Size() (float64, float64) {
	return CanvasWidth, CanvasHeight
}

func (c *Raster) Push() { c.xf.push() }

func (c *Raster) Pop() { c.xf.pop() }

func (c *Raster) Translate(dx, dy float64) { c.xf.cur = c.xf.cur.translate(dx, dy) }

func (c *Raster) Scale(s float64) { c.xf.cur = c.xf.cur.scaled(s) }

func (c *Raster) FillRect(r Rect, radii Radii, p Paint) {
	if !p.Visible() {
		return
	}
	dr := c.deviceRect(r)
	if radii.IsZero() {
		c.fillAligned(dr, p)
		return
	}
	c.fill([][]Point{roundedRectPolygon(dr, c.deviceRadii(radii))}, p)
}

func (c *Raster) StrokeRect(r Rect, radii Radii, s Stroke) {
	if !s.Paint.Visible() || s.Width <= 0 {
		return
	}
	c.fill(strokeRectPolygons(c.deviceRect(r), c.deviceRadii(radii), s.Width*c.xf.cur.scale), s.Paint)
}

func (c *Raster) FillEllipse(cx, cy, rx, ry float64, p Paint) {
	if !p.Visible() {
		return
	}
	center := c.xf.cur.apply(cx, cy)
	k := c.xf.cur.scale
	c.fill([][]Point{ellipsePolygon(center.X, center.Y, rx*k, ry*k)}, p)
}

func (c *Raster) Line(x0, y0, x1, y1 float64, s Stroke) {
	c.Polyline([]Point{{x0, y0}, {x1, y1}}, s)
}

func (c *Raster) Polyline(pts []Point, s Stroke) {
	if !s.Paint.Visible() || s.Width <= 0 || len(pts) == 0 {
		return
	}
	dev := make([]Point, len(pts))
	for i, p := range pts {
		dev[i] = c.xf.cur.apply(p.X, p.Y)
	}
	c.fill(strokePolyline(dev, s.Width*c.xf.cur.scale), s.Paint)
}

func (c *Raster) Text(text string, x, y float64, style TextStyle, p Paint) {
	if !p.Visible() || text == "" || c.fonts == nil {
		return
	}
	if style.Fallback != "" && !c.fonts.HasGlyphs(style.Family, style.Weight, text) {
		text = style.Fallback
	}
	face, err := c.fonts.Face(style.Family, style.Weight, style.Size*c.xf.cur.scale)
	if err != nil {
		return
	}

	at := c.xf.cur.apply(x, y)
	metrics := face.Metrics()
	width := font.MeasureString(face, text)
	baseline := at.Y + float64(metrics.Ascent-metrics.Descent)/128

	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(p.NRGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(at.X*64)) - width/2,
			Y: fixed.Int26_6(math.Round(baseline * 64)),
		},
	}
	d.DrawString(text)
}

// deviceRect maps a logical rect through the current transform
func (c *Raster) deviceRect(r Rect) Rect {
	o := c.xf.cur.apply(r.X, r.Y)
	k := c.xf.cur.scale
	return Rect{X: o.X, Y: o.Y, W: r.W * k, H: r.H * k}
}

func (c *Raster) deviceRadii(radii Radii) Radii {
	for i := range radii {
		radii[i] *= c.xf.cur.scale
	}
	return radii
}

// fillAligned composites an axis-aligned rectangle without the rasterizer
func (c *Raster) fillAligned(r Rect, p Paint) {
	ir := image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)), int(math.Round(r.Y+r.H)),
	).Intersect(c.img.Bounds())
	if ir.Empty() {
		return
	}
	op := draw.Over
	if p.Alpha >= 255 {
		op = draw.Src
	}
	draw.Draw(c.img, ir, image.NewUniform(p.NRGBA()), image.Point{}, op)
}

// fill rasterizes the union of device-space polygons restricted to their bounding box
func (c *Raster) fill(polys [][]Point, p Paint) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, pt := range poly {
			minX, minY = math.Min(minX, pt.X), math.Min(minY, pt.Y)
			maxX, maxY = math.Max(maxX, pt.X), math.Max(maxY, pt.Y)
		}
	}
	if minX > maxX {
		return
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	if bounds.Empty() {
		return
	}

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	c.rz.Reset(bounds.Dx(), bounds.Dy())
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.rz.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, pt := range poly[1:] {
			c.rz.LineTo(float32(pt.X-ox), float32(pt.Y-oy))
		}
		c.rz.ClosePath()
	}
	c.rz.Draw(c.img, bounds, image.NewUniform(p.NRGBA()), image.Point{})
}
