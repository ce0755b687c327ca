package render

import "math"

// Polygon outlines are emitted in device space with a consistent winding so that
// overlapping pieces of one stroke union instead of cancelling in the rasterizer.
// Holes (inner outline of a stroked rect) use the opposite winding.

// signedArea returns twice the signed polygon area, positive for clockwise in screen space
func signedArea(pts []Point) float64 {
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return a
}

// orient returns pts wound clockwise when cw is true, counter-clockwise otherwise
func orient(pts []Point, cw bool) []Point {
	if (signedArea(pts) >= 0) == cw {
		return pts
	}
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}

// arcSegments picks a segment count proportional to the arc length in device pixels
func arcSegments(radius, sweep float64) int {
	n := int(math.Ceil(radius * sweep / 2))
	if n < 4 {
		n = 4
	}
	if n > 128 {
		n = 128
	}
	return n
}

// ellipsePolygon approximates an ellipse in device space
func ellipsePolygon(cx, cy, rx, ry float64) []Point {
	n := arcSegments(max(rx, ry), 2*math.Pi)
	if n < 12 {
		n = 12
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + math.Cos(a)*rx, Y: cy + math.Sin(a)*ry}
	}
	return pts
}

// roundedRectPolygon traces a rectangle with per-corner radii, clockwise from the top-left arc
func roundedRectPolygon(r Rect, radii Radii) []Point {
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	limit := math.Min(r.W, r.H) / 2
	for i := range radii {
		radii[i] = math.Max(0, math.Min(radii[i], limit))
	}
	if radii.IsZero() {
		return []Point{
			{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H},
		}
	}

	// Corner centers and the angle each quarter arc starts at
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + radii[0], r.Y + radii[0], math.Pi},
		{r.X + r.W - radii[1], r.Y + radii[1], 1.5 * math.Pi},
		{r.X + r.W - radii[2], r.Y + r.H - radii[2], 0},
		{r.X + radii[3], r.Y + r.H - radii[3], 0.5 * math.Pi},
	}

	pts := make([]Point, 0, 64)
	for i, c := range corners {
		rad := radii[i]
		if rad == 0 {
			pts = append(pts, Point{c.cx, c.cy})
			continue
		}
		n := arcSegments(rad, math.Pi/2)
		for k := 0; k <= n; k++ {
			a := c.start + (math.Pi/2)*float64(k)/float64(n)
			pts = append(pts, Point{c.cx + math.Cos(a)*rad, c.cy + math.Sin(a)*rad})
		}
	}
	return pts
}

// segmentQuad returns the rectangle covering a line segment of the given width
func segmentQuad(a, b Point, width float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	hw := width / 2
	nx, ny := -dy/l*hw, dx/l*hw
	return []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// strokePolyline builds the outline pieces of an open polyline with round joins and caps
func strokePolyline(pts []Point, width float64) [][]Point {
	if len(pts) == 0 || width <= 0 {
		return nil
	}
	hw := width / 2
	polys := make([][]Point, 0, 2*len(pts))
	for i := 0; i < len(pts); i++ {
		// Disc at every vertex doubles as join and cap; skipped for hairlines
		if hw >= 1 {
			polys = append(polys, orient(ellipsePolygon(pts[i].X, pts[i].Y, hw, hw), true))
		}
		if i+1 < len(pts) {
			if q := segmentQuad(pts[i], pts[i+1], width); q != nil {
				polys = append(polys, orient(q, true))
			}
		}
	}
	return polys
}

// strokeRectPolygons builds a ring between outer and inner rounded outlines
func strokeRectPolygons(r Rect, radii Radii, width float64) [][]Point {
	hw := width / 2
	outerRadii, innerRadii := radii, radii
	for i := range radii {
		if radii[i] > 0 {
			outerRadii[i] = radii[i] + hw
		}
		innerRadii[i] = math.Max(0, radii[i]-hw)
	}
	outer := roundedRectPolygon(Rect{r.X - hw, r.Y - hw, r.W + width, r.H + width}, outerRadii)
	if outer == nil {
		return nil
	}
	polys := [][]Point{orient(outer, true)}
	if inner := roundedRectPolygon(Rect{r.X + hw, r.Y + hw, r.W - width, r.H - width}, innerRadii); inner != nil {
		polys = append(polys, orient(inner, false))
	}
	return polys
}
