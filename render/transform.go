package render

// transform is a uniform scale followed by a translation
// Maps logical point p to (p.X*scale + tx, p.Y*scale + ty)
type transform struct {
	scale  float64
	tx, ty float64
}

func identity() transform {
	return transform{scale: 1}
}

// apply maps a logical point into device space
func (t transform) apply(x, y float64) Point {
	return Point{X: x*t.scale + t.tx, Y: y*t.scale + t.ty}
}

// translate composes a translation expressed in current logical units
func (t transform) translate(dx, dy float64) transform {
	t.tx += dx * t.scale
	t.ty += dy * t.scale
	return t
}

// scaled composes a uniform scale about the current origin
func (t transform) scaled(s float64) transform {
	t.scale *= s
	return t
}

// transformStack is the saved/restored transform state shared by canvas implementations
type transformStack struct {
	cur   transform
	saved []transform
}

func newTransformStack(base transform) transformStack {
	return transformStack{cur: base, saved: make([]transform, 0, 8)}
}

func (s *transformStack) push() {
	s.saved = append(s.saved, s.cur)
}

// pop restores the last pushed transform, unbalanced pops are ignored
func (s *transformStack) pop() {
	n := len(s.saved)
	if n == 0 {
		return
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

func (s *transformStack) depth() int {
	return len(s.saved)
}
