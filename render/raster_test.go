package render

import (
	"image/color"
	"testing"
)

var white = RGB{255, 255, 255}

func newWhiteRaster(t *testing.T, scale float64) *Raster {
	t.Helper()
	r := NewRaster(scale, nil)
	r.Reset(white)
	return r
}

func pixel(r *Raster, x, y int) color.RGBA {
	return r.Image().RGBAAt(x, y)
}

func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255
}

func TestRasterSize(t *testing.T) {
	tests := []struct {
		scale float64
		w, h  int
	}{
		{1, 400, 600},
		{0.5, 200, 300},
		{2, 800, 1200},
		{0, 400, 600},
	}
	for _, tt := range tests {
		r := NewRaster(tt.scale, nil)
		b := r.Image().Bounds()
		if b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("Scale %v: image %dx%d, want %dx%d", tt.scale, b.Dx(), b.Dy(), tt.w, tt.h)
		}
		if w, h := r.Size(); w != CanvasWidth || h != CanvasHeight {
			t.Errorf("Logical size %vx%v", w, h)
		}
	}
}

func TestRasterFillRect(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.FillRect(Rect{X: 10, Y: 20, W: 30, H: 40}, Radii{}, Opaque(RGB{200, 0, 0}))

	if got := pixel(r, 25, 40); got != (color.RGBA{200, 0, 0, 255}) {
		t.Errorf("Inside pixel %v", got)
	}
	if got := pixel(r, 5, 5); !isWhite(got) {
		t.Errorf("Outside pixel touched: %v", got)
	}
	if got := pixel(r, 40, 40); !isWhite(got) {
		t.Errorf("Right edge is exclusive, got %v", got)
	}
}

func TestRasterFillRectAlpha(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.FillRect(Rect{X: 0, Y: 0, W: 10, H: 10}, Radii{}, WithAlpha(RGBBlack, 127.5))

	got := pixel(r, 5, 5)
	if got.R < 124 || got.R > 130 || got.R != got.G || got.G != got.B {
		t.Errorf("Half alpha black over white, got %v", got)
	}
}

func TestRasterInvisiblePaint(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.FillRect(Rect{X: 0, Y: 0, W: 400, H: 600}, Radii{}, WithAlpha(RGBBlack, 0))
	r.FillEllipse(200, 300, 50, 50, WithAlpha(RGBBlack, 0))
	r.Line(0, 0, 400, 600, Stroke{Paint: WithAlpha(RGBBlack, 0), Width: 5})
	if got := pixel(r, 200, 300); !isWhite(got) {
		t.Errorf("Zero alpha paint changed pixel to %v", got)
	}
}

func TestRasterRoundedRect(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.FillRect(Rect{X: 100, Y: 100, W: 100, H: 100}, Uniform(20), Opaque(RGBBlack))

	if got := pixel(r, 150, 150); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Center pixel %v", got)
	}
	// Corner lies outside the rounded outline
	if got := pixel(r, 100, 100); !isWhite(got) {
		t.Errorf("Rounded corner filled: %v", got)
	}
	if got := pixel(r, 150, 100); isWhite(got) {
		t.Error("Top edge midpoint should be filled")
	}
}

func TestRasterStrokeRectLeavesHole(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.StrokeRect(Rect{X: 100, Y: 100, W: 100, H: 100}, Radii{}, Stroke{Paint: Opaque(RGBBlack), Width: 4})

	if got := pixel(r, 100, 150); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Border pixel %v", got)
	}
	if got := pixel(r, 150, 150); !isWhite(got) {
		t.Errorf("Interior should stay untouched, got %v", got)
	}
	if got := pixel(r, 90, 150); !isWhite(got) {
		t.Errorf("Exterior should stay untouched, got %v", got)
	}
}

func TestRasterEllipse(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.FillEllipse(200, 300, 40, 20, Opaque(RGB{0, 0, 255}))

	if got := pixel(r, 200, 300); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Center pixel %v", got)
	}
	if got := pixel(r, 235, 300); isWhite(got) {
		t.Error("Pixel inside the long axis should be filled")
	}
	if got := pixel(r, 200, 325); !isWhite(got) {
		t.Errorf("Pixel beyond the short axis filled: %v", got)
	}
	if got := pixel(r, 238, 318); !isWhite(got) {
		t.Errorf("Bounding box corner filled: %v", got)
	}
}

func TestRasterPolyline(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.Polyline([]Point{{50, 300}, {200, 300}, {200, 450}}, Stroke{Paint: Opaque(RGBBlack), Width: 4})

	for _, p := range [][2]int{{100, 300}, {200, 300}, {200, 400}} {
		if got := pixel(r, p[0], p[1]); got != (color.RGBA{0, 0, 0, 255}) {
			t.Errorf("Pixel %v on stroke is %v", p, got)
		}
	}
	if got := pixel(r, 100, 310); !isWhite(got) {
		t.Errorf("Pixel off stroke filled: %v", got)
	}
}

func TestRasterTransform(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.Push()
	r.Translate(100, 100)
	r.Scale(2)
	r.FillRect(Rect{X: 0, Y: 0, W: 10, H: 10}, Radii{}, Opaque(RGBBlack))
	r.Pop()
	r.FillRect(Rect{X: 0, Y: 0, W: 5, H: 5}, Radii{}, Opaque(RGB{255, 0, 0}))

	if got := pixel(r, 115, 115); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Scaled rect should cover (115,115), got %v", got)
	}
	if got := pixel(r, 125, 125); !isWhite(got) {
		t.Errorf("Scaled rect too large, got %v", got)
	}
	if got := pixel(r, 2, 2); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Pop should restore identity, got %v", got)
	}
}

func TestRasterPixelScale(t *testing.T) {
	r := newWhiteRaster(t, 0.5)
	r.FillRect(Rect{X: 100, Y: 100, W: 20, H: 20}, Radii{}, Opaque(RGBBlack))

	if got := pixel(r, 55, 55); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Half-scale rect should cover (55,55), got %v", got)
	}
	if got := pixel(r, 105, 105); !isWhite(got) {
		t.Errorf("Rect drawn at logical coordinates, got %v", got)
	}
}

func TestRasterClipsOffscreen(t *testing.T) {
	r := newWhiteRaster(t, 1)
	r.FillEllipse(-100, -100, 20, 20, Opaque(RGBBlack))
	r.Line(-50, 300, 450, 300, Stroke{Paint: Opaque(RGBBlack), Width: 2})

	if got := pixel(r, 0, 300); isWhite(got) {
		t.Error("Line crossing the edge should still draw inside")
	}
	if got := pixel(r, 0, 0); !isWhite(got) {
		t.Errorf("Offscreen ellipse bled in: %v", got)
	}
}

func TestRasterText(t *testing.T) {
	fonts, err := DefaultFontCache()
	if err != nil {
		t.Fatalf("Font cache: %v", err)
	}
	r := NewRaster(1, fonts)
	r.Reset(white)
	r.Text("88", 200, 300, TextStyle{Size: 40, Weight: WeightBold}, Opaque(RGBBlack))

	dark := 0
	left, right := 400, 0
	for y := 270; y < 330; y++ {
		for x := 150; x < 250; x++ {
			if pixel(r, x, y).R < 128 {
				dark++
				left, right = min(left, x), max(right, x)
			}
		}
	}
	if dark == 0 {
		t.Fatal("Text drew no pixels near its anchor")
	}
	// Centered horizontally on x=200
	if mid := (left + right) / 2; mid < 195 || mid > 205 {
		t.Errorf("Text centered at %d, want about 200", mid)
	}
}

func TestRasterTextFallback(t *testing.T) {
	fonts, err := DefaultFontCache()
	if err != nil {
		t.Fatalf("Font cache: %v", err)
	}
	withFallback := NewRaster(1, fonts)
	withFallback.Reset(white)
	withFallback.Text("🐂", 200, 300, TextStyle{Size: 20, Fallback: "Ox"}, Opaque(RGBBlack))

	plain := NewRaster(1, fonts)
	plain.Reset(white)
	plain.Text("Ox", 200, 300, TextStyle{Size: 20}, Opaque(RGBBlack))

	a, b := withFallback.Image().Pix, plain.Image().Pix
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Fallback rendering differs from plain text at byte %d", i)
		}
	}
}
