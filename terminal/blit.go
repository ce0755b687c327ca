package terminal

import (
	"image"

	"github.com/lixenwraith/lunar-clock/render"
)

// HalfBlock draws the upper pixel as foreground and the lower pixel as background
const HalfBlock = '▀'

// Cell is one terminal cell covering two vertically stacked pixels
type Cell struct {
	Rune rune
	Fg   render.RGB // upper pixel
	Bg   render.RGB // lower pixel
}

// Frame is a row-major block of cells
type Frame struct {
	Cells  []Cell
	Width  int
	Height int
}

// At returns the cell at column x, row y
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// FitCells returns the largest cell block that shows an imgW x imgH image in cols x rows
// without distortion, counting each cell as one pixel wide and two tall
func FitCells(imgW, imgH, cols, rows int) (int, int) {
	if imgW <= 0 || imgH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	w := cols
	h := (w*imgH/imgW + 1) / 2
	if h > rows {
		h = rows
		w = 2 * h * imgW / imgH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Blit converts img to half-block cells fitted into cols x rows
// Each half cell is the box average of the source pixels it covers
func Blit(img image.Image, cols, rows int) *Frame {
	b := img.Bounds()
	w, h := FitCells(b.Dx(), b.Dy(), cols, rows)
	f := &Frame{Width: w, Height: h, Cells: make([]Cell, w*h)}
	if w == 0 {
		return f
	}

	gridH := h * 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f.Cells[y*w+x] = Cell{
				Rune: HalfBlock,
				Fg:   boxAverage(img, b, x, 2*y, w, gridH),
				Bg:   boxAverage(img, b, x, 2*y+1, w, gridH),
			}
		}
	}
	return f
}

// boxAverage averages the source rectangle mapped to grid cell (gx, gy) of a gridW x gridH grid
func boxAverage(img image.Image, b image.Rectangle, gx, gy, gridW, gridH int) render.RGB {
	srcW, srcH := b.Dx(), b.Dy()
	x0 := b.Min.X + gx*srcW/gridW
	x1 := b.Min.X + (gx+1)*srcW/gridW
	y0 := b.Min.Y + gy*srcH/gridH
	y1 := b.Min.Y + (gy+1)*srcH/gridH
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	// RGBA fast path avoids per-pixel interface calls
	if rgba, ok := img.(*image.RGBA); ok {
		return averageRGBA(rgba, x0, y0, x1, y1)
	}

	var r, g, bl, n uint64
	for y := y0; y < y1 && y < b.Max.Y; y++ {
		for x := x0; x < x1 && x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	if n == 0 {
		return render.RGBBlack
	}
	return render.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n)}
}

func averageRGBA(img *image.RGBA, x0, y0, x1, y1 int) render.RGB {
	b := img.Bounds()
	x1, y1 = min(x1, b.Max.X), min(y1, b.Max.Y)
	var r, g, bl, n uint64
	for y := y0; y < y1; y++ {
		off := img.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			r += uint64(img.Pix[off])
			g += uint64(img.Pix[off+1])
			bl += uint64(img.Pix[off+2])
			off += 4
			n++
		}
	}
	if n == 0 {
		return render.RGBBlack
	}
	return render.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n)}
}
