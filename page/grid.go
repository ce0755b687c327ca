package page

import (
	"strconv"

	"github.com/lixenwraith/lunar-clock/render"
)

// Seconds grid layout in content coordinates, 10x6 cells standing in for calendar days
const (
	GridCols   = 10
	GridRows   = 6
	GridCells  = GridCols * GridRows
	GridCellW  = ContentWidth / GridCols
	GridCellH  = 30.0
	GridStartY = 300.0
	gridLabel  = 8.0
)

// CellState classifies a seconds-grid cell against the current second
type CellState uint8

const (
	CellFuture CellState = iota
	CellElapsed
	CellCurrent
)

func (s CellState) String() string {
	switch s {
	case CellElapsed:
		return "elapsed"
	case CellCurrent:
		return "current"
	default:
		return "future"
	}
}

// CellStates classifies all 60 cells for the given second
func CellStates(second int) [GridCells]CellState {
	var states [GridCells]CellState
	for i := range states {
		switch {
		case i < second:
			states[i] = CellElapsed
		case i == second:
			states[i] = CellCurrent
		default:
			states[i] = CellFuture
		}
	}
	return states
}

// StateCounts tallies cells per state
type StateCounts struct {
	Elapsed, Current, Future int
}

// CountStates tallies a classified grid
func CountStates(states [GridCells]CellState) StateCounts {
	var c StateCounts
	for _, s := range states {
		switch s {
		case CellElapsed:
			c.Elapsed++
		case CellCurrent:
			c.Current++
		default:
			c.Future++
		}
	}
	return c
}

// CellRect returns the bounds of cell i: column i%10, row i/10
func CellRect(i int) render.Rect {
	return render.Rect{
		X: float64(i%GridCols) * GridCellW,
		Y: float64(i/GridCols)*GridCellH + GridStartY,
		W: GridCellW,
		H: GridCellH,
	}
}

// drawSecondsGrid draws the 60 cells with 1-indexed day-style labels
func drawSecondsGrid(c render.Canvas, second int, st Style) {
	p := st.Palette
	border := st.Stroke(p.Ink, 1)
	label := render.TextStyle{Size: gridLabel, Family: render.FontSans}

	for i, state := range CellStates(second) {
		r := CellRect(i)

		switch state {
		case CellElapsed:
			c.FillRect(r, render.Radii{}, st.Paint(p.Primary))
		case CellCurrent:
			c.FillRect(r, render.Radii{}, st.Paint(p.Accent))
		}
		c.StrokeRect(r, render.Radii{}, border)

		ink := p.Ink
		if state == CellElapsed {
			ink = p.Light
		}
		c.Text(strconv.Itoa(i+1), r.X+r.W/2, r.Y+r.H/2, label, st.Paint(ink))
	}
}
