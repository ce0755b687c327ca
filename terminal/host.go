// Package terminal hosts the clock in a tcell screen, drawing the raster canvas as half-block cells.
package terminal

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lunar-clock/clock"
	"github.com/lixenwraith/lunar-clock/engine"
	"github.com/lixenwraith/lunar-clock/render"
)

const (
	// Pixels sampled per half cell along each axis before averaging
	oversample = 2
	statusTTL  = 2 * time.Second
)

// Sound is the part of the sound manager the host drives
type Sound interface {
	ToggleMute() bool
}

// Options configures a Host
type Options struct {
	SnapshotDir string
	FPS         int
	Sound       Sound // nil disables the mute key
	Logger      *slog.Logger
}

// Host owns the screen, the raster and the engine for one terminal session
type Host struct {
	screen tcell.Screen
	engine *engine.Engine
	tp     clock.TimeProvider
	fonts  *render.FontCache
	opts   Options
	log    *slog.Logger

	raster        *render.Raster
	width, height int

	status      string
	statusUntil time.Time
}

// NewHost binds an initialized screen to the engine
func NewHost(screen tcell.Screen, e *engine.Engine, tp clock.TimeProvider, fonts *render.FontCache, opts Options) *Host {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := &Host{
		screen: screen,
		engine: e,
		tp:     tp,
		fonts:  fonts,
		opts:   opts,
		log:    log,
	}
	h.handleResize()
	return h
}

// PixelScale picks a raster scale that oversamples the fitted cell block
func PixelScale(cols, rows int) float64 {
	w, h := FitCells(render.CanvasWidth, render.CanvasHeight, cols, rows)
	if w == 0 {
		return 0.1
	}
	sx := float64(w*oversample) / render.CanvasWidth
	sy := float64(h*2*oversample) / render.CanvasHeight
	return max(min(sx, sy, 2), 0.1)
}

func (h *Host) handleResize() {
	w, ht := h.screen.Size()
	if w == h.width && ht == h.height && h.raster != nil {
		return
	}
	h.width, h.height = w, ht
	h.raster = render.NewRaster(PixelScale(w, h.drawRows()), h.fonts)
	h.screen.Clear()
	h.log.Debug("resize", "cols", w, "rows", ht)
}

// drawRows leaves the bottom row for the status line
func (h *Host) drawRows() int {
	if h.height > 1 {
		return h.height - 1
	}
	return h.height
}

// Run drives frames at the configured rate until quit or a fatal screen error
// The screen is finalized by the caller
func (h *Host) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.screen.Fini()
			panic(r)
		}
	}()

	ticker := time.NewTicker(engine.FrameInterval(h.opts.FPS))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			h.draw()
		}
	}
}

// handleInput returns false when the session should end
func (h *Host) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 's', 'S':
				h.saveSnapshot()
			case 'm', 'M':
				h.toggleMute()
			}
		}
	case *tcell.EventResize:
		h.handleResize()
		h.screen.Sync()
	}
	return true
}

func (h *Host) saveSnapshot() {
	name := fmt.Sprintf("lunar-clock-%s.png", h.tp.Now().Format("20060102-150405"))
	path := filepath.Join(h.opts.SnapshotDir, name)

	// Full resolution render, independent of the terminal raster
	r := render.NewRaster(1, h.fonts)
	r.Reset(render.RGBBlack)
	h.engine.Redraw(r)

	if err := render.SavePNG(path, r.Image()); err != nil {
		h.log.Error("snapshot failed", "path", path, "error", err)
		h.setStatus("snapshot failed: " + err.Error())
		return
	}
	h.log.Info("snapshot saved", "path", path)
	h.setStatus("saved " + path)
}

func (h *Host) toggleMute() {
	if h.opts.Sound == nil {
		h.setStatus("audio unavailable")
		return
	}
	if h.opts.Sound.ToggleMute() {
		h.setStatus("muted")
	} else {
		h.setStatus("sound on")
	}
}

func (h *Host) setStatus(msg string) {
	h.status = msg
	h.statusUntil = h.tp.Now().Add(statusTTL)
}

// draw renders one engine frame and blits it centered
func (h *Host) draw() {
	h.raster.Reset(render.RGBBlack)
	h.engine.Frame(h.raster)

	frame := Blit(h.raster.Image(), h.width, h.drawRows())
	ox := (h.width - frame.Width) / 2
	oy := (h.drawRows() - frame.Height) / 2

	h.screen.Clear()
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			style := tcell.StyleDefault.Foreground(toTcell(c.Fg)).Background(toTcell(c.Bg))
			h.screen.SetContent(ox+x, oy+y, c.Rune, nil, style)
		}
	}
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawStatus() {
	if h.height < 2 {
		return
	}
	msg := "q quit  s snapshot  m mute"
	if h.status != "" && h.tp.Now().Before(h.statusUntil) {
		msg = h.status
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	y := h.height - 1
	for i, r := range []rune(msg) {
		if i >= h.width {
			break
		}
		h.screen.SetContent(i, y, r, nil, style)
	}
}

func toTcell(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
