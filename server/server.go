// Package server serves the clock as a continuously refreshed PNG over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lixenwraith/lunar-clock/engine"
	"github.com/lixenwraith/lunar-clock/render"
)

// Options configures the preview server
type Options struct {
	Addr       string
	FPS        int
	PixelScale float64
	Logger     *slog.Logger
}

// frame is one published PNG
type frame struct {
	png    []byte
	seq    uint64
	at     time.Time
	flip   bool
	minute int
}

// Server renders frames on its own goroutine and hands the latest PNG to HTTP handlers
type Server struct {
	engine *engine.Engine
	raster *render.Raster
	opts   Options
	log    *slog.Logger

	mu     sync.RWMutex
	latest frame
}

// New creates a server around e; call Run or ListenAndServe to start producing frames
func New(e *engine.Engine, fonts *render.FontCache, opts Options) *Server {
	if opts.PixelScale <= 0 {
		opts.PixelScale = 1
	}
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		engine: e,
		raster: render.NewRaster(opts.PixelScale, fonts),
		opts:   opts,
		log:    log,
	}
}

// Router returns the HTTP routes with the standard middleware stack
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/", s.index)
	r.Get("/frame.png", s.framePNG)
	r.Get("/healthz", s.healthz)
	return r
}

// Tick renders and publishes one frame
func (s *Server) Tick(now time.Time) error {
	s.raster.Reset(render.RGBBlack)
	plan := s.engine.Frame(s.raster)

	data, err := render.EncodePNG(s.raster.Image())
	if err != nil {
		return err
	}

	minute := 0
	if len(plan.Pages) > 0 {
		minute = plan.Pages[len(plan.Pages)-1].Minute
	}

	s.mu.Lock()
	s.latest = frame{
		png:    data,
		seq:    s.latest.seq + 1,
		at:     now,
		flip:   plan.Transitioning(),
		minute: minute,
	}
	s.mu.Unlock()
	return nil
}

// Run produces frames until ctx is cancelled
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(engine.FrameInterval(s.opts.FPS))
	defer ticker.Stop()

	if err := s.Tick(time.Now()); err != nil {
		s.log.Error("render frame", "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if err := s.Tick(now); err != nil {
				s.log.Error("render frame", "error", err)
			}
		}
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	httpServer := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.opts.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	var err error
	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		err = httpServer.Shutdown(shutdownCtx)
	}

	cancel()
	wg.Wait()
	if err != nil {
		return fmt.Errorf("serve %s: %w", s.opts.Addr, err)
	}
	return nil
}

func (s *Server) snapshot() frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) framePNG(w http.ResponseWriter, r *http.Request) {
	f := s.snapshot()
	if f.png == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Frame-Seq", strconv.FormatUint(f.seq, 10))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.png)))
	_, _ = w.Write(f.png)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	f := s.snapshot()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "ok frames=%d minute=%02d flipping=%t\n", f.seq, f.minute, f.flip)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	refresh := engine.FrameInterval(s.opts.FPS).Milliseconds()
	if refresh < 50 {
		refresh = 50
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexHTML, refresh)
}

const indexHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Lunar Clock</title>
<style>body{margin:0;background:#200;display:flex;justify-content:center;align-items:center;height:100vh}</style>
</head>
<body>
<img id="frame" src="/frame.png" width="400" height="600" alt="lunar clock">
<script>
const img = document.getElementById("frame");
setInterval(() => {
  const next = new Image();
  next.onload = () => { img.src = next.src; };
  next.src = "/frame.png?t=" + Date.now();
}, %d);
</script>
</body>
</html>
`
