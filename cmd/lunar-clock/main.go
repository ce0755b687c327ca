package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/term"

	"github.com/lixenwraith/lunar-clock/audio"
	"github.com/lixenwraith/lunar-clock/clock"
	"github.com/lixenwraith/lunar-clock/config"
	"github.com/lixenwraith/lunar-clock/engine"
	"github.com/lixenwraith/lunar-clock/render"
	"github.com/lixenwraith/lunar-clock/server"
	"github.com/lixenwraith/lunar-clock/terminal"
)

const envPrefix = "LUNAR_CLOCK"

func main() {
	if err := run(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := buildCLI()
	return rootCmd.ParseAndRun(context.Background(), os.Args[1:])
}

// rootFlags are shared by every subcommand
type rootFlags struct {
	configPath string
	logFile    string
	logLevel   string
	fs         *flag.FlagSet
}

func (rf *rootFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&rf.configPath, "config", "", "Path to config file (default ./"+config.DefaultFile+")")
	fs.StringVar(&rf.logFile, "log-file", "", "Write logs to this file")
	fs.StringVar(&rf.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rf.fs = fs
}

// load reads the config file and applies explicitly set flags on top
func (rf *rootFlags) load(sub *flag.FlagSet, apply func(cfg *config.Config, name string)) (*config.Config, error) {
	cfg, err := config.LoadOptional(rf.configPath)
	if err != nil {
		return nil, err
	}
	visit := func(f *flag.Flag) {
		switch f.Name {
		case "log-file":
			cfg.Log.File = rf.logFile
		case "log-level":
			cfg.Log.Level = rf.logLevel
		}
		if apply != nil {
			apply(cfg, f.Name)
		}
	}
	rf.fs.Visit(visit)
	if sub != nil {
		sub.Visit(visit)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildCLI() *ffcli.Command {
	var root rootFlags

	// Run command
	runFlagSet := flag.NewFlagSet("lunar-clock run", flag.ContinueOnError)
	root.register(runFlagSet)
	runFPS := runFlagSet.Int("fps", 0, "Frames per second")
	runFlipFrames := runFlagSet.Int("flip-frames", 0, "Frames per page flip")
	runNoOrnament := runFlagSet.Bool("no-ornament", false, "Skip the background spiral ornament")
	runMute := runFlagSet.Bool("mute", false, "Start with audio muted")
	runSnapshotDir := runFlagSet.String("snapshot-dir", "", "Directory for PNG snapshots taken with 's'")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "lunar-clock run [flags]",
		ShortHelp:  "Show the clock in the terminal",
		FlagSet:    runFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec: func(_ context.Context, _ []string) error {
			cfg, err := root.load(runFlagSet, func(cfg *config.Config, name string) {
				switch name {
				case "fps":
					cfg.Animation.FPS = *runFPS
				case "flip-frames":
					cfg.Animation.FlipFrames = *runFlipFrames
				case "no-ornament":
					cfg.Animation.Ornament = !*runNoOrnament
				case "mute":
					cfg.Audio.Enabled = !*runMute
				case "snapshot-dir":
					cfg.Terminal.SnapshotDir = *runSnapshotDir
				}
			})
			if err != nil {
				return err
			}
			return execTerminal(cfg)
		},
	}

	// Snapshot command
	snapFlagSet := flag.NewFlagSet("lunar-clock snapshot", flag.ContinueOnError)
	root.register(snapFlagSet)
	snapOut := snapFlagSet.String("out", "lunar-clock.png", "Output PNG path")
	snapAt := snapFlagSet.String("at", "", "Clock time in RFC 3339 (default now)")
	snapScale := snapFlagSet.Float64("scale", 1, "Device pixels per canvas unit")
	snapFlip := snapFlagSet.Int("flip", 0, "Render this many frames into a page flip from the previous minute (0 for none)")
	snapNoOrnament := snapFlagSet.Bool("no-ornament", false, "Skip the background spiral ornament")

	snapCmd := &ffcli.Command{
		Name:       "snapshot",
		ShortUsage: "lunar-clock snapshot [flags]",
		ShortHelp:  "Render one frame to a PNG file",
		FlagSet:    snapFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec: func(_ context.Context, _ []string) error {
			cfg, err := root.load(snapFlagSet, func(cfg *config.Config, name string) {
				if name == "no-ornament" {
					cfg.Animation.Ornament = !*snapNoOrnament
				}
			})
			if err != nil {
				return err
			}
			at := time.Now()
			if *snapAt != "" {
				if at, err = time.Parse(time.RFC3339, *snapAt); err != nil {
					return fmt.Errorf("parse -at: %w", err)
				}
			}
			return execSnapshot(cfg, snapshotRequest{
				out:   *snapOut,
				at:    at,
				scale: *snapScale,
				flip:  *snapFlip,
			})
		},
	}

	// Serve command
	serveFlagSet := flag.NewFlagSet("lunar-clock serve", flag.ContinueOnError)
	root.register(serveFlagSet)
	serveAddr := serveFlagSet.String("addr", "", "Listen address")
	serveFPS := serveFlagSet.Int("fps", 0, "Frames per second rendered by the server")
	serveScale := serveFlagSet.Float64("scale", 1, "Device pixels per canvas unit")

	serveCmd := &ffcli.Command{
		Name:       "serve",
		ShortUsage: "lunar-clock serve [flags]",
		ShortHelp:  "Serve the clock as a refreshing PNG over HTTP",
		FlagSet:    serveFlagSet,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec: func(ctx context.Context, _ []string) error {
			cfg, err := root.load(serveFlagSet, func(cfg *config.Config, name string) {
				switch name {
				case "addr":
					cfg.Server.Addr = *serveAddr
				case "fps":
					cfg.Animation.FPS = *serveFPS
				}
			})
			if err != nil {
				return err
			}
			return execServe(ctx, cfg, *serveScale)
		},
	}

	rootFlagSet := flag.NewFlagSet("lunar-clock", flag.ContinueOnError)
	root.register(rootFlagSet)

	return &ffcli.Command{
		ShortUsage:  "lunar-clock [flags] <subcommand>",
		ShortHelp:   "A tear-off calendar clock with zodiac hours and page flips",
		LongHelp:    "Controls (run):\n  q, Esc, Ctrl-C  Quit\n  s               Save PNG snapshot\n  m               Toggle sound",
		FlagSet:     rootFlagSet,
		Options:     []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Subcommands: []*ffcli.Command{runCmd, snapCmd, serveCmd},
		Exec: func(_ context.Context, _ []string) error {
			cfg, err := root.load(nil, nil)
			if err != nil {
				return err
			}
			return execTerminal(cfg)
		},
	}
}

func newEngine(cfg *config.Config, tp clock.TimeProvider) (*engine.Engine, error) {
	ec, err := cfg.Engine()
	if err != nil {
		return nil, err
	}
	return engine.New(ec, tp), nil
}

func execTerminal(cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use snapshot or serve")
	}

	// tcell owns the tty, so logs only go to a file
	logger, closer, err := config.NewLogger(cfg.Log, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	fonts, err := render.DefaultFontCache()
	if err != nil {
		return err
	}

	tp := clock.NewSystemTimeProvider()
	e, err := newEngine(cfg, tp)
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(audio.Config{
		Enabled:    cfg.Audio.Enabled,
		Volume:     cfg.Audio.Volume,
		SampleRate: audio.DefaultConfig().SampleRate,
	})
	if err := sound.Initialize(); err != nil {
		// Non-fatal, the clock runs without sound
		logger.Warn("audio initialization failed", "error", err)
	} else {
		defer sound.Cleanup()
	}
	e.OnFlip(func(from, to int) {
		logger.Debug("page flip", "from", from, "to", to)
		sound.PlayFlip(from, to)
	})
	e.OnHour(func(hour int) {
		logger.Info("hour", "hour", hour)
		sound.PlayChime(hour)
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	host := terminal.NewHost(screen, e, tp, fonts, terminal.Options{
		SnapshotDir: cfg.Terminal.SnapshotDir,
		FPS:         cfg.Animation.FPS,
		Sound:       sound,
		Logger:      logger,
	})
	return host.Run()
}

// snapshotRequest describes one rendered PNG
type snapshotRequest struct {
	out   string
	at    time.Time
	scale float64
	flip  int // frames into a flip from the previous minute, zero or negative for a steady page
}

// renderSnapshot draws the frame a running clock would show at req.at
func renderSnapshot(ec engine.Config, fonts *render.FontCache, req snapshotRequest) *image.RGBA {
	tp := clock.NewMockTimeProvider(req.at)
	e := engine.New(ec, tp)
	r := render.NewRaster(req.scale, fonts)

	if req.flip > 0 {
		// Prime with the previous minute so the next frames run the flip
		tp.SetTime(req.at.Add(-time.Minute))
		e.Frame(r)
		tp.SetTime(req.at)
		for i := 0; i < req.flip; i++ {
			e.Frame(r)
		}
	}
	r.Reset(render.RGBBlack)
	e.Frame(r)
	return r.Image()
}

func execSnapshot(cfg *config.Config, req snapshotRequest) error {
	logger, closer, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	fonts, err := render.DefaultFontCache()
	if err != nil {
		return err
	}
	ec, err := cfg.Engine()
	if err != nil {
		return err
	}

	img := renderSnapshot(ec, fonts, req)
	if err := render.SavePNG(req.out, img); err != nil {
		return err
	}
	logger.Info("snapshot saved", "path", req.out, "at", req.at.Format(time.RFC3339))
	return nil
}

func execServe(ctx context.Context, cfg *config.Config, scale float64) error {
	logger, closer, err := config.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	fonts, err := render.DefaultFontCache()
	if err != nil {
		return err
	}
	e, err := newEngine(cfg, clock.NewSystemTimeProvider())
	if err != nil {
		return err
	}
	e.OnFlip(func(from, to int) {
		logger.Debug("page flip", "from", from, "to", to)
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(e, fonts, server.Options{
		Addr:       cfg.Server.Addr,
		FPS:        cfg.Animation.FPS,
		PixelScale: scale,
		Logger:     logger,
	})
	return srv.ListenAndServe(ctx)
}
