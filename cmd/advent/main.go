package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/advent/audio"
	"github.com/lixenwraith/advent/config"
	"github.com/lixenwraith/advent/content"
	"github.com/lixenwraith/advent/scenes"
	"github.com/lixenwraith/advent/terminal"
	"github.com/lixenwraith/advent/vmath"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to TOML config file")
	debugFlag  = flag.Bool("debug", false, "Show the debug overlay and log at debug level")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Display.DebugOverlay = true
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}

	log, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	bank, err := content.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load questions: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			terminal.EmergencyReset(os.Stdout)
			log.Error("panic", zap.Any("recovered", r), zap.ByteString("stack", debug.Stack()))
			log.Sync()

			fmt.Fprintf(os.Stderr, "\n\x1b[31mADVENT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if cfg.Display.Mouse {
		screen.EnableMouse()
	}
	screen.HideCursor()

	sound := audio.NewSoundManager(audio.Options{Enabled: cfg.Audio.Enabled, Volume: cfg.Audio.Volume}, log)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Cleanup()

	env := scenes.NewEnv(bank, vmath.NewFastRand(uint64(time.Now().UnixNano())), log)
	env.Sound = sound
	env.Transition.PhaseDuration = cfg.Transition.PhaseDuration
	env.Transition.Glyph = cfg.Display.Glyph()
	env.Transition.Color = cfg.Display.Color()
	env.Transition.UseColor = true
	env.Transition.Cue = sound.Cue

	app := newApp(screen, scenes.NewTitle(env), cfg.Display.DebugOverlay, log)
	defer app.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("advent started",
		zap.Int("fps", cfg.Display.FPS),
		zap.Int("questions", bank.Len()),
		zap.Ints("quiz_days", bank.Days()),
		zap.Bool("audio", sound.Initialized()))

	if err := app.Run(ctx, cfg.Display.FrameInterval()); err != nil {
		log.Error("run failed", zap.Error(err))
		app.Shutdown()
		screen.Fini()
		fmt.Fprintf(os.Stderr, "advent: %v\n", err)
		os.Exit(1)
	}
	log.Info("advent stopped")
}
