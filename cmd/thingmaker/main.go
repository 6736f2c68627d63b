package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thingmaker/audio"
	"github.com/lixenwraith/thingmaker/config"
	"github.com/lixenwraith/thingmaker/engine"
	"github.com/lixenwraith/thingmaker/game"
	"github.com/lixenwraith/thingmaker/input"
	"github.com/lixenwraith/thingmaker/status"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config (default "+config.DefaultPath+" if present)")
	debugFlag  = flag.Bool("debug", false, "Write debug log under the configured log dir")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
	parityFlag = flag.Bool("parity", false, "Allow purchases the ledger cannot cover, driving amounts negative")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg, *fpsFlag, *muteFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Log.Dir, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.DefaultKeyTable().ApplyOverrides(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
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
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal before printing anything about a crash
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTHINGMAKER CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	var sounds game.Sounds
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			sounds = sm
		}
	}

	policy := engine.PolicyRejectUnaffordable
	if *parityFlag {
		policy = engine.PolicyAllowDebt
	}

	metrics := status.NewRegistry()
	g := game.New(screen, engine.NewEngine(engine.WithPolicy(policy)), game.Options{
		FPS:          cfg.Display.FPS,
		Keys:         keys,
		Sounds:       sounds,
		Metrics:      metrics,
		Logger:       log.Default(),
		CrashHandler: crash,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("game loop: %v", err)
	}
	log.Printf("session end prestiges=%d metrics=%d", g.Engine().Prestiges(), metrics.TotalCount())
	metrics.Dump(func(key, value string) {
		log.Printf("metric %s=%s", key, value)
	})
}

// loadConfig reads an explicit path strictly, the default path only if it exists
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Load(config.DefaultPath)
	if errors.Is(err, config.ErrNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

// applyFlags layers command-line overrides on cfg and validates the result
func applyFlags(cfg *config.Config, fps int, mute bool) error {
	if fps != 0 {
		cfg.Display.FPS = fps
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}
