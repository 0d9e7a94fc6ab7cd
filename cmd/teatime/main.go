package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/teatime/audio"
	"github.com/lixenwraith/teatime/config"
	"github.com/lixenwraith/teatime/constants"
	"github.com/lixenwraith/teatime/engine"
	"github.com/lixenwraith/teatime/input"
	"github.com/lixenwraith/teatime/render"
	"github.com/lixenwraith/teatime/storage"
)

var (
	configFlag    = flag.String("config", "", "Path to a YAML or TOML config file")
	debugFlag     = flag.Bool("debug", false, "Write debug logs to logs/teatime.log")
	colorModeFlag = flag.String("color", "", "Color mode: auto, truecolor, 256")
	resetFlag     = flag.Bool("reset", false, "Delete saved bubbles before starting")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			crash("TEATIME", screen, r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Audio stays locked until the first key or click
	chimer := audio.NewChimer(cfg.AudioSettings(), nil)
	chimer.Start()
	defer chimer.Stop()
	if err := chimer.Preload(cfg.Audio.Chime); err != nil {
		log.Printf("audio: chime %q unavailable, overshoot will be silent: %v", cfg.Audio.Chime, err)
	}

	ctxCfg := engine.ContextConfig{
		Chimer:        chimer,
		ChimeResource: cfg.Audio.Chime,
	}

	persister, err := storage.NewPersister(cfg.StoragePath())
	if err != nil {
		log.Printf("storage: disabled: %v", err)
	} else {
		store := storage.NewStore(persister)
		defer store.Close()
		if *resetFlag {
			store.Clear()
		}
		ctxCfg.Store = store
	}

	ctx := engine.NewContext(ctxCfg)
	if !*resetFlag {
		ctx.Load()
	}

	render.ApplyColorMode(render.ParseColorMode(cfg.Display.ColorMode))

	screen, err = tcell.NewScreen()
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

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	renderer := render.NewRenderer(screen, cfg.Display.CellAspect)
	handler := input.NewHandler(ctx, chimer, cfg.Display.CellAspect)

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", screen, r)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var (
		lastRevision uint64
		lastStatus   render.Status
		drawn        bool
	)

	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				drawn = false
			}

		case <-frameTicker.C:
			ctx.Tick()
		}

		status := render.Status{Muted: chimer.IsMuted()}
		if rev := ctx.Session.Revision(); !drawn || rev != lastRevision || status != lastStatus {
			renderer.Render(ctx.Session.Snapshot(), status)
			lastRevision = rev
			lastStatus = status
			drawn = true
		}
	}
}

// loadConfig layers defaults, config file, .env, TEATIME_* variables and flags
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(".env"); err != nil {
		return nil, err
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()

	if *debugFlag {
		cfg.Debug = true
	}
	if *colorModeFlag != "" {
		cfg.Display.ColorMode = *colorModeFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// crash restores the terminal and prints the panic with its stack
func crash(where string, screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
