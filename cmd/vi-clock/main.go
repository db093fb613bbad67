package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-clock/audio"
	"github.com/lixenwraith/vi-clock/clock"
	"github.com/lixenwraith/vi-clock/config"
	"github.com/lixenwraith/vi-clock/content"
	"github.com/lixenwraith/vi-clock/engine"
	"github.com/lixenwraith/vi-clock/fireworks"
	"github.com/lixenwraith/vi-clock/logging"
	"github.com/lixenwraith/vi-clock/render"
	"github.com/lixenwraith/vi-clock/speech"
	"github.com/lixenwraith/vi-clock/status"
	"github.com/lixenwraith/vi-clock/vmath"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	log, logCloser, err := logging.Setup(cfg.LogOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
		log = zerolog.Nop()
	} else {
		defer logCloser.Close()
	}
	log.Info().Interface("config", cfg).Msg("starting vi-clock")

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("exited with error")
		fmt.Fprintf(os.Stderr, "vi-clock: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("stopped")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	catalogue := loadCatalogue(cfg.Messages.File, log)
	if catalogue == nil {
		return errors.New("no daily messages available")
	}

	// Audio is optional, the clock keeps running silent
	tick := audio.NewTickPlayer(log.With().Str("component", "audio").Logger())
	tick.SetVolume(cfg.Tick.Volume)
	tick.SetEnabled(cfg.Tick.Enabled)
	if err := tick.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
	} else {
		defer tick.Cleanup()
		if err := tick.LoadFile(cfg.Tick.File); err != nil {
			log.Warn().Err(err).Str("file", cfg.Tick.File).Msg("using generated tick")
		}
	}

	var speaker speech.Speaker
	if cs, err := speech.Detect(); err != nil {
		log.Warn().Err(err).Msg("continuing without announcements")
	} else {
		log.Info().Str("backend", cs.Name).Msg("speech backend found")
		speaker = cs
	}
	announcer := speech.NewAnnouncer(speaker, log.With().Str("component", "speech").Logger())
	announcer.SetEnabled(cfg.Voice.Enabled)
	defer announcer.Wait()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	field := fireworks.NewField(cfg.FireworksConfig(), vmath.NewFastRand(seed), 0, 0)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack reaches stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			stack := debug.Stack()
			log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-CLOCK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
			os.Exit(1)
		}
	}()

	theme := render.DefaultTheme()
	screen.SetStyle(tcell.StyleDefault.Background(render.TcellColor(theme.Background)))
	screen.HideCursor()

	eng := engine.New(engine.Options{
		Log:       log.With().Str("component", "engine").Logger(),
		Clock:     clock.New(clock.SystemTime{}),
		Field:     field,
		Catalogue: catalogue,
		Tick:      tick,
		Announcer: announcer,
		Theme:     theme,
		Status:    status.NewRegistry(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = eng.Run(ctx, screen, cfg.Frame.Interval)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// loadCatalogue prefers the configured file and falls back to the embedded messages
func loadCatalogue(path string, log zerolog.Logger) *content.Catalogue {
	if path != "" {
		c, err := content.Load(path)
		if err == nil {
			log.Info().Str("file", path).Int("messages", c.Len()).Msg("messages loaded")
			return c
		}
		log.Warn().Err(err).Str("file", path).Msg("using embedded messages")
	}

	c, err := content.Embedded()
	if err != nil {
		log.Error().Err(err).Msg("embedded messages invalid")
		return nil
	}
	return c
}
