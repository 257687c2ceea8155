package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/config"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/logging"
	"github.com/lixenwraith/vi-racer/progression"
	"github.com/lixenwraith/vi-racer/telemetry"
	"github.com/lixenwraith/vi-racer/vmath"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-racer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet("vi-racer", pflag.ContinueOnError)
	if err := config.BindFlags(fs); err != nil {
		return err
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	configDir, _ := fs.GetString("config")
	mute, _ := fs.GetBool("mute")

	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	log, closer, err := logging.Setup(cfg.LogsDir, cfg.Debug, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Uint64("seed", seed).Float64("trackLength", cfg.Race.TrackLength).Int("aiCars", cfg.Race.AICars).Msg("Starting vi-racer")

	eng := engine.New(engine.Config{
		TrackLength: cfg.Race.TrackLength,
		AICars:      cfg.Race.AICars,
	}, progression.NewTracker(), vmath.NewFastRand(seed))

	session := telemetry.NewSession(true)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if totals, err := session.Totals(ctx); err == nil {
			log.Info().Interface("totals", totals).Msg("Session telemetry")
		}
		if err := session.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()
	recorder, err := telemetry.NewRecorder(session.Meter())
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the race runs silent
			log.Warn().Err(err).Msg("Audio initialization failed, continuing without audio")
		} else {
			defer sound.Cleanup()
		}
	}
	sound.SetMuted(mute || !cfg.Audio.Enabled)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-RACER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	g := newGame(eng, screen, sound, log)
	g.router.Register(logging.NewEventLogger(log))
	g.router.Register(recorder)

	return loop(g, screen, cfg.Display.FPS, log)
}

func loop(g *game, screen tcell.Screen, fps int, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventChan := make(chan tcell.Event, 256)
	// Input polling blocks on the terminal, so it runs on its own goroutine
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	frameTicker := time.NewTicker(time.Second / time.Duration(fps))
	defer frameTicker.Stop()

	g.frame(time.Now())
	for {
		select {
		case ev := <-eventChan:
			if !g.handle(ev, time.Now()) {
				log.Info().Int("racesCompleted", g.eng.Tracker().GamesPlayed()).Msg("Exiting")
				return nil
			}
		case <-frameTicker.C:
			g.frame(time.Now())
		}
	}
}
