package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-racer/audio"
	"github.com/lixenwraith/vi-racer/engine"
	"github.com/lixenwraith/vi-racer/events"
	"github.com/lixenwraith/vi-racer/input"
	"github.com/lixenwraith/vi-racer/render"
)

// game binds the front end to one engine: key intents in, frames out
type game struct {
	eng      *engine.Engine
	router   *events.Router
	renderer *render.Renderer
	sound    *audio.SoundManager
	keys     *input.KeyTable
	hold     input.ThrottleHold
	status   string
	log      zerolog.Logger
}

func newGame(eng *engine.Engine, screen tcell.Screen, sound *audio.SoundManager, log zerolog.Logger) *game {
	router := events.NewRouter(eng.Events())
	router.Register(audio.NewRaceCues(sound))

	return &game{
		eng:      eng,
		router:   router,
		renderer: render.NewRenderer(screen),
		sound:    sound,
		keys:     input.DefaultKeyTable(),
		log:      log,
	}
}

// handle applies one terminal event, returns false on quit
func (g *game) handle(ev tcell.Event, now time.Time) bool {
	intent := g.keys.Translate(ev)

	switch intent.Type {
	case input.IntentQuit:
		g.log.Info().Msg("Quit requested")
		return false

	case input.IntentEscape:
		g.hold.Release()
		g.eng.Abort(now)
		g.status = ""

	case input.IntentToggleMute:
		g.sound.SetMuted(!g.sound.Muted())

	case input.IntentResize:
		g.renderer.Sync()

	case input.IntentSelectClass:
		g.setStatus(g.eng.SelectCarClass(intent.Class))

	case input.IntentSelectCity:
		g.setStatus(g.eng.SelectTrack(intent.City))

	case input.IntentStart:
		if g.eng.State() == engine.StateFinished {
			g.eng.Abort(now)
			g.status = ""
			break
		}
		g.setStatus(g.eng.StartRace(now))

	case input.IntentDrive:
		if intent.Drive.IsThrottle() {
			g.hold.Press(intent.Drive, now)
			break
		}
		g.eng.Command(intent.Drive)
	}
	return true
}

func (g *game) setStatus(err error) {
	if err != nil {
		g.log.Debug().Err(err).Msg("Menu action refused")
		g.status = err.Error()
		return
	}
	g.status = ""
}

// frame advances the race to now, dispatches its events and draws the result
func (g *game) frame(now time.Time) engine.Snapshot {
	if held := g.hold.Active(now); held != engine.IntentNone {
		g.eng.Command(held)
	}

	snap := g.eng.Tick(now)
	g.router.DispatchAll()

	if snap.State != engine.StatePlaying {
		g.hold.Release()
	}

	g.renderer.Render(snap, render.NewMenuView(g.eng.Tracker(), g.status, g.sound.Muted()))
	return snap
}
