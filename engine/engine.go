package engine

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-clock/clock"
	"github.com/lixenwraith/vi-clock/content"
	"github.com/lixenwraith/vi-clock/fireworks"
	"github.com/lixenwraith/vi-clock/render"
	"github.com/lixenwraith/vi-clock/status"
)

// statusLogEvery is the number of clock ticks between status log lines
const statusLogEvery = 60

// Toggle is a switchable optional subsystem
type Toggle interface {
	SetEnabled(on bool)
	Enabled() bool
	Available() bool
}

// TickSound plays the per-second tick
type TickSound interface {
	Toggle
	Play()
}

// Announcer speaks the hour
type Announcer interface {
	Toggle
	Announce(hour int) bool
}

// Options wires the engine's collaborators
type Options struct {
	Log       zerolog.Logger
	Clock     *clock.Clock
	Field     *fireworks.Field
	Catalogue *content.Catalogue
	Tick      TickSound
	Announcer Announcer
	Theme     render.Theme
	Status    *status.Registry
}

// Engine owns the frame and clock state; all methods run on the loop goroutine
type Engine struct {
	log       zerolog.Logger
	clock     *clock.Clock
	field     *fireworks.Field
	catalogue *content.Catalogue
	tick      TickSound
	announcer Announcer

	orchestrator *render.Orchestrator
	particles    *render.ParticleLayer

	width, height int
	layout        render.Layout
	snapshot      clock.Snapshot
	message       string

	status        *status.Registry
	statFrames    *atomic.Int64
	statTicks     *atomic.Int64
	statActive    *atomic.Int64
	statSpawned   *atomic.Int64
	statAnnounced *atomic.Int64
	statIntensity *status.AtomicFloat
}

// New creates an engine, the first clock tick happens in Run or on ClockTick
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.New(nil)
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	e := &Engine{
		log:          opts.Log,
		clock:        opts.Clock,
		field:        opts.Field,
		catalogue:    opts.Catalogue,
		tick:         opts.Tick,
		announcer:    opts.Announcer,
		orchestrator: render.NewOrchestrator(),
		particles:    render.NewParticleLayer(opts.Theme),
		status:       opts.Status,
	}

	e.orchestrator.Register(render.NewBackgroundLayer(opts.Theme), render.PriorityBackground)
	e.orchestrator.Register(e.particles, render.PriorityParticle)
	e.orchestrator.Register(render.NewPanelLayer(opts.Theme), render.PriorityPanel)

	e.statFrames = e.status.Ints.Get(status.Frames)
	e.statTicks = e.status.Ints.Get(status.ClockTicks)
	e.statActive = e.status.Ints.Get(status.BurstsActive)
	e.statSpawned = e.status.Ints.Get(status.BurstsSpawned)
	e.statAnnounced = e.status.Ints.Get(status.Announcements)
	e.statIntensity = e.status.Floats.Get(status.Intensity)

	e.snapshot = e.clock.Snapshot()
	e.refreshMessage()
	return e
}

// Resize relayouts the panels and resizes the firework sky
func (e *Engine) Resize(width, height int) {
	e.width, e.height = width, height
	e.relayout()
}

func (e *Engine) relayout() {
	e.layout = render.NewLayout(e.width, e.height, e.message)
	if e.field != nil {
		e.field.Resize(e.layout.SkyUnits())
	}
}

func (e *Engine) refreshMessage() {
	if e.catalogue == nil {
		return
	}
	e.message = e.catalogue.ForDay(e.clock.Now())
}

// FrameTick advances the fireworks one frame at the current countdown intensity
func (e *Engine) FrameTick() {
	e.statFrames.Add(1)
	if e.field == nil {
		return
	}
	e.field.Tick(e.snapshot.Intensity)
	e.statActive.Store(int64(e.field.Len()))
	e.statSpawned.Store(int64(e.field.Spawned()))
}

// ClockTick refreshes the clock, plays the tick and fires hourly announcements
func (e *Engine) ClockTick() {
	u := e.clock.Tick()
	e.snapshot = u.Snapshot
	e.statIntensity.Set(u.Intensity)

	if u.Announce {
		if e.announcer != nil && e.announcer.Announce(u.Hour) {
			e.statAnnounced.Add(1)
		}
		if u.NewDay {
			e.refreshMessage()
			e.relayout()
			e.log.Info().Str("message", e.message).Msg("daily message changed")
		}
	}

	if e.tick != nil {
		e.tick.Play()
	}

	if n := e.statTicks.Add(1); n%statusLogEvery == 0 {
		e.log.Debug().Fields(e.status.Fields()).Msg("status")
	}
}

// HandleKey applies a key press, returns false to quit
func (e *Engine) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case 'v', 'V':
		e.toggle("voice", e.announcer)
	case 't', 'T':
		e.toggle("tick", e.tick)
	case 'f', 'F':
		if e.field != nil {
			w, h := e.field.Size()
			e.field.Launch(w/2, h/2)
		}
	case 'p', 'P':
		e.particles.SetVisible(!e.particles.IsVisible())
	}
	return true
}

func (e *Engine) toggle(name string, t Toggle) {
	if t == nil {
		return
	}
	t.SetEnabled(!t.Enabled())
	e.log.Info().Str("switch", name).Bool("enabled", t.Enabled()).Msg("toggled")
}

// Context builds the render context of the current frame
func (e *Engine) Context() render.Context {
	ctx := render.Context{
		Width:    e.width,
		Height:   e.height,
		Layout:   e.layout,
		Snapshot: e.snapshot,
		Message:  e.message,
		Field:    e.field,
	}
	if e.announcer != nil {
		ctx.VoiceOn = e.announcer.Enabled()
		ctx.VoiceAvailable = e.announcer.Available()
	}
	if e.tick != nil {
		ctx.TickOn = e.tick.Enabled()
		ctx.TickAvailable = e.tick.Available()
	}
	return ctx
}

// Render draws the frame onto the canvas
func (e *Engine) Render(c render.Canvas) {
	e.orchestrator.RenderFrame(e.Context(), c)
}

// Message returns the current daily message
func (e *Engine) Message() string {
	return e.message
}

// Layout returns the current layout
func (e *Engine) Layout() render.Layout {
	return e.layout
}
