// Package game runs the frame loop: terminal events in, engine ticks, board out
package game

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/thingmaker/constants"
	"github.com/lixenwraith/thingmaker/engine"
	"github.com/lixenwraith/thingmaker/input"
	"github.com/lixenwraith/thingmaker/status"
	"github.com/lixenwraith/thingmaker/view"
)

// Sounds is the audio surface the loop needs
type Sounds interface {
	PlayPurchase(k engine.Kind)
	PlayReject()
	PlayPrestige()
	Enabled() bool
}

type silent struct{}

func (silent) PlayPurchase(engine.Kind) {}
func (silent) PlayReject() {}
func (silent) PlayPrestige() {}
func (silent) Enabled() bool { return false }

// Options wires optional collaborators, zero values select defaults
type Options struct {
	FPS          int
	Keys         *input.KeyTable
	Sounds       Sounds
	Metrics      *status.Registry
	TimeProvider engine.TimeProvider
	Logger       *log.Logger

	// CrashHandler runs when the input goroutine panics, before the panic is dropped
	CrashHandler func(r any)
}

// Game owns every collaborator of a session and serializes engine access on the loop goroutine
type Game struct {
	screen  tcell.Screen
	engine  *engine.Engine
	clock   *engine.PausableClock
	board   *view.Board
	mapper  *input.Mapper
	sounds  Sounds
	metrics *status.Registry
	logger  *log.Logger
	now     func() time.Time

	frameInterval time.Duration
	crashHandler  func(r any)

	// Redraw bookkeeping
	dirty         bool
	lastVersion   uint64
	lastPrestiges int
	lastDraw      time.Time
	lastFrame     time.Time
	message       string

	// Cached metric pointers
	frames      *atomic.Int64
	ticks       *atomic.Int64
	activations *atomic.Int64
	rejections  *atomic.Int64
	prestiges   *atomic.Int64
	fps         *status.AtomicFloat
	gameSeconds *status.AtomicFloat
	mode        *status.AtomicString
}

// New creates a game drawing to screen and driving eng
func New(screen tcell.Screen, eng *engine.Engine, opts Options) *Game {
	if opts.FPS == 0 {
		opts.FPS = constants.DefaultFPS
	}
	if opts.Sounds == nil {
		opts.Sounds = silent{}
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = engine.NewMonotonicTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	mapper := input.NewMapper(opts.Keys)
	g := &Game{
		screen:        screen,
		engine:        eng,
		clock:         engine.NewPausableClock(opts.TimeProvider),
		board:         view.NewBoard(mapper.Keys()),
		mapper:        mapper,
		sounds:        opts.Sounds,
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		now:           opts.TimeProvider.Now,
		frameInterval: constants.FrameInterval(opts.FPS),
		crashHandler:  opts.CrashHandler,
		dirty:         true,
		lastPrestiges: eng.Prestiges(),
	}

	m := opts.Metrics
	g.frames = m.Ints.Get(status.KeyFrames)
	g.ticks = m.Ints.Get(status.KeyTicks)
	g.activations = m.Ints.Get(status.KeyActivations)
	g.rejections = m.Ints.Get(status.KeyRejections)
	g.prestiges = m.Ints.Get(status.KeyPrestiges)
	g.fps = m.Floats.Get(status.KeyFPS)
	g.gameSeconds = m.Floats.Get(status.KeyGameSeconds)
	g.mode = m.Strings.Get(status.KeyMode)

	g.mode.Store(status.ModeRunning)
	g.prestiges.Store(int64(eng.Prestiges()))
	m.Strings.Get(status.KeyPolicy).Store(eng.Policy().String())
	audio := "off"
	if g.sounds.Enabled() {
		audio = "on"
	}
	m.Strings.Get(status.KeyAudio).Store(audio)

	return g
}

// Engine returns the driven engine
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Board returns the view board
func (g *Game) Board() *view.Board {
	return g.board
}

// Clock returns the frame clock
func (g *Game) Clock() *engine.PausableClock {
	return g.clock
}

// Handle applies one terminal event, returns false when the game should exit
func (g *Game) Handle(ev tcell.Event) bool {
	intent := g.mapper.Map(ev)

	switch intent.Type {
	case input.IntentQuit:
		g.logger.Printf("quit requested")
		return false

	case input.IntentPause:
		paused := g.clock.Toggle()
		if paused {
			g.mode.Store(status.ModePaused)
		} else {
			g.mode.Store(status.ModeRunning)
		}
		g.logger.Printf("pause=%v", paused)
		g.dirty = true

	case input.IntentActivate:
		// Hotkeys follow button visibility, hidden panels cannot be bought
		if g.board.Revealed(intent.Kind) {
			g.Activate(intent.Kind)
		}

	case input.IntentClick:
		if k, ok := g.board.HitTest(intent.X, intent.Y); ok {
			g.Activate(k)
		}

	case input.IntentResize:
		g.screen.Sync()
		g.dirty = true
	}
	return true
}

// Activate is the button press path: gate on affordability, then let the engine apply it
func (g *Game) Activate(k engine.Kind) bool {
	if g.clock.IsPaused() {
		return false
	}

	if !g.engine.IsAffordable(k) || !g.engine.Activate(k) {
		g.rejections.Add(1)
		g.sounds.PlayReject()
		rule := engine.RuleFor(k)
		g.message = fmt.Sprintf("%s needs %s", rule.Label, view.CostLabel(rule))
		g.dirty = true
		return false
	}

	g.activations.Add(1)
	g.sounds.PlayPurchase(k)
	g.message = ""
	g.logger.Printf("activate kind=%s amount=%.0f", k, g.engine.Amount(k))
	return true
}

// Frame advances the engine by the clock delta and redraws when anything visible changed
func (g *Game) Frame() {
	now := g.now()
	if !g.lastFrame.IsZero() {
		if d := now.Sub(g.lastFrame).Seconds(); d > 0 {
			// Exponential moving average keeps the readout steady
			inst := 1 / d
			prev := g.fps.Get()
			if prev == 0 {
				g.fps.Set(inst)
			} else {
				g.fps.Set(prev*0.9 + inst*0.1)
			}
		}
	}
	g.lastFrame = now
	g.frames.Add(1)

	delta := g.clock.Delta()
	if !g.clock.IsPaused() {
		g.engine.Tick(delta)
		g.ticks.Add(1)
		g.gameSeconds.Add(delta)
	}

	snap := g.engine.Snapshot()
	if snap.Prestiges != g.lastPrestiges {
		g.lastPrestiges = snap.Prestiges
		g.prestiges.Store(int64(snap.Prestiges))
		g.sounds.PlayPrestige()
		g.message = "Control given up, starting over"
		g.logger.Printf("prestige reset count=%d", snap.Prestiges)
		g.dirty = true
	}

	for _, k := range g.board.Observe(snap) {
		g.logger.Printf("panel revealed kind=%s", k)
		g.dirty = true
	}

	if snap.Version != g.lastVersion {
		g.lastVersion = snap.Version
		g.dirty = true
	}
	if now.Sub(g.lastDraw) >= constants.StatusRefreshInterval {
		g.dirty = true
	}

	if !g.dirty {
		return
	}
	g.board.Render(g.screen, snap, g.statusLine())
	g.dirty = false
	g.lastDraw = now
}

// statusLine reads the bar contents back from the metrics registry
func (g *Game) statusLine() view.StatusLine {
	m := g.metrics
	return view.StatusLine{
		Paused:      m.String(status.KeyMode) == status.ModePaused,
		FPS:         m.Float(status.KeyFPS),
		GameSeconds: m.Float(status.KeyGameSeconds),
		Prestiges:   m.Int(status.KeyPrestiges),
		Activations: m.Int(status.KeyActivations),
		Rejections:  m.Int(status.KeyRejections),
		Policy:      m.String(status.KeyPolicy),
		Audio:       m.String(status.KeyAudio),
		Message:     g.message,
	}
}

// pollEvents pumps terminal events into out until the screen is finalized or ctx ends
// out is closed only when the screen reports no more events
func (g *Game) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	defer func() {
		if r := recover(); r != nil && g.crashHandler != nil {
			g.crashHandler(r)
		}
	}()

	for {
		ev := g.screen.PollEvent()
		// nil after Fini
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

// Run drives frames and input until quit or ctx cancellation
func (g *Game) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(g.frameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	// Input polling uses a raw goroutine as it blocks on the terminal
	go g.pollEvents(ctx, eventChan)

	g.logger.Printf("loop started interval=%s policy=%s", g.frameInterval, g.engine.Policy())
	g.Frame()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-eventChan:
			if !ok {
				return nil
			}
			if !g.Handle(ev) {
				return nil
			}

		case <-frameTicker.C:
			g.Frame()
		}
	}
}
