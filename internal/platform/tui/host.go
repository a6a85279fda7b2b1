package tui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/storage"
	"github.com/vovakirdan/boing/internal/tween"
)

// Time scale limits and step for the Faster/Slower actions
const (
	MinTimeScale  = 0.05
	MaxTimeScale  = 8.0
	TimeScaleStep = 1.25
)

// Host runs one demo at a time on its own scheduler. It holds no Bubble
// Tea state so the same loop serves the local program, SSH sessions and
// tests.
type Host struct {
	engine *Engine
	sched  *tween.Scheduler
	store  *storage.Store
	logger *log.Logger
	config core.RuntimeConfig
	screen *core.Screen
	now    func() time.Time

	demo      registry.Demo
	state     core.DemoState
	timeScale float64
	paused    bool

	// Per-run bookkeeping
	started  time.Time
	baseline tween.Stats
	peak     int
}

// NewHost creates a host with a fresh scheduler from engine.
func NewHost(engine *Engine, store *storage.Store, cfg core.RuntimeConfig) (*Host, error) {
	sched, err := engine.NewScheduler()
	if err != nil {
		return nil, err
	}
	if cfg.TimeScale <= 0 {
		cfg.TimeScale = 1
	}
	return &Host{
		engine:    engine,
		sched:     sched,
		store:     store,
		logger:    engine.Logger(),
		config:    cfg,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		now:       time.Now,
		timeScale: cfg.TimeScale,
	}, nil
}

// Scheduler returns the host's scheduler.
func (h *Host) Scheduler() *tween.Scheduler { return h.sched }

// Demo returns the running demo, or nil.
func (h *Host) Demo() registry.Demo { return h.demo }

// TimeScale returns the current scaled-clock multiplier.
func (h *Host) TimeScale() float64 { return h.timeScale }

// Paused reports whether every tween is paused.
func (h *Host) Paused() bool { return h.paused }

// State returns the demo state from the last step.
func (h *Host) State() core.DemoState { return h.state }

// Load ends the current run, flushes the scheduler and starts demo.
func (h *Host) Load(demo registry.Demo) {
	h.Finish()

	if n := h.sched.SceneReset(); n > 0 {
		h.logger.Debug("scene reset", "flushed", n)
	}
	h.demo = demo
	h.paused = false
	h.reset()
}

func (h *Host) reset() {
	h.started = h.now()
	h.baseline = h.sched.Stats()
	h.demo.Reset(h.env())
	h.state = h.demo.State()
	h.peak = h.sched.Len()
}

func (h *Host) env() registry.Env {
	cfg := h.config
	cfg.TimeScale = h.timeScale
	return registry.Env{
		Runtime: cfg,
		Sched:   h.sched,
		Presets: h.engine.Presets(),
		Logger:  h.logger,
	}
}

// Frame returns the clock deltas for one host tick.
func (h *Host) Frame() tween.Frame {
	dt := h.config.FrameDelta()
	return tween.Frame{Delta: dt * h.timeScale, UnscaledDelta: dt}
}

// Step applies host-level actions, steps the demo and ticks the scheduler.
func (h *Host) Step(in core.InputFrame) core.DemoState {
	if h.demo == nil {
		return core.DemoState{}
	}

	switch {
	case in.Has(core.ActionPause):
		h.togglePause()
	case in.Has(core.ActionFaster):
		h.timeScale = min(h.timeScale*TimeScaleStep, MaxTimeScale)
	case in.Has(core.ActionSlower):
		h.timeScale = max(h.timeScale/TimeScaleStep, MinTimeScale)
	case in.Has(core.ActionComplete):
		h.sched.StopAll(true)
	case in.Has(core.ActionRestart):
		h.paused = false
	}

	f := h.Frame()
	if h.paused {
		f = tween.Frame{}
	}
	h.state = h.demo.Step(in, f).State
	h.sched.Tick(f)

	h.peak = max(h.peak, h.sched.Len())
	h.state.Active = h.sched.Len()
	return h.state
}

func (h *Host) togglePause() {
	h.paused = !h.paused
	if h.paused {
		h.sched.PauseAll()
	} else {
		h.sched.ResumeAll()
	}
}

// Resize adapts the screen and restarts the demo at the new size.
func (h *Host) Resize(w, ht int) {
	h.config.ScreenW = w
	h.config.ScreenH = ht
	h.screen.Resize(w, ht)
	if h.demo != nil {
		h.sched.SceneReset()
		h.paused = false
		h.reset()
	}
}

// Reload restarts the demo with the engine's current presets.
func (h *Host) Reload() {
	if h.demo == nil {
		return
	}
	h.sched.StopAll(false)
	h.paused = false
	h.demo.Reset(h.env())
	h.state = h.demo.State()
}

// Render draws the demo and returns the screen buffer.
func (h *Host) Render() *core.Screen {
	h.screen.Clear()
	if h.demo != nil {
		h.demo.Render(h.screen)
	}
	return h.screen
}

// Run returns the statistics of the current run so far.
func (h *Host) Run() storage.Run {
	if h.demo == nil {
		return storage.Run{}
	}
	stats := h.sched.Stats()
	return storage.Run{
		DemoID:         h.demo.ID(),
		Ticks:          stats.Ticks - h.baseline.Ticks,
		TweensStarted:  stats.Started - h.baseline.Started,
		TweensComplete: stats.Completed - h.baseline.Completed,
		PeakActive:     h.peak,
		TimeScale:      h.timeScale,
		WallSeconds:    h.now().Sub(h.started).Seconds(),
	}
}

// Finish saves the current run, if any, and detaches the demo.
func (h *Host) Finish() {
	if h.demo == nil {
		return
	}
	run := h.Run()
	h.demo = nil

	if h.store == nil || run.Ticks == 0 {
		return
	}
	if _, err := h.store.SaveRun(run); err != nil {
		h.logger.Warn("could not save run", "demo", run.DemoID, "error", err)
	}
}
