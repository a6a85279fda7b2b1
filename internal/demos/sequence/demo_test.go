package sequence

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/ease"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/tween"
)

func linearEnv(opts tween.Options) registry.Env {
	return registry.Env{
		Runtime: core.DefaultConfig(),
		Sched:   tween.NewScheduler(nil),
		Presets: map[string]tween.Options{"slide": opts},
	}
}

func linear(duration float64) tween.Options {
	return tween.Options{Ease: easeRef(ease.Linear), Duration: duration}
}

func tick(d *Demo, env registry.Env, dt float64) {
	f := tween.Step(dt)
	d.Step(core.NewInputFrame(), f)
	env.Sched.Tick(f)
}

func nearVec(a, b core.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestSequenceLegsRunInOrder(t *testing.T) {
	env := linearEnv(linear(1))
	d := New()
	d.Reset(env)
	c := d.corners()

	if env.Sched.Len() != 1 {
		t.Errorf("Len() = %d, expected only the sequence registered", env.Sched.Len())
	}

	tick(d, env, 0.5)
	if want := c[0].Lerp(c[1], 0.5); !nearVec(d.pos, want) {
		t.Errorf("pos = %v, expected %v", d.pos, want)
	}

	tick(d, env, 0.5)
	if !nearVec(d.pos, c[1]) {
		t.Errorf("pos = %v, expected corner %v", d.pos, c[1])
	}
	if d.leg() != 2 {
		t.Errorf("leg() = %d, expected 2", d.leg())
	}

	tick(d, env, 1)
	if !nearVec(d.pos, c[2]) {
		t.Errorf("pos = %v, expected corner %v", d.pos, c[2])
	}
}

func TestSequenceLapChainsColorAndRestarts(t *testing.T) {
	env := linearEnv(linear(1))
	d := New()
	d.Reset(env)
	c := d.corners()

	for range 4 {
		tick(d, env, 1)
	}
	if d.laps != 1 {
		t.Fatalf("laps = %d, expected 1", d.laps)
	}
	if !nearVec(d.pos, c[0]) {
		t.Errorf("pos = %v, expected back at start %v", d.pos, c[0])
	}

	tick(d, env, FadeTime)
	if d.colorIdx != 1 {
		t.Errorf("colorIdx = %d, expected 1 after the chained fade", d.colorIdx)
	}
	if d.color != palette[1] {
		t.Errorf("color = %v, expected %v", d.color, palette[1])
	}
	if want := c[0].Lerp(c[1], FadeTime); !nearVec(d.pos, want) {
		t.Errorf("second lap pos = %v, expected %v", d.pos, want)
	}
}

func TestSequenceLoopCounter(t *testing.T) {
	opts := linear(0.5)
	opts.Loop = tween.LoopRestart
	opts.Loops = 2
	env := linearEnv(opts)
	d := New()
	d.Reset(env)

	tick(d, env, 0.5)
	tick(d, env, 0.5)
	if d.loops != 2 {
		t.Errorf("loops = %d, expected 2 after the first leg", d.loops)
	}
	if d.leg() != 2 {
		t.Errorf("leg() = %d, expected 2", d.leg())
	}
}

func TestSequenceRestartDropsLap(t *testing.T) {
	env := linearEnv(linear(1))
	d := New()
	d.Reset(env)
	tick(d, env, 0.5)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	d.Step(in, tween.Step(0))

	if !nearVec(d.pos, d.corners()[0]) {
		t.Errorf("pos = %v, expected start corner", d.pos)
	}

	// The stopped sequence leaves on the next tick without finishing a lap.
	env.Sched.Tick(tween.Step(0.5))
	if d.laps != 0 {
		t.Errorf("laps = %d, expected 0", d.laps)
	}
	if env.Sched.Len() != 1 {
		t.Errorf("Len() = %d, expected only the new sequence", env.Sched.Len())
	}
}

func TestSequencePresetCycle(t *testing.T) {
	env := linearEnv(linear(1))
	d := New()
	d.Reset(env)

	next := core.NewInputFrame()
	next.Set(core.ActionNext)
	d.Step(next, tween.Step(0))
	if d.presetName() != "pop" {
		t.Errorf("preset = %q, expected pop", d.presetName())
	}

	prev := core.NewInputFrame()
	prev.Set(core.ActionPrev)
	d.Step(prev, tween.Step(0))
	d.Step(prev, tween.Step(0))
	if d.presetName() != "wobble" {
		t.Errorf("preset = %q, expected wobble", d.presetName())
	}
}

func TestSequenceRender(t *testing.T) {
	env := linearEnv(linear(1))
	d := New()
	d.Reset(env)
	tick(d, env, 0)

	screen := core.NewScreen(80, 24)
	d.Render(screen)

	c := d.corners()[0]
	cell := screen.GetCell(int(c.X), int(c.Y))
	if cell.Rune != BlockChar || cell.Color != palette[0] {
		t.Errorf("GetCell() = %+v, expected colored block", cell)
	}
	if !strings.Contains(screen.Row(0), "preset: slide") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}
