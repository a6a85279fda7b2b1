package curves

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/ease"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/tween"
)

func newEnv() registry.Env {
	return registry.Env{
		Runtime: core.DefaultConfig(),
		Sched:   tween.NewScheduler(nil),
	}
}

func step(d *Demo, env registry.Env, in core.InputFrame, dt float64) {
	f := tween.Step(dt)
	d.Step(in, f)
	env.Sched.Tick(f)
}

func TestCurvesResetStartsOneBarPerCurve(t *testing.T) {
	env := newEnv()
	d := New()
	d.Reset(env)

	if got, want := env.Sched.Len(), len(ease.Types()); got != want {
		t.Errorf("Len() = %d, expected %d", got, want)
	}

	step(d, env, core.NewInputFrame(), Duration/2)
	if v := d.Value(ease.Linear); math.Abs(v-0.5) > 1e-9 {
		t.Errorf("linear bar = %v, expected 0.5", v)
	}
	if v := d.Value(ease.QuadIn); math.Abs(v-0.25) > 1e-9 {
		t.Errorf("quad_in bar = %v, expected 0.25", v)
	}
}

func TestCurvesPingPong(t *testing.T) {
	env := newEnv()
	d := New()
	d.Reset(env)

	in := core.NewInputFrame()
	step(d, env, in, Duration)
	if v := d.Value(ease.Linear); v != 1 {
		t.Errorf("after one half cycle = %v, expected 1", v)
	}
	step(d, env, in, Duration/4)
	if v := d.Value(ease.Linear); math.Abs(v-0.75) > 1e-9 {
		t.Errorf("on the way back = %v, expected 0.75", v)
	}
}

func TestCurvesRestartReplacesBars(t *testing.T) {
	env := newEnv()
	d := New()
	d.Reset(env)
	step(d, env, core.NewInputFrame(), 0.5)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	step(d, env, in, 0)

	n := len(ease.Types())
	if env.Sched.Len() != n {
		t.Errorf("Len() after restart = %d, expected %d", env.Sched.Len(), n)
	}
	if got := env.Sched.Stats().Removed; got != int64(n) {
		t.Errorf("Removed = %d, expected %d", got, n)
	}
	if v := d.Value(ease.Linear); v != 0 {
		t.Errorf("linear bar after restart = %v, expected 0", v)
	}
}

func TestCurvesReverse(t *testing.T) {
	env := newEnv()
	d := New()
	d.Reset(env)
	step(d, env, core.NewInputFrame(), Duration/2)

	in := core.NewInputFrame()
	in.Set(core.ActionReverse)
	step(d, env, in, Duration/4)

	if v := d.Value(ease.Linear); math.Abs(v-0.25) > 1e-9 {
		t.Errorf("reversed bar = %v, expected 0.25", v)
	}
	if !d.reversed {
		t.Error("demo should report reversed")
	}
}

func TestCurvesSelectionWraps(t *testing.T) {
	env := newEnv()
	d := New()
	d.Reset(env)

	prev := core.NewInputFrame()
	prev.Set(core.ActionPrev)
	step(d, env, prev, 0)
	if d.Selected() != ease.BounceInOut {
		t.Errorf("Selected() = %v, expected bounce_in_out", d.Selected())
	}

	next := core.NewInputFrame()
	next.Set(core.ActionNext)
	step(d, env, next, 0)
	if d.Selected() != ease.Linear {
		t.Errorf("Selected() = %v, expected linear", d.Selected())
	}
	if d.scroll != 0 {
		t.Errorf("scroll = %d, expected 0", d.scroll)
	}
}

func TestCurvesRender(t *testing.T) {
	env := newEnv()
	d := New()
	d.Reset(env)
	step(d, env, core.NewInputFrame(), Duration)

	screen := core.NewScreen(80, 24)
	d.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "EASING CURVES") {
		t.Error("render should contain the title")
	}
	if !strings.Contains(out, ease.Linear.String()) {
		t.Error("render should list the linear curve")
	}

	// Linear sits at the right end of its track after a full half cycle.
	y := HeaderRows
	x := LabelWidth + 1 + (80 - LabelWidth - 3) - 1
	if got := screen.Get(x, y); got != BarChar {
		t.Errorf("Get(%d, %d) = %q, expected bar", x, y, got)
	}

	tiny := core.NewScreen(10, 3)
	d.Render(tiny)
}

func TestCurvesRegistered(t *testing.T) {
	if !registry.Exists("curves") {
		t.Fatal("curves demo should self-register")
	}
	demo, err := registry.Create("curves")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if demo.State().Status != "idle" {
		t.Errorf("State() before Reset = %+v", demo.State())
	}
}
