package orbit

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/tween"
)

func newDemo() (*Demo, registry.Env) {
	env := registry.Env{
		Runtime: core.DefaultConfig(),
		Sched:   tween.NewScheduler(nil),
	}
	d := New()
	d.Reset(env)
	return d, env
}

func tick(d *Demo, env registry.Env, in core.InputFrame, dt float64) {
	f := tween.Step(dt)
	d.Step(in, f)
	env.Sched.Tick(f)
}

func idle() core.InputFrame { return core.NewInputFrame() }

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestOrbitResetStartsTweens(t *testing.T) {
	d, env := newDemo()

	if env.Sched.Len() != 3 {
		t.Errorf("Len() = %d, expected needle, frame and orbit", env.Sched.Len())
	}
	if d.radius != OrbitRadius {
		t.Errorf("radius = %v, expected %v", d.radius, OrbitRadius)
	}
}

func TestOrbitNeedleTakesShortPath(t *testing.T) {
	d, env := newDemo()

	tick(d, env, idle(), NeedleHold+NeedleTurn/2)
	if math.Abs(d.needle.Z+45) > 1e-6 {
		t.Errorf("needle Z halfway = %v, expected -45", d.needle.Z)
	}

	tick(d, env, idle(), NeedleTurn/2)
	if got := math.Mod(d.needle.Z+360, 360); math.Abs(got-270) > 1e-6 {
		t.Errorf("needle heading = %v, expected 270", got)
	}
	if d.heading != 2 {
		t.Errorf("heading index = %d, expected the next move queued", d.heading)
	}
}

func TestOrbitRelativeAngleAndReverse(t *testing.T) {
	d, env := newDemo()

	tick(d, env, idle(), OrbitPeriod/4)
	if math.Abs(d.angle-90) > 1e-6 {
		t.Errorf("angle = %v, expected 90", d.angle)
	}

	tick(d, env, press(core.ActionReverse), OrbitPeriod/8)
	if math.Abs(d.angle-45) > 1e-6 {
		t.Errorf("reversed angle = %v, expected 45", d.angle)
	}
	if d.State().Status != "orbit ccw  pulses 0" {
		t.Errorf("Status = %q", d.State().Status)
	}
}

func TestOrbitPulse(t *testing.T) {
	d, env := newDemo()

	tick(d, env, press(core.ActionNext), 0)
	tick(d, env, press(core.ActionNext), 0.6)
	if math.Abs(d.radius-(OrbitRadius+PulseRadius)) > 1e-6 {
		t.Errorf("radius at peak = %v, expected %v", d.radius, OrbitRadius+PulseRadius)
	}
	if d.pulses != 1 {
		t.Errorf("pulses = %d, expected an in-flight pulse to swallow the second", d.pulses)
	}

	tick(d, env, idle(), 0.6)
	if math.Abs(d.radius-OrbitRadius) > 1e-6 {
		t.Errorf("radius after pulse = %v, expected %v", d.radius, OrbitRadius)
	}
}

func TestOrbitFollowerSprings(t *testing.T) {
	d, env := newDemo()
	d.follower = core.Vec2{}

	dist := func() float64 {
		diff := d.satellite().Sub(d.follower)
		return math.Hypot(diff.X, diff.Y)
	}
	before := dist()
	for range 30 {
		tick(d, env, idle(), 1.0/60)
	}
	if after := dist(); after >= before {
		t.Errorf("follower distance %v, expected below %v", after, before)
	}
}

func TestOrbitRestart(t *testing.T) {
	d, env := newDemo()
	tick(d, env, idle(), 1)

	tick(d, env, press(core.ActionRestart), 0)
	if got := env.Sched.Stats().Removed; got != 3 {
		t.Errorf("Removed = %d, expected 3", got)
	}
	if env.Sched.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", env.Sched.Len())
	}
	if d.angle != 0 {
		t.Errorf("angle = %v, expected 0", d.angle)
	}
}

func TestOrbitRender(t *testing.T) {
	d, env := newDemo()
	tick(d, env, idle(), 0.1)

	screen := core.NewScreen(80, 24)
	d.Render(screen)

	if got := screen.Get(40, 12); got != '◆' {
		t.Errorf("Get(center) = %q, expected hub", got)
	}
	if !strings.Contains(screen.Row(0), "pulses: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
}
