// Package orbit combines the less common value kinds: an Euler compass
// needle that always turns the short way, a breathing Rect frame, a
// satellite on a relative orbit and a spring-driven follower.
package orbit

import (
	"fmt"
	"math"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/ease"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/tween"
)

// Motion constants
const (
	OrbitPeriod   = 4.0  // Seconds per revolution
	OrbitRadius   = 8.0  // Rows; columns are doubled for cell aspect
	PulseRadius   = 3.0  // Radius offset added by one pulse
	NeedleLength  = 5    // Rows
	NeedleTurn    = 0.9  // Seconds per needle move
	NeedleHold    = 0.6  // Pause between needle moves
	FrameBreath   = 2.0  // Seconds per frame expansion
	FrameInset    = 4.0  // Cells the frame shrinks by at rest
	SpringDamping = 0.35 // Follower damping ratio
	SpringFreq    = 6.0  // Follower angular frequency
	Revolutions   = 100000
)

// Headings visited by the needle, in degrees. Consecutive entries are
// more than 180 degrees apart so the short way is visible.
var Headings = []float64{0, 270, 45, 300, 160}

type (
	orbitTag struct{}
	pulseTag struct{}
)

var (
	orbitContext = orbitTag{}
	pulseContext = pulseTag{}
)

// Demo implements the orbit showcase.
type Demo struct {
	env       registry.Env
	needle    core.Vec3 // Euler angles, Z is the heading
	heading   int
	frame     core.Rect
	angle     float64 // Satellite angle in degrees
	radius    float64
	follower  core.Vec2
	velocity  core.Vec2
	pulses    int
	reversed  bool
	needleLap int
}

// New creates a new orbit demo instance.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "orbit" }
func (d *Demo) Title() string { return "Orbit & Springs" }

// Reset starts the needle, frame and orbit tweens.
func (d *Demo) Reset(env registry.Env) {
	d.env = env
	d.restart()
}

func (d *Demo) restart() {
	s := d.env.Sched
	s.StopAllWithTarget(d, false)

	d.needle = core.Vec3{}
	d.heading = 0
	d.needleLap = 0
	d.angle = 0
	d.radius = OrbitRadius
	d.pulses = 0
	d.reversed = false
	d.velocity = core.Vec2{}
	d.frame = d.restFrame()
	d.follower = d.satellite()

	d.turnNeedle()

	tween.New(s, tween.Rect, tween.Ptr(&d.frame, d), d.wideFrame(), FrameBreath).
		SetEase(ease.SineInOut).
		SetLoop(tween.LoopPingPong, Revolutions, 0).
		Start()

	tween.NewFloat(s, tween.Ptr(&d.angle, d), 360, OrbitPeriod).
		SetEase(ease.Linear).
		SetRelative().
		SetLoop(tween.LoopRestart, Revolutions, 0).
		SetContext(orbitContext).
		Start()
}

// turnNeedle moves the needle to the next heading and schedules the move
// after it.
func (d *Demo) turnNeedle() {
	d.heading = (d.heading + 1) % len(Headings)
	if d.heading == 0 {
		d.needleLap++
	}
	to := core.Vec3{Z: Headings[d.heading]}
	tween.New(d.env.Sched, tween.Euler, tween.Ptr(&d.needle, d), to, NeedleTurn).
		SetEase(ease.CubicInOut).
		SetDelay(NeedleHold).
		OnComplete(func(core.Vec3) { d.turnNeedle() }).
		Start()
}

// pulse pushes the orbit radius out and back with a relative ping-pong.
// A pulse already in flight swallows the request.
func (d *Demo) pulse() {
	if len(d.env.Sched.FindAllWithContext(pulseContext)) > 0 {
		return
	}
	opts := d.env.Preset("pulse", tween.Options{
		Ease:     easeRef(ease.SineInOut),
		Duration: 0.6,
		Loop:     tween.LoopPingPong,
		Loops:    1,
	})
	opts.Relative = true
	opts.Context = pulseContext
	tween.NewFloat(d.env.Sched, tween.Ptr(&d.radius, d), PulseRadius, opts.Duration).
		Apply(opts).
		Start()
	d.pulses++
}

func easeRef(e ease.Type) *ease.Type { return &e }

func (d *Demo) center() core.Vec2 {
	return core.Vec2{
		X: float64(d.env.Runtime.ScreenW) / 2,
		Y: float64(d.env.Runtime.ScreenH) / 2,
	}
}

func (d *Demo) restFrame() core.Rect {
	w := float64(d.env.Runtime.ScreenW)
	h := float64(d.env.Runtime.ScreenH)
	return core.Rect{X: FrameInset * 2, Y: FrameInset, W: w - FrameInset*4, H: h - FrameInset*2}
}

func (d *Demo) wideFrame() core.Rect {
	w := float64(d.env.Runtime.ScreenW)
	h := float64(d.env.Runtime.ScreenH)
	return core.Rect{X: 0, Y: 1, W: w, H: h - 1}
}

// satellite returns the current position of the orbiting point.
func (d *Demo) satellite() core.Vec2 {
	rad := d.angle * math.Pi / 180
	c := d.center()
	return core.Vec2{
		X: c.X + math.Cos(rad)*d.radius*2,
		Y: c.Y + math.Sin(rad)*d.radius,
	}
}

// Step handles pulses and reverse, then moves the follower.
func (d *Demo) Step(in core.InputFrame, f tween.Frame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		d.restart()
	case in.Has(core.ActionNext):
		d.pulse()
	case in.Has(core.ActionReverse):
		for _, h := range d.env.Sched.FindAllWithContext(orbitContext) {
			if c, ok := h.(tween.Controller); ok {
				c.Reverse()
			}
		}
		d.reversed = !d.reversed
	}

	d.follower = tween.StableSpringVec2(d.follower, d.satellite(), &d.velocity,
		SpringDamping, SpringFreq, f.Delta)

	return core.StepResult{State: d.State()}
}

// Render draws the frame, needle, satellite and follower.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawBox(core.BoxFromRect(d.frame))

	c := d.center()
	rad := d.needle.Z * math.Pi / 180
	for i := 1; i <= NeedleLength; i++ {
		x := core.Round(c.X + math.Sin(rad)*float64(i)*2)
		y := core.Round(c.Y - math.Cos(rad)*float64(i))
		dst.SetColored(x, y, '•', core.ColorOrange)
	}
	dst.SetColored(core.Round(c.X), core.Round(c.Y), '◆', core.ColorWhite)

	f := d.follower
	dst.SetColored(core.Round(f.X), core.Round(f.Y), '○', core.ColorGreen)
	s := d.satellite()
	dst.SetColored(core.Round(s.X), core.Round(s.Y), '●', core.ColorCyan)

	hud := fmt.Sprintf(" heading: %3.0f°  radius: %.1f  pulses: %d ",
		math.Mod(d.needle.Z+360, 360), d.radius, d.pulses)
	dst.DrawText(1, 0, hud)
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	if d.env.Sched == nil {
		return core.DemoState{Status: "idle"}
	}
	dir := "cw"
	if d.reversed {
		dir = "ccw"
	}
	return core.DemoState{
		Active: d.env.Sched.Len(),
		Status: fmt.Sprintf("orbit %s  pulses %d", dir, d.pulses),
	}
}

func init() {
	registry.Register("orbit", func() registry.Demo {
		return New()
	})
}
