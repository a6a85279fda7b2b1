// Package sequence drives a box around the screen with a Sequence of Vec2
// tweens. Each lap chains a color change and starts the next lap.
package sequence

import (
	"fmt"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/ease"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/tween"
)

const (
	BoxW      = 6   // Box width in cells
	BoxH      = 3   // Box height in cells
	Margin    = 3   // Distance between the path and the screen edge
	FadeTime  = 0.5 // Seconds for the chained color change
	PathChar  = '·'
	BlockChar = '█'
)

// Presets cycled with Next/Prev, in order.
var Presets = []string{"slide", "pop", "drop", "wobble"}

var fallbacks = map[string]tween.Options{
	"slide":  {Ease: easeRef(ease.CubicInOut), Duration: 0.8},
	"pop":    {Ease: easeRef(ease.BackOut), Duration: 0.4},
	"drop":   {Ease: easeRef(ease.BounceOut), Duration: 1},
	"wobble": {Ease: easeRef(ease.ElasticOut), Duration: 1.2, Loop: tween.LoopRestart, Loops: 2, LoopDelay: 0.25},
}

var palette = []core.Color{
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorGreen,
}

func easeRef(e ease.Type) *ease.Type { return &e }

type lapTag struct{}

var lapContext = lapTag{}

// Demo implements the sequence showcase.
type Demo struct {
	env      registry.Env
	seq      *tween.Sequence
	pos      core.Vec2
	color    core.Color
	preset   int
	colorIdx int
	laps     int
	loops    int
}

// New creates a new sequence demo instance.
func New() *Demo {
	return &Demo{}
}

func (d *Demo) ID() string    { return "sequence" }
func (d *Demo) Title() string { return "Sequence & Chaining" }

// Reset places the box in the top-left corner and starts the first lap.
func (d *Demo) Reset(env registry.Env) {
	d.env = env
	d.restart()
}

func (d *Demo) restart() {
	d.env.Sched.StopAllWithContext(lapContext, false)
	d.pos = d.corners()[0]
	d.colorIdx = 0
	d.color = palette[0]
	d.laps = 0
	d.loops = 0
	d.startLap()
}

// corners returns the path in travel order, starting top-left.
func (d *Demo) corners() []core.Vec2 {
	w := float64(d.env.Runtime.ScreenW)
	h := float64(d.env.Runtime.ScreenH)
	left, top := float64(Margin), float64(Margin)
	right := max(w-Margin-BoxW, left)
	bottom := max(h-Margin-BoxH, top)
	return []core.Vec2{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
}

func (d *Demo) presetName() string { return Presets[d.preset] }

func (d *Demo) startLap() {
	s := d.env.Sched
	name := d.presetName()
	opts := d.env.Preset(name, fallbacks[name])

	corners := d.corners()
	seq := s.NewSequence().SetContext(lapContext)
	var last *tween.Tween[core.Vec2]
	for i := 1; i <= len(corners); i++ {
		last = tween.New(s, tween.Vec2, tween.Ptr(&d.pos, d), corners[i%len(corners)], opts.Duration).
			Apply(opts).
			OnLoopComplete(func(core.Vec2) { d.loops++ })
		seq.Append(last)
	}
	last.SetNext(d.fade())

	seq.OnComplete(func(*tween.Sequence) {
		d.laps++
		d.startLap()
	})
	d.seq = seq
	seq.Start()
}

// fade builds the color change chained after the last leg of a lap.
func (d *Demo) fade() *tween.Tween[core.Color] {
	to := palette[(d.colorIdx+1)%len(palette)]
	return tween.New(d.env.Sched, tween.Color, tween.Ptr(&d.color, d), to, FadeTime).
		SetEase(ease.SineInOut).
		SetContext(lapContext).
		OnComplete(func(core.Color) {
			d.colorIdx = (d.colorIdx + 1) % len(palette)
		})
}

// Step cycles presets and restarts on request.
func (d *Demo) Step(in core.InputFrame, _ tween.Frame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		d.restart()
	case in.Has(core.ActionNext):
		d.preset = (d.preset + 1) % len(Presets)
		d.restart()
	case in.Has(core.ActionPrev):
		d.preset = (d.preset - 1 + len(Presets)) % len(Presets)
		d.restart()
	}
	return core.StepResult{State: d.State()}
}

// Render draws the path and the box.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	c := d.corners()
	path := core.NewBox(int(c[0].X)+BoxW/2, int(c[0].Y)+BoxH/2,
		int(c[1].X-c[0].X)+1, int(c[2].Y-c[1].Y)+1)
	for x := path.X; x < path.Right(); x++ {
		dst.Set(x, path.Y, PathChar)
		dst.Set(x, path.Bottom()-1, PathChar)
	}
	for y := path.Y; y < path.Bottom(); y++ {
		dst.Set(path.X, y, PathChar)
		dst.Set(path.Right()-1, y, PathChar)
	}

	box := core.NewBox(core.Round(d.pos.X), core.Round(d.pos.Y), BoxW, BoxH)
	dst.DrawRect(box, BlockChar, d.color)

	hud := fmt.Sprintf(" preset: %s  lap: %d  loops: %d  leg: %d/%d ",
		d.presetName(), d.laps, d.loops, d.leg(), len(c))
	dst.DrawText(1, 0, hud)
}

func (d *Demo) leg() int {
	if d.seq == nil {
		return 0
	}
	return min(d.seq.Current()+1, d.seq.Len())
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	if d.env.Sched == nil {
		return core.DemoState{Status: "idle"}
	}
	return core.DemoState{
		Active: d.env.Sched.Len(),
		Status: fmt.Sprintf("%s  lap %d", d.presetName(), d.laps),
	}
}

func init() {
	registry.Register("sequence", func() registry.Demo {
		return New()
	})
}
