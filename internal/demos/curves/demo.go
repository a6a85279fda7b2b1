// Package curves shows every catalog easing curve as a bar that ping-pongs
// between the left and right edge of the screen.
package curves

import (
	"fmt"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/ease"
	"github.com/vovakirdan/boing/internal/registry"
	"github.com/vovakirdan/boing/internal/tween"
)

// Layout and timing constants
const (
	LabelWidth = 16     // Column reserved for the curve name
	HeaderRows = 2      // Title and spacer above the first bar
	Duration   = 1.6    // Seconds per half cycle
	Cycles     = 100000 // Ping-pong cycles per bar; restart rebuilds them
	BarChar    = '█'    // Moving marker
	TrackChar  = '·'    // Bar track
)

var (
	slowColor = core.ColorBlue
	fastColor = core.ColorOrange
)

type barsTag struct{}

// barsContext tags every bar tween so restart can stop exactly those.
var barsContext = barsTag{}

// Demo implements the curves gallery.
type Demo struct {
	env      registry.Env
	types    []ease.Type
	values   []float64
	selected int
	scroll   int
	reversed bool
	restarts int
}

// New creates a new curves demo instance.
func New() *Demo {
	return &Demo{types: ease.Types()}
}

func (d *Demo) ID() string    { return "curves" }
func (d *Demo) Title() string { return "Easing Curves" }

// Reset rebuilds one ping-pong tween per curve.
func (d *Demo) Reset(env registry.Env) {
	d.env = env
	d.reversed = false
	d.restart()
}

func (d *Demo) restart() {
	s := d.env.Sched
	s.StopAllWithContext(barsContext, false)

	d.values = make([]float64, len(d.types))
	for i, e := range d.types {
		tween.New(s, tween.Float, tween.Ptr(&d.values[i], d), 1, Duration).
			SetEase(e).
			SetLoop(tween.LoopPingPong, Cycles, 0).
			SetContext(barsContext).
			Start()
	}
	d.restarts++
}

// Step handles selection, restart and reverse.
func (d *Demo) Step(in core.InputFrame, _ tween.Frame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		d.reversed = false
		d.restart()
	case in.Has(core.ActionReverse):
		d.reverse()
	case in.Has(core.ActionNext):
		d.selected = (d.selected + 1) % len(d.types)
	case in.Has(core.ActionPrev):
		d.selected = (d.selected - 1 + len(d.types)) % len(d.types)
	}
	d.follow()
	return core.StepResult{State: d.State()}
}

func (d *Demo) reverse() {
	for _, h := range d.env.Sched.FindAllWithContext(barsContext) {
		if c, ok := h.(tween.Controller); ok {
			c.Reverse()
		}
	}
	d.reversed = !d.reversed
}

// follow keeps the selected row inside the visible window.
func (d *Demo) follow() {
	rows := d.visibleRows()
	if d.selected < d.scroll {
		d.scroll = d.selected
	}
	if d.selected >= d.scroll+rows {
		d.scroll = d.selected - rows + 1
	}
}

func (d *Demo) visibleRows() int {
	return max(d.env.Runtime.ScreenH-HeaderRows-1, 1)
}

// Selected returns the highlighted curve.
func (d *Demo) Selected() ease.Type { return d.types[d.selected] }

// Value returns the current bar value for e.
func (d *Demo) Value(e ease.Type) float64 {
	for i, t := range d.types {
		if t == e {
			return d.values[i]
		}
	}
	return 0
}

// Render draws the visible bars.
func (d *Demo) Render(dst *core.Screen) {
	dst.Clear()

	title := "EASING CURVES"
	if d.reversed {
		title += " (reversed)"
	}
	dst.DrawTextColored(2, 0, title, core.ColorYellow)

	track := dst.Width() - LabelWidth - 3
	if track < 2 {
		return
	}

	end := min(d.scroll+d.visibleRows(), len(d.types))
	for row, i := 0, d.scroll; i < end; row, i = row+1, i+1 {
		y := HeaderRows + row
		label := fmt.Sprintf(" %-14s", d.types[i])
		if i == d.selected {
			dst.DrawTextColored(0, y, "▶"+label[1:], core.ColorCyan)
		} else {
			dst.DrawText(0, y, label)
		}

		x0 := LabelWidth + 1
		dst.DrawHLine(x0, y, track, TrackChar)

		v := d.values[i]
		pos := core.Clamp(core.Round(v*float64(track-1)), 0, track-1)
		dst.SetColored(x0+pos, y, BarChar, slowColor.Lerp(fastColor, core.ClampF(v, 0, 1)))
		if d.types[i].Overshoots() && (v < 0 || v > 1) {
			dst.SetColored(x0+track, y, '!', core.ColorRed)
		}
	}
}

// State returns the current demo state.
func (d *Demo) State() core.DemoState {
	if len(d.values) == 0 {
		return core.DemoState{Status: "idle"}
	}
	status := fmt.Sprintf("%s  %.2f", d.types[d.selected], d.values[d.selected])
	return core.DemoState{
		Active: d.env.Sched.Len(),
		Status: status,
	}
}

func init() {
	registry.Register("curves", func() registry.Demo {
		return New()
	})
}
