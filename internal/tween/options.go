package tween

import "github.com/vovakirdan/boing/internal/ease"

// Options is the configuration-struct form of the chained setters. Zero
// fields leave the tween untouched, so one Options value can be applied on
// top of individual setter calls.
type Options struct {
	Ease      *ease.Type
	Curve     ease.Curve // Wins over Ease
	Duration  float64
	Delay     float64
	TimeScale float64
	Unscaled  bool
	Loop      LoopType
	Loops     int
	LoopDelay float64
	Relative  bool
	Reverse   bool
	Context   any
	NoRecycle bool
}

// Apply copies every set field of o onto the tween.
func (t *Tween[T]) Apply(o Options) *Tween[T] {
	switch {
	case o.Curve != nil:
		t.SetCurve(o.Curve)
	case o.Ease != nil:
		t.SetEase(*o.Ease)
	}
	if o.Duration > 0 {
		t.SetDuration(o.Duration)
	}
	if o.Delay > 0 {
		t.SetDelay(o.Delay)
	}
	if o.TimeScale != 0 {
		t.SetTimeScale(o.TimeScale)
	}
	if o.Unscaled {
		t.SetUnscaled()
	}
	if o.Loop != LoopNone {
		t.SetLoop(o.Loop, o.Loops, o.LoopDelay)
	}
	if o.Relative {
		t.SetRelative()
	}
	if o.Reverse && !t.reversed {
		t.Reverse()
	}
	if o.Context != nil {
		t.SetContext(o.Context)
	}
	if o.NoRecycle {
		t.SetRecycle(false)
	}
	return t
}
