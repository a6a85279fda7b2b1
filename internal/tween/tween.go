package tween

import (
	"fmt"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/ease"
)

// LoopType selects what happens when a tween reaches its end.
type LoopType int

const (
	LoopNone LoopType = iota
	LoopRestart
	LoopPingPong
)

func (l LoopType) String() string {
	switch l {
	case LoopNone:
		return "none"
	case LoopRestart:
		return "restart"
	case LoopPingPong:
		return "ping_pong"
	default:
		return fmt.Sprintf("loop(%d)", int(l))
	}
}

// ParseLoopType accepts the names produced by String.
func ParseLoopType(name string) (LoopType, error) {
	switch name {
	case "", "none":
		return LoopNone, nil
	case "restart":
		return LoopRestart, nil
	case "ping_pong", "pingpong":
		return LoopPingPong, nil
	}
	return LoopNone, fmt.Errorf("tween: unknown loop type %q", name)
}

// Tween interpolates one target from a start value to a destination.
//
// Tweens are built through a Scheduler (New, Value) and configured with the
// chained setters before Start. A tween rests in the complete state both
// before its first Start and after it finishes, and may be restarted from
// there unless it has been recycled.
type Tween[T any] struct {
	sched *Scheduler
	kind  Kind[T]

	target         Target[T]
	from           T
	to             T // Resolved destination
	toInput        T // Destination as configured, an offset in relative mode
	last           T
	fromOverridden bool
	relative       bool

	easeType ease.Type
	curve    ease.Curve

	state     state
	delay     float64
	duration  float64
	elapsed   float64
	timeScale float64
	unscaled  bool
	reversed  bool

	loopType  LoopType
	loops     int // Configured count, PingPong half-cycles
	loopsLeft int
	loopDelay float64

	onUpdate   func(T)
	onComplete func(T)
	onLoop     func(T)
	next       Tweenable

	context any
	recycle bool
	nested  bool
	pooled  bool
	stopped bool // Stopped without completing
	done    doneSignal
}

func newTween[T any](s *Scheduler, k Kind[T]) *Tween[T] {
	t := &Tween[T]{sched: s, kind: k}
	t.reset()
	return t
}

// reset drops every transient field. A pending chained tween is recycled.
func (t *Tween[T]) reset() {
	if t.next != nil {
		t.next.RecycleSelf()
	}

	var zero T
	t.target = nil
	t.from, t.to, t.toInput, t.last = zero, zero, zero, zero
	t.fromOverridden = false
	t.relative = false
	t.easeType = t.sched.settings.DefaultEase
	t.curve = nil
	t.state = stateComplete
	t.delay = 0
	t.duration = 0
	t.elapsed = 0
	t.timeScale = 1
	t.unscaled = false
	t.reversed = false
	t.loopType = LoopNone
	t.loops = 0
	t.loopsLeft = 0
	t.loopDelay = 0
	t.onUpdate = nil
	t.onComplete = nil
	t.onLoop = nil
	t.next = nil
	t.context = nil
	t.recycle = true
	t.nested = false
	t.stopped = false
	t.done.clear()
}

// Initialize rebinds the tween to a target and destination, clearing all
// previous configuration.
func (t *Tween[T]) Initialize(target Target[T], to T, duration float64) *Tween[T] {
	t.reset()
	t.target = target
	t.toInput = to
	t.to = to
	t.duration = duration
	return t
}

// SetEase selects a catalog curve and drops any custom curve.
func (t *Tween[T]) SetEase(e ease.Type) *Tween[T] {
	t.easeType = e
	t.curve = nil
	return t
}

// SetCurve installs a custom curve. It wins over the catalog tag until the
// next SetEase.
func (t *Tween[T]) SetCurve(c ease.Curve) *Tween[T] {
	t.curve = c
	return t
}

// SetDelay postpones the first update. Negative delays clamp to zero.
func (t *Tween[T]) SetDelay(seconds float64) *Tween[T] {
	t.delay = max(seconds, 0)
	if t.state == stateComplete {
		t.elapsed = -t.delay
	}
	return t
}

func (t *Tween[T]) SetDuration(seconds float64) *Tween[T] {
	t.duration = seconds
	return t
}

func (t *Tween[T]) SetTimeScale(scale float64) *Tween[T] {
	t.timeScale = scale
	return t
}

// SetUnscaled makes the tween follow the host's unscaled clock.
func (t *Tween[T]) SetUnscaled() *Tween[T] {
	t.unscaled = true
	return t
}

// SetLoop configures looping. For PingPong each count is a full
// forward-and-back cycle.
func (t *Tween[T]) SetLoop(loop LoopType, count int, interLoopDelay float64) *Tween[T] {
	count = max(count, 0)
	if loop == LoopPingPong {
		count *= 2
	}
	t.loopType = loop
	t.loops = count
	t.loopsLeft = count
	t.loopDelay = max(interLoopDelay, 0)
	return t
}

// SetRelative treats the destination as an offset from the start value.
// On a running tween the offset resolves against the captured start value
// right away.
func (t *Tween[T]) SetRelative() *Tween[T] {
	t.relative = true
	if t.state != stateComplete {
		t.resolveTo()
	}
	return t
}

// SetFrom overrides the start value so Start does not read the target.
func (t *Tween[T]) SetFrom(v T) *Tween[T] {
	t.from = v
	t.fromOverridden = true
	return t
}

func (t *Tween[T]) SetContext(ctx any) *Tween[T] {
	t.context = ctx
	return t
}

// SetNext chains a tweenable that starts when this one completes for good.
func (t *Tween[T]) SetNext(next Tweenable) *Tween[T] {
	t.next = next
	return t
}

// SetRecycle controls whether the tween is recycled after completion.
// Keep it false for tweens that are restarted by hand.
func (t *Tween[T]) SetRecycle(recycle bool) *Tween[T] {
	t.recycle = recycle
	return t
}

func (t *Tween[T]) OnUpdate(fn func(T)) *Tween[T] {
	t.onUpdate = fn
	return t
}

func (t *Tween[T]) OnComplete(fn func(T)) *Tween[T] {
	t.onComplete = fn
	return t
}

// OnLoopComplete fires after every full loop cycle.
func (t *Tween[T]) OnLoopComplete(fn func(T)) *Tween[T] {
	t.onLoop = fn
	return t
}

// Duration returns the configured duration in seconds.
func (t *Tween[T]) Duration() float64 { return t.duration }

// Elapsed returns the clock position, negative while delayed.
func (t *Tween[T]) Elapsed() float64 { return t.elapsed }

// From returns the start value captured by Start or set by SetFrom.
func (t *Tween[T]) From() T { return t.from }

// To returns the resolved destination.
func (t *Tween[T]) To() T { return t.to }

// LoopsLeft returns the remaining loop count.
func (t *Tween[T]) LoopsLeft() int { return t.loopsLeft }

// Kind returns the value kind this tween interpolates.
func (t *Tween[T]) Kind() KindID { return t.kind.ID }

func (t *Tween[T]) Context() any { return t.context }

func (t *Tween[T]) TargetOwner() any {
	if t.target == nil {
		return nil
	}
	return t.target.Owner()
}

func (t *Tween[T]) setNested(nested bool) { t.nested = nested }

// Start captures the start value and registers with the scheduler. It is a
// no-op unless the tween is complete.
func (t *Tween[T]) Start() {
	if t.state != stateComplete {
		return
	}
	if t.target == nil {
		t.sched.settings.Logger.Error("tween: start without target", "kind", t.kind.ID)
		return
	}

	if !t.fromOverridden {
		t.from = t.read()
	}
	t.resolveTo()

	if t.reversed {
		t.elapsed = t.duration + t.delay
	} else {
		t.elapsed = -t.delay
	}
	t.loopsLeft = t.loops
	t.state = stateRunning
	t.stopped = false
	t.done.arm()

	t.sched.noteStart()
	if !t.nested {
		t.sched.Add(t)
	}
}

func (t *Tween[T]) Pause() {
	if t.state == stateRunning {
		t.state = statePaused
	}
}

func (t *Tween[T]) Resume() {
	if t.state == statePaused {
		t.state = stateRunning
	}
}

func (t *Tween[T]) Stop(complete, immediately bool) {
	t.state = stateComplete

	if !complete {
		// A sequence still drives its stopped member once, to move past it.
		t.stopped = true
		t.done.fire()
		t.deregister()
		return
	}

	if t.reversed {
		t.elapsed = 0
	} else {
		t.elapsed = t.duration
	}
	t.loopsLeft = 0

	if immediately {
		t.Update(Frame{})
		t.deregister()
	}
}

func (t *Tween[T]) deregister() {
	if !t.nested {
		t.sched.Remove(t)
	}
}

func (t *Tween[T]) IsRunning() bool {
	return t.state == stateRunning
}

// Update runs one tick. See Settings.EvaluateBeforeAdvance for the two
// orderings of clock advance and evaluation.
func (t *Tween[T]) Update(f Frame) bool {
	if t.state == statePaused {
		return false
	}
	if t.stopped {
		return true
	}

	lagging := t.sched.settings.EvaluateBeforeAdvance
	if !lagging {
		t.advance(f)
	}

	excess := 0.0
	if !t.reversed && t.elapsed >= t.duration {
		excess = t.elapsed - t.duration
		t.elapsed = t.duration
		t.state = stateComplete
	} else if t.reversed && t.elapsed <= 0 {
		excess = -t.elapsed
		t.elapsed = 0
		t.state = stateComplete
	}

	if t.elapsed >= 0 && t.elapsed <= t.duration {
		t.apply()
	}

	if t.loopType != LoopNone && t.state == stateComplete && t.loopsLeft > 0 {
		t.handleLooping(excess)
	}

	if lagging {
		t.advance(f)
	}

	if t.state == stateComplete {
		// Callbacks may restart this tween, arming a new channel.
		done := t.done.current()
		if t.onComplete != nil {
			t.onComplete(t.read())
		}
		if next := t.next; next != nil {
			t.next = nil
			next.Start()
		}
		if t.onUpdate != nil {
			t.onUpdate(t.read())
		}
		closeDone(done)
		t.sched.noteComplete()
		return true
	}

	if t.onUpdate != nil {
		t.onUpdate(t.read())
	}
	return false
}

func (t *Tween[T]) advance(f Frame) {
	dt := f.Delta
	if t.unscaled {
		dt = f.UnscaledDelta
	}
	dt *= t.timeScale

	if t.reversed {
		t.elapsed -= dt
	} else {
		t.elapsed += dt
	}
}

func (t *Tween[T]) handleLooping(excess float64) {
	t.loopsLeft--
	if t.loopType == LoopPingPong {
		t.reversed = !t.reversed
	}

	if t.loopType == LoopRestart || t.loopsLeft%2 == 0 {
		if t.onLoop != nil {
			t.onLoop(t.read())
		}
	}

	if t.loopsLeft <= 0 {
		return
	}
	t.state = stateRunning

	switch {
	case t.loopType == LoopRestart && t.reversed:
		t.elapsed = t.duration - excess + t.loopDelay
	case t.loopType == LoopRestart:
		t.elapsed = excess - t.loopDelay
	case t.reversed:
		t.elapsed += t.loopDelay - excess
	default:
		t.elapsed = excess - t.loopDelay
	}

	if t.loopDelay == 0 && excess > 0 {
		t.apply()
	}
}

// JumpToElapsedTime moves the clock and applies the value at that point.
func (t *Tween[T]) JumpToElapsedTime(elapsed float64) {
	t.elapsed = core.ClampF(elapsed, 0, t.duration)
	t.apply()
}

// Reverse flips the play direction.
func (t *Tween[T]) Reverse() {
	t.reversed = !t.reversed
}

// Reversed reports whether the tween plays backward.
func (t *Tween[T]) Reversed() bool { return t.reversed }

// Done returns a channel closed once the tween completes or is stopped.
// A tween that was never started is already done.
func (t *Tween[T]) Done() <-chan struct{} {
	return t.done.wait()
}

// RecycleSelf clears references and returns the tween to its kind's pool
// when recycling and pooling both allow it.
func (t *Tween[T]) RecycleSelf() {
	if !t.recycle || t.pooled {
		return
	}
	t.reset()
	releaseTween(t.sched, t)
}

// ValueAt evaluates the tween at an arbitrary elapsed time without
// touching the target.
func (t *Tween[T]) ValueAt(elapsed float64) T {
	var p float64
	if t.curve != nil {
		p = ease.EvaluateCurve(t.curve, elapsed, t.duration)
	} else {
		p = ease.Ease(t.easeType, elapsed, t.duration)
	}

	if t.kind.LerpAngle != nil && !t.relative {
		return t.kind.LerpAngle(t.from, t.to, p)
	}
	return t.kind.Lerp(t.from, t.to, p)
}

func (t *Tween[T]) apply() {
	t.last = t.ValueAt(t.elapsed)
	if !t.writable() {
		return
	}
	t.target.SetValue(t.last)
}

// read returns the target's current value, or the last computed value
// when the target may not be touched.
func (t *Tween[T]) read() T {
	if !t.writable() {
		return t.last
	}
	return t.target.Value()
}

func (t *Tween[T]) writable() bool {
	if t.target == nil {
		return false
	}
	if t.sched.settings.NullChecking {
		return alive(t.target)
	}
	return true
}

func (t *Tween[T]) resolveTo() {
	if t.relative {
		t.to = t.kind.Offset(t.from, t.toInput)
	} else {
		t.to = t.toInput
	}
}
