package tween

import "sync"

// Frame carries one host tick worth of time, in seconds.
type Frame struct {
	Delta         float64 // Scaled clock
	UnscaledDelta float64 // Wall clock, ignores the host time scale
}

// Step builds a frame where both clocks advance by dt.
func Step(dt float64) Frame {
	return Frame{Delta: dt, UnscaledDelta: dt}
}

// Tweenable is anything the Scheduler can drive.
type Tweenable interface {
	Start()
	Pause()
	Resume()
	// Stop halts the unit. With complete set it jumps to the end value
	// and cancels remaining loops; immediately applies that now instead
	// of on the next tick.
	Stop(complete, immediately bool)
	// Update advances one tick and reports terminal completion.
	Update(f Frame) bool
	IsRunning() bool
	RecycleSelf()
}

// Controller exposes the runtime controls of a single tween.
type Controller interface {
	Tweenable
	Context() any
	TargetOwner() any
	JumpToElapsedTime(elapsed float64)
	Reverse()
	// Done is closed once the tween reaches its terminal state. It may be
	// called from any goroutine; every other method belongs to the tick
	// goroutine.
	Done() <-chan struct{}
}

// nestable units stop registering themselves once owned by a sequence.
type nestable interface {
	setNested(nested bool)
}

type state int

const (
	stateComplete state = iota
	stateRunning
	statePaused
)

// doneSignal holds the completion channel of one run. Start arms a fresh
// channel; waiters on other goroutines read it under mu.
type doneSignal struct {
	mu sync.Mutex
	ch chan struct{}
}

func (d *doneSignal) arm() {
	d.mu.Lock()
	d.ch = make(chan struct{})
	d.mu.Unlock()
}

// current returns the channel of the run in progress, nil if none.
func (d *doneSignal) current() chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ch
}

func (d *doneSignal) fire() {
	closeDone(d.current())
}

// wait returns the channel to block on. Without an armed run it is
// already closed.
func (d *doneSignal) wait() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.ch == nil {
		d.ch = make(chan struct{})
		close(d.ch)
	}
	return d.ch
}

func (d *doneSignal) clear() {
	d.mu.Lock()
	d.ch = nil
	d.mu.Unlock()
}

func closeDone(ch chan struct{}) {
	if ch == nil {
		return
	}
	select {
	case <-ch:
	default:
		close(ch)
	}
}
