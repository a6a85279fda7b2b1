package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use this to adapt to screen size and to scale simulated time.
type RuntimeConfig struct {
	ScreenW   int     // Screen width in characters
	ScreenH   int     // Screen height in characters
	TickRate  int     // Host ticks per second (default 60)
	TimeScale float64 // Multiplier applied to the scaled clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		TimeScale: 1,
	}
}

// FrameDelta returns the unscaled seconds per host tick.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// DemoState reports what a demo is doing, for the host status line.
type DemoState struct {
	Active int    // Tweens currently driven by the scheduler
	Status string // Short free-form status, e.g. "playing" or "paused"
	Done   bool   // Demo finished its script and waits for restart
}

// StepResult is returned by Demo.Step() after each host tick.
type StepResult struct {
	State DemoState
}
