package tween

import (
	"io"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boing/internal/ease"
)

// Settings are engine-wide switches. A Scheduler copies them once at
// construction; later changes to the caller's struct have no effect.
type Settings struct {
	// DefaultEase is applied by Initialize.
	DefaultEase ease.Type

	// NullChecking skips writes to targets whose owner is nil or dead.
	NullChecking bool

	// FlushOnReset makes SceneReset discard every active tweenable.
	FlushOnReset bool

	// EvaluateBeforeAdvance evaluates the value at the start-of-tick elapsed
	// time and only then advances the clock. The value then trails the
	// clock by one tick.
	EvaluateBeforeAdvance bool

	// Pooling enables the per-kind tween pool.
	Pooling map[KindID]bool

	// Logger receives caller errors. Nil discards them.
	Logger *log.Logger
}

// DefaultSettings returns the stock configuration: sine-in default ease,
// no null checking, flush on reset and pooling disabled.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultEase: ease.SineIn,
		Pooling:     make(map[KindID]bool),
	}
}

func (s *Settings) clone() Settings {
	out := *s
	out.Pooling = maps.Clone(s.Pooling)
	if out.Pooling == nil {
		out.Pooling = make(map[KindID]bool)
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard)
	}
	return out
}
