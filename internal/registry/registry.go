// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the host
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boing/internal/core"
	"github.com/vovakirdan/boing/internal/tween"
)

// Demo is the interface every showcase scene implements.
// Demos own no timing: the host ticks the scheduler after each Step and
// never imports Bubble Tea into demo code.
type Demo interface {
	// ID returns a unique identifier (e.g., "curves", "orbit").
	// Used for CLI commands and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds the demo's tweens on env.Sched.
	// Called once at start and again on restart.
	Reset(env Env)

	// Step reacts to input and advances any non-tween state (springs,
	// counters). The host ticks the scheduler right after.
	Step(in core.InputFrame, f tween.Frame) core.StepResult

	// Render draws the demo into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current demo state.
	State() core.DemoState
}

// Env is everything a demo gets from its host.
type Env struct {
	Runtime core.RuntimeConfig
	Sched   *tween.Scheduler
	Presets map[string]tween.Options
	Logger  *log.Logger
}

// Preset returns the named preset, or fallback when the config has none.
func (e Env) Preset(name string, fallback tween.Options) tween.Options {
	if opts, ok := e.Presets[name]; ok {
		return opts
	}
	return fallback
}

// Log returns the env logger, falling back to the scheduler's.
func (e Env) Log() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return e.Sched.Logger()
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Typically called from a demo's init() function.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	d := f()
	titles[id] = d.Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
// Returns an error if the demo ID is not registered.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
