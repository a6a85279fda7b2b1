package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boing/internal/config"
	"github.com/vovakirdan/boing/internal/tween"
)

// Engine turns a loaded configuration into schedulers and presets. One
// Engine is shared by every host; each host gets its own scheduler.
type Engine struct {
	mu       sync.RWMutex
	file     config.File
	settings *tween.Settings
	presets  map[string]tween.Options
	logger   *log.Logger
}

// NewEngine validates the configuration and compiles its presets.
func NewEngine(file config.File, logger *log.Logger) (*Engine, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{logger: logger}
	if err := e.Reload(file); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload swaps in a new configuration. On error the previous one stays.
// Running schedulers keep the settings they were created with.
func (e *Engine) Reload(file config.File) error {
	settings, err := file.Settings(e.logger)
	if err != nil {
		return err
	}
	presets, err := file.PresetOptions(e.logger)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.file = file
	e.settings = settings
	e.presets = presets
	return nil
}

// NewScheduler creates a scheduler with the current settings and warms
// its pools.
func (e *Engine) NewScheduler() (*tween.Scheduler, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := tween.NewScheduler(e.settings)
	if err := e.file.WarmPools(s); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return s, nil
}

// Presets returns the compiled presets. The map must not be modified.
func (e *Engine) Presets() map[string]tween.Options {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.presets
}

// Host returns the host block of the configuration.
func (e *Engine) Host() config.HostConfig {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.file.Host
}

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger {
	return e.logger
}
