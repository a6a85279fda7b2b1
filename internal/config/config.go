// Package config loads engine settings, named tween presets and custom
// easing curves from YAML.
package config

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boing/internal/ease"
	"github.com/vovakirdan/boing/internal/tween"
)

// File is the top-level layout of boing.yaml.
type File struct {
	Engine  EngineConfig            `yaml:"engine"`
	Host    HostConfig              `yaml:"host"`
	Presets map[string]PresetConfig `yaml:"presets"`
	Curves  map[string]CurveConfig  `yaml:"curves"`
}

// EngineConfig maps onto tween.Settings.
type EngineConfig struct {
	DefaultEase           ease.Type      `yaml:"default_ease"`
	NullChecking          bool           `yaml:"null_checking"`
	FlushOnReset          bool           `yaml:"flush_on_reset"`
	EvaluateBeforeAdvance bool           `yaml:"evaluate_before_advance"`
	Pooling               []string       `yaml:"pooling"` // Kind names, e.g. "float", "vec2"
	Warm                  map[string]int `yaml:"warm"`    // Spare tweens per kind at startup
}

// HostConfig holds terminal host defaults. Flags override them.
type HostConfig struct {
	TickRate  int     `yaml:"tick_rate"`
	TimeScale float64 `yaml:"time_scale"`
}

// PresetConfig is a reusable tween configuration.
type PresetConfig struct {
	Ease      string  `yaml:"ease"` // Catalog name or a key of curves
	Duration  float64 `yaml:"duration"`
	Delay     float64 `yaml:"delay"`
	TimeScale float64 `yaml:"time_scale"`
	Unscaled  bool    `yaml:"unscaled"`
	Loop      string  `yaml:"loop"` // "none", "restart" or "ping_pong"
	Loops     int     `yaml:"loops"`
	LoopDelay float64 `yaml:"loop_delay"`
	Relative  bool    `yaml:"relative"`
}

// CurveConfig defines a custom curve either by keyframes or by a script
// expression of t.
type CurveConfig struct {
	Keyframes []ease.Keyframe `yaml:"keyframes"`
	Script    string          `yaml:"script"`
}

// Settings converts the engine block into scheduler settings.
func (f File) Settings(logger *log.Logger) (*tween.Settings, error) {
	s := tween.DefaultSettings()
	s.DefaultEase = f.Engine.DefaultEase
	s.NullChecking = f.Engine.NullChecking
	s.FlushOnReset = f.Engine.FlushOnReset
	s.EvaluateBeforeAdvance = f.Engine.EvaluateBeforeAdvance
	s.Logger = logger

	for _, name := range f.Engine.Pooling {
		id, err := tween.ParseKindID(name)
		if err != nil {
			return nil, fmt.Errorf("config: engine.pooling: %w", err)
		}
		s.Pooling[id] = true
	}
	return s, nil
}

// WarmPools pre-fills the scheduler pools listed under engine.warm.
func (f File) WarmPools(s *tween.Scheduler) error {
	for name, n := range f.Engine.Warm {
		id, err := tween.ParseKindID(name)
		if err != nil {
			return fmt.Errorf("config: engine.warm: %w", err)
		}
		tween.WarmKind(s, id, n)
	}
	return nil
}

// BuildCurves compiles every custom curve.
func (f File) BuildCurves(logger *log.Logger) (map[string]ease.Curve, error) {
	out := make(map[string]ease.Curve, len(f.Curves))
	for name, c := range f.Curves {
		curve, err := c.build(logger)
		if err != nil {
			return nil, fmt.Errorf("config: curve %s: %w", name, err)
		}
		out[name] = curve
	}
	return out, nil
}

func (c CurveConfig) build(logger *log.Logger) (ease.Curve, error) {
	switch {
	case c.Script != "" && len(c.Keyframes) > 0:
		return nil, fmt.Errorf("set either keyframes or script, not both")
	case c.Script != "":
		return ease.NewScriptCurve(c.Script, logger)
	case len(c.Keyframes) > 0:
		return ease.NewKeyframes(c.Keyframes...)
	default:
		return nil, fmt.Errorf("no keyframes or script")
	}
}

// PresetNames returns the preset names in sorted order.
func (f File) PresetNames() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset resolves a named preset into tween options. curves holds the
// compiled custom curves a preset may reference by name.
func (f File) Preset(name string, curves map[string]ease.Curve) (tween.Options, error) {
	p, ok := f.Presets[name]
	if !ok {
		return tween.Options{}, fmt.Errorf("config: unknown preset %q", name)
	}
	return p.Options(curves)
}

// Options converts the preset into tween options.
func (p PresetConfig) Options(curves map[string]ease.Curve) (tween.Options, error) {
	opts := tween.Options{
		Duration:  p.Duration,
		Delay:     p.Delay,
		TimeScale: p.TimeScale,
		Unscaled:  p.Unscaled,
		Loops:     p.Loops,
		LoopDelay: p.LoopDelay,
		Relative:  p.Relative,
	}

	if p.Ease != "" {
		if c, ok := curves[p.Ease]; ok {
			opts.Curve = c
		} else {
			e, err := ease.ParseType(p.Ease)
			if err != nil {
				return tween.Options{}, fmt.Errorf("config: preset ease: %w", err)
			}
			opts.Ease = &e
		}
	}

	loop, err := tween.ParseLoopType(p.Loop)
	if err != nil {
		return tween.Options{}, fmt.Errorf("config: preset loop: %w", err)
	}
	opts.Loop = loop
	return opts, nil
}

// PresetOptions compiles the custom curves and resolves every preset.
func (f File) PresetOptions(logger *log.Logger) (map[string]tween.Options, error) {
	curves, err := f.BuildCurves(logger)
	if err != nil {
		return nil, err
	}
	out := make(map[string]tween.Options, len(f.Presets))
	for name, p := range f.Presets {
		opts, err := p.Options(curves)
		if err != nil {
			return nil, fmt.Errorf("config: preset %s: %w", name, err)
		}
		out[name] = opts
	}
	return out, nil
}
