package config

import (
	_ "embed"

	"github.com/vovakirdan/boing/internal/ease"
)

//go:embed defaults/boing.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file and no
// embedded default can be read.
func Default() File {
	return File{
		Engine: EngineConfig{
			DefaultEase: ease.SineIn,
		},
		Host: HostConfig{
			TickRate:  60,
			TimeScale: 1,
		},
		Presets: map[string]PresetConfig{
			"pop": {
				Ease:     "back_out",
				Duration: 0.4,
			},
			"pulse": {
				Ease:     "sine_in_out",
				Duration: 0.6,
				Loop:     "ping_pong",
				Loops:    1,
			},
		},
	}
}
