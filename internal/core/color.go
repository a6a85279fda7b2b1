package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA color with float channels in [0, 1].
// Channels may leave that range while an overshooting ease is applied;
// Hex clamps them when converting for the terminal.
type Color struct {
	R, G, B, A float64
}

// Named colors used by the demos.
var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorRed     = Color{0.94, 0.27, 0.27, 1}
	ColorGreen   = Color{0.29, 0.87, 0.5, 1}
	ColorBlue    = Color{0.38, 0.65, 0.98, 1}
	ColorYellow  = Color{0.98, 0.8, 0.08, 1}
	ColorMagenta = Color{0.91, 0.47, 0.98, 1}
	ColorCyan    = Color{0.13, 0.83, 0.93, 1}
	ColorOrange  = Color{0.98, 0.45, 0.09, 1}
	ColorGray    = Color{0.45, 0.45, 0.5, 1}
)

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("color: invalid hex %q", s)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color: invalid hex %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Add returns the channel-wise sum, used for relative colors.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A + o.A}
}

// Lerp interpolates every channel towards o without clamping t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{LerpF(c.R, o.R, t), LerpF(c.G, o.G, t), LerpF(c.B, o.B, t), LerpF(c.A, o.A, t)}
}

// IsZero reports whether every channel is zero. Screens treat the zero
// color as "terminal default".
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the color as "#rrggbb", premultiplied by alpha against black.
func (c Color) Hex() string {
	a := ClampF(c.A, 0, 1)
	return fmt.Sprintf("#%02x%02x%02x",
		channel(c.R*a), channel(c.G*a), channel(c.B*a))
}

func channel(v float64) uint8 {
	return uint8(Round(ClampF(v, 0, 1) * 255))
}
