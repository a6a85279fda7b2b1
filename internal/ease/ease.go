// Package ease provides the easing curve catalog used by tweens.
// Every catalog function maps normalized progress p in [0, 1] to a fraction.
// Back and elastic curves overshoot by design, so fractions are never clamped
// between the endpoints.
package ease

import (
	"fmt"
	"math"
	"strings"
)

// Type selects one of the catalog easing functions.
type Type int

const (
	Linear Type = iota

	SineIn
	SineOut
	SineInOut

	QuadIn
	QuadOut
	QuadInOut

	CubicIn
	CubicOut
	CubicInOut

	QuartIn
	QuartOut
	QuartInOut

	QuintIn
	QuintOut
	QuintInOut

	ExpoIn
	ExpoOut
	ExpoInOut

	CircIn
	CircOut
	CircInOut

	BackIn
	BackOut
	BackInOut

	ElasticIn
	ElasticOut
	ElasticInOut

	BounceIn
	BounceOut
	BounceInOut

	typeCount
)

var typeNames = [typeCount]string{
	"linear",
	"sine_in", "sine_out", "sine_in_out",
	"quad_in", "quad_out", "quad_in_out",
	"cubic_in", "cubic_out", "cubic_in_out",
	"quart_in", "quart_out", "quart_in_out",
	"quint_in", "quint_out", "quint_in_out",
	"expo_in", "expo_out", "expo_in_out",
	"circ_in", "circ_out", "circ_in_out",
	"back_in", "back_out", "back_in_out",
	"elastic_in", "elastic_out", "elastic_in_out",
	"bounce_in", "bounce_out", "bounce_in_out",
}

var funcs = [typeCount]func(p float64) float64{
	linear,
	sineIn, sineOut, sineInOut,
	quadIn, quadOut, quadInOut,
	cubicIn, cubicOut, cubicInOut,
	quartIn, quartOut, quartInOut,
	quintIn, quintOut, quintInOut,
	expoIn, expoOut, expoInOut,
	circIn, circOut, circInOut,
	backIn, backOut, backInOut,
	elasticIn, elasticOut, elasticInOut,
	bounceIn, bounceOut, bounceInOut,
}

// Types returns every catalog entry in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Linear; t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t names a catalog entry.
func (t Type) Valid() bool {
	return t >= Linear && t < typeCount
}

// Overshoots reports whether the curve leaves [0, 1] between its endpoints.
func (t Type) Overshoots() bool {
	switch t {
	case BackIn, BackOut, BackInOut, ElasticIn, ElasticOut, ElasticInOut:
		return true
	}
	return false
}

// String returns the snake_case name used in configuration files.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ease(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a curve name. Dashes, spaces and case are ignored,
// so "SineInOut", "sine-in-out" and "sine_in_out" are equivalent.
func ParseType(name string) (Type, error) {
	key := normalizeName(name)
	for i, n := range typeNames {
		if strings.ReplaceAll(n, "_", "") == key {
			return Type(i), nil
		}
	}
	return Linear, fmt.Errorf("ease: unknown curve %q", name)
}

func normalizeName(name string) string {
	r := strings.NewReplacer("_", "", "-", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("ease: cannot marshal %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Func returns the normalized easing function for t.
// Unknown tags fall back to linear.
func (t Type) Func() func(p float64) float64 {
	if !t.Valid() {
		return linear
	}
	return funcs[t]
}

// Ease returns the eased fraction for elapsed time within duration.
// The endpoints are exact: elapsed <= 0 gives 0 and elapsed >= duration
// gives 1. A non-positive duration is treated as already finished.
func Ease(t Type, elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return t.Func()(elapsed / duration)
}

// AngleDelta returns the shortest signed difference from a to b in degrees.
// The result lies in (-180, 180].
func AngleDelta(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}

func linear(p float64) float64 { return p }

func sineIn(p float64) float64    { return 1 - math.Cos(p*math.Pi/2) }
func sineOut(p float64) float64   { return math.Sin(p * math.Pi / 2) }
func sineInOut(p float64) float64 { return -0.5 * (math.Cos(math.Pi*p) - 1) }

func quadIn(p float64) float64  { return p * p }
func quadOut(p float64) float64 { return -p * (p - 2) }
func quadInOut(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p
	}
	p--
	return -0.5 * (p*(p-2) - 1)
}

func cubicIn(p float64) float64 { return p * p * p }
func cubicOut(p float64) float64 {
	p--
	return p*p*p + 1
}
func cubicInOut(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p * p
	}
	p -= 2
	return 0.5 * (p*p*p + 2)
}

func quartIn(p float64) float64 { return p * p * p * p }
func quartOut(p float64) float64 {
	p--
	return -(p*p*p*p - 1)
}
func quartInOut(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p * p * p
	}
	p -= 2
	return -0.5 * (p*p*p*p - 2)
}

func quintIn(p float64) float64 { return p * p * p * p * p }
func quintOut(p float64) float64 {
	p--
	return p*p*p*p*p + 1
}
func quintInOut(p float64) float64 {
	p *= 2
	if p < 1 {
		return 0.5 * p * p * p * p * p
	}
	p -= 2
	return 0.5 * (p*p*p*p*p + 2)
}

func expoIn(p float64) float64 {
	if p == 0 {
		return 0
	}
	return math.Pow(2, 10*(p-1))
}
func expoOut(p float64) float64 {
	if p == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*p)
}
func expoInOut(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	p *= 2
	if p < 1 {
		return 0.5 * math.Pow(2, 10*(p-1))
	}
	p--
	return 0.5 * (2 - math.Pow(2, -10*p))
}

func circIn(p float64) float64 { return -(math.Sqrt(1-p*p) - 1) }
func circOut(p float64) float64 {
	p--
	return math.Sqrt(1 - p*p)
}
func circInOut(p float64) float64 {
	p *= 2
	if p < 1 {
		return -0.5 * (math.Sqrt(1-p*p) - 1)
	}
	p -= 2
	return 0.5 * (math.Sqrt(1-p*p) + 1)
}

const (
	backOvershoot      = 1.70158
	backInOutOvershoot = backOvershoot * 1.525
)

func backIn(p float64) float64 { return p * p * ((backOvershoot+1)*p - backOvershoot) }
func backOut(p float64) float64 {
	p--
	return p*p*((backOvershoot+1)*p+backOvershoot) + 1
}
func backInOut(p float64) float64 {
	s := backInOutOvershoot
	p *= 2
	if p < 1 {
		return 0.5 * (p * p * ((s+1)*p - s))
	}
	p -= 2
	return 0.5 * (p*p*((s+1)*p+s) + 2)
}

// Elastic period and phase on normalized time (period 0.3d, phase period/4).
const (
	elasticPeriod      = 0.3
	elasticInOutPeriod = 0.3 * 1.5
)

func elasticIn(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	s := elasticPeriod / 4
	p--
	return -(math.Pow(2, 10*p) * math.Sin((p-s)*(2*math.Pi)/elasticPeriod))
}
func elasticOut(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	s := elasticPeriod / 4
	return math.Pow(2, -10*p)*math.Sin((p-s)*(2*math.Pi)/elasticPeriod) + 1
}
func elasticInOut(p float64) float64 {
	if p == 0 || p == 1 {
		return p
	}
	s := elasticInOutPeriod / 4
	p *= 2
	if p < 1 {
		p--
		return -0.5 * (math.Pow(2, 10*p) * math.Sin((p-s)*(2*math.Pi)/elasticInOutPeriod))
	}
	p--
	return math.Pow(2, -10*p)*math.Sin((p-s)*(2*math.Pi)/elasticInOutPeriod)*0.5 + 1
}

func bounceIn(p float64) float64 { return 1 - bounceOut(1-p) }
func bounceOut(p float64) float64 {
	switch {
	case p < 1/2.75:
		return 7.5625 * p * p
	case p < 2/2.75:
		p -= 1.5 / 2.75
		return 7.5625*p*p + 0.75
	case p < 2.5/2.75:
		p -= 2.25 / 2.75
		return 7.5625*p*p + 0.9375
	default:
		p -= 2.625 / 2.75
		return 7.5625*p*p + 0.984375
	}
}
func bounceInOut(p float64) float64 {
	if p < 0.5 {
		return bounceIn(p*2) * 0.5
	}
	return bounceOut(p*2-1)*0.5 + 0.5
}
