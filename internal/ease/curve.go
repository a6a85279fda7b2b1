package ease

import (
	"fmt"
	"sort"
)

// Curve is a user-supplied easing shape sampled by parametric fraction.
// Unlike catalog entries, custom curves are evaluated as-is: their endpoints
// are whatever the curve defines.
type Curve interface {
	Evaluate(p float64) float64
}

// CurveFunc adapts a plain function to the Curve interface.
type CurveFunc func(p float64) float64

// Evaluate calls f(p).
func (f CurveFunc) Evaluate(p float64) float64 {
	return f(p)
}

// EvaluateCurve samples c at elapsed/duration.
// A non-positive duration samples the end of the curve.
func EvaluateCurve(c Curve, elapsed, duration float64) float64 {
	if duration <= 0 {
		return c.Evaluate(1)
	}
	return c.Evaluate(elapsed / duration)
}

// Keyframe is a single control point of a Keyframes curve.
type Keyframe struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in"`
	OutTangent float64 `yaml:"out"`
}

// Keyframes is a piecewise cubic Hermite curve. Outside the time range of
// its keys the curve holds the first or last value.
type Keyframes struct {
	keys []Keyframe
}

// NewKeyframes builds a curve from keys in any order.
// Returns an error when no keys are given or two keys share a time.
func NewKeyframes(keys ...Keyframe) (*Keyframes, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("ease: keyframe curve needs at least one key")
	}

	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time == sorted[i-1].Time {
			return nil, fmt.Errorf("ease: duplicate keyframe at time %g", sorted[i].Time)
		}
	}

	return &Keyframes{keys: sorted}, nil
}

// Len returns the number of keys.
func (k *Keyframes) Len() int {
	return len(k.keys)
}

// Evaluate samples the curve at p.
func (k *Keyframes) Evaluate(p float64) float64 {
	first, last := k.keys[0], k.keys[len(k.keys)-1]
	if p <= first.Time {
		return first.Value
	}
	if p >= last.Time {
		return last.Value
	}

	// First key at or after p, so p lies in (keys[i-1], keys[i]].
	i := sort.Search(len(k.keys), func(i int) bool {
		return k.keys[i].Time >= p
	})
	a, b := k.keys[i-1], k.keys[i]

	span := b.Time - a.Time
	u := (p - a.Time) / span
	u2 := u * u
	u3 := u2 * u

	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	return h00*a.Value + h10*span*a.OutTangent + h01*b.Value + h11*span*b.InTangent
}

// Sample evaluates fn at steps+1 evenly spaced points across [0, 1].
func Sample(fn func(p float64) float64, steps int) []float64 {
	if steps < 1 {
		steps = 1
	}
	out := make([]float64, steps+1)
	for i := range out {
		out[i] = fn(float64(i) / float64(steps))
	}
	return out
}
