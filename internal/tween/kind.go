// Package tween drives timed interpolations of host-owned values.
//
// A Scheduler is ticked once per host frame. It updates every registered
// Tweenable (single tweens and sequences), removes the ones that report
// completion and recycles them into per-kind pools.
package tween

import (
	"fmt"

	"github.com/vovakirdan/boing/internal/core"
)

// KindID identifies a value kind. Pools and configuration switches are
// keyed by it.
type KindID int

const (
	KindFloat KindID = iota
	KindInt
	KindVec2
	KindVec3
	KindEuler
	KindVec4
	KindQuat
	KindColor
	KindRect
	kindCount
)

var kindNames = [kindCount]string{
	KindFloat: "float",
	KindInt:   "int",
	KindVec2:  "vec2",
	KindVec3:  "vec3",
	KindEuler: "euler",
	KindVec4:  "vec4",
	KindQuat:  "quat",
	KindColor: "color",
	KindRect:  "rect",
}

// KindIDs returns every known kind in declaration order.
func KindIDs() []KindID {
	ids := make([]KindID, 0, kindCount)
	for id := KindID(0); id < kindCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id names a known kind.
func (id KindID) Valid() bool {
	return id >= 0 && id < kindCount
}

func (id KindID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("kind(%d)", int(id))
	}
	return kindNames[id]
}

// ParseKindID resolves a kind by its lowercase name.
func ParseKindID(name string) (KindID, error) {
	for id, n := range kindNames {
		if n == name {
			return KindID(id), nil
		}
	}
	return 0, fmt.Errorf("tween: unknown kind %q", name)
}

// Kind is the interpolation capability for one value type.
type Kind[T any] struct {
	ID KindID

	// Lerp interpolates without clamping t, so overshooting eases pass through.
	Lerp func(from, to T, t float64) T

	// Offset resolves a relative destination against the captured start value.
	Offset func(from, delta T) T

	// LerpAngle, when set, replaces Lerp in absolute mode so orientation
	// values take the shortest arc.
	LerpAngle func(from, to T, t float64) T
}

// mustValid panics on a kind the engine cannot dispatch. This is a
// programming error, never a runtime animation condition.
func (k Kind[T]) mustValid() {
	if !k.ID.Valid() || k.Lerp == nil || k.Offset == nil {
		panic(fmt.Sprintf("tween: unknown value kind %v", k.ID))
	}
}

// Built-in kinds.
var (
	Float = Kind[float64]{
		ID:     KindFloat,
		Lerp:   core.LerpF,
		Offset: func(from, delta float64) float64 { return from + delta },
	}

	// Int truncates the interpolated value toward zero.
	Int = Kind[int]{
		ID: KindInt,
		Lerp: func(from, to int, t float64) int {
			return int(core.LerpF(float64(from), float64(to), t))
		},
		Offset: func(from, delta int) int { return from + delta },
	}

	Vec2 = Kind[core.Vec2]{
		ID:     KindVec2,
		Lerp:   core.Vec2.Lerp,
		Offset: core.Vec2.Add,
	}

	Vec3 = Kind[core.Vec3]{
		ID:     KindVec3,
		Lerp:   core.Vec3.Lerp,
		Offset: core.Vec3.Add,
	}

	// Euler is a Vec3 of angles in degrees.
	Euler = Kind[core.Vec3]{
		ID:        KindEuler,
		Lerp:      core.Vec3.Lerp,
		Offset:    core.Vec3.Add,
		LerpAngle: core.Vec3.LerpAngle,
	}

	Vec4 = Kind[core.Vec4]{
		ID:     KindVec4,
		Lerp:   core.Vec4.Lerp,
		Offset: core.Vec4.Add,
	}

	// Quat treats a relative destination as an extra rotation applied after
	// the start rotation.
	Quat = Kind[core.Quat]{
		ID:     KindQuat,
		Lerp:   core.Quat.Nlerp,
		Offset: func(from, delta core.Quat) core.Quat { return delta.Mul(from) },
	}

	Color = Kind[core.Color]{
		ID:     KindColor,
		Lerp:   core.Color.Lerp,
		Offset: core.Color.Add,
	}

	Rect = Kind[core.Rect]{
		ID:     KindRect,
		Lerp:   core.Rect.Lerp,
		Offset: core.Rect.Add,
	}
)
