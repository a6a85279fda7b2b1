package tween

import (
	"math"

	"github.com/vovakirdan/boing/internal/core"
)

// LerpTowards moves from towards to so that the remaining distance shrinks
// to remainingPerSecond of itself every second, independent of frame rate.
func LerpTowards(from, to, remainingPerSecond, dt float64) float64 {
	return core.LerpF(from, to, 1-math.Pow(remainingPerSecond, dt))
}

// LerpTowardsVec2 is LerpTowards for 2D points.
func LerpTowardsVec2(from, to core.Vec2, remainingPerSecond, dt float64) core.Vec2 {
	return from.Lerp(to, 1-math.Pow(remainingPerSecond, dt))
}

// StableSpring advances a damped spring by dt with an implicit Euler step,
// which stays stable for large steps and stiff springs. velocity is updated
// in place.
func StableSpring(current, target float64, velocity *float64, damping, frequency, dt float64) float64 {
	f := 1 + 2*dt*damping*frequency
	oo := frequency * frequency
	hoo := dt * oo
	hhoo := dt * hoo
	detInv := 1 / (f + hhoo)
	detX := f*current + dt*(*velocity) + hhoo*target
	detV := *velocity + hoo*(target-current)

	*velocity = detV * detInv
	return detX * detInv
}

// StableSpringVec2 applies StableSpring per component.
func StableSpringVec2(current, target core.Vec2, velocity *core.Vec2, damping, frequency, dt float64) core.Vec2 {
	return core.Vec2{
		X: StableSpring(current.X, target.X, &velocity.X, damping, frequency, dt),
		Y: StableSpring(current.Y, target.Y, &velocity.Y, damping, frequency, dt),
	}
}
