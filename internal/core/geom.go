// Package core provides the value kinds animated by tweens and the small
// host-side primitives (screen buffer, input frame) the terminal host uses.
// It contains no UI dependencies so it stays pure and testable.
package core

import "math"

// Box is an integer cell rectangle on a Screen.
type Box struct {
	X, Y int // Top-left cell
	W, H int // Width and height in cells
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h int) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (b Box) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (b Box) Bottom() int {
	return b.Y + b.H
}

// Contains returns true if the cell (x, y) is inside this box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Center returns the center cell of the box.
func (b Box) Center() (int, int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Inset shrinks the box by n cells on every side.
// Width and height never go below zero.
func (b Box) Inset(n int) Box {
	out := Box{X: b.X + n, Y: b.Y + n, W: b.W - 2*n, H: b.H - 2*n}
	out.W = Max(out.W, 0)
	out.H = Max(out.H, 0)
	return out
}

// BoxFromRect snaps a float rectangle to the nearest cells.
func BoxFromRect(r Rect) Box {
	return Box{
		X: Round(r.X),
		Y: Round(r.Y),
		W: Round(r.W),
		H: Round(r.H),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Round converts a float to the nearest int, halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
