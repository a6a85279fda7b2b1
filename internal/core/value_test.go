package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecLerp(t *testing.T) {
	a := Vec2{0, 10}
	b := Vec2{10, 20}

	if got := a.Lerp(b, 0.5); got != (Vec2{5, 15}) {
		t.Errorf("Vec2.Lerp(0.5) = %+v, expected {5 15}", got)
	}
	// Overshoot passes through unclamped
	if got := a.Lerp(b, 1.5); got != (Vec2{15, 25}) {
		t.Errorf("Vec2.Lerp(1.5) = %+v, expected {15 25}", got)
	}

	v3 := Vec3{1, 2, 3}.Lerp(Vec3{3, 4, 5}, 0.5)
	if v3 != (Vec3{2, 3, 4}) {
		t.Errorf("Vec3.Lerp(0.5) = %+v, expected {2 3 4}", v3)
	}

	v4 := Vec4{}.Lerp(Vec4{4, 8, 12, 16}, 0.25)
	if v4 != (Vec4{1, 2, 3, 4}) {
		t.Errorf("Vec4.Lerp(0.25) = %+v, expected {1 2 3 4}", v4)
	}
}

func TestVec3LerpAngle(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		t        float64
		expected float64
	}{
		{"short arc across zero", 350, 10, 0.5, 360},
		{"plain", 0, 90, 0.5, 45},
		{"negative direction", 10, 350, 0.5, 0},
		{"end", 350, 10, 1, 370},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Vec3{Z: tc.from}.LerpAngle(Vec3{Z: tc.to}, tc.t)
			if !near(got.Z, tc.expected) {
				t.Errorf("LerpAngle(%v, %v, %v).Z = %v, expected %v", tc.from, tc.to, tc.t, got.Z, tc.expected)
			}
		})
	}
}

func TestRectAddLerp(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if got := r.Add(Rect{1, 2, 3, 4}); got != (Rect{1, 2, 13, 14}) {
		t.Errorf("Rect.Add() = %+v", got)
	}
	if got := r.Lerp(Rect{10, 10, 20, 30}, 0.5); got != (Rect{5, 5, 15, 20}) {
		t.Errorf("Rect.Lerp(0.5) = %+v", got)
	}
}

func TestQuatAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Z: 1}, 90)
	if !near(q.AngleZ(), 90) {
		t.Errorf("AngleZ() = %v, expected 90", q.AngleZ())
	}
	if got := QuatFromAxisAngle(Vec3{}, 45); got != IdentityQuat {
		t.Errorf("zero axis should give identity, got %+v", got)
	}
}

func TestQuatMul(t *testing.T) {
	a := QuatFromAxisAngle(Vec3{Z: 1}, 30)
	b := QuatFromAxisAngle(Vec3{Z: 1}, 60)

	if got := a.Mul(b).AngleZ(); !near(got, 90) {
		t.Errorf("30° * 60° = %v°, expected 90°", got)
	}
	if got := a.Mul(IdentityQuat); !near(got.Dot(a), 1) {
		t.Errorf("q * identity should equal q, got %+v", got)
	}
}

func TestQuatNlerp(t *testing.T) {
	a := IdentityQuat
	b := QuatFromAxisAngle(Vec3{Z: 1}, 90)

	if got := a.Nlerp(b, 0); !near(got.Dot(a), 1) {
		t.Errorf("Nlerp(0) = %+v, expected identity", got)
	}
	if got := a.Nlerp(b, 1); !near(got.Dot(b), 1) {
		t.Errorf("Nlerp(1) = %+v, expected %+v", got, b)
	}
	mid := a.Nlerp(b, 0.5)
	if !near(mid.AngleZ(), 45) {
		t.Errorf("Nlerp(0.5).AngleZ() = %v, expected 45", mid.AngleZ())
	}
	if !near(mid.Dot(mid), 1) {
		t.Errorf("Nlerp result should be unit length, got %v", mid.Dot(mid))
	}

	// Negated target is the same rotation; the short path must be taken.
	neg := Quat{-b.X, -b.Y, -b.Z, -b.W}
	if got := a.Nlerp(neg, 0.5); !near(got.AngleZ(), 45) {
		t.Errorf("Nlerp towards -q should take the short arc, got %v°", got.AngleZ())
	}
}

func TestColor(t *testing.T) {
	c, err := ParseHex("#ff8000")
	if err != nil {
		t.Fatalf("ParseHex() failed: %v", err)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("Hex() = %s, expected #ff8000", c.Hex())
	}
	if c.A != 1 {
		t.Errorf("A = %v, expected 1", c.A)
	}

	half := Color{1, 1, 1, 0.5}
	if half.Hex() != "#808080" {
		t.Errorf("half alpha white Hex() = %s, expected #808080", half.Hex())
	}

	// Overshoot is clamped for display only
	over := Color{1.5, -0.2, 0, 1}
	if over.Hex() != "#ff0000" {
		t.Errorf("overshooting Hex() = %s, expected #ff0000", over.Hex())
	}

	if _, err := ParseHex("nope"); err == nil {
		t.Error("ParseHex should reject malformed input")
	}

	mid := ColorBlack.Lerp(ColorWhite, 0.5)
	if !near(mid.R, 0.5) || !near(mid.A, 1) {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("new frame should be empty")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(Pause) should be true after Set")
	}
	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should reset actions")
	}

	var zero InputFrame
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on a zero frame should allocate")
	}

	if ActionReverse.String() != "Reverse" || Action(99).String() != "Unknown" {
		t.Error("Action.String() mismatch")
	}
}
