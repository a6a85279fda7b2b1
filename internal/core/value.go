package core

import (
	"math"

	"github.com/vovakirdan/boing/internal/ease"
)

// LerpF interpolates between a and b without clamping t.
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Vec2 is a two-component vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies every component by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Lerp interpolates towards o without clamping t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{LerpF(v.X, o.X, t), LerpF(v.Y, o.Y, t)}
}

// Vec3 is a three-component vector. Orientation values store Euler angles
// in degrees.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale multiplies every component by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Lerp interpolates towards o without clamping t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{LerpF(v.X, o.X, t), LerpF(v.Y, o.Y, t), LerpF(v.Z, o.Z, t)}
}

// LerpAngle treats each component as degrees and interpolates along the
// shortest arc towards o.
func (v Vec3) LerpAngle(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + ease.AngleDelta(v.X, o.X)*t,
		v.Y + ease.AngleDelta(v.Y, o.Y)*t,
		v.Z + ease.AngleDelta(v.Z, o.Z)*t,
	}
}

// Vec4 is a four-component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// Add returns the component-wise sum.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Lerp interpolates towards o without clamping t.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{LerpF(v.X, o.X, t), LerpF(v.Y, o.Y, t), LerpF(v.Z, o.Z, t), LerpF(v.W, o.W, t)}
}

// Rect is a float rectangle: position plus size.
type Rect struct {
	X, Y, W, H float64
}

// Add returns the component-wise sum, used for relative rectangles.
func (r Rect) Add(o Rect) Rect {
	return Rect{r.X + o.X, r.Y + o.Y, r.W + o.W, r.H + o.H}
}

// Lerp interpolates position and size towards o without clamping t.
func (r Rect) Lerp(o Rect, t float64) Rect {
	return Rect{LerpF(r.X, o.X, t), LerpF(r.Y, o.Y, t), LerpF(r.W, o.W, t), LerpF(r.H, o.H, t)}
}

// Quat is a rotation quaternion.
type Quat struct {
	X, Y, Z, W float64
}

// IdentityQuat is the no-rotation quaternion.
var IdentityQuat = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of deg degrees about axis.
func QuatFromAxisAngle(axis Vec3, deg float64) Quat {
	n := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	if n == 0 {
		return IdentityQuat
	}
	half := deg * math.Pi / 360
	s := math.Sin(half) / n
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, math.Cos(half)}
}

// Mul returns the Hamilton product q*o: rotate by o, then by q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Dot returns the four-dimensional dot product.
func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize returns q scaled to unit length. A zero quaternion yields identity.
func (q Quat) Normalize() Quat {
	n := math.Sqrt(q.Dot(q))
	if n == 0 {
		return IdentityQuat
	}
	return Quat{q.X / n, q.Y / n, q.Z / n, q.W / n}
}

// Nlerp interpolates towards o along the shorter hemisphere and renormalizes.
func (q Quat) Nlerp(o Quat, t float64) Quat {
	if q.Dot(o) < 0 {
		o = Quat{-o.X, -o.Y, -o.Z, -o.W}
	}
	return Quat{
		LerpF(q.X, o.X, t),
		LerpF(q.Y, o.Y, t),
		LerpF(q.Z, o.Z, t),
		LerpF(q.W, o.W, t),
	}.Normalize()
}

// AngleZ returns the rotation about the Z axis in degrees, assuming q only
// rotates about Z.
func (q Quat) AngleZ() float64 {
	return 2 * math.Atan2(q.Z, q.W) * 180 / math.Pi
}
