package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// epsilonNormalSqrt is the squared-length product below which two vectors
// are treated as having no defined angle between them.
const epsilonNormalSqrt = 1e-15

// Degenerate reports whether the angle between from and to is undefined
// because one of them has (near) zero length.
func Degenerate(from, to rl.Vector3) bool {
	return math.Sqrt(sqrMagnitude(from)*sqrMagnitude(to)) < epsilonNormalSqrt
}

// Angle returns the unsigned angle in degrees between from and to, in [0, 180].
// Degenerate inputs yield 0.
func Angle(from, to rl.Vector3) float32 {
	denom := math.Sqrt(sqrMagnitude(from) * sqrMagnitude(to))
	if denom < epsilonNormalSqrt {
		return 0
	}
	dot := (float64(from.X)*float64(to.X) + float64(from.Y)*float64(to.Y) + float64(from.Z)*float64(to.Z)) / denom
	dot = math.Max(-1, math.Min(1, dot))
	return float32(math.Acos(dot) * 180 / math.Pi)
}

// SignedAngle returns the angle in degrees from `from` to `to`, negative when
// the rotation is clockwise about axis. Range is [-180, 180].
func SignedAngle(from, to, axis rl.Vector3) float32 {
	unsigned := Angle(from, to)
	cross := rl.Vector3CrossProduct(from, to)
	if rl.Vector3DotProduct(axis, cross) < 0 {
		return -unsigned
	}
	return unsigned
}

// Flatten zeroes the vertical component of v.
func Flatten(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: 0, Z: v.Z}
}

// CosDeg is cos for an angle given in degrees.
func CosDeg(deg float32) float32 {
	return float32(math.Cos(float64(deg) * math.Pi / 180))
}

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180.0 / math.Pi
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

func sqrMagnitude(v rl.Vector3) float64 {
	return float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y) + float64(v.Z)*float64(v.Z)
}
