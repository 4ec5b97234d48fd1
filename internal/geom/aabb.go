// Package geom holds the vector helpers the cue engine projects with.
package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABBFromYawedBox returns the world AABB enclosing a box of the given
// size rotated about the vertical axis through its center.
func NewAABBFromYawedBox(center, size rl.Vector3, yawDeg float32) AABB {
	rad := float64(yawDeg) * math.Pi / 180
	c := float32(math.Abs(math.Cos(rad)))
	s := float32(math.Abs(math.Sin(rad)))
	return NewAABBFromCenter(center, rl.Vector3{
		X: c*size.X + s*size.Z,
		Y: size.Y,
		Z: s*size.X + c*size.Z,
	})
}

// Center is the midpoint of the box.
func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Size is the full extent of the box along each axis.
func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

// Translate returns the box moved by offset.
func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Add(a.Min, offset),
		Max: rl.Vector3Add(a.Max, offset),
	}
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}
