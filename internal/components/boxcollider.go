package components

import (
	"visualcues/internal/engine"
	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider gives an obstacle GameObject its physical extent.
// It is the obstacle source the HUD manager projects every frame.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Color  rl.Color // viewer color for the co-located cue
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
		Color:  rl.Orange,
	}
}

// ObstacleName is the owning GameObject's name.
func (b *BoxCollider) ObstacleName() string {
	g := b.GetGameObject()
	if g == nil {
		return ""
	}
	return g.Name
}

// Bounds returns the world-space AABB enclosing the box after the object's
// world scale and yaw are applied. Offset is in the object's local space, so
// it turns and scales with the object.
func (b *BoxCollider) Bounds() geom.AABB {
	g := b.GetGameObject()
	if g == nil {
		return geom.NewAABBFromCenter(b.Offset, b.Size)
	}
	scale := g.WorldScale()
	size := rl.Vector3{
		X: b.Size.X * scale.X,
		Y: b.Size.Y * scale.Y,
		Z: b.Size.Z * scale.Z,
	}
	center := rl.Vector3Add(g.WorldPosition(), g.TransformVector(b.Offset))
	return geom.NewAABBFromYawedBox(center, size, g.WorldRotation().Y)
}
