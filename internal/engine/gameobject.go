package engine

import (
	"math"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

type GameObject struct {
	Name       string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	g := &GameObject{Name: name, Active: true}
	g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	g.components = []Component{}
	g.Children = []*GameObject{}
	return g
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of concrete type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	return FindComponent[T](g)
}

// FindComponent returns the first component assignable to T, which may be
// an interface such as LookProvider. A nil object yields the zero value.
func FindComponent[T any](g *GameObject) (found T) {
	if g == nil {
		return found
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return found
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		if s, ok := c.(Starter); ok {
			s.Start()
		}
	}
	g.started = true
	for _, child := range g.Children {
		child.Start()
	}
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		if u, ok := c.(Updater); ok {
			u.Update(deltaTime)
		}
	}
	for _, child := range g.Children {
		child.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	child.Scene = g.Scene
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// FindChild returns the direct child with the given name.
func (g *GameObject) FindChild(name string) *GameObject {
	for _, c := range g.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenContaining returns direct children whose name contains substr.
func (g *GameObject) ChildrenContaining(substr string) []*GameObject {
	var result []*GameObject
	for _, c := range g.Children {
		if strings.Contains(c.Name, substr) {
			result = append(result, c)
		}
	}
	return result
}

// WorldPosition resolves the local position through every ancestor's
// scale, rotation and offset.
func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	p := g.Parent
	return rl.Vector3Add(p.WorldPosition(), p.TransformVector(g.Transform.Position))
}

// TransformVector takes an offset in the object's local space to world
// space. Scale applies before rotation; position is ignored.
func (g *GameObject) TransformVector(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Transform(mulVec(v, g.WorldScale()), rotationMatrix(g.WorldRotation()))
}

// rotationMatrix applies X, then Y, then Z, matching the renderer.
func rotationMatrix(eulerDeg rl.Vector3) rl.Matrix {
	m := rl.MatrixRotateX(eulerDeg.X * rl.Deg2rad)
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(eulerDeg.Y*rl.Deg2rad))
	return rl.MatrixMultiply(m, rl.MatrixRotateZ(eulerDeg.Z*rl.Deg2rad))
}

// SetWorldPosition places the object at p regardless of its parent.
// Only the parent's yaw is undone; pitch and roll on parents are not supported.
func (g *GameObject) SetWorldPosition(p rl.Vector3) {
	if g.Parent == nil {
		g.Transform.Position = p
		return
	}
	parent := g.Parent
	local := rl.Vector3Subtract(p, parent.WorldPosition())
	local = rl.Vector3Transform(local, rl.MatrixRotateY(-parent.WorldRotation().Y*rl.Deg2rad))
	scale := parent.WorldScale()
	g.Transform.Position = rl.Vector3{
		X: safeDiv(local.X, scale.X),
		Y: safeDiv(local.Y, scale.Y),
		Z: safeDiv(local.Z, scale.Z),
	}
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	return mulVec(g.Parent.WorldScale(), g.Transform.Scale)
}

// Forward is the horizontal -Z axis of the object after its world yaw.
func (g *GameObject) Forward() rl.Vector3 {
	yawRad := float64(g.WorldRotation().Y) * math.Pi / 180
	return rl.Vector3{X: float32(-math.Sin(yawRad)), Y: 0, Z: float32(-math.Cos(yawRad))}
}

// Right is the horizontal +X axis of the object after its world yaw.
func (g *GameObject) Right() rl.Vector3 {
	yawRad := float64(g.WorldRotation().Y) * math.Pi / 180
	return rl.Vector3{X: float32(math.Cos(yawRad)), Y: 0, Z: float32(-math.Sin(yawRad))}
}

// Translate moves the object by delta in its parent's space.
func (g *GameObject) Translate(delta rl.Vector3) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, delta)
}

// RotateYaw turns the object about the vertical axis by degrees.
func (g *GameObject) RotateYaw(degrees float32) {
	g.Transform.Rotation.Y += degrees
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}

func mulVec(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}
