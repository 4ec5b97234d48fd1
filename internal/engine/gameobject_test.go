package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

type markerComponent struct {
	BaseComponent
	started bool
	updates int
}

func (m *markerComponent) Start()                   { m.started = true }
func (m *markerComponent) Update(deltaTime float32) { m.updates++ }

type lookComponent struct {
	BaseComponent
}

func (l *lookComponent) GetLookAngles() (float32, float32) { return 10, -5 }
func (l *lookComponent) GetEyeHeight() float32             { return 1.6 }

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("Low Obstacle 1")

	if obj.Name != "Low Obstacle 1" {
		t.Errorf("Expected name 'Low Obstacle 1', got '%s'", obj.Name)
	}
	if !obj.Active {
		t.Error("New GameObjects should be active")
	}
	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
	if obj.components == nil {
		t.Error("components slice should be initialized")
	}
}

func TestGameObjectComponents(t *testing.T) {
	obj := NewGameObject("Head")
	marker := &markerComponent{}
	look := &lookComponent{}
	obj.AddComponent(marker)
	obj.AddComponent(look)

	if got := GetComponent[*markerComponent](obj); got != marker {
		t.Error("GetComponent did not return the marker component")
	}
	if marker.GetGameObject() != obj {
		t.Error("AddComponent should set the owning GameObject")
	}
	if lp := FindComponent[LookProvider](obj); lp == nil {
		t.Error("FindComponent should find the LookProvider")
	}
	if got := GetComponent[*markerComponent](nil); got != nil {
		t.Error("GetComponent on nil GameObject should return nil")
	}

	obj.Start()
	obj.Start()
	if !marker.started {
		t.Error("Start should start components")
	}

	obj.Update(0.016)
	obj.Active = false
	obj.Update(0.016)
	if marker.updates != 1 {
		t.Errorf("Expected 1 update while active, got %d", marker.updates)
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Collocated Cues")
	child := NewGameObject("High Obstacle 1")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child's parent not set correctly")
	}
	if parent.FindChild("High Obstacle 1") != child {
		t.Error("FindChild failed")
	}
	if got := parent.ChildrenContaining("High"); len(got) != 1 {
		t.Errorf("Expected 1 child containing 'High', got %d", len(got))
	}

	other := NewGameObject("Other")
	other.AddChild(child)
	if len(parent.Children) != 0 {
		t.Error("Reparenting should remove child from old parent")
	}

	other.RemoveChild(child)
	if child.Parent != nil {
		t.Error("RemoveChild should clear Parent")
	}
}

func TestWorldPositionWithParentYaw(t *testing.T) {
	parent := NewGameObject("Collocated Cues")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 1}
	parent.Transform.Rotation.Y = 90

	child := NewGameObject("Low Obstacle 1")
	child.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: -2}
	parent.AddChild(child)

	// Parent forward after 90° yaw is -X, so a child 2m ahead lands at x = -1
	pos := child.WorldPosition()
	if !near(pos.X, -1) || !near(pos.Y, 0) || !near(pos.Z, 1) {
		t.Errorf("Unexpected world position %v", pos)
	}

	fwd := parent.Forward()
	if !near(fwd.X, -1) || !near(fwd.Z, 0) {
		t.Errorf("Unexpected forward %v", fwd)
	}
	right := parent.Right()
	if !near(right.X, 0) || !near(right.Z, -1) {
		t.Errorf("Unexpected right %v", right)
	}
}

func TestTransformVector(t *testing.T) {
	g := NewGameObject("Wide Obstacle 2")
	g.Transform.Position = rl.Vector3{X: 5, Y: 5, Z: 5}
	g.Transform.Rotation.Y = 90
	g.Transform.Scale = rl.Vector3{X: 2, Y: 3, Z: 1}

	// position is ignored, scale applies first, then +X turns onto -Z
	v := g.TransformVector(rl.Vector3{X: 1, Y: 1})
	if !near(v.X, 0) || !near(v.Y, 3) || !near(v.Z, -2) {
		t.Errorf("Unexpected vector %v", v)
	}

	if r := g.TransformVector(rl.Vector3{X: 1}); !near(r.X, 2*g.Right().X) || !near(r.Z, 2*g.Right().Z) {
		t.Errorf("Local +X should follow Right, got %v", r)
	}
}

func TestSetWorldPositionRoundTrip(t *testing.T) {
	parent := NewGameObject("Collocated Cues")
	parent.Transform.Position = rl.Vector3{X: 3, Y: 0, Z: -1}
	parent.Transform.Rotation.Y = 35

	child := NewGameObject("Wide Obstacle 1")
	parent.AddChild(child)

	target := rl.Vector3{X: 0.5, Y: 0.25, Z: 2}
	child.SetWorldPosition(target)
	got := child.WorldPosition()
	if !near(got.X, target.X) || !near(got.Y, target.Y) || !near(got.Z, target.Z) {
		t.Errorf("Expected %v, got %v", target, got)
	}
}

func TestTranslateAndRotate(t *testing.T) {
	obj := NewGameObject("Collocated Cues")
	obj.Translate(rl.Vector3{X: 1})
	obj.Translate(rl.Vector3{Z: 2})
	obj.RotateYaw(15)
	obj.RotateYaw(-5)

	if obj.Transform.Position != (rl.Vector3{X: 1, Z: 2}) {
		t.Errorf("Unexpected position %v", obj.Transform.Position)
	}
	if obj.Transform.Rotation.Y != 10 {
		t.Errorf("Expected yaw 10, got %v", obj.Transform.Rotation.Y)
	}
}
