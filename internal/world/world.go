// Package world holds the course scene: loading it from a scene file,
// collecting its obstacles, and drawing it for the desktop viewer.
package world

import (
	_ "embed"
	"fmt"

	"visualcues/internal/components"
	"visualcues/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const FloorSize = 30.0

//go:embed course.json
var defaultCourse []byte

type World struct {
	Scene     *engine.Scene
	FloorSize float32
}

func New(scene *engine.Scene) *World {
	return &World{Scene: scene, FloorSize: FloorSize}
}

// Default returns the built-in hallway course.
func Default() *World {
	scene, err := ParseScene(defaultCourse)
	if err != nil {
		panic(fmt.Sprintf("built-in course: %v", err))
	}
	return New(scene)
}

// Load reads a course from a scene file.
func Load(path string) (*World, error) {
	scene, err := LoadScene(path)
	if err != nil {
		return nil, err
	}
	return New(scene), nil
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// Colliders returns every box collider in the active hierarchy, depth first.
func (w *World) Colliders() []*components.BoxCollider {
	var out []*components.BoxCollider
	var walk func(g *engine.GameObject)
	walk = func(g *engine.GameObject) {
		if !g.Active {
			return
		}
		if col := engine.GetComponent[*components.BoxCollider](g); col != nil {
			out = append(out, col)
		}
		for _, child := range g.Children {
			walk(child)
		}
	}
	for _, g := range w.Scene.GameObjects {
		walk(g)
	}
	return out
}

// Visible filters colliders to those inside the frustum. A nil frustum
// keeps everything.
func (w *World) Visible(f *Frustum) []*components.BoxCollider {
	all := w.Colliders()
	if f == nil {
		return all
	}
	visible := all[:0]
	for _, col := range all {
		if f.ContainsAABB(col.Bounds()) {
			visible = append(visible, col)
		}
	}
	return visible
}

// DrawFloor draws the reference grid. Call inside BeginMode3D.
func (w *World) DrawFloor() {
	rl.DrawGrid(int32(w.FloorSize), 1.0)
}

// DrawObstacles draws the co-located cues. Call inside BeginMode3D.
func (w *World) DrawObstacles(f *Frustum) {
	for _, col := range w.Visible(f) {
		b := col.Bounds()
		center := b.Center()
		size := b.Size()
		fill := col.Color
		fill.A = 160
		rl.DrawCubeV(center, size, fill)
		rl.DrawCubeWiresV(center, size, col.Color)
	}
}
