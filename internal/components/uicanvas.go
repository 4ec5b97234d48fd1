package components

import (
	"visualcues/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultCueColor is used for cues without a UIImage.
var DefaultCueColor = rl.NewColor(255, 200, 0, 220)

// UICanvas is the root of the HUD overlay. Children are laid out with
// RectTransform and drawn in hierarchy order.
type UICanvas struct {
	engine.BaseComponent
	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// Draw renders every active element under this canvas.
func (c *UICanvas) Draw() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	screenRect := rl.Rectangle{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
	c.Walk(screenRect, func(g *engine.GameObject, rect rl.Rectangle) {
		if cue := engine.GetComponent[*HUDCue](g); cue != nil {
			if img := engine.GetComponent[*UIImage](g); img != nil {
				img.Draw(rect)
			} else {
				rl.DrawRectangleRec(rect, DefaultCueColor)
			}
			return
		}
		if img := engine.GetComponent[*UIImage](g); img != nil {
			img.Draw(rect)
		}
		if text := engine.GetComponent[*UIText](g); text != nil {
			text.Draw(rect)
		}
	})
}

// Walk lays out the active hierarchy under the canvas and calls visit with
// each element's screen rect, parents first.
func (c *UICanvas) Walk(screen rl.Rectangle, visit func(*engine.GameObject, rl.Rectangle)) {
	c.walk(c.GetGameObject(), screen, visit)
}

func (c *UICanvas) walk(g *engine.GameObject, parentRect rl.Rectangle, visit func(*engine.GameObject, rl.Rectangle)) {
	if g == nil || !g.Active {
		return
	}

	rect := parentRect
	if cue := engine.GetComponent[*HUDCue](g); cue != nil {
		rect = cue.Rect(parentRect)
	} else if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rect = rt.CalculateRect(parentRect)
	}
	visit(g, rect)

	for _, child := range g.Children {
		c.walk(child, rect, visit)
	}
}
