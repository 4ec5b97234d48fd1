package components

import (
	"visualcues/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIImage is a solid block on the canvas. HUD cue bars use one for their
// fill, with an optional outline so the bar stays visible against bright
// passthrough video.
type UIImage struct {
	engine.BaseComponent

	Color        rl.Color
	Outline      rl.Color
	OutlineWidth float32
}

func NewUIImage(color rl.Color) *UIImage {
	return &UIImage{Color: color}
}

// Draw fills rect and, when OutlineWidth is set, strokes its border.
func (i *UIImage) Draw(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, i.Color)
	if i.OutlineWidth > 0 {
		rl.DrawRectangleLinesEx(rect, i.OutlineWidth, i.Outline)
	}
}
