package components

import (
	"visualcues/internal/engine"
	"visualcues/internal/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDCue is one directional bar on the HUD frame. Its GameObject is active
// exactly when the cue fires.
type HUDCue struct {
	engine.BaseComponent
	Direction hud.Direction

	// Bar length and thickness at scale 1, as fractions of the frame.
	Length    float32
	Thickness float32

	// Frame is the operator's frame adjustment, copied in each pass.
	Frame hud.FrameTransform

	cue hud.Cue
}

func NewHUDCue(d hud.Direction) *HUDCue {
	return &HUDCue{
		Direction: d,
		Length:    0.2,
		Thickness: 0.04,
		cue: hud.Cue{
			Direction: d,
			Scale:     hud.DefaultCueScale,
			Inset:     hud.EdgeInset,
		},
	}
}

// Apply copies this frame's placement onto the cue and its GameObject.
func (c *HUDCue) Apply(cue hud.Cue) {
	c.cue = cue
	g := c.GetGameObject()
	if g == nil {
		return
	}
	g.Active = cue.Active
	g.Transform.Position = cue.Position
	g.Transform.Scale = rl.Vector3{X: cue.Scale, Y: 1, Z: 1}
}

// Cue is the placement applied last.
func (c *HUDCue) Cue() hud.Cue {
	return c.cue
}

// Rect maps the canvas placement into frame pixels. Bars grow along their
// edge with the cue scale, and the frame adjustment moves them and stretches
// their width; canvas Y is up, screen Y is down.
func (c *HUDCue) Rect(frame rl.Rectangle) rl.Rectangle {
	off := c.Frame.Apply(hud.CanvasOffset(c.cue))
	cx := frame.X + frame.Width*(0.5+off.X)
	cy := frame.Y + frame.Height*(0.5-off.Y)

	sx := c.Frame.HorizontalScale()
	var w, h float32
	switch c.Direction {
	case hud.North, hud.South:
		w = frame.Width * c.Length * c.cue.Scale * sx
		h = frame.Height * c.Thickness
	default:
		w = frame.Width * c.Thickness * sx
		h = frame.Height * c.Length * c.cue.Scale
	}
	return rl.Rectangle{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}
