package hud

import (
	"fmt"

	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode selects how cues are placed.
type Mode int

const (
	// ModeCanvas places cues on a screen-space canvas.
	ModeCanvas Mode = iota
	// ModeWorld places cues on a panel floating in front of the head.
	ModeWorld
)

func (m Mode) String() string {
	switch m {
	case ModeCanvas:
		return "canvas"
	case ModeWorld:
		return "world"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "canvas" or "world".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "canvas", "":
		return ModeCanvas, nil
	case "world", "vr":
		return ModeWorld, nil
	}
	return ModeCanvas, fmt.Errorf("unknown indicator mode %q", s)
}

// Indicator fills in cue positions for the rendering layer.
type Indicator interface {
	Mode() Mode
	Place(pose geom.HeadPose, state *CueState)
}

// NewIndicator returns the indicator for mode with its default layout.
func NewIndicator(mode Mode) (Indicator, error) {
	switch mode {
	case ModeCanvas:
		return &CanvasIndicator{}, nil
	case ModeWorld:
		return NewWorldIndicator(), nil
	}
	return nil, fmt.Errorf("unknown indicator mode %v", mode)
}

// CanvasOffset returns the canvas position of a cue: centered on its edge,
// Inset in from it. Y grows upward.
func CanvasOffset(c Cue) rl.Vector2 {
	along := float32(FrameHalfExtent) - c.Inset
	switch c.Direction {
	case North:
		return rl.Vector2{X: 0, Y: along}
	case East:
		return rl.Vector2{X: along, Y: 0}
	case South:
		return rl.Vector2{X: 0, Y: -along}
	case West:
		return rl.Vector2{X: -along, Y: 0}
	}
	return rl.Vector2{}
}

// CanvasIndicator places cues in normalized canvas coordinates ([-0.5, 0.5], Y up),
// moved by the state's frame adjustment.
type CanvasIndicator struct{}

func (c *CanvasIndicator) Mode() Mode { return ModeCanvas }

func (c *CanvasIndicator) Place(_ geom.HeadPose, state *CueState) {
	for i := range state.Cues {
		off := state.Frame.Apply(CanvasOffset(state.Cues[i]))
		state.Cues[i].Position = rl.Vector3{X: off.X, Y: off.Y, Z: 0}
	}
}

// WorldIndicator places cues on a virtual panel Depth meters ahead of the head.
type WorldIndicator struct {
	Depth  float32 // meters in front of the head
	Width  float32 // panel width in meters
	Height float32 // panel height in meters
}

// NewWorldIndicator returns a 1.2 x 0.8 m panel one meter ahead.
func NewWorldIndicator() *WorldIndicator {
	return &WorldIndicator{Depth: 1.0, Width: 1.2, Height: 0.8}
}

func (w *WorldIndicator) Mode() Mode { return ModeWorld }

func (w *WorldIndicator) Place(pose geom.HeadPose, state *CueState) {
	center := rl.Vector3Add(pose.Position, rl.Vector3Scale(pose.Forward, w.Depth))
	for i := range state.Cues {
		off := state.Frame.Apply(CanvasOffset(state.Cues[i]))
		p := rl.Vector3Add(center, rl.Vector3Scale(pose.Right, off.X*w.Width))
		p = rl.Vector3Add(p, rl.Vector3Scale(pose.Up, off.Y*w.Height))
		state.Cues[i].Position = p
	}
}
