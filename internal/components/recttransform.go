package components

import (
	"visualcues/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AnchorPreset names the anchor layouts used by the HUD frame, the four cue
// bars and the debug overlay.
type AnchorPreset int

const (
	AnchorMiddleCenter AnchorPreset = iota
	AnchorTopCenter
	AnchorMiddleRight
	AnchorBottomCenter
	AnchorMiddleLeft
	AnchorStretchAll
	AnchorTopLeft
)

type anchorSpec struct {
	min, max, pivot rl.Vector2
}

// point pins the element to one spot of its parent and pivots on that spot.
func point(x, y float32) anchorSpec {
	v := rl.Vector2{X: x, Y: y}
	return anchorSpec{min: v, max: v, pivot: v}
}

var anchorPresets = map[AnchorPreset]anchorSpec{
	AnchorMiddleCenter: point(0.5, 0.5),
	AnchorTopCenter:    point(0.5, 0),
	AnchorMiddleRight:  point(1, 0.5),
	AnchorBottomCenter: point(0.5, 1),
	AnchorMiddleLeft:   point(0, 0.5),
	AnchorTopLeft:      point(0, 0),
	AnchorStretchAll: {
		max:   rl.Vector2{X: 1, Y: 1},
		pivot: rl.Vector2{X: 0.5, Y: 0.5},
	},
}

// RectTransform lays a canvas element out relative to its parent rect.
// Anchors are fractions of the parent (screen Y grows down); offsets and
// sizes are pixels.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin rl.Vector2
	AnchorMax rl.Vector2
	Pivot     rl.Vector2

	// Offset from the anchor point, or the top-left inset when stretched.
	AnchoredPosition rl.Vector2
	// Element size for point anchors; grows the anchor span when stretched.
	SizeDelta rl.Vector2

	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	rt := &RectTransform{SizeDelta: rl.Vector2{X: 100, Y: 30}}
	rt.SetAnchorPreset(AnchorMiddleCenter)
	return rt
}

// SetAnchorPreset copies the preset's anchors and pivot. Unknown presets
// leave the transform unchanged.
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	spec, ok := anchorPresets[preset]
	if !ok {
		return
	}
	rt.AnchorMin, rt.AnchorMax, rt.Pivot = spec.min, spec.max, spec.pivot
}

// Preset reports which preset the current anchors match.
func (rt *RectTransform) Preset() (AnchorPreset, bool) {
	for preset, spec := range anchorPresets {
		if spec.min == rt.AnchorMin && spec.max == rt.AnchorMax {
			return preset, true
		}
	}
	return AnchorMiddleCenter, false
}

func (rt *RectTransform) stretched() bool {
	return rt.AnchorMin != rt.AnchorMax
}

// GetScreenRect returns the rect from the last CalculateRect.
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect places the element inside parent and caches the result.
func (rt *RectTransform) CalculateRect(parent rl.Rectangle) rl.Rectangle {
	lo := rl.Vector2{X: parent.X + parent.Width*rt.AnchorMin.X, Y: parent.Y + parent.Height*rt.AnchorMin.Y}
	hi := rl.Vector2{X: parent.X + parent.Width*rt.AnchorMax.X, Y: parent.Y + parent.Height*rt.AnchorMax.Y}

	r := rl.Rectangle{Width: rt.SizeDelta.X, Height: rt.SizeDelta.Y}
	if rt.stretched() {
		r.X = lo.X + rt.AnchoredPosition.X
		r.Y = lo.Y + rt.AnchoredPosition.Y
		r.Width += hi.X - lo.X
		r.Height += hi.Y - lo.Y
	} else {
		r.X = lo.X + rt.AnchoredPosition.X - r.Width*rt.Pivot.X
		r.Y = lo.Y + rt.AnchoredPosition.Y - r.Height*rt.Pivot.Y
	}
	rt.screenRect = r
	return r
}
