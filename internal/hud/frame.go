package hud

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FrameTransform is the operator's adjustment of the whole cue frame: a shift
// in canvas units (Y up) and a horizontal stretch about the frame center.
// The zero value leaves the frame as laid out.
type FrameTransform struct {
	Shift  rl.Vector2
	ScaleX float32 // 0 reads as 1
}

// HorizontalScale is the stretch applied to X positions and widths.
func (f FrameTransform) HorizontalScale() float32 {
	if f.ScaleX == 0 {
		return 1
	}
	return f.ScaleX
}

// Apply moves a canvas point with the frame. The stretch applies first.
func (f FrameTransform) Apply(p rl.Vector2) rl.Vector2 {
	return rl.Vector2{X: p.X*f.HorizontalScale() + f.Shift.X, Y: p.Y + f.Shift.Y}
}

// ShiftBy moves the frame right by dx and up by dy. Non-finite steps are
// ignored.
func (f *FrameTransform) ShiftBy(dx, dy float32) {
	if !finite(dx) || !finite(dy) {
		return
	}
	f.Shift.X += dx
	f.Shift.Y += dy
}

// ScaleBy stretches the frame horizontally by mult.
func (f *FrameTransform) ScaleBy(mult float32) error {
	if !finite(mult) || mult <= 0 {
		return fmt.Errorf("%w: frame scale %v must be positive", ErrInvalidConfig, mult)
	}
	s := f.HorizontalScale() * mult
	if math.IsInf(float64(s), 0) || s == 0 {
		return fmt.Errorf("%w: frame scale %v out of range", ErrInvalidConfig, s)
	}
	f.ScaleX = s
	return nil
}
