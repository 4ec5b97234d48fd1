package hud

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFrameTransformZeroIsIdentity(t *testing.T) {
	var f FrameTransform
	assert.Equal(t, float32(1), f.HorizontalScale())
	assert.Equal(t, rl.Vector2{X: 0.45, Y: -0.2}, f.Apply(rl.Vector2{X: 0.45, Y: -0.2}))
}

func TestFrameTransformShiftAndScale(t *testing.T) {
	var f FrameTransform
	f.ShiftBy(0.1, -0.05)
	require.NoError(t, f.ScaleBy(2))

	got := f.Apply(rl.Vector2{X: 0.45, Y: 0.45})
	assert.InDelta(t, 0.45*2+0.1, got.X, 1e-6)
	assert.InDelta(t, 0.45-0.05, got.Y, 1e-6)

	require.NoError(t, f.ScaleBy(0.5))
	assert.InDelta(t, 1, f.HorizontalScale(), 1e-6)
}

func TestFrameTransformRejectsBadSteps(t *testing.T) {
	f := FrameTransform{Shift: rl.Vector2{X: 0.1}, ScaleX: 1.5}

	f.ShiftBy(float32(math.NaN()), 0)
	f.ShiftBy(0, float32(math.Inf(1)))
	assert.Equal(t, rl.Vector2{X: 0.1}, f.Shift)

	for _, mult := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		assert.ErrorIs(t, f.ScaleBy(mult), ErrInvalidConfig, "mult %v", mult)
	}
	assert.Equal(t, float32(1.5), f.ScaleX)
}

func TestCanvasIndicatorAppliesFrame(t *testing.T) {
	var state CueState
	state.reset(true)
	state.Frame = FrameTransform{Shift: rl.Vector2{X: 0.1, Y: 0.05}, ScaleX: 1.5}

	(&CanvasIndicator{}).Place(facingPlusZ(), &state)

	assert.InDelta(t, 0.45*1.5+0.1, state.Cues[East].Position.X, 1e-6)
	assert.InDelta(t, 0.05, state.Cues[East].Position.Y, 1e-6)
	assert.InDelta(t, -0.45*1.5+0.1, state.Cues[West].Position.X, 1e-6)
	assert.InDelta(t, 0.1, state.Cues[North].Position.X, 1e-6)
	assert.InDelta(t, 0.45+0.05, state.Cues[North].Position.Y, 1e-6)
}

func TestWorldIndicatorAppliesFrame(t *testing.T) {
	var plain, shifted CueState
	plain.reset(true)
	shifted.reset(true)
	shifted.Frame = FrameTransform{Shift: rl.Vector2{X: 0.1, Y: -0.1}, ScaleX: 2}

	w := NewWorldIndicator()
	w.Place(facingPlusZ(), &plain)
	w.Place(facingPlusZ(), &shifted)

	// the head's right is +X here
	east := rl.Vector3Subtract(shifted.Cues[East].Position, plain.Cues[East].Position)
	assert.InDelta(t, (0.45*2+0.1-0.45)*w.Width, east.X, 1e-5)
	assert.InDelta(t, -0.1*w.Height, east.Y, 1e-5)
}

func TestManagerAppliesFrame(t *testing.T) {
	m := newTestManager(t, DefaultConfig())
	before := m.Update().Cues[East].Position

	m.Frame().ShiftBy(0.05, 0)
	require.NoError(t, m.Frame().ScaleBy(1.2))
	state := m.Update()

	assert.Equal(t, *m.Frame(), state.Frame)
	assert.InDelta(t, before.X*1.2+0.05, state.Cues[East].Position.X, 1e-5)
	assert.InDelta(t, before.Y, state.Cues[East].Position.Y, 1e-6)
}
