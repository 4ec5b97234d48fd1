package rig

import (
	"context"
	"testing"

	"visualcues/internal/components"
	"visualcues/internal/engine"
	"visualcues/internal/hud"
	"visualcues/internal/layout"
	"visualcues/internal/world"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type recorder struct {
	said []string
}

func (r *recorder) Say(text string) { r.said = append(r.said, text) }

func (r *recorder) last() string {
	if len(r.said) == 0 {
		return ""
	}
	return r.said[len(r.said)-1]
}

func newRig(t *testing.T) (*Rig, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts := DefaultOptions()
	opts.Announcer = rec
	r, err := New(world.Default().Scene, opts)
	require.NoError(t, err)
	// Hold the head still; tests steer it directly.
	head(r).Input = func() components.HeadInput { return components.HeadInput{} }
	return r, rec
}

func head(r *Rig) *components.HeadController {
	return engine.GetComponent[*components.HeadController](r.Camera().GetGameObject())
}

func assertVec(t *testing.T, want, got rl.Vector3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msg)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msg)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msg)
}

func TestNewAnnouncesReady(t *testing.T) {
	r, rec := newRig(t)

	assert.Equal(t, []string{"Ready"}, rec.said)
	assert.NotEqual(t, uuid.Nil, r.Session)
	assert.Equal(t, "Default", r.Layout())
	assert.False(t, r.DistanceCap)
	assert.Equal(t, float32(uncappedDistance), r.Camera().Far)
	assert.Len(t, r.Manager().Records(), 6, "calibration obstacle is not a HUD obstacle")
	for _, d := range hud.Directions {
		require.NotNil(t, r.Cue(d))
		assert.Equal(t, d, r.Cue(d).Direction)
	}
}

func TestNewMissingCue(t *testing.T) {
	w := world.Default()
	frame := w.Scene.FindByName(HUDFrameName)
	frame.RemoveChild(frame.FindChild(CueName(hud.West)))

	_, err := New(w.Scene, DefaultOptions())
	require.ErrorIs(t, err, ErrMissingCue)
	assert.Contains(t, err.Error(), "HUD Cue West")
}

func TestNewMissingCourse(t *testing.T) {
	w := world.Default()
	w.Scene.RemoveGameObject(w.Scene.FindByName(CourseName))

	_, err := New(w.Scene, DefaultOptions())
	require.ErrorIs(t, err, ErrMissingObject)
}

func TestNewInvalidConfig(t *testing.T) {
	opts := DefaultOptions()
	opts.Config.FrontAngle = 120

	_, err := New(world.Default().Scene, opts)
	require.ErrorIs(t, err, hud.ErrInvalidConfig)
}

func TestCueName(t *testing.T) {
	assert.Equal(t, "HUD Cue North", CueName(hud.North))
	assert.Equal(t, "HUD Cue West", CueName(hud.West))
}

func TestUpdateStraightAheadNoCues(t *testing.T) {
	r, _ := newRig(t)

	state := r.Update(0)

	target, ok := r.Manager().Target()
	require.True(t, ok)
	assert.Equal(t, "Wide Obstacle 1", target.Name)
	assert.False(t, state.AnyActive())
	for _, d := range hud.Directions {
		assert.False(t, r.Cue(d).GetGameObject().Active, d.String())
	}
}

func TestUpdateTurnedHeadFiresWest(t *testing.T) {
	r, _ := newRig(t)
	// turned right, away from the wide obstacle on the left of the hallway
	head(r).Yaw = -40

	state := r.Update(0)

	assert.Equal(t, []hud.Direction{hud.West}, state.ActiveDirections())
	assert.True(t, r.Cue(hud.West).GetGameObject().Active)
	assert.False(t, r.Cue(hud.East).GetGameObject().Active)
	assert.Equal(t, state.SizeMultiplier, r.Cue(hud.West).Cue().Scale)
}

func TestToggleHUDHidesFrame(t *testing.T) {
	r, rec := newRig(t)
	head(r).Yaw = -40

	assert.True(t, r.Frame().Active)
	assert.False(t, r.ToggleHUD())
	assert.Equal(t, "HUD cues off.", rec.last())
	assert.False(t, r.Frame().Active)

	state := r.Update(0)
	assert.False(t, state.AnyActive())
	assert.Equal(t, ConditionCollocated, r.CueCondition())

	assert.True(t, r.ToggleHUD())
	assert.Equal(t, "HUD cues on.", rec.last())
	state = r.Update(0)
	assert.True(t, state.Active(hud.West))
}

func TestCueCondition(t *testing.T) {
	r, rec := newRig(t)
	assert.Equal(t, ConditionCombined, r.CueCondition())

	r.ToggleCollocated()
	assert.Equal(t, "Co-located cues off.", rec.last())
	assert.Equal(t, ConditionHUD, r.CueCondition())

	r.ToggleHUD()
	assert.Equal(t, ConditionNone, r.CueCondition())

	r.ToggleCollocated()
	assert.Equal(t, ConditionCollocated, r.CueCondition())
}

func TestToggleCalibration(t *testing.T) {
	r, rec := newRig(t)
	calib := r.Course().FindChild(CalibrationObstacleName)
	require.NotNil(t, calib)

	assert.True(t, r.ToggleCalibration())
	assert.Equal(t, "HUD Calibration on.", rec.last())
	assert.True(t, calib.Active)
	assert.False(t, r.DistanceCap)

	state := r.Update(0)
	for _, d := range hud.Directions {
		assert.True(t, state.Active(d), d.String())
		assert.True(t, r.Cue(d).GetGameObject().Active, d.String())
	}

	assert.False(t, r.ToggleCalibration())
	assert.Equal(t, "HUD Calibration off.", rec.last())
	assert.False(t, calib.Active)
	assert.True(t, r.DistanceCap)
	assert.Equal(t, r.MaxDisplayDistance, r.Camera().Far)
}

func TestAdjustAnnouncesValue(t *testing.T) {
	r, rec := newRig(t)

	assert.Equal(t, float32(80), r.AdjustFrontAngle(5))
	assert.Equal(t, "Front angle now 80", rec.last())

	assert.Equal(t, float32(90), r.AdjustFrontAngle(50))
	assert.Equal(t, "Front angle now 90", rec.last())

	assert.InDelta(t, 0.2, r.AdjustHUDThreshold(0.05), 1e-6)
	assert.Equal(t, "HUD threshold now 0.2", rec.last())
}

func TestSetLocationFront(t *testing.T) {
	r, rec := newRig(t)
	r.Camera().GetGameObject().Transform.Position = rl.Vector3{X: 1, Y: 0, Z: 2}
	head(r).Yaw = 90

	require.NoError(t, r.SetLocation("front"))
	assert.Equal(t, "Location reset.", rec.last())

	assertVec(t, rl.Vector3{X: 1, Y: 0, Z: 2}, r.Course().WorldPosition(), "course origin under the head")
	assert.InDelta(t, -90, r.Course().Transform.Rotation.Y, 1e-3)

	wide := r.Course().FindChild("Wide Obstacle 1")
	assertVec(t, rl.Vector3{X: -0.5, Y: 0.9, Z: 2.45}, wide.WorldPosition(), "wide obstacle 1.5 m ahead, on the left")

	r.MoveForward(0.5)
	assertVec(t, rl.Vector3{X: 0.5, Y: 0, Z: 2}, r.Course().WorldPosition(), "moved along the head's forward")
}

func TestMoveRightFollowsHeadRight(t *testing.T) {
	r, _ := newRig(t)
	head(r).Yaw = 25
	require.NoError(t, r.SetLocation("front"))

	pose := r.Camera().Pose()
	before := r.Course().WorldPosition()
	r.MoveRight(0.5)
	delta := rl.Vector3Subtract(r.Course().WorldPosition(), before)
	assert.InDelta(t, 0.5, rl.Vector3DotProduct(delta, pose.Right), 1e-4)

	// Layout 1 puts the first wide obstacle left of the centerline
	rel := rl.Vector3Subtract(r.Course().FindChild("Wide Obstacle 1").WorldPosition(), r.Course().WorldPosition())
	assert.Less(t, rl.Vector3DotProduct(rel, pose.Right), float32(0))
	assert.Greater(t, rl.Vector3DotProduct(rel, pose.Forward), float32(0))
}

func TestSetLocationUnknown(t *testing.T) {
	r, _ := newRig(t)
	before := r.Course().WorldPosition()

	err := r.SetLocation("back")
	require.ErrorIs(t, err, ErrUnknownLocation)
	assertVec(t, before, r.Course().WorldPosition(), "location unchanged")
}

func TestMoveAndRotate(t *testing.T) {
	r, _ := newRig(t)

	// Course yaw 180: the hallway runs down -Z and the walker's right is +X.
	r.MoveForward(1)
	assertVec(t, rl.Vector3{Z: -1}, r.Course().WorldPosition(), "forward")

	r.MoveRight(1)
	assertVec(t, rl.Vector3{X: 1, Z: -1}, r.Course().WorldPosition(), "right")

	r.MoveUp(0.25)
	assertVec(t, rl.Vector3{X: 1, Y: 0.25, Z: -1}, r.Course().WorldPosition(), "up")

	r.ManualRotate(-10)
	assert.InDelta(t, 170, r.Course().Transform.Rotation.Y, 1e-4)
}

func TestShiftAndScaleHUDMoveCues(t *testing.T) {
	r, _ := newRig(t)
	head(r).Yaw = -40
	before := r.Update(0).Cues[hud.West].Position
	screen := rl.Rectangle{Width: 1000, Height: 800}
	beforeRect := r.Cue(hud.West).Rect(screen)

	f := r.ShiftHUD(0.1, -0.05)
	assert.Equal(t, rl.Vector2{X: 0.1, Y: -0.05}, f.Shift)
	f, err := r.ScaleHUD(2)
	require.NoError(t, err)
	assert.Equal(t, float32(2), f.HorizontalScale())

	state := r.Update(0)
	require.True(t, state.Active(hud.West))
	west := state.Cues[hud.West].Position
	assert.InDelta(t, before.X*2+0.1, west.X, 1e-5)
	assert.InDelta(t, before.Y-0.05, west.Y, 1e-5)
	assert.Equal(t, west, r.Cue(hud.West).GetGameObject().Transform.Position)

	// the canvas bar moves with the frame and doubles its thickness
	rect := r.Cue(hud.West).Rect(screen)
	assert.InDelta(t, beforeRect.Width*2, rect.Width, 1e-3)
	assert.InDelta(t, beforeRect.Y+beforeRect.Height/2+0.05*800, rect.Y+rect.Height/2, 1e-2)

	_, err = r.ScaleHUD(0)
	assert.ErrorIs(t, err, hud.ErrInvalidConfig)
	assert.Equal(t, float32(2), r.Manager().Frame().HorizontalScale())
}

func TestHUDFrameCommands(t *testing.T) {
	r, _ := newRig(t)

	require.NoError(t, r.Dispatch("hud right"))
	require.NoError(t, r.Dispatch("hud right"))
	require.NoError(t, r.Dispatch("hud left"))
	require.NoError(t, r.Dispatch("hud up"))
	f := *r.Manager().Frame()
	assert.InDelta(t, HUDShiftStep, f.Shift.X, 1e-6)
	assert.InDelta(t, HUDShiftStep, f.Shift.Y, 1e-6)

	require.NoError(t, r.Dispatch("hud down"))
	require.NoError(t, r.Dispatch("hud wider"))
	f = *r.Manager().Frame()
	assert.InDelta(t, 0, f.Shift.Y, 1e-6)
	assert.InDelta(t, HUDScaleStep, f.HorizontalScale(), 1e-6)

	require.NoError(t, r.Dispatch("hud narrower"))
	assert.InDelta(t, 1, r.Manager().Frame().HorizontalScale(), 1e-6)

	state := r.Update(0)
	assert.Equal(t, *r.Manager().Frame(), state.Frame)
	assert.Equal(t, state.Frame, r.Cue(hud.North).Frame)
}

func TestAdjustHighObstHeight(t *testing.T) {
	r, _ := newRig(t)
	high := r.Course().FindChild("High Obstacle 1")
	low := r.Course().FindChild("Low Obstacle 2")
	lowY := low.WorldPosition().Y

	assert.InDelta(t, 1.6, r.AdjustHighObstHeight(0.076), 1e-5)
	assert.InDelta(t, 1.6, high.WorldPosition().Y, 1e-5)
	assert.InDelta(t, lowY, low.WorldPosition().Y, 1e-6)
	assert.Equal(t, float64(63), r.HighObstInches())
}

func TestLayoutEventsAnnounceAndKeepHeight(t *testing.T) {
	r, rec := newRig(t)
	r.AdjustHighObstHeight(0.1)

	err := r.Queue().Push(context.Background(), layout.Event{
		Kind:    layout.Added,
		ID:      uuid.New(),
		Payload: "QR Code 2",
		Pose:    layout.CodePose{Position: rl.Vector3{Y: 1.5, Z: -3}},
	})
	require.NoError(t, err)

	r.Update(0)
	assert.Equal(t, "Layout 2", r.Layout())
	assert.Contains(t, rec.said, "Layout 2")

	for _, g := range r.Course().ChildrenContaining("High") {
		if g.Transform.Position.X < 500 {
			assert.InDelta(t, 1.624, g.Transform.Position.Y, 1e-5, g.Name)
		}
	}
}

func TestLogging(t *testing.T) {
	r, rec := newRig(t)
	assert.Equal(t, "forward", r.Direction())

	assert.False(t, r.EndLogging())
	assert.True(t, r.BeginLogging())
	assert.Equal(t, "Beginning logging.", rec.last())
	assert.True(t, r.Logging())
	assert.False(t, r.BeginLogging())

	r.Update(0)
	r.Update(0)
	assert.Equal(t, 2, r.trial.frames)

	assert.True(t, r.EndLogging())
	assert.Equal(t, "Ending logging.", rec.last())
	assert.False(t, r.Logging())
	assert.Equal(t, "backward", r.Direction())
	assert.Equal(t, 0, r.Manager().OnCue.GetListenerCount())
}

func TestDispatch(t *testing.T) {
	r, rec := newRig(t)

	require.NoError(t, r.Dispatch("  Front Angle   DOWN "))
	assert.Equal(t, float32(70), r.Config().FrontAngle)
	assert.Equal(t, "Front angle now 70", rec.last())

	require.NoError(t, r.Dispatch("threshold down"))
	assert.InDelta(t, 0.1, r.Config().HUDThreshold, 1e-6)

	require.NoError(t, r.Dispatch("toggle debug"))
	assert.True(t, r.DebugOn)

	require.NoError(t, r.Dispatch("rotate left"))
	assert.InDelta(t, 181, r.Course().Transform.Rotation.Y, 1e-4)

	err := r.Dispatch("open the pod bay doors")
	require.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommandsListed(t *testing.T) {
	names := Commands()
	assert.Len(t, names, len(commands))
	assert.Contains(t, names, "toggle calibration")
	assert.IsIncreasing(t, names)
}

func TestDebugText(t *testing.T) {
	r, _ := newRig(t)
	head(r).Yaw = -40
	r.Update(0)

	text := r.DebugText()
	assert.Contains(t, text, "Mode, layout, direction: Combined, Default, forward\n")
	assert.Contains(t, text, "High obstacle height: 60 inches\n")
	assert.Contains(t, text, "Front angle and HUD Threshold: 75, 0.15\n")
	assert.Contains(t, text, "DEACTIVATE CALIBRATION\n")
	assert.Contains(t, text, "Target obstacle: Wide Obstacle 1\n")
	assert.Contains(t, text, "Distance: 1.73\n")
	assert.Contains(t, text, "Min and max angle: 41, 74\n")
	assert.Contains(t, text, "Min and max X factor: ")

	r.SetDistanceCap(true)
	assert.Contains(t, r.DebugText(), "OK TO EXPERIMENT\n")
}

func TestRoundDegrees(t *testing.T) {
	assert.Equal(t, "41", roundDegrees(40.56))
	assert.Equal(t, "40", roundDegrees(40.5))
	assert.Equal(t, "42", roundDegrees(41.5))
	assert.Equal(t, "0", roundDegrees(0.2))
}

func TestDebugTextHidesTargetInCalibration(t *testing.T) {
	r, _ := newRig(t)
	r.ToggleCalibration()
	r.Update(0)

	text := r.DebugText()
	assert.Contains(t, text, "DEACTIVATE CALIBRATION\n")
	assert.NotContains(t, text, "Target obstacle")
}

func TestDebugTextObjectFollowsToggle(t *testing.T) {
	r, _ := newRig(t)
	obj := r.Scene().FindByName(DebugTextName)
	require.NotNil(t, obj)
	text := engine.GetComponent[*components.UIText](obj)
	require.NotNil(t, text)
	assert.False(t, obj.Active)

	r.ToggleDebug()
	head(r).Yaw = -40
	r.Update(0)

	assert.True(t, obj.Active)
	assert.Equal(t, r.DebugText(), text.Text)
	assert.Equal(t, rl.Red, text.LineColor(BannerRecalibrate))
	assert.Contains(t, text.Lines(), "Target obstacle: Wide Obstacle 1")

	r.ToggleDebug()
	assert.False(t, obj.Active)
}

func TestWorldIndicatorHidesCanvasCues(t *testing.T) {
	opts := DefaultOptions()
	opts.Indicator = hud.NewWorldIndicator()
	r, err := New(world.Default().Scene, opts)
	require.NoError(t, err)
	head(r).Input = func() components.HeadInput { return components.HeadInput{} }
	head(r).Yaw = -40

	state := r.Update(0)
	assert.True(t, state.Active(hud.West))
	assert.False(t, r.Frame().Active)
}
