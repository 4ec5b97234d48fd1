package rig

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"visualcues/internal/geom"
	"visualcues/internal/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrUnknownLocation is returned by SetLocation for names it cannot resolve.
var ErrUnknownLocation = errors.New("unknown location")

const metersToInches = 39.37

// Cue conditions as logged with each trial.
const (
	ConditionCombined   = "Combined"
	ConditionCollocated = "Collocated"
	ConditionHUD        = "HUD"
	ConditionNone       = "No Cues"
)

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// ToggleCollocated shows or hides the obstacle markers.
func (r *Rig) ToggleCollocated() bool {
	r.CollocatedOn = !r.CollocatedOn
	r.logger.Info("toggle", "cues", "collocated", "on", r.CollocatedOn)
	r.announcer.Say(fmt.Sprintf("Co-located cues %s.", onOff(r.CollocatedOn)))
	return r.CollocatedOn
}

// ToggleHUD enables or disables the HUD cues without touching the config.
func (r *Rig) ToggleHUD() bool {
	r.HUDOn = !r.HUDOn
	r.manager.SetEnabled(r.HUDOn)
	r.syncOverlay()
	r.logger.Info("toggle", "cues", "hud", "on", r.HUDOn)
	r.announcer.Say(fmt.Sprintf("HUD cues %s.", onOff(r.HUDOn)))
	return r.HUDOn
}

func (r *Rig) ToggleDebug() bool {
	r.DebugOn = !r.DebugOn
	r.syncOverlay()
	r.announcer.Say(fmt.Sprintf("Debug text %s.", onOff(r.DebugOn)))
	return r.DebugOn
}

// ToggleCalibration flips calibration mode. Calibration shows the
// calibration obstacle and lifts the distance cap; leaving it caps the
// view distance again.
func (r *Rig) ToggleCalibration() bool {
	on := r.manager.Config().ToggleCalibration()
	r.syncCalibration(on)
	r.SetDistanceCap(!on)
	r.logger.Info("toggle", "calibration", on)
	r.announcer.Say(fmt.Sprintf("HUD Calibration %s.", onOff(on)))
	return on
}

func (r *Rig) syncCalibration(on bool) {
	if r.calibration != nil {
		r.calibration.Active = on
	}
}

// SetDistanceCap limits how far the head camera renders.
func (r *Rig) SetDistanceCap(on bool) {
	r.DistanceCap = on
	if on {
		r.camera.Far = r.MaxDisplayDistance
	} else {
		r.camera.Far = uncappedDistance
	}
}

func (r *Rig) AdjustFrontAngle(delta float32) float32 {
	v := r.manager.Config().AdjustFrontAngle(delta)
	r.announcer.Say("Front angle now " + formatFloat(v))
	return v
}

func (r *Rig) AdjustHUDThreshold(delta float32) float32 {
	v := r.manager.Config().AdjustHUDThreshold(delta)
	r.announcer.Say("HUD threshold now " + formatFloat(v))
	return v
}

// SetLocation moves the course to a named spot. "front" puts the course
// origin on the floor under the head, facing the way the head faces.
func (r *Rig) SetLocation(name string) error {
	switch strings.ToLower(name) {
	case "front":
		pose := r.camera.Pose()
		floor := pose.Position
		floor.Y -= r.DefaultHeight
		yaw := float32(geom.Degrees(math.Atan2(float64(pose.Forward.X), float64(pose.Forward.Z))))

		r.course.SetWorldPosition(floor)
		r.course.Transform.Rotation = rl.Vector3{Y: yaw}
		r.logger.Info("location reset", "position", floor, "yaw", yaw)
		r.announcer.Say("Location reset.")
		return nil
	}
	r.logger.Info("position not found, location unchanged", "name", name)
	return fmt.Errorf("%w: %q", ErrUnknownLocation, name)
}

// MoveForward moves the course along the hallway.
func (r *Rig) MoveForward(dist float32) {
	r.course.Translate(rl.Vector3Scale(rl.Vector3Negate(r.course.Forward()), dist))
}

// MoveRight moves the course toward the walker's right. The course faces
// along its local +Z, so its Right is the walker's left.
func (r *Rig) MoveRight(dist float32) {
	r.course.Translate(rl.Vector3Scale(rl.Vector3Negate(r.course.Right()), dist))
}

func (r *Rig) MoveUp(dist float32) {
	r.course.Translate(rl.Vector3{Y: dist})
}

// ManualRotate turns the course about the vertical axis; positive is left.
func (r *Rig) ManualRotate(degrees float32) {
	r.course.RotateYaw(degrees)
}

// ShiftHUD moves the cue frame right by dx and up by dy, in fractions of
// the frame. It shows from the next Update.
func (r *Rig) ShiftHUD(dx, dy float32) hud.FrameTransform {
	f := r.manager.Frame()
	f.ShiftBy(dx, dy)
	r.logger.Info("hud frame shifted", "x", f.Shift.X, "y", f.Shift.Y)
	return *f
}

// ScaleHUD stretches the cue frame horizontally by mult.
func (r *Rig) ScaleHUD(mult float32) (hud.FrameTransform, error) {
	f := r.manager.Frame()
	if err := f.ScaleBy(mult); err != nil {
		return *f, err
	}
	r.logger.Info("hud frame scaled", "scale_x", f.HorizontalScale())
	return *f, nil
}

// AdjustHighObstHeight raises every high obstacle by delta meters. The
// new height survives layout changes.
func (r *Rig) AdjustHighObstHeight(delta float32) float32 {
	r.HighObstHeight += delta
	for _, g := range r.course.ChildrenContaining(highObstacleMarker) {
		p := g.WorldPosition()
		p.Y += delta
		g.SetWorldPosition(p)
	}
	r.logger.Info("high obstacle height", "meters", r.HighObstHeight, "inches", r.HighObstInches())
	return r.HighObstHeight
}

// HighObstInches is the high obstacle height rounded to whole inches.
func (r *Rig) HighObstInches() float64 {
	return math.RoundToEven(float64(r.HighObstHeight) * metersToInches)
}

// CueCondition names the active cue modalities.
func (r *Rig) CueCondition() string {
	switch {
	case r.CollocatedOn && r.HUDOn:
		return ConditionCombined
	case r.CollocatedOn:
		return ConditionCollocated
	case r.HUDOn:
		return ConditionHUD
	}
	return ConditionNone
}

// Direction is the walking direction of the current trial.
func (r *Rig) Direction() string {
	if r.Forward {
		return "forward"
	}
	return "backward"
}

// Logging reports whether a trial is being recorded.
func (r *Rig) Logging() bool {
	return r.trial != nil
}

// BeginLogging starts recording a trial. It reports false if one is
// already running.
func (r *Rig) BeginLogging() bool {
	if r.trial != nil {
		r.logger.Info("logging is currently in process")
		return false
	}
	r.trial = &trial{start: time.Now()}
	r.trial.listener = r.manager.OnCue.AddListener(r.logFrame)
	r.logger.Info("trial started",
		"condition", r.CueCondition(),
		"layout", r.Layout(),
		"direction", r.Direction(),
	)
	r.announcer.Say("Beginning logging.")
	return true
}

// EndLogging stops the running trial and flips the walking direction for
// the next one.
func (r *Rig) EndLogging() bool {
	if r.trial == nil {
		r.logger.Info("logging not currently in process")
		return false
	}
	r.logger.Info("trial ended",
		"frames", r.trial.frames,
		"duration", time.Since(r.trial.start),
	)
	r.manager.OnCue.RemoveListener(r.trial.listener)
	r.trial = nil
	r.Forward = !r.Forward
	r.announcer.Say("Ending logging.")
	return true
}
