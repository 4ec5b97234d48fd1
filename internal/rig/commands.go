package rig

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCommand is returned by Dispatch for unrecognized commands.
var ErrUnknownCommand = errors.New("unknown command")

// Step sizes for the operator commands.
const (
	FrontAngleStep = 5
	ThresholdStep  = 0.05
	MoveStep       = 0.05   // meters
	RotateStep     = 1      // degrees
	HeightStep     = 0.0254 // one inch
	HUDShiftStep   = 0.02   // fraction of the frame
	HUDScaleStep   = 1.05
)

var commands = map[string]func(r *Rig) error{
	"toggle collocated cues": func(r *Rig) error { r.ToggleCollocated(); return nil },
	"toggle hud cues":        func(r *Rig) error { r.ToggleHUD(); return nil },
	"toggle debug":           func(r *Rig) error { r.ToggleDebug(); return nil },
	"toggle calibration":     func(r *Rig) error { r.ToggleCalibration(); return nil },
	"front angle up":         func(r *Rig) error { r.AdjustFrontAngle(FrontAngleStep); return nil },
	"front angle down":       func(r *Rig) error { r.AdjustFrontAngle(-FrontAngleStep); return nil },
	"threshold up":           func(r *Rig) error { r.AdjustHUDThreshold(ThresholdStep); return nil },
	"threshold down":         func(r *Rig) error { r.AdjustHUDThreshold(-ThresholdStep); return nil },
	"reset location":         func(r *Rig) error { return r.SetLocation("front") },
	"move forward":           func(r *Rig) error { r.MoveForward(MoveStep); return nil },
	"move back":              func(r *Rig) error { r.MoveForward(-MoveStep); return nil },
	"move right":             func(r *Rig) error { r.MoveRight(MoveStep); return nil },
	"move left":              func(r *Rig) error { r.MoveRight(-MoveStep); return nil },
	"move up":                func(r *Rig) error { r.MoveUp(MoveStep); return nil },
	"move down":              func(r *Rig) error { r.MoveUp(-MoveStep); return nil },
	"rotate left":            func(r *Rig) error { r.ManualRotate(RotateStep); return nil },
	"rotate right":           func(r *Rig) error { r.ManualRotate(-RotateStep); return nil },
	"hud left":               func(r *Rig) error { r.ShiftHUD(-HUDShiftStep, 0); return nil },
	"hud right":              func(r *Rig) error { r.ShiftHUD(HUDShiftStep, 0); return nil },
	"hud up":                 func(r *Rig) error { r.ShiftHUD(0, HUDShiftStep); return nil },
	"hud down":               func(r *Rig) error { r.ShiftHUD(0, -HUDShiftStep); return nil },
	"hud wider":              func(r *Rig) error { _, err := r.ScaleHUD(HUDScaleStep); return err },
	"hud narrower":           func(r *Rig) error { _, err := r.ScaleHUD(1 / HUDScaleStep); return err },
	"high obstacle up":       func(r *Rig) error { r.AdjustHighObstHeight(HeightStep); return nil },
	"high obstacle down":     func(r *Rig) error { r.AdjustHighObstHeight(-HeightStep); return nil },
	"begin logging":          func(r *Rig) error { r.BeginLogging(); return nil },
	"end logging":            func(r *Rig) error { r.EndLogging(); return nil },
}

// Commands lists the recognized command phrases.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs a spoken or typed command. Case and extra spaces are ignored.
func (r *Rig) Dispatch(command string) error {
	key := strings.Join(strings.Fields(strings.ToLower(command)), " ")
	fn, ok := commands[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	r.logger.Debug("command", "name", key)
	return fn(r)
}
