package hud

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when tunables are out of their documented ranges.
var ErrInvalidConfig = errors.New("invalid hud config")

// Ranges for the operator-adjustable tunables.
const (
	MinFrontAngle   = 0.0
	MaxFrontAngle   = 90.0
	MinHUDThreshold = 0.0
	MaxHUDThreshold = 1.0

	// minDistanceGap keeps MaxDistance strictly above MinDistance after adjustment.
	minDistanceGap = 0.1
)

// Config holds the tunables read by every pass.
type Config struct {
	CueWidthMaxMultiplier float32 // cue width at MinDistance; 1 at MaxDistance
	MinDistance           float32 // meters
	MaxDistance           float32 // meters; farther obstacles are never targeted
	HUDThreshold          float32 // 0 = always on, 1 = never on
	HUDTopMultiplier      float32 // applied to the north threshold only
	FrontAngle            float32 // degrees; half-width of the front cone
	Calibration           bool    // all four cues on at default size
}

// DefaultConfig returns the tuning used for the obstacle course trials.
func DefaultConfig() Config {
	return Config{
		CueWidthMaxMultiplier: 4,
		MinDistance:           0,
		MaxDistance:           2.5,
		HUDThreshold:          0.15,
		HUDTopMultiplier:      0.66,
		FrontAngle:            75,
		Calibration:           false,
	}
}

// Validate checks the documented ranges. NaN and infinite values are
// rejected before any range test.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"cue width max multiplier", c.CueWidthMaxMultiplier},
		{"min distance", c.MinDistance},
		{"max distance", c.MaxDistance},
		{"hud threshold", c.HUDThreshold},
		{"hud top multiplier", c.HUDTopMultiplier},
		{"front angle", c.FrontAngle},
	} {
		if !finite(f.v) {
			return fmt.Errorf("%w: %s %v is not a finite number", ErrInvalidConfig, f.name, f.v)
		}
	}
	switch {
	case c.CueWidthMaxMultiplier < 1:
		return fmt.Errorf("%w: cue width max multiplier %v < 1", ErrInvalidConfig, c.CueWidthMaxMultiplier)
	case c.MinDistance < 0:
		return fmt.Errorf("%w: min distance %v < 0", ErrInvalidConfig, c.MinDistance)
	case c.MinDistance >= c.MaxDistance:
		return fmt.Errorf("%w: min distance %v must be below max distance %v", ErrInvalidConfig, c.MinDistance, c.MaxDistance)
	case !within(c.HUDThreshold, MinHUDThreshold, MaxHUDThreshold):
		return fmt.Errorf("%w: hud threshold %v outside [0, 1]", ErrInvalidConfig, c.HUDThreshold)
	case c.HUDTopMultiplier < 0:
		return fmt.Errorf("%w: hud top multiplier %v < 0", ErrInvalidConfig, c.HUDTopMultiplier)
	case !within(c.FrontAngle, MinFrontAngle, MaxFrontAngle):
		return fmt.Errorf("%w: front angle %v outside [0, 90]", ErrInvalidConfig, c.FrontAngle)
	}
	return nil
}

// AdjustFrontAngle widens or narrows the front cone, clamped to [0, 90].
// A non-finite delta leaves the angle unchanged.
func (c *Config) AdjustFrontAngle(delta float32) float32 {
	if finite(delta) {
		c.FrontAngle = clamp(c.FrontAngle+delta, MinFrontAngle, MaxFrontAngle)
	}
	return c.FrontAngle
}

// AdjustHUDThreshold raises or lowers the activation threshold, clamped to [0, 1].
// A non-finite delta leaves the threshold unchanged.
func (c *Config) AdjustHUDThreshold(delta float32) float32 {
	if finite(delta) {
		c.HUDThreshold = clamp(c.HUDThreshold+delta, MinHUDThreshold, MaxHUDThreshold)
	}
	return c.HUDThreshold
}

// AdjustMaxDistance moves the targeting range, never below MinDistance.
func (c *Config) AdjustMaxDistance(delta float32) float32 {
	if finite(delta) {
		c.MaxDistance = max(c.MaxDistance+delta, c.MinDistance+minDistanceGap)
	}
	return c.MaxDistance
}

// SetCalibration switches calibration mode on or off.
func (c *Config) SetCalibration(on bool) {
	c.Calibration = on
}

// ToggleCalibration flips calibration mode and returns the new value.
func (c *Config) ToggleCalibration() bool {
	c.Calibration = !c.Calibration
	return c.Calibration
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func within(v, lo, hi float32) bool {
	return v >= lo && v <= hi
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float32) float32 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}
