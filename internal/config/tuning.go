// Package config loads the rig's tuning file and environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"visualcues/internal/hud"
	"visualcues/internal/rig"
)

// DefaultConfigPath is the tuning file the binaries look for when no
// -config flag is given.
const DefaultConfigPath = "config/tuning.json"

const maxFileSize = 1 << 20

// Environment overrides, applied after the file.
const (
	EnvFrontAngle   = "VISUALCUES_FRONT_ANGLE"
	EnvHUDThreshold = "VISUALCUES_HUD_THRESHOLD"
	EnvIndicator    = "VISUALCUES_INDICATOR"
	EnvLogLevel     = "VISUALCUES_LOG_LEVEL"
)

// Tuning is the on-disk tuning. Omitted fields keep their defaults, so
// partial files are safe.
type Tuning struct {
	// HUD params
	CueWidthMaxMultiplier *float32 `json:"cue_width_max_multiplier,omitempty"`
	MinDistance           *float32 `json:"min_distance,omitempty"`
	MaxDistance           *float32 `json:"max_distance,omitempty"`
	HUDThreshold          *float32 `json:"hud_threshold,omitempty"`
	HUDTopMultiplier      *float32 `json:"hud_top_multiplier,omitempty"`
	FrontAngle            *float32 `json:"front_angle,omitempty"`
	Calibration           *bool    `json:"calibration,omitempty"`
	Indicator             *string  `json:"indicator,omitempty"` // "canvas" or "world"

	// Rig params
	MaxDisplayDistance *float32 `json:"max_display_distance,omitempty"`
	HighObstHeight     *float32 `json:"high_obstacle_height,omitempty"`
	Layouts            *string  `json:"layouts,omitempty"` // layout file path

	LogLevel *string `json:"log_level,omitempty"`
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrString(v string) *string    { return &v }

// Load reads a tuning file.
func Load(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates tuning JSON.
func Parse(data []byte) (*Tuning, error) {
	t := &Tuning{}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return t, nil
}

// LoadOrDefault loads path, or returns an empty tuning when path is the
// default and no such file exists.
func LoadOrDefault(path string) (*Tuning, error) {
	if path == DefaultConfigPath {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return &Tuning{}, nil
		}
	}
	return Load(path)
}

// ApplyEnv overlays the environment overrides. getenv is os.Getenv outside tests.
func (t *Tuning) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvFrontAngle); v != "" {
		f, err := parseEnvFloat(EnvFrontAngle, v)
		if err != nil {
			return err
		}
		t.FrontAngle = ptrFloat32(f)
	}
	if v := getenv(EnvHUDThreshold); v != "" {
		f, err := parseEnvFloat(EnvHUDThreshold, v)
		if err != nil {
			return err
		}
		t.HUDThreshold = ptrFloat32(f)
	}
	if v := getenv(EnvIndicator); v != "" {
		t.Indicator = ptrString(v)
	}
	if v := getenv(EnvLogLevel); v != "" {
		t.LogLevel = ptrString(v)
	}
	return t.Validate()
}

// parseEnvFloat accepts finite numbers only; strconv also parses "NaN" and "Inf".
func parseEnvFloat(name, v string) (float32, error) {
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: %q is not a finite number", name, v)
	}
	return float32(f), nil
}

// Validate checks the values by building the configs they feed.
func (t *Tuning) Validate() error {
	if _, err := t.HUDConfig(); err != nil {
		return err
	}
	if _, err := t.IndicatorMode(); err != nil {
		return err
	}
	if t.MaxDisplayDistance != nil && !positive(*t.MaxDisplayDistance) {
		return fmt.Errorf("max_display_distance must be positive, got %v", *t.MaxDisplayDistance)
	}
	if t.HighObstHeight != nil && !positive(*t.HighObstHeight) {
		return fmt.Errorf("high_obstacle_height must be positive, got %v", *t.HighObstHeight)
	}
	return nil
}

// positive is false for NaN and +Inf as well as for v <= 0.
func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 1)
}

// HUDConfig overlays the tuning on hud.DefaultConfig.
func (t *Tuning) HUDConfig() (hud.Config, error) {
	cfg := hud.DefaultConfig()
	set := func(dst *float32, src *float32) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.CueWidthMaxMultiplier, t.CueWidthMaxMultiplier)
	set(&cfg.MinDistance, t.MinDistance)
	set(&cfg.MaxDistance, t.MaxDistance)
	set(&cfg.HUDThreshold, t.HUDThreshold)
	set(&cfg.HUDTopMultiplier, t.HUDTopMultiplier)
	set(&cfg.FrontAngle, t.FrontAngle)
	if t.Calibration != nil {
		cfg.Calibration = *t.Calibration
	}
	return cfg, cfg.Validate()
}

func (t *Tuning) IndicatorMode() (hud.Mode, error) {
	if t.Indicator == nil {
		return hud.ModeCanvas, nil
	}
	return hud.ParseMode(*t.Indicator)
}

func (t *Tuning) GetLogLevel() string {
	if t.LogLevel == nil {
		return "info"
	}
	return *t.LogLevel
}

// RigOptions builds the rig options the tuning describes. The layout file,
// when set, is loaded by the caller.
func (t *Tuning) RigOptions() (rig.Options, error) {
	opts := rig.DefaultOptions()
	cfg, err := t.HUDConfig()
	if err != nil {
		return opts, err
	}
	mode, err := t.IndicatorMode()
	if err != nil {
		return opts, err
	}
	indicator, err := hud.NewIndicator(mode)
	if err != nil {
		return opts, err
	}
	opts.Config = cfg
	opts.Indicator = indicator
	return opts, nil
}

// ApplyRig sets the rig fields the tuning covers.
func (t *Tuning) ApplyRig(r *rig.Rig) {
	if t.MaxDisplayDistance != nil {
		r.MaxDisplayDistance = *t.MaxDisplayDistance
		r.SetDistanceCap(r.DistanceCap)
	}
	if t.HighObstHeight != nil {
		r.AdjustHighObstHeight(*t.HighObstHeight - r.HighObstHeight)
	}
}
