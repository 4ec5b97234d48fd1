package hud

import (
	"errors"
	"fmt"
	"log/slog"

	"visualcues/internal/engine"
	"visualcues/internal/geom"
	"visualcues/internal/log"
)

var (
	// ErrNoObstacles is returned when the obstacle enumeration is empty.
	ErrNoObstacles = errors.New("no obstacles to track")
	// ErrNoPoseProvider is returned when the manager has no head pose source.
	ErrNoPoseProvider = errors.New("no head pose provider")
	// ErrNoIndicator is returned when the manager has no indicator.
	ErrNoIndicator = errors.New("no cue indicator")
)

// PoseProvider supplies the head pose once per frame.
type PoseProvider interface {
	Pose() geom.HeadPose
}

// PoseFunc adapts a function to PoseProvider.
type PoseFunc func() geom.HeadPose

func (f PoseFunc) Pose() geom.HeadPose { return f() }

// Manager runs the projection and activation pass each frame.
// It is not safe for concurrent use; call it from the frame loop only.
type Manager struct {
	cfg       Config
	pose      PoseProvider
	indicator Indicator
	projector *Projector
	records   []*ObstacleRecord
	logger    *slog.Logger

	enabled bool
	frame   FrameTransform
	target  *ObstacleRecord
	state   CueState

	// OnCue fires after every pass with the new state.
	OnCue engine.EventWithArg[CueState]
}

// NewManager validates its collaborators and builds one record per obstacle,
// keeping the enumeration order for tie-breaking.
func NewManager(cfg Config, pose PoseProvider, obstacles []Obstacle, indicator Indicator) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if pose == nil {
		return nil, ErrNoPoseProvider
	}
	if indicator == nil {
		return nil, ErrNoIndicator
	}
	if len(obstacles) == 0 {
		return nil, ErrNoObstacles
	}

	logger := log.With("component", "hud")
	records := make([]*ObstacleRecord, 0, len(obstacles))
	for i, o := range obstacles {
		if o == nil {
			return nil, fmt.Errorf("obstacle %d is nil: %w", i, ErrNoObstacles)
		}
		records = append(records, NewObstacleRecord(o))
	}

	m := &Manager{
		cfg:       cfg,
		pose:      pose,
		indicator: indicator,
		projector: NewProjector(logger),
		records:   records,
		logger:    logger,
		enabled:   true,
	}
	m.state.reset(false)

	logger.Info("hud manager ready", "obstacles", len(records), "indicator", indicator.Mode().String())
	return m, nil
}

// Config exposes the live tunables for operator adjustment.
func (m *Manager) Config() *Config {
	return &m.cfg
}

// Frame exposes the cue frame adjustment. It applies from the next Update.
func (m *Manager) Frame() *FrameTransform {
	return &m.frame
}

// SetEnabled turns HUD cueing on or off. Disabled passes still project so
// diagnostics stay current, but no cue fires.
func (m *Manager) SetEnabled(on bool) {
	m.enabled = on
}

// Enabled reports whether HUD cueing is on.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// Indicator returns the placement variant chosen at setup.
func (m *Manager) Indicator() Indicator {
	return m.indicator
}

// Update runs one pass and returns the resulting cue state.
func (m *Manager) Update() CueState {
	pose := m.pose.Pose()
	m.projector.ProjectAll(pose, m.records, m.cfg.FrontAngle)

	target := SelectTarget(m.records, m.cfg.MaxDistance)
	m.noteTarget(target)
	m.target = target

	var state CueState
	if m.enabled {
		state = Activate(m.cfg, target)
	} else {
		state.reset(false)
	}
	state.Frame = m.frame
	m.indicator.Place(pose, &state)

	m.state = state
	m.OnCue.Invoke(state)
	return state
}

// State returns the state computed by the last Update.
func (m *Manager) State() CueState {
	return m.state
}

// Target returns the current target snapshot, or false if there is none.
func (m *Manager) Target() (Snapshot, bool) {
	if m.target == nil {
		return Snapshot{}, false
	}
	return m.target.Snapshot(), true
}

// Records returns snapshots of every tracked obstacle in enumeration order.
func (m *Manager) Records() []Snapshot {
	out := make([]Snapshot, len(m.records))
	for i, r := range m.records {
		out[i] = r.Snapshot()
	}
	return out
}

func (m *Manager) noteTarget(target *ObstacleRecord) {
	switch {
	case target == m.target:
	case target == nil:
		m.logger.Debug("no valid targets")
	default:
		m.logger.Debug("target changed", "obstacle", target.Name, "distance", target.MinDistance)
	}
}
