package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"visualcues/internal/engine"
	"visualcues/internal/log"

	"github.com/google/uuid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Placement of the obstacle parent relative to the code, in meters.
const (
	DefaultStartingHeight = 1.5 // code height above the floor
	DefaultStartingDist   = 0.9 // code to hallway centerline
	codeYawOffset         = 90  // codes hang on the left wall
)

// Tracker moves the obstacle parent to tracked codes and applies the layout
// each code names.
type Tracker struct {
	parent  *engine.GameObject
	layouts *Set
	heights func() Heights
	logger  *slog.Logger

	StartingHeight float32
	StartingDist   float32

	codes  map[uuid.UUID]string // code id to layout name
	layout string

	// OnLayout fires when a new code selects a layout.
	OnLayout engine.EventWithArg[string]
}

// NewTracker returns a tracker for the obstacle parent. heights is read
// each time a layout is applied so high obstacles keep their adjusted height.
func NewTracker(parent *engine.GameObject, layouts *Set, heights func() Heights) (*Tracker, error) {
	if parent == nil {
		return nil, errors.New("layout tracker: nil obstacle parent")
	}
	if layouts == nil {
		layouts = Default()
	}
	if heights == nil {
		heights = DefaultHeights
	}
	return &Tracker{
		parent:         parent,
		layouts:        layouts,
		heights:        heights,
		logger:         log.With("component", "layout"),
		StartingHeight: DefaultStartingHeight,
		StartingDist:   DefaultStartingDist,
		codes:          make(map[uuid.UUID]string),
		layout:         "Default",
	}, nil
}

// Layout is the layout most recently selected by a code.
func (t *Tracker) Layout() string {
	return t.layout
}

// Codes is the number of codes currently tracked.
func (t *Tracker) Codes() int {
	return len(t.codes)
}

// Process drains q and handles every event in order. It returns the number
// of events handled.
func (t *Tracker) Process(q *Queue) int {
	events := q.Drain()
	for _, ev := range events {
		if err := t.Handle(ev); err != nil {
			t.logger.Warn("layout event failed", "kind", ev.Kind.String(), "payload", ev.Payload, "error", err)
		}
	}
	return len(events)
}

// Handle applies a single event.
func (t *Tracker) Handle(ev Event) error {
	switch ev.Kind {
	case Added:
		t.register(ev)
		return t.Place(t.codes[ev.ID], ev.Pose)
	case Updated:
		if _, ok := t.codes[ev.ID]; !ok {
			t.register(ev)
		}
		return t.Place(t.codes[ev.ID], ev.Pose)
	case Removed:
		delete(t.codes, ev.ID)
		t.logger.Debug("code removed", "id", ev.ID.String())
	case TrackingLost:
		t.logger.Info("tracking lost, clearing codes", "codes", len(t.codes))
		clear(t.codes)
	default:
		return fmt.Errorf("unknown event kind %d", int(ev.Kind))
	}
	return nil
}

func (t *Tracker) register(ev Event) {
	name := PayloadToLayout(ev.Payload)
	t.codes[ev.ID] = name
	t.layout = name
	t.logger.Info("code detected", "id", ev.ID.String(), "payload", ev.Payload, "layout", name)
	t.OnLayout.Invoke(name)
}

// Place moves the obstacle parent to the code pose and puts each obstacle at
// its position in the named layout. The parent moves even when the layout is
// unknown.
func (t *Tracker) Place(name string, pose CodePose) error {
	p := t.parent
	// The hallway runs a quarter turn right of the code's facing, and its
	// centerline is StartingDist to the walker's right.
	p.Transform.Rotation = rl.Vector3{Y: pose.Yaw - codeYawOffset}
	p.SetWorldPosition(pose.Position)
	p.Translate(rl.Vector3{Y: -t.StartingHeight})
	p.Translate(rl.Vector3Scale(rl.Vector3Negate(p.Right()), t.StartingDist))

	def, err := t.layouts.Get(name)
	if err != nil {
		return err
	}

	h := t.heights()
	for _, pl := range def.Obstacles {
		child := p.FindChild(pl.Name)
		if child == nil {
			t.logger.Warn("layout obstacle not in scene", "layout", name, "obstacle", pl.Name)
			continue
		}
		child.Transform.Position = pl.Local(h)
	}
	t.logger.Debug("room position adjusted", "layout", name, "position", p.Transform.Position)
	return nil
}
