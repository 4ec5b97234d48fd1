package hud

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Direction identifies one of the four HUD cues.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

const numDirections = 4

// Directions lists the cues in evaluation order.
var Directions = [numDirections]Direction{North, East, South, West}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}

// ParseDirection is the inverse of Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown cue direction %q", s)
}

// Cue frame geometry in canvas units: the frame spans [-0.5, 0.5] on each
// axis and a cue at scale 1 sits EdgeInset in from its edge.
const (
	FrameHalfExtent = 0.5
	EdgeInset       = 0.05
	DefaultCueScale = 1.0
)

// Cue is the state of a single directional cue for one frame.
type Cue struct {
	Direction Direction
	Active    bool
	Scale     float32 // width multiplier
	Inset     float32 // distance in from the frame edge, canvas units

	// Position is filled in by the Indicator: canvas coordinates for the
	// canvas variant, world space for the world variant.
	Position rl.Vector3
}

// CueState is the per-frame output consumed by the rendering layer.
type CueState struct {
	Cues           [numDirections]Cue
	SizeMultiplier float32
	Calibration    bool
	Target         *Snapshot // nil when there is no target

	// Frame is the operator frame adjustment the indicator applied.
	Frame FrameTransform
}

// Active reports whether the cue for d fires this frame.
func (s *CueState) Active(d Direction) bool {
	return s.Cues[d].Active
}

// ActiveDirections lists the firing cues in evaluation order.
func (s *CueState) ActiveDirections() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if s.Cues[d].Active {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// AnyActive is true if at least one cue fires.
func (s *CueState) AnyActive() bool {
	return len(s.ActiveDirections()) > 0
}

func (s *CueState) reset(active bool) {
	s.SizeMultiplier = DefaultCueScale
	for _, d := range Directions {
		s.Cues[d] = Cue{
			Direction: d,
			Active:    active,
			Scale:     DefaultCueScale,
			Inset:     EdgeInset,
		}
	}
}

func (s *CueState) fire(d Direction, size float32) {
	s.Cues[d].Active = true
	s.Cues[d].Scale = size
	s.Cues[d].Inset = EdgeInset * size
}

// SizeMultiplier maps distance linearly onto [1, maxMultiplier]: maxMultiplier
// at minDist, 1 at maxDist. Distances outside the range are clamped.
func SizeMultiplier(maxMultiplier, minDist, maxDist, distance float32) float32 {
	t := clamp01((distance - minDist) / (maxDist - minDist))
	return 1 + (maxMultiplier-1)*(1-t)
}

// Activate evaluates the cues for the given target.
//
// In calibration mode all four cues fire at default size and target is
// ignored. Otherwise every cue starts inactive; with a target, East fires on
// XMin >= T, West on XMax <= -T, North on YMin >= T*top, and South on
// YMax <= -T only when North did not fire.
func Activate(cfg Config, target *ObstacleRecord) CueState {
	var s CueState

	if cfg.Calibration {
		s.reset(true)
		s.Calibration = true
		return s
	}

	s.reset(false)
	if target == nil {
		return s
	}

	snap := target.Snapshot()
	s.Target = &snap

	size := SizeMultiplier(cfg.CueWidthMaxMultiplier, cfg.MinDistance, cfg.MaxDistance, target.MinDistance)
	s.SizeMultiplier = size

	if target.XMin >= cfg.HUDThreshold {
		s.fire(East, size)
	}
	if target.XMax <= -cfg.HUDThreshold {
		s.fire(West, size)
	}
	if target.YMin >= cfg.HUDThreshold*cfg.HUDTopMultiplier {
		s.fire(North, size)
	} else if target.YMax <= -cfg.HUDThreshold {
		s.fire(South, size)
	}

	return s
}
