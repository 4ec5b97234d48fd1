package hud

import (
	"visualcues/internal/geom"
)

// Obstacle is a tracked obstacle as the scene graph exposes it.
type Obstacle interface {
	ObstacleName() string
	Bounds() geom.AABB
}

// Samples per obstacle per pass: center, min corner, max corner.
const samplesPerObstacle = 3

// ObstacleRecord is the per-frame geometric snapshot of one obstacle.
// Sequences and reductions are rebuilt on every projection pass.
type ObstacleRecord struct {
	Name   string
	Source Obstacle

	MinDistance float32 // head to obstacle center

	XCosines []float32
	YCosines []float32
	Angles   []float32 // flattened gaze angles, degrees

	XMin, XMax float32
	YMin, YMax float32

	AngleMin, AngleMax float32

	IsFront bool
}

// NewObstacleRecord creates the record for one enumerated obstacle.
func NewObstacleRecord(o Obstacle) *ObstacleRecord {
	r := &ObstacleRecord{
		Name:     o.ObstacleName(),
		Source:   o,
		XCosines: make([]float32, 0, samplesPerObstacle),
		YCosines: make([]float32, 0, samplesPerObstacle),
		Angles:   make([]float32, 0, samplesPerObstacle),
	}
	r.reset()
	return r
}

// reset clears the sequences and seeds the reductions with the
// cosine/angle domain bounds.
func (r *ObstacleRecord) reset() {
	r.XCosines = r.XCosines[:0]
	r.YCosines = r.YCosines[:0]
	r.Angles = r.Angles[:0]
	r.XMin, r.XMax = 1, -1
	r.YMin, r.YMax = 1, -1
	r.AngleMin, r.AngleMax = 180, 0
	r.IsFront = false
}

func (r *ObstacleRecord) add(xCos, yCos, angle float32) {
	r.XCosines = append(r.XCosines, xCos)
	r.YCosines = append(r.YCosines, yCos)
	r.Angles = append(r.Angles, angle)
}

func (r *ObstacleRecord) reduce(frontAngle float32) {
	for _, x := range r.XCosines {
		r.XMin = min(r.XMin, x)
		r.XMax = max(r.XMax, x)
	}
	for _, y := range r.YCosines {
		r.YMin = min(r.YMin, y)
		r.YMax = max(r.YMax, y)
	}
	for _, a := range r.Angles {
		r.AngleMin = min(r.AngleMin, a)
		r.AngleMax = max(r.AngleMax, a)
	}
	r.IsFront = r.AngleMin <= frontAngle
}

// Snapshot is a read-only copy of a record for diagnostics.
type Snapshot struct {
	Name     string
	Distance float32
	AngleMin float32
	AngleMax float32
	XMin     float32
	XMax     float32
	YMin     float32
	YMax     float32
	IsFront  bool
}

// Snapshot copies the record's current values.
func (r *ObstacleRecord) Snapshot() Snapshot {
	return Snapshot{
		Name:     r.Name,
		Distance: r.MinDistance,
		AngleMin: r.AngleMin,
		AngleMax: r.AngleMax,
		XMin:     r.XMin,
		XMax:     r.XMax,
		YMin:     r.YMin,
		YMax:     r.YMax,
		IsFront:  r.IsFront,
	}
}
