package hud

import (
	"log/slog"

	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// degeneracy names a class of undefined angle, logged once per Projector.
type degeneracy string

const (
	headAtPoint degeneracy = "head-at-point" // head coincides with a sampled point
	flatGaze    degeneracy = "flat-gaze"     // looking straight up or down
)

// Projector turns obstacle bounds into head-relative cosine and angle bounds.
type Projector struct {
	logger *slog.Logger
	warned map[degeneracy]bool
}

// NewProjector returns a projector that reports degenerate geometry to logger.
func NewProjector(logger *slog.Logger) *Projector {
	return &Projector{
		logger: logger,
		warned: make(map[degeneracy]bool),
	}
}

// ProjectAll refreshes every record for the given pose.
func (p *Projector) ProjectAll(pose geom.HeadPose, records []*ObstacleRecord, frontAngle float32) {
	for _, r := range records {
		p.Project(pose, r, frontAngle)
	}
}

// Project recomputes one record from its source bounds.
//
// Each of center, min corner and max corner contributes
// cos(SignedAngle(right, D, up)) to XCosines, cos(SignedAngle(up, D, right))
// to YCosines, and Angle(Flatten(forward), D) to Angles, where D runs from
// the head to the point. Undefined angles fall back to 0 (cosine 1).
func (p *Projector) Project(pose geom.HeadPose, r *ObstacleRecord, frontAngle float32) {
	r.reset()

	bounds := r.Source.Bounds()
	center := bounds.Center()
	r.MinDistance = rl.Vector3Distance(center, pose.Position)

	gazeFlat := geom.Flatten(pose.Forward)
	if geom.Degenerate(gazeFlat, gazeFlat) {
		p.warnOnce(flatGaze, "gaze has no horizontal component, front angles fall back to 0")
	}

	for _, q := range [samplesPerObstacle]rl.Vector3{center, bounds.Min, bounds.Max} {
		d := rl.Vector3Subtract(q, pose.Position)
		if geom.Degenerate(d, d) {
			p.warnOnce(headAtPoint, "head position coincides with obstacle point, angles fall back to 0",
				"obstacle", r.Name)
		}

		xAngle := geom.SignedAngle(pose.Right, d, pose.Up)
		yAngle := geom.SignedAngle(pose.Up, d, pose.Right)
		flatAngle := geom.Angle(gazeFlat, d)

		r.add(geom.CosDeg(xAngle), geom.CosDeg(yAngle), flatAngle)
	}

	r.reduce(frontAngle)
}

func (p *Projector) warnOnce(kind degeneracy, msg string, args ...any) {
	if p.warned[kind] {
		return
	}
	p.warned[kind] = true
	if p.logger != nil {
		p.logger.Warn(msg, append([]any{"kind", string(kind)}, args...)...)
	}
}
