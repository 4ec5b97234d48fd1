// Package sweep turns a simulated head through a yaw range and records the
// HUD pass at each step. It is used to tune thresholds offline.
package sweep

import (
	"errors"
	"fmt"

	"visualcues/internal/geom"
	"visualcues/internal/hud"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/floats"
)

// ErrTooFewSteps is returned when a sweep has fewer than two steps.
var ErrTooFewSteps = errors.New("sweep needs at least two steps")

// Options describe the head motion.
type Options struct {
	From, To float64 // yaw range, degrees
	Steps    int
	Pitch    float32
	Position rl.Vector3 // eye position
}

// DefaultOptions sweeps a standing head from hard right to hard left in
// one-degree steps.
func DefaultOptions() Options {
	return Options{
		From:     -90,
		To:       90,
		Steps:    181,
		Position: rl.Vector3{Y: 1.6256},
	}
}

// Sample is the HUD pass at one yaw.
type Sample struct {
	Yaw       float64
	HasTarget bool
	Target    string
	Distance  float64
	XMin      float64
	XMax      float64
	YMin      float64
	YMax      float64
	Size      float64
	Cues      [len(hud.Directions)]bool
}

// Result is a completed sweep.
type Result struct {
	Options Options
	Config  hud.Config
	Samples []Sample
}

// Run sweeps the head across opts and evaluates obstacles at each step.
func Run(cfg hud.Config, obstacles []hud.Obstacle, opts Options) (*Result, error) {
	if opts.Steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSteps, opts.Steps)
	}

	var yaw float32
	pose := hud.PoseFunc(func() geom.HeadPose {
		return geom.PoseFromYawPitch(opts.Position, yaw, opts.Pitch)
	})
	m, err := hud.NewManager(cfg, pose, obstacles, &hud.CanvasIndicator{})
	if err != nil {
		return nil, err
	}

	yaws := floats.Span(make([]float64, opts.Steps), opts.From, opts.To)
	res := &Result{Options: opts, Config: cfg, Samples: make([]Sample, 0, len(yaws))}
	for _, y := range yaws {
		yaw = float32(y)
		state := m.Update()

		s := Sample{Yaw: y, Size: float64(state.SizeMultiplier)}
		for _, d := range hud.Directions {
			s.Cues[d] = state.Active(d)
		}
		if target, ok := m.Target(); ok {
			s.HasTarget = true
			s.Target = target.Name
			s.Distance = float64(target.Distance)
			s.XMin = float64(target.XMin)
			s.XMax = float64(target.XMax)
			s.YMin = float64(target.YMin)
			s.YMax = float64(target.YMax)
		}
		res.Samples = append(res.Samples, s)
	}
	return res, nil
}

// Span is a contiguous yaw range over which a cue stayed on.
type Span struct {
	Direction hud.Direction
	From, To  float64
}

// Spans lists the activation spans of every cue, ordered by direction and
// then by yaw.
func (r *Result) Spans() []Span {
	var spans []Span
	for _, d := range hud.Directions {
		open := false
		var cur Span
		for _, s := range r.Samples {
			switch {
			case s.Cues[d] && !open:
				open = true
				cur = Span{Direction: d, From: s.Yaw, To: s.Yaw}
			case s.Cues[d]:
				cur.To = s.Yaw
			case open:
				open = false
				spans = append(spans, cur)
			}
		}
		if open {
			spans = append(spans, cur)
		}
	}
	return spans
}

// Series extracts one value per targeted sample along with its yaw.
func (r *Result) Series(value func(Sample) float64) (yaws, values []float64) {
	for _, s := range r.Samples {
		if !s.HasTarget {
			continue
		}
		yaws = append(yaws, s.Yaw)
		values = append(values, value(s))
	}
	return yaws, values
}

// Summary condenses a sweep.
type Summary struct {
	Samples  int
	Targeted int
	Active   [len(hud.Directions)]int
	MinXMin  float64
	MaxXMax  float64
	MeanSize float64 // over targeted samples
}

func (r *Result) Summary() Summary {
	sum := Summary{Samples: len(r.Samples)}
	for _, s := range r.Samples {
		for _, d := range hud.Directions {
			if s.Cues[d] {
				sum.Active[d]++
			}
		}
	}

	_, xMin := r.Series(func(s Sample) float64 { return s.XMin })
	if len(xMin) == 0 {
		return sum
	}
	_, xMax := r.Series(func(s Sample) float64 { return s.XMax })
	_, size := r.Series(func(s Sample) float64 { return s.Size })

	sum.Targeted = len(xMin)
	sum.MinXMin = floats.Min(xMin)
	sum.MaxXMax = floats.Max(xMax)
	sum.MeanSize = floats.Sum(size) / float64(len(size))
	return sum
}
