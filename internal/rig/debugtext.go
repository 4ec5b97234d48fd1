package rig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func round2(v float32) string {
	return strconv.FormatFloat(math.RoundToEven(float64(v)*100)/100, 'f', -1, 64)
}

// roundDegrees reports angles to the whole degree.
func roundDegrees(v float32) string {
	return strconv.FormatFloat(math.RoundToEven(float64(v)), 'f', 0, 64)
}

// DebugText is the operator overlay: trial settings, the calibration
// banner, and the current target's numbers.
func (r *Rig) DebugText() string {
	cfg := r.manager.Config()
	var b strings.Builder

	fmt.Fprintf(&b, "Mode, layout, direction: %s, %s, %s\n", r.CueCondition(), r.Layout(), r.Direction())
	fmt.Fprintf(&b, "High obstacle height: %s inches\n", strconv.FormatFloat(r.HighObstInches(), 'f', -1, 64))
	fmt.Fprintf(&b, "Front angle and HUD Threshold: %s, %s\n", formatFloat(cfg.FrontAngle), formatFloat(cfg.HUDThreshold))

	if !r.DistanceCap || cfg.Calibration {
		b.WriteString(BannerRecalibrate + "\n")
	} else {
		b.WriteString(BannerReady + "\n")
	}

	if !r.HUDOn || cfg.Calibration {
		return b.String()
	}
	target, ok := r.manager.Target()
	if !ok {
		return b.String()
	}
	state := r.manager.State()
	fmt.Fprintf(&b, "Target obstacle: %s\n", target.Name)
	fmt.Fprintf(&b, "Distance: %s\n", round2(target.Distance))
	fmt.Fprintf(&b, "Cue Size Multiplier: %s\n", round2(state.SizeMultiplier))
	fmt.Fprintf(&b, "Min and max angle: %s, %s\n", roundDegrees(target.AngleMin), roundDegrees(target.AngleMax))
	fmt.Fprintf(&b, "Min and max X factor: %s, %s\n", round2(target.XMin), round2(target.XMax))
	fmt.Fprintf(&b, "Min and max Y factor: %s, %s\n", round2(target.YMin), round2(target.YMax))
	return b.String()
}
