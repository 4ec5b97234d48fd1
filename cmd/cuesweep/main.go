// Command cuesweep turns a simulated head across the course and reports
// when each HUD cue fires.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"visualcues/internal/components"
	"visualcues/internal/config"
	"visualcues/internal/engine"
	"visualcues/internal/hud"
	"visualcues/internal/log"
	"visualcues/internal/rig"
	"visualcues/internal/sweep"
	"visualcues/internal/world"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "tuning file (JSON)")
	coursePath := flag.String("course", "", "course scene file; built-in hallway when empty")
	from := flag.Float64("from", -90, "first yaw, degrees")
	to := flag.Float64("to", 90, "last yaw, degrees")
	steps := flag.Int("steps", 181, "number of yaw steps")
	pitch := flag.Float64("pitch", 0, "head pitch, degrees")
	plotPath := flag.String("plot", "", "write a chart of the cue factors (png, svg or pdf)")
	verbose := flag.Bool("v", false, "print every sample")
	flag.Parse()

	tuning, err := config.LoadOrDefault(*configPath)
	if err == nil {
		err = tuning.ApplyEnv(os.Getenv)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log.InitWriter(tuning.GetLogLevel(), os.Stderr)

	opts := sweep.DefaultOptions()
	opts.From, opts.To, opts.Steps, opts.Pitch = *from, *to, *steps, float32(*pitch)

	res, err := run(tuning, *coursePath, opts)
	if err != nil {
		log.Error("sweep failed", "error", err)
		os.Exit(1)
	}

	report(res, *verbose)

	if *plotPath != "" {
		if err := res.Plot(*plotPath); err != nil {
			log.Error("plot failed", "error", err)
			os.Exit(1)
		}
		log.Info("plot written", "path", *plotPath)
	}
}

func run(tuning *config.Tuning, coursePath string, opts sweep.Options) (*sweep.Result, error) {
	w := world.Default()
	if coursePath != "" {
		loaded, err := world.Load(coursePath)
		if err != nil {
			return nil, err
		}
		w = loaded
	}

	cfg, err := tuning.HUDConfig()
	if err != nil {
		return nil, err
	}

	camObj := w.Scene.FindByName(rig.MainCameraName)
	if camObj == nil {
		return nil, fmt.Errorf("%w: %s", rig.ErrMissingObject, rig.MainCameraName)
	}
	if cam := engine.GetComponent[*components.Camera](camObj); cam != nil {
		opts.Position = cam.Pose().Position
	}

	var obstacles []hud.Obstacle
	for _, c := range w.Colliders() {
		obstacles = append(obstacles, c)
	}
	return sweep.Run(cfg, obstacles, opts)
}

func report(res *sweep.Result, verbose bool) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	if verbose {
		fmt.Fprintln(tw, "yaw\ttarget\tdistance\txmin\txmax\tymin\tymax\tcues")
		for _, s := range res.Samples {
			var cues []string
			for _, d := range hud.Directions {
				if s.Cues[d] {
					cues = append(cues, d.String())
				}
			}
			fmt.Fprintf(tw, "%.1f\t%s\t%.2f\t%.3f\t%.3f\t%.3f\t%.3f\t%v\n",
				s.Yaw, s.Target, s.Distance, s.XMin, s.XMax, s.YMin, s.YMax, cues)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintln(tw, "cue\tfrom\tto")
	for _, sp := range res.Spans() {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\n", sp.Direction, sp.From, sp.To)
	}

	sum := res.Summary()
	fmt.Fprintf(tw, "\nsamples\t%d\ntargeted\t%d\nmean size\t%.2f\n", sum.Samples, sum.Targeted, sum.MeanSize)
}
