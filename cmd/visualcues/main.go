package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"visualcues/internal/config"
	"visualcues/internal/game"
	"visualcues/internal/layout"
	"visualcues/internal/log"
	"visualcues/internal/rig"
	"visualcues/internal/world"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultConfigPath, "tuning file (JSON)")
	coursePath := flag.String("course", "", "course scene file; built-in hallway when empty")
	layoutsPath := flag.String("layouts", "", "layout file; overrides the tuning file")
	flag.Parse()

	tuning, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := tuning.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "config env: %v\n", err)
		os.Exit(1)
	}

	window := log.NewWindow(log.DefaultWindowLimit)
	log.InitWriter(tuning.GetLogLevel(), io.MultiWriter(os.Stderr, window))

	if err := run(tuning, *coursePath, *layoutsPath, window); err != nil {
		log.Error("visualcues failed", "error", err)
		os.Exit(1)
	}
}

func run(tuning *config.Tuning, coursePath, layoutsPath string, window *log.Window) error {
	w := world.Default()
	if coursePath != "" {
		loaded, err := world.Load(coursePath)
		if err != nil {
			return err
		}
		w = loaded
	}

	opts, err := tuning.RigOptions()
	if err != nil {
		return err
	}
	if layoutsPath == "" && tuning.Layouts != nil {
		layoutsPath = *tuning.Layouts
	}
	if layoutsPath != "" {
		set, err := layout.Load(layoutsPath)
		if err != nil {
			return err
		}
		opts.Layouts = set
	}

	r, err := rig.New(w.Scene, opts)
	if err != nil {
		return err
	}
	tuning.ApplyRig(r)
	log.Info("session started", "session", r.Session.String(), "layouts", layoutsPath)

	game.New(w, r, window).Run()
	return nil
}
