// Package rig wires the course scene, the HUD manager and the layout tracker
// into one frame loop and exposes the operator controls.
package rig

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"visualcues/internal/components"
	"visualcues/internal/engine"
	"visualcues/internal/hud"
	"visualcues/internal/layout"
	"visualcues/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

var (
	// ErrMissingCue is returned when the HUD frame lacks one of the four cues.
	ErrMissingCue = errors.New("missing hud cue")
	// ErrMissingObject is returned when a required scene object is absent.
	ErrMissingObject = errors.New("missing scene object")
)

// Scene object names the rig looks up.
const (
	MainCameraName          = "Main Camera"
	CourseName              = "Collocated Cues"
	CalibrationObstacleName = "Calibration Obstacle"
	HUDFrameName            = "HUD Frame"
	DebugTextName           = "Debug Text"
)

// Debug text banners: recalibrate until calibration is off and the view
// distance is capped.
const (
	BannerRecalibrate = "DEACTIVATE CALIBRATION"
	BannerReady       = "OK TO EXPERIMENT"
)

const (
	defaultQueueSize   = 64
	uncappedDistance   = 1000
	highObstacleMarker = "High"
)

// CueName is the scene object name of the cue for d, e.g. "HUD Cue North".
func CueName(d hud.Direction) string {
	s := d.String()
	return "HUD Cue " + strings.ToUpper(s[:1]) + s[1:]
}

// Options configure a Rig.
type Options struct {
	Config    hud.Config
	Indicator hud.Indicator // canvas when nil
	Layouts   *layout.Set   // built-in layouts when nil
	Announcer Announcer     // log-backed when nil
	QueueSize int
}

// DefaultOptions returns the trial configuration.
func DefaultOptions() Options {
	return Options{Config: hud.DefaultConfig(), QueueSize: defaultQueueSize}
}

// Rig is one running session of the cue experiment.
type Rig struct {
	Session uuid.UUID

	scene       *engine.Scene
	camera      *components.Camera
	course      *engine.GameObject
	calibration *engine.GameObject
	frame       *engine.GameObject
	cues        [len(hud.Directions)]*components.HUDCue
	debugText   *components.UIText // optional

	manager   *hud.Manager
	tracker   *layout.Tracker
	queue     *layout.Queue
	announcer Announcer
	logger    *slog.Logger

	CollocatedOn       bool
	HUDOn              bool
	DebugOn            bool
	DistanceCap        bool
	MaxDisplayDistance float32 // meters, used when the distance cap is on
	HighObstHeight     float32 // meters
	DefaultHeight      float32 // eye height used by SetLocation
	Forward            bool    // trial direction

	trial *trial
}

type trial struct {
	start    time.Time
	frames   int
	listener engine.ListenerID
}

// logFrame records one HUD pass of the running trial.
func (r *Rig) logFrame(state hud.CueState) {
	r.trial.frames++
	pose := r.camera.Pose()
	r.logger.Debug("trial frame",
		"t", time.Since(r.trial.start).Seconds(),
		"position", pose.Position,
		"forward", pose.Forward,
		"north", state.Active(hud.North),
		"east", state.Active(hud.East),
		"south", state.Active(hud.South),
		"west", state.Active(hud.West),
	)
}

// New finds the rig objects in scene and starts a session.
func New(scene *engine.Scene, opts Options) (*Rig, error) {
	r := &Rig{
		Session:            uuid.New(),
		scene:              scene,
		announcer:          opts.Announcer,
		CollocatedOn:       true,
		HUDOn:              true,
		MaxDisplayDistance: 5,
		HighObstHeight:     layout.DefaultHeights().High,
		DefaultHeight:      1.6256,
		Forward:            true,
	}
	r.logger = log.With("session", r.Session.String())
	if r.announcer == nil {
		r.announcer = LogAnnouncer{Logger: r.logger}
	}

	camObj := scene.FindByName(MainCameraName)
	if camObj == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingObject, MainCameraName)
	}
	r.camera = engine.GetComponent[*components.Camera](camObj)
	if r.camera == nil {
		return nil, fmt.Errorf("%s: %w", MainCameraName, hud.ErrNoPoseProvider)
	}

	r.course = scene.FindByName(CourseName)
	if r.course == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingObject, CourseName)
	}
	r.calibration = r.course.FindChild(CalibrationObstacleName)

	r.frame = scene.FindByName(HUDFrameName)
	if r.frame == nil {
		return nil, fmt.Errorf("%w: no %s", ErrMissingCue, HUDFrameName)
	}
	for _, d := range hud.Directions {
		g := r.frame.FindChild(CueName(d))
		if g == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingCue, CueName(d))
		}
		cue := engine.GetComponent[*components.HUDCue](g)
		if cue == nil {
			cue = components.NewHUDCue(d)
			g.AddComponent(cue)
		}
		r.cues[d] = cue
	}

	if g := scene.FindByName(DebugTextName); g != nil {
		if text := engine.GetComponent[*components.UIText](g); text != nil {
			text.Highlight = map[string]rl.Color{BannerRecalibrate: rl.Red}
			r.debugText = text
		}
	}

	var obstacles []hud.Obstacle
	for _, g := range r.course.Children {
		if g.Name == CalibrationObstacleName {
			continue
		}
		col := engine.GetComponent[*components.BoxCollider](g)
		if col == nil {
			r.logger.Warn("course child has no collider", "object", g.Name)
			continue
		}
		obstacles = append(obstacles, col)
	}

	indicator := opts.Indicator
	if indicator == nil {
		indicator = &hud.CanvasIndicator{}
	}
	manager, err := hud.NewManager(opts.Config, r.camera, obstacles, indicator)
	if err != nil {
		return nil, fmt.Errorf("hud manager: %w", err)
	}
	r.manager = manager

	tracker, err := layout.NewTracker(r.course, opts.Layouts, r.heights)
	if err != nil {
		return nil, err
	}
	tracker.OnLayout.AddListener(r.announcer.Say)
	r.tracker = tracker

	size := opts.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	r.queue = layout.NewQueue(size)

	r.syncCalibration(opts.Config.Calibration)
	r.SetDistanceCap(false)
	r.syncOverlay()

	scene.Start()
	r.logger.Info("rig ready", "obstacles", len(obstacles), "indicator", indicator.Mode().String())
	r.announcer.Say("Ready")
	return r, nil
}

func (r *Rig) heights() layout.Heights {
	h := layout.DefaultHeights()
	h.High = r.HighObstHeight
	return h
}

// Update runs one frame: pending layout events, scene behaviours, the HUD
// pass, and the cue objects.
func (r *Rig) Update(deltaTime float32) hud.CueState {
	r.tracker.Process(r.queue)
	r.scene.Update(deltaTime)

	state := r.manager.Update()
	for _, d := range hud.Directions {
		r.cues[d].Frame = state.Frame
		r.cues[d].Apply(state.Cues[d])
	}
	r.syncOverlay()

	return state
}

// syncOverlay shows the canvas cues only in canvas mode and refreshes the
// debug text.
func (r *Rig) syncOverlay() {
	r.frame.Active = r.HUDOn && r.manager.Indicator().Mode() == hud.ModeCanvas
	if r.debugText == nil {
		return
	}
	r.debugText.GetGameObject().Active = r.DebugOn
	if r.DebugOn {
		r.debugText.Text = r.DebugText()
	}
}

func (r *Rig) Scene() *engine.Scene { return r.scene }
func (r *Rig) Camera() *components.Camera { return r.camera }
func (r *Rig) Course() *engine.GameObject { return r.course }
func (r *Rig) Frame() *engine.GameObject { return r.frame }
func (r *Rig) Manager() *hud.Manager { return r.manager }
func (r *Rig) Tracker() *layout.Tracker { return r.tracker }
func (r *Rig) Config() *hud.Config { return r.manager.Config() }
func (r *Rig) Cue(d hud.Direction) *components.HUDCue { return r.cues[d] }

// Queue receives layout events from the tracking side.
func (r *Rig) Queue() *layout.Queue { return r.queue }

// Layout is the current course layout name.
func (r *Rig) Layout() string { return r.tracker.Layout() }
