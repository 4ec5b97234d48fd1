// Package game runs the operator viewer: the simulated head walks the course
// while the rig evaluates cues every frame.
package game

import (
	"fmt"
	"strings"
	"time"

	"visualcues/internal/components"
	"visualcues/internal/engine"
	"visualcues/internal/hud"
	"visualcues/internal/log"
	"visualcues/internal/rig"
	"visualcues/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	logLines     = 12
)

type Game struct {
	World     *world.World
	Rig       *rig.Rig
	Log       *log.Window // debug pane, may be nil
	Bindings  []Binding
	ShowPanel bool

	canvas    *components.UICanvas
	mouseLook bool
	state     hud.CueState

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(w *world.World, r *rig.Rig, logWindow *log.Window) *Game {
	g := &Game{
		World:     w,
		Rig:       r,
		Log:       logWindow,
		Bindings:  DefaultBindings,
		ShowPanel: true,
	}
	if hudObj := w.Scene.FindByName("HUD"); hudObj != nil {
		g.canvas = engine.GetComponent[*components.UICanvas](hudObj)
	}
	return g
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(screenWidth, screenHeight, "Visual Cues")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	initRayguiStyle()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) head() *components.HeadController {
	return engine.GetComponent[*components.HeadController](g.Rig.Camera().GetGameObject())
}

func (g *Game) setMouseLook(on bool) {
	g.mouseLook = on
	if h := g.head(); h != nil {
		h.MouseLook = on
	}
	if on {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	g.handleKeys()
	g.state = g.Rig.Update(rl.GetFrameTime())
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	cam := g.Rig.Camera()
	camera := cam.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	frustum := world.ExtractFrustum(camera, aspect, cam.Near, cam.Far)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.DrawFloor()
	if g.Rig.CollocatedOn {
		g.World.DrawObstacles(&frustum)
	}
	if g.Rig.Manager().Indicator().Mode() == hud.ModeWorld {
		g.drawWorldCues()
	}
	rl.EndMode3D()

	if g.canvas != nil {
		g.canvas.Draw()
	}
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

// drawWorldCues draws the cue bars on the floating panel ahead of the head.
func (g *Game) drawWorldCues() {
	pose := g.Rig.Camera().Pose()
	for _, c := range g.state.Cues {
		if !c.Active {
			continue
		}
		size := rl.Vector3{X: 0.02, Y: 0.02, Z: 0.02}
		length := 0.2 * c.Scale
		switch c.Direction {
		case hud.North, hud.South:
			size = rl.Vector3Add(size, rl.Vector3Scale(pose.Right, length*g.state.Frame.HorizontalScale()))
		default:
			size = rl.Vector3Add(size, rl.Vector3Scale(pose.Up, length))
		}
		size = rl.Vector3{X: abs(size.X), Y: abs(size.Y), Z: abs(size.Z)}
		rl.DrawCubeV(c.Position, size, components.DefaultCueColor)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to walk, arrows to turn, Tab for mouse look, F3 for the panel", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	if g.ShowPanel {
		g.drawPanel()
	}
	if !g.Rig.DebugOn {
		return
	}

	// Debug text is drawn by the HUD canvas; timings and the log pane go here.
	rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), 10, 330, 16, rl.Lime)

	if g.Log != nil {
		lines := strings.Split(strings.TrimRight(g.Log.String(), "\n"), "\n")
		if len(lines) > logLines {
			lines = lines[len(lines)-logLines:]
		}
		ly := int32(rl.GetScreenHeight()) - int32(len(lines))*16 - 10
		for _, line := range lines {
			rl.DrawText(line, 10, ly, 14, rl.LightGray)
			ly += 16
		}
	}
}
