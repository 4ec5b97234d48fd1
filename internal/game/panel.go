package game

import (
	"fmt"

	"visualcues/internal/log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - indigo dark theme
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent        = rl.NewColor(108, 99, 255, 255) // Primary indigo #6c63ff
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

const (
	panelWidth  = 280
	rowHeight   = 24
	rowSpacing  = 30
	panelMargin = 10
)

// initRayguiStyle sets up the dark operator theme
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// drawPanel is the operator panel on the right edge. Widgets call the same
// rig operations as the key bindings so announcements stay consistent.
func (g *Game) drawPanel() {
	r := g.Rig
	cfg := r.Config()

	x := float32(rl.GetScreenWidth() - panelWidth - panelMargin)
	y := float32(panelMargin)
	rl.DrawRectangle(int32(x), int32(y), panelWidth, 420, colorBgPanel)
	gui.Panel(rl.Rectangle{X: x, Y: y, Width: panelWidth, Height: 420}, "Operator")

	x += 12
	y += 34
	w := float32(panelWidth - 24)
	row := func() rl.Rectangle {
		rect := rl.Rectangle{X: x, Y: y, Width: rowHeight - 6, Height: rowHeight - 6}
		y += rowSpacing
		return rect
	}

	if gui.CheckBox(row(), "Co-located cues", r.CollocatedOn) != r.CollocatedOn {
		r.ToggleCollocated()
	}
	if gui.CheckBox(row(), "HUD cues", r.HUDOn) != r.HUDOn {
		r.ToggleHUD()
	}
	if gui.CheckBox(row(), "Debug text", r.DebugOn) != r.DebugOn {
		r.ToggleDebug()
	}
	if gui.CheckBox(row(), "Calibration", cfg.Calibration) != cfg.Calibration {
		r.ToggleCalibration()
	}

	gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "Front angle")
	y += rowHeight
	sliderBounds := rl.Rectangle{X: x, Y: y, Width: w - 50, Height: rowHeight - 6}
	if v := gui.Slider(sliderBounds, "", fmt.Sprintf("%.0f", cfg.FrontAngle), cfg.FrontAngle, 0, 90); v != cfg.FrontAngle {
		r.AdjustFrontAngle(v - cfg.FrontAngle)
	}
	y += rowSpacing

	gui.Label(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "HUD threshold")
	y += rowHeight
	sliderBounds.Y = y
	if v := gui.Slider(sliderBounds, "", fmt.Sprintf("%.2f", cfg.HUDThreshold), cfg.HUDThreshold, 0, 1); v != cfg.HUDThreshold {
		r.AdjustHUDThreshold(v - cfg.HUDThreshold)
	}
	y += rowSpacing + 6

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, "Reset location") {
		if err := r.SetLocation("front"); err != nil {
			log.Warn("reset location", "error", err)
		}
	}
	y += rowSpacing

	label := "Begin logging"
	if r.Logging() {
		label = "End logging"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w, Height: rowHeight}, label) {
		if r.Logging() {
			r.EndLogging()
		} else {
			r.BeginLogging()
		}
	}
	y += rowSpacing

	status := fmt.Sprintf("%s | %s | %s", r.CueCondition(), r.Layout(), r.Direction())
	rl.DrawText(status, int32(x), int32(y), 14, colorTextMuted)
}
