package game

import (
	"visualcues/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Binding maps a key press to a rig command.
type Binding struct {
	Key     int32
	Command string
}

// DefaultBindings leave WASD and the arrow keys to the head controller.
var DefaultBindings = []Binding{
	{rl.KeyF1, "toggle debug"},
	{rl.KeyF2, "toggle calibration"},
	{rl.KeyC, "toggle collocated cues"},
	{rl.KeyH, "toggle hud cues"},
	{rl.KeyPageUp, "front angle up"},
	{rl.KeyPageDown, "front angle down"},
	{rl.KeyEqual, "threshold up"},
	{rl.KeyMinus, "threshold down"},
	{rl.KeyR, "reset location"},
	{rl.KeyI, "move forward"},
	{rl.KeyK, "move back"},
	{rl.KeyL, "move right"},
	{rl.KeyJ, "move left"},
	{rl.KeyU, "move up"},
	{rl.KeyO, "move down"},
	{rl.KeyComma, "rotate left"},
	{rl.KeyPeriod, "rotate right"},
	{rl.KeyLeftBracket, "hud left"},
	{rl.KeyRightBracket, "hud right"},
	{rl.KeyApostrophe, "hud up"},
	{rl.KeySemicolon, "hud down"},
	{rl.KeyZero, "hud wider"},
	{rl.KeyNine, "hud narrower"},
	{rl.KeyHome, "high obstacle up"},
	{rl.KeyEnd, "high obstacle down"},
	{rl.KeyB, "begin logging"},
	{rl.KeyN, "end logging"},
}

func (g *Game) handleKeys() {
	for _, b := range g.Bindings {
		if !rl.IsKeyPressed(b.Key) {
			continue
		}
		if err := g.Rig.Dispatch(b.Command); err != nil {
			log.Warn("command failed", "command", b.Command, "error", err)
		}
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.setMouseLook(!g.mouseLook)
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.ShowPanel = !g.ShowPanel
	}
}
