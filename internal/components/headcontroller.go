package components

import (
	"math"

	"visualcues/internal/engine"
	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HeadInput is one frame of operator input for the simulated head.
type HeadInput struct {
	MouseDelta rl.Vector2
	Forward    float32 // +1 forward, -1 back
	Strafe     float32 // +1 right, -1 left
	Turn       float32 // +1 left, -1 right
}

// ReadHeadInput samples the keyboard and mouse. Needs an open window.
func ReadHeadInput(mouseLook bool) HeadInput {
	var in HeadInput
	if mouseLook {
		in.MouseDelta = rl.GetMouseDelta()
	}
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Strafe++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Strafe--
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		in.Turn++
	}
	if rl.IsKeyDown(rl.KeyRight) {
		in.Turn--
	}
	return in
}

// HeadController walks and turns the simulated head. Yaw 0 looks down -Z and
// positive yaw turns left.
type HeadController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32 // meters per second
	TurnSpeed float32 // degrees per second for keyboard turning
	LookSpeed float32 // degrees per pixel of mouse motion
	EyeHeight float32
	MouseLook bool

	// Input overrides the live keyboard/mouse when set.
	Input func() HeadInput
}

func NewHeadController() *HeadController {
	return &HeadController{
		MoveSpeed: 1.2,
		TurnSpeed: 60,
		LookSpeed: 0.1,
		EyeHeight: 1.6,
	}
}

func (h *HeadController) Update(deltaTime float32) {
	var in HeadInput
	if h.Input != nil {
		in = h.Input()
	} else {
		in = ReadHeadInput(h.MouseLook)
	}
	h.Apply(in, deltaTime)
}

// Apply advances the head by one frame of input.
func (h *HeadController) Apply(in HeadInput, deltaTime float32) {
	h.Yaw -= in.MouseDelta.X * h.LookSpeed
	h.Yaw += in.Turn * h.TurnSpeed * deltaTime
	h.Pitch -= in.MouseDelta.Y * h.LookSpeed
	h.Pitch = float32(math.Max(-geom.MaxPitch, math.Min(geom.MaxPitch, float64(h.Pitch))))

	g := h.GetGameObject()
	if g == nil {
		return
	}

	forward, right := h.directions()
	var move rl.Vector3
	move = rl.Vector3Add(move, rl.Vector3Scale(forward, in.Forward))
	move = rl.Vector3Add(move, rl.Vector3Scale(right, in.Strafe))

	// Normalize diagonal movement
	if l := rl.Vector3Length(move); l > 0 {
		move = rl.Vector3Scale(move, h.MoveSpeed*deltaTime/l)
		g.Translate(move)
	}
}

// directions are the horizontal walking axes for the current yaw.
func (h *HeadController) directions() (forward, right rl.Vector3) {
	yawRad := geom.Radians(float64(h.Yaw))
	forward = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	right = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(-math.Sin(yawRad)),
	}
	return
}

func (h *HeadController) GetLookAngles() (yaw, pitch float32) {
	return h.Yaw, h.Pitch
}

func (h *HeadController) GetEyeHeight() float32 {
	return h.EyeHeight
}
