package components

import (
	"visualcues/internal/engine"
	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is the user's head. It supplies the head pose to the HUD manager
// and the raylib camera to the viewer.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active viewer camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        60.0,
		Near:       0.05,
		Far:        100.0,
		Projection: rl.CameraPerspective,
		IsMain:     true,
	}
}

// lookProvider searches this object and its parents.
func (c *Camera) lookProvider() engine.LookProvider {
	for obj := c.GetGameObject(); obj != nil; obj = obj.Parent {
		if lp := engine.FindComponent[engine.LookProvider](obj); lp != nil {
			return lp
		}
	}
	return nil
}

// Pose returns the head pose for this frame.
func (c *Camera) Pose() geom.HeadPose {
	g := c.GetGameObject()
	if g == nil {
		return geom.PoseFromYawPitch(rl.Vector3{}, 0, 0)
	}

	eyePos := g.WorldPosition()
	lp := c.lookProvider()
	if lp == nil {
		// No controller: look along the object's own rotation
		rot := g.WorldRotation()
		return geom.PoseFromYawPitch(eyePos, rot.Y, rot.X)
	}

	// A child camera carries its own offset; a camera on the controller
	// object sits at eye height.
	if g.Parent == nil || engine.FindComponent[engine.LookProvider](g) != nil {
		eyePos.Y += lp.GetEyeHeight()
	}
	yaw, pitch := lp.GetLookAngles()
	return geom.PoseFromYawPitch(eyePos, yaw, pitch)
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	pose := c.Pose()
	return rl.Camera3D{
		Position:   pose.Position,
		Target:     rl.Vector3Add(pose.Position, pose.Forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
