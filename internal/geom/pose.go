package geom

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxPitch keeps the look direction away from the poles so the basis stays defined.
const MaxPitch = 89.0

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// HeadPose is the head position plus its orthonormal basis, sampled once per frame.
// The basis is taken as given; handedness is the provider's concern.
type HeadPose struct {
	Position rl.Vector3
	Right    rl.Vector3
	Up       rl.Vector3
	Forward  rl.Vector3
}

// PoseFromYawPitch builds a pose for a head at position looking along yaw/pitch
// (degrees). Yaw 0 looks down -Z and positive yaw turns left, matching the
// engine's camera convention.
func PoseFromYawPitch(position rl.Vector3, yawDeg, pitchDeg float32) HeadPose {
	pitch := math.Max(-MaxPitch, math.Min(MaxPitch, float64(pitchDeg)))
	yawRad := Radians(float64(yawDeg))
	pitchRad := Radians(pitch)

	forward := rl.Vector3{
		X: float32(-math.Sin(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(-math.Cos(yawRad) * math.Cos(pitchRad)),
	}
	return poseFromForward(position, forward)
}

// PoseFromCamera derives the pose from a raylib camera's position and target.
func PoseFromCamera(cam rl.Camera3D) HeadPose {
	forward := rl.Vector3Subtract(cam.Target, cam.Position)
	if sqrMagnitude(forward) == 0 {
		forward = rl.Vector3{X: 0, Y: 0, Z: -1}
	}
	return poseFromForward(cam.Position, forward)
}

func poseFromForward(position, forward rl.Vector3) HeadPose {
	forward = rl.Vector3Normalize(forward)
	right := rl.Vector3CrossProduct(forward, worldUp)
	if sqrMagnitude(right) < epsilonNormalSqrt {
		// Looking straight up or down: keep a stable right vector.
		right = rl.Vector3{X: 1, Y: 0, Z: 0}
	}
	right = rl.Vector3Normalize(right)
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))
	return HeadPose{
		Position: position,
		Right:    right,
		Up:       up,
		Forward:  forward,
	}
}
