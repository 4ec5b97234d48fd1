package world

import (
	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum is the headset's view volume: left, right, bottom, top, near and
// far planes with normals pointing inward.
type Frustum struct {
	planes [6]Plane
}

// Plane is n·p + d = 0.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

func (p Plane) signedDistance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.distance
}

// ExtractFrustum builds the frustum from the camera's view-projection matrix
// (Gribb/Hartmann). far is the display distance, so obstacles past it are
// culled the way the headset's far clip hides them.
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}
	m := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}
	w := rows[3]

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		r := rows[axis]
		f.planes[2*axis] = planeFromRow(w[0]+r[0], w[1]+r[1], w[2]+r[2], w[3]+r[3])
		f.planes[2*axis+1] = planeFromRow(w[0]-r[0], w[1]-r[1], w[2]-r[2], w[3]-r[3])
	}
	return f
}

func planeFromRow(a, b, c, d float32) Plane {
	p := Plane{normal: rl.Vector3{X: a, Y: b, Z: c}, distance: d}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	p.normal = rl.Vector3Scale(p.normal, 1/length)
	p.distance /= length
	return p
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if p.signedDistance(point) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB is false only when the box lies entirely behind one plane.
// Boxes straddling a plane count as inside.
func (f *Frustum) ContainsAABB(box geom.AABB) bool {
	for _, p := range f.planes {
		// corner furthest along the normal
		c := box.Min
		if p.normal.X >= 0 {
			c.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			c.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			c.Z = box.Max.Z
		}
		if p.signedDistance(c) < 0 {
			return false
		}
	}
	return true
}
