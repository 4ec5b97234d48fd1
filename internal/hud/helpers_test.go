package hud

import (
	"visualcues/internal/geom"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type testObstacle struct {
	name   string
	bounds geom.AABB
}

func (o testObstacle) ObstacleName() string { return o.name }
func (o testObstacle) Bounds() geom.AABB    { return o.bounds }

func vec(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

func boxAt(name string, center, size rl.Vector3) testObstacle {
	return testObstacle{name: name, bounds: geom.NewAABBFromCenter(center, size)}
}

func boxSpan(name string, min, max rl.Vector3) testObstacle {
	return testObstacle{name: name, bounds: geom.AABB{Min: min, Max: max}}
}

// facingPlusZ is a head at the origin looking down +Z with +X to the right.
func facingPlusZ() geom.HeadPose {
	return geom.HeadPose{
		Position: vec(0, 0, 0),
		Right:    vec(1, 0, 0),
		Up:       vec(0, 1, 0),
		Forward:  vec(0, 0, 1),
	}
}

func project(pose geom.HeadPose, frontAngle float32, obstacles ...Obstacle) []*ObstacleRecord {
	p := NewProjector(nil)
	records := make([]*ObstacleRecord, len(obstacles))
	for i, o := range obstacles {
		records[i] = NewObstacleRecord(o)
	}
	p.ProjectAll(pose, records, frontAngle)
	return records
}
