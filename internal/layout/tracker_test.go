package layout

import (
	"context"
	"sync"
	"testing"

	"visualcues/internal/engine"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var obstacleNames = []string{
	"Wide Obstacle 1", "Wide Obstacle 2",
	"Low Obstacle 1", "Low Obstacle 2",
	"High Obstacle 1", "High Obstacle 2",
}

func newCourse() *engine.GameObject {
	parent := engine.NewGameObject("Collocated Cues")
	for _, name := range obstacleNames {
		parent.AddChild(engine.NewGameObject(name))
	}
	return parent
}

func assertVec(t *testing.T, want, got rl.Vector3, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msg)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msg)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msg)
}

func TestTrackerAddedPlacesLayout(t *testing.T) {
	parent := newCourse()
	tr, err := NewTracker(parent, Default(), nil)
	require.NoError(t, err)

	var announced []string
	tr.OnLayout.AddListener(func(name string) { announced = append(announced, name) })

	err = tr.Handle(Event{
		Kind:    Added,
		ID:      uuid.New(),
		Payload: "QR Code 4",
		Pose:    CodePose{Position: rl.Vector3{X: 2, Y: 1.5, Z: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Layout 4", tr.Layout())
	assert.Equal(t, []string{"Layout 4"}, announced)
	assert.Equal(t, 1, tr.Codes())

	assert.InDelta(t, -90, parent.Transform.Rotation.Y, 1e-6)
	assertVec(t, rl.Vector3{X: 2, Y: 0, Z: 2.1}, parent.Transform.Position, "parent")

	low := parent.FindChild("Low Obstacle 1")
	assertVec(t, rl.Vector3{X: 0, Y: 0.05, Z: 4.5}, low.Transform.Position, "low obstacle")

	high := parent.FindChild("High Obstacle 1")
	assertVec(t, rl.Vector3{X: 0, Y: DefaultHeights().High, Z: 6}, high.Transform.Position, "high obstacle")
}

func TestTrackerPutsLeftObstacleOnWalkersLeft(t *testing.T) {
	parent := newCourse()
	tr, err := NewTracker(parent, Default(), nil)
	require.NoError(t, err)

	require.NoError(t, tr.Handle(Event{
		Kind:    Added,
		ID:      uuid.New(),
		Payload: "QR Code 1",
		Pose:    CodePose{Position: rl.Vector3{X: 0.5, Y: 1.5, Z: -1}, Yaw: 30},
	}))

	// the walker faces along the parent's local +Z
	ahead := rl.Vector3Negate(parent.Forward())
	right := rl.Vector3CrossProduct(ahead, rl.Vector3{Y: 1})

	rel := rl.Vector3Subtract(parent.FindChild("Wide Obstacle 1").WorldPosition(), parent.WorldPosition())
	assert.Less(t, rl.Vector3DotProduct(rel, right), float32(0), "wide obstacle 1 is left of the centerline")
	assert.Greater(t, rl.Vector3DotProduct(rel, ahead), float32(0), "wide obstacle 1 is ahead")

	rel = rl.Vector3Subtract(parent.FindChild("Wide Obstacle 2").WorldPosition(), parent.WorldPosition())
	assert.Greater(t, rl.Vector3DotProduct(rel, right), float32(0), "wide obstacle 2 is right of the centerline")

	// the code hangs on the left wall, StartingDist from the centerline
	code := rl.Vector3{X: 0.5, Y: 0, Z: -1}
	toCode := rl.Vector3Subtract(code, parent.WorldPosition())
	assert.InDelta(t, -DefaultStartingDist, rl.Vector3DotProduct(toCode, right), 1e-4)
	assert.InDelta(t, 0, rl.Vector3DotProduct(toCode, ahead), 1e-4)
}

func TestTrackerKeepsAdjustedHighHeight(t *testing.T) {
	parent := newCourse()
	h := DefaultHeights()
	tr, err := NewTracker(parent, Default(), func() Heights { return h })
	require.NoError(t, err)

	h.High = 2.0
	require.NoError(t, tr.Handle(Event{Kind: Added, ID: uuid.New(), Payload: "Demo"}))

	assert.InDelta(t, 2.0, parent.FindChild("High Obstacle 1").Transform.Position.Y, 1e-6)
	assertVec(t, rl.Vector3{X: -2, Y: 0.05, Z: 2}, parent.FindChild("Low Obstacle 2").Transform.Position, "demo obstacle")
}

func TestTrackerUnknownPayloadStillMovesParent(t *testing.T) {
	parent := newCourse()
	tr, err := NewTracker(parent, Default(), nil)
	require.NoError(t, err)

	err = tr.Handle(Event{Kind: Added, ID: uuid.New(), Payload: "hello", Pose: CodePose{Position: rl.Vector3{X: 1, Y: 1.5}, Yaw: -90}})
	assert.ErrorIs(t, err, ErrUnknownLayout)
	assert.Equal(t, Unrecognized, tr.Layout())
	assert.InDelta(t, -180, parent.Transform.Rotation.Y, 1e-6)
	assertVec(t, rl.Vector3{X: 1.9, Y: 0, Z: 0}, parent.Transform.Position, "parent")
}

func TestTrackerUpdatedRegistersUnknownCode(t *testing.T) {
	parent := newCourse()
	tr, err := NewTracker(parent, Default(), nil)
	require.NoError(t, err)

	id := uuid.New()
	require.NoError(t, tr.Handle(Event{Kind: Updated, ID: id, Payload: "QR Code 2"}))
	assert.Equal(t, 1, tr.Codes())
	assert.Equal(t, "Layout 2", tr.Layout())

	// a later update for a known code keeps its layout and does not re-announce
	calls := 0
	tr.OnLayout.AddListener(func(string) { calls++ })
	require.NoError(t, tr.Handle(Event{Kind: Updated, ID: id, Payload: "QR Code 2"}))
	assert.Equal(t, 0, calls)
	assert.Equal(t, 1, tr.Codes())
}

func TestTrackerRemovedAndTrackingLost(t *testing.T) {
	tr, err := NewTracker(newCourse(), Default(), nil)
	require.NoError(t, err)

	a, b := uuid.New(), uuid.New()
	require.NoError(t, tr.Handle(Event{Kind: Added, ID: a, Payload: "QR Code 1"}))
	require.NoError(t, tr.Handle(Event{Kind: Added, ID: b, Payload: "QR Code 3"}))
	assert.Equal(t, 2, tr.Codes())
	assert.Equal(t, "Layout 3", tr.Layout())

	require.NoError(t, tr.Handle(Event{Kind: Removed, ID: a}))
	assert.Equal(t, 1, tr.Codes())

	require.NoError(t, tr.Handle(Event{Kind: TrackingLost}))
	assert.Equal(t, 0, tr.Codes())

	assert.Error(t, tr.Handle(Event{Kind: Kind(42)}))
}

func TestNewTrackerNeedsParent(t *testing.T) {
	_, err := NewTracker(nil, nil, nil)
	assert.Error(t, err)
}

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue(8)
	ctx := context.Background()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Push(ctx, Event{Kind: Added, ID: id}))
	}
	assert.Equal(t, 3, q.Len())

	events := q.Drain()
	require.Len(t, events, 3)
	for i, ev := range events {
		assert.Equal(t, ids[i], ev.ID)
	}
	assert.Empty(t, q.Drain())
}

func TestQueuePushRespectsContext(t *testing.T) {
	q := NewQueue(1)
	require.NoError(t, q.Push(context.Background(), Event{Kind: Added}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, q.Push(ctx, Event{Kind: Updated}), context.Canceled)
}

func TestTrackerProcessConcurrentProducers(t *testing.T) {
	parent := newCourse()
	tr, err := NewTracker(parent, Default(), nil)
	require.NoError(t, err)

	q := NewQueue(64)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 8; j++ {
				_ = q.Push(context.Background(), Event{Kind: Added, ID: uuid.New(), Payload: "Demo"})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, tr.Process(q))
	assert.Equal(t, 32, tr.Codes())
	assert.Equal(t, Demo, tr.Layout())
	assert.Equal(t, 0, tr.Process(q))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "added", Added.String())
	assert.Equal(t, "tracking-lost", TrackingLost.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
