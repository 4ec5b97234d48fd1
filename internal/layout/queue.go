package layout

import (
	"context"

	"github.com/google/uuid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Kind is what happened to a tracked code.
type Kind int

const (
	Added Kind = iota
	Updated
	Removed
	TrackingLost
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Removed:
		return "removed"
	case TrackingLost:
		return "tracking-lost"
	}
	return "unknown"
}

// CodePose is where a code was seen. Yaw is in degrees about +Y, and at
// yaw 0 the code's local +Z points into the wall behind it.
type CodePose struct {
	Position rl.Vector3
	Yaw      float32
}

// Event is one tracker notification. ID and Payload are empty for
// TrackingLost.
type Event struct {
	Kind    Kind
	ID      uuid.UUID
	Payload string
	Pose    CodePose
}

// Queue hands events from the tracking thread to the frame loop.
// Push may be called from any goroutine; Drain only from the frame loop.
type Queue struct {
	ch chan Event
}

// NewQueue returns a queue holding up to size pending events.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Event, size)}
}

// Push enqueues ev, blocking while the queue is full.
func (q *Queue) Push(ctx context.Context, ev Event) error {
	select {
	case q.ch <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain returns every pending event in arrival order without blocking.
func (q *Queue) Drain() []Event {
	var events []Event
	for {
		select {
		case ev := <-q.ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

// Len is the number of pending events.
func (q *Queue) Len() int {
	return len(q.ch)
}
