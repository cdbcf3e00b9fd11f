package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/breakout/ecs/component"
)

// EventType identifies something that happened during a step.
type EventType string

const (
	EventBrickDestroyed   EventType = "brick_destroyed"
	EventSolidBrickHit    EventType = "solid_brick_hit"
	EventPaddleHit        EventType = "paddle_hit"
	EventPowerUpSpawned   EventType = "powerup_spawned"
	EventPowerUpActivated EventType = "powerup_activated"
	EventPowerUpExpired   EventType = "powerup_expired"
	EventBallLost         EventType = "ball_lost"
	EventLevelWon         EventType = "level_won"
)

// Event is emitted by systems for frontends (audio, logging). PowerUp is
// only meaningful for the power-up events.
type Event struct {
	Type     EventType
	Position cp.Vector
	PowerUp  component.PowerUpType
}

// EventQueue collects the events of one step in the order systems raised
// them. The world clears it at the start of every step.
type EventQueue struct {
	pending []Event
}

func (q *EventQueue) Push(events ...Event) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, events...)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Drain hands the queued events to the caller and leaves the queue empty.
func (q *EventQueue) Drain() []Event {
	if q.Len() == 0 {
		return nil
	}
	drained := q.pending
	q.pending = nil
	return drained
}

func (q *EventQueue) flush() {
	if q != nil {
		q.pending = q.pending[:0]
	}
}
