// Package events defines the simulation event records produced by hamsters,
// entities and the play-mode lifecycle.
package events

import (
	"fmt"

	"hamstercage/pkg/engine/world"
)

// Kind identifies what happened
type Kind string

const (
	KindSpawn         Kind = "spawn"
	KindDespawn       Kind = "despawn"
	KindState         Kind = "state"
	KindTarget        Kind = "target"
	KindInteractStart Kind = "interact_start"
	KindInteractEnd   Kind = "interact_end"
	KindTubeEnter     Kind = "tube_enter"
	KindTubeExit      Kind = "tube_exit"
	KindFoodPickedUp  Kind = "food_picked_up"
	KindFoodStored    Kind = "food_stored"
	KindPlayStarted   Kind = "play_started"
	KindPlayStopped   Kind = "play_stopped"
)

// Event is a single simulation occurrence
type Event struct {
	Time     float64    `json:"t"`
	Kind     Kind       `json:"kind"`
	Hamster  int        `json:"hamster,omitempty"`
	Entity   int        `json:"entity,omitempty"`
	Object   string     `json:"object,omitempty"`
	From     string     `json:"from,omitempty"`
	To       string     `json:"to,omitempty"`
	Position world.Vec3 `json:"pos"`
	Detail   string     `json:"detail,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case KindState:
		return fmt.Sprintf("%.2f hamster %d %s -> %s", e.Time, e.Hamster, e.From, e.To)
	case KindPlayStarted, KindPlayStopped:
		return fmt.Sprintf("%.2f %s", e.Time, e.Kind)
	default:
		return fmt.Sprintf("%.2f hamster %d %s %s#%d %s", e.Time, e.Hamster, e.Kind, e.Object, e.Entity, e.Detail)
	}
}

// Recorder receives events as they are drained from the game
type Recorder interface {
	Record(e Event) error
}

// Buffer collects events between ticks
type Buffer struct {
	pending []Event
}

// Add appends an event
func (b *Buffer) Add(e Event) {
	b.pending = append(b.pending, e)
}

// Len returns the number of pending events
func (b *Buffer) Len() int {
	return len(b.pending)
}

// Drain returns all pending events in order and empties the buffer
func (b *Buffer) Drain() []Event {
	out := b.pending
	b.pending = nil
	return out
}
