// Package gameplay drives a cage: the simulation tick and the play-mode
// lifecycle.
package gameplay

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
	"hamstercage/pkg/game/renderer"
	"hamstercage/pkg/game/state"
)

// Tick advances the cage by dt simulated seconds. Entities update in
// placement order, then hamsters in spawn order. Queued events are flushed
// at the end.
func Tick(g *state.Game, dt float64) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("tick: invalid time step %v", dt)
	}
	g.Advance(dt)

	if g.Playing {
		now := g.Now()
		for _, e := range append([]entities.Entity(nil), g.Entities()...) {
			if t, ok := e.(entities.Ticker); ok {
				t.Update(now, dt)
			}
		}
		for _, h := range append(g.Hamsters()[:0:0], g.Hamsters()...) {
			h.Update(dt)
		}
	}

	return flushEvents(g)
}

// flushEvents drains queued events into the debug log, the message log and
// the recorder
func flushEvents(g *state.Game) error {
	var errs []error
	for _, ev := range g.DrainEvents() {
		slog.Debug("event", "t", ev.Time, "kind", ev.Kind, "hamster", ev.Hamster, "entity", ev.Entity, "object", ev.Object, "from", ev.From, "to", ev.To, "detail", ev.Detail)

		if msg := message(ev); msg != "" {
			logMessage(g, "%s", msg)
		}
		if g.Recorder != nil {
			if err := g.Recorder.Record(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("record events: %w", err)
	}
	return nil
}

// message returns the player-facing markup for an event, or "" when the
// event is not worth showing
func message(ev events.Event) string {
	switch ev.Kind {
	case events.KindSpawn:
		return fmt.Sprintf("HAMSTER{%d} GT{MSG_SPAWNED}", ev.Hamster)
	case events.KindDespawn:
		return fmt.Sprintf("HAMSTER{%d} GT{MSG_DESPAWNED}", ev.Hamster)
	case events.KindInteractStart:
		return fmt.Sprintf("HAMSTER{%d} GT{MSG_USES} OBJECT{%s}", ev.Hamster, ev.Object)
	case events.KindTubeEnter:
		if ev.Detail == "backtracking" {
			return fmt.Sprintf("HAMSTER{%d} GT{MSG_TUBE_BACKTRACK}", ev.Hamster)
		}
		return fmt.Sprintf("HAMSTER{%d} GT{MSG_TUBE_ENTER}", ev.Hamster)
	case events.KindFoodStored:
		return fmt.Sprintf("HAMSTER{%d} GT{MSG_FOOD_STORED}", ev.Hamster)
	case events.KindPlayStarted:
		return "GT{MSG_PLAY_STARTED}"
	case events.KindPlayStopped:
		return "GT{MSG_PLAY_STOPPED}"
	default:
		return ""
	}
}

// logMessage adds a formatted message to the game's message log
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(renderer.FormatText(msg, a...))
}
