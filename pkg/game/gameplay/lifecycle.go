package gameplay

import (
	"errors"
	"log/slog"

	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
	"hamstercage/pkg/game/placement"
	"hamstercage/pkg/game/state"
)

var (
	ErrAlreadyPlaying = errors.New("play mode is already running")
	ErrNotPlaying     = errors.New("play mode is not running")
)

// walkable reports whether hamsters may cross the entity's footprint during
// play
func walkable(e entities.Entity) bool {
	return e.Type() == entities.TypeSpawner || e.Type() == entities.TypeFood
}

// StartPlay frees spawner and food footprints, locks editing and starts
// every spawner
func StartPlay(g *state.Game, sys *placement.System) error {
	if g.Playing {
		return ErrAlreadyPlaying
	}

	grid := g.Grid()
	for _, e := range g.Entities() {
		if walkable(e) {
			grid.Free(e.Origin(), e.Footprint())
		}
	}

	sys.DisableEditing()
	g.Playing = true
	g.SpawnRegistry().Reset()

	spawners := 0
	for _, e := range g.Entities() {
		if s, ok := e.(*entities.Spawner); ok {
			s.Start(g.Now(), g.SpawnRegistry(), g.Hatch)
			spawners++
		}
	}
	slog.Info("Play started", "entities", len(g.Entities()), "spawners", spawners)

	g.Record(events.Event{Time: g.Now(), Kind: events.KindPlayStarted})
	return flushEvents(g)
}

// StopPlay halts every hamster and entity routine, despawns the hamsters and
// restores the editing layout
func StopPlay(g *state.Game, sys *placement.System) error {
	if !g.Playing {
		return ErrNotPlaying
	}

	for _, h := range g.Hamsters() {
		h.Stop()
	}
	for _, e := range g.Entities() {
		if s, ok := e.(entities.Stopper); ok {
			s.Stop()
		}
	}

	despawned := 0
	for _, e := range g.Entities() {
		if s, ok := e.(*entities.Spawner); ok {
			despawned += s.Despawn(g.Despawn)
		}
	}
	// hamsters hatched outside a spawner
	for len(g.Hamsters()) > 0 {
		g.Despawn(g.Hamsters()[0])
		despawned++
	}
	g.SpawnRegistry().Reset()

	grid := g.Grid()
	for _, e := range g.Entities() {
		if walkable(e) {
			grid.Occupy(e.Origin(), e.Footprint())
		}
	}

	sys.EnableEditing()
	g.Playing = false
	slog.Info("Play stopped", "despawned", despawned)

	g.Record(events.Event{Time: g.Now(), Kind: events.KindPlayStopped})
	return flushEvents(g)
}
