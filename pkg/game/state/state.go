// Package state holds the running cage: grid, planner, tube network, placed
// entities, hamsters, clock and the player-facing message log.
package state

import (
	"errors"
	"math/rand"

	"hamstercage/pkg/engine/nav"
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
	"hamstercage/pkg/game/hamster"
	"hamstercage/pkg/game/tubes"
)

const maxMessages = 5

// Game represents the state of one cage
type Game struct {
	grid     *world.Grid
	planner  *nav.Planner
	network  *tubes.Network
	spawns   *entities.SpawnRegistry
	rng      *rand.Rand
	entities []entities.Entity
	hamsters []*hamster.Hamster

	Tuning   hamster.Tuning
	Messages []string
	Playing  bool

	// Recorder receives every drained event when set
	Recorder events.Recorder

	clock       float64
	events      events.Buffer
	nextEntity  int
	nextHamster int
}

// NewGame creates a new game around an existing grid, planner and tube
// network
func NewGame(grid *world.Grid, planner *nav.Planner, network *tubes.Network, rng *rand.Rand, tuning hamster.Tuning, maxHamsters int) (*Game, error) {
	switch {
	case grid == nil:
		return nil, errors.New("state: game requires a grid")
	case planner == nil:
		return nil, errors.New("state: game requires a path planner")
	case network == nil:
		return nil, errors.New("state: game requires a tube network")
	case rng == nil:
		return nil, errors.New("state: game requires a random source")
	case planner.Grid() != grid:
		return nil, errors.New("state: planner searches a different grid")
	}
	return &Game{
		grid:     grid,
		planner:  planner,
		network:  network,
		spawns:   entities.NewSpawnRegistry(maxHamsters),
		rng:      rng,
		Tuning:   tuning,
		Messages: make([]string, 0),
	}, nil
}

func (g *Game) Grid() *world.Grid {
	return g.grid
}

func (g *Game) Planner() *nav.Planner {
	return g.planner
}

func (g *Game) Tubes() *tubes.Network {
	return g.network
}

func (g *Game) Rand() *rand.Rand {
	return g.rng
}

// SpawnRegistry returns the registry capping hamster spawns
func (g *Game) SpawnRegistry() *entities.SpawnRegistry {
	return g.spawns
}

// Now returns the simulated time in seconds
func (g *Game) Now() float64 {
	return g.clock
}

// Advance moves the clock forward
func (g *Game) Advance(dt float64) {
	g.clock += dt
}

// Entities returns the placed entities in placement order
func (g *Game) Entities() []entities.Entity {
	return g.entities
}

// Hamsters returns the live hamsters in spawn order
func (g *Game) Hamsters() []*hamster.Hamster {
	return g.hamsters
}

// NextEntityID reserves an entity id
func (g *Game) NextEntityID() int {
	g.nextEntity++
	return g.nextEntity
}

// AddEntity registers a placed entity. Tubes join the tube network.
func (g *Game) AddEntity(e entities.Entity) {
	g.entities = append(g.entities, e)
	if t, ok := e.(*tubes.Tube); ok {
		g.network.Add(t)
	}
}

// RemoveEntity unregisters a placed entity
func (g *Game) RemoveEntity(e entities.Entity) bool {
	for i, existing := range g.entities {
		if existing != e {
			continue
		}
		g.entities = append(g.entities[:i], g.entities[i+1:]...)
		if t, ok := e.(*tubes.Tube); ok {
			g.network.Remove(t)
		}
		return true
	}
	return false
}

// EntityAt returns the entity whose footprint covers c
func (g *Game) EntityAt(c world.Cell) entities.Entity {
	for _, e := range g.entities {
		if e.Footprint().Contains(e.Origin(), c) {
			return e
		}
	}
	return nil
}

// InteractingWith reports whether a hamster other than except is inside or
// using e
func (g *Game) InteractingWith(e entities.Entity, except *hamster.Hamster) bool {
	for _, h := range g.hamsters {
		if h == except || h.Target() != e {
			continue
		}
		if s := h.State(); s == hamster.Interacting || s.FollowsTubePath() {
			return true
		}
	}
	return false
}

// Hatch creates a hamster at position. It satisfies entities.HatchFunc.
func (g *Game) Hatch(position world.Vec3) entities.Agent {
	g.nextHamster++
	h := hamster.New(g.nextHamster, g, g.Tuning, position)
	g.hamsters = append(g.hamsters, h)
	g.Record(events.Event{Time: g.clock, Kind: events.KindSpawn, Hamster: h.ID(), Position: position})
	return h
}

// Despawn stops a hamster and removes it from the cage
func (g *Game) Despawn(a entities.Agent) {
	for i, h := range g.hamsters {
		if entities.Agent(h) != a {
			continue
		}
		h.Stop()
		g.hamsters = append(g.hamsters[:i], g.hamsters[i+1:]...)
		g.Record(events.Event{Time: g.clock, Kind: events.KindDespawn, Hamster: h.ID(), Position: h.Position()})
		return
	}
}

// Record queues an event for the next drain
func (g *Game) Record(e events.Event) {
	g.events.Add(e)
}

// DrainEvents returns and clears the queued events
func (g *Game) DrainEvents() []events.Event {
	return g.events.Drain()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

var _ hamster.Env = (*Game)(nil)
