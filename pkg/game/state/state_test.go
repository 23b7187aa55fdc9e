package state

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hamstercage/pkg/engine/nav"
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
	"hamstercage/pkg/game/hamster"
	"hamstercage/pkg/game/tubes"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	grid, err := world.NewGrid(8, 8, 1)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	planner, err := nav.NewPlanner(grid, rng)
	require.NoError(t, err)
	network, err := tubes.NewNetwork(grid, rng)
	require.NoError(t, err)
	g, err := NewGame(grid, planner, network, rng, hamster.DefaultTuning(), 200)
	require.NoError(t, err)
	return g
}

func TestNewGameRejectsMissingDependencies(t *testing.T) {
	grid, _ := world.NewGrid(4, 4, 1)
	other, _ := world.NewGrid(4, 4, 1)
	rng := rand.New(rand.NewSource(1))
	planner, _ := nav.NewPlanner(grid, rng)
	otherPlanner, _ := nav.NewPlanner(other, rng)
	network, _ := tubes.NewNetwork(grid, rng)
	tuning := hamster.DefaultTuning()

	_, err := NewGame(nil, planner, network, rng, tuning, 1)
	assert.Error(t, err)
	_, err = NewGame(grid, nil, network, rng, tuning, 1)
	assert.Error(t, err)
	_, err = NewGame(grid, planner, nil, rng, tuning, 1)
	assert.Error(t, err)
	_, err = NewGame(grid, planner, network, nil, tuning, 1)
	assert.Error(t, err)
	_, err = NewGame(grid, otherPlanner, network, rng, tuning, 1)
	assert.Error(t, err)
}

func TestAddMessageKeepsLastFive(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 8; i++ {
		g.AddMessage(fmt.Sprintf("msg %d", i))
	}
	assert.Equal(t, []string{"msg 3", "msg 4", "msg 5", "msg 6", "msg 7"}, g.Messages)

	g.ClearMessages()
	assert.Empty(t, g.Messages)
}

func TestEntitiesAndTubes(t *testing.T) {
	g := newTestGame(t)
	house := entities.NewHouse(g.NextEntityID(), world.Size{W: 2, H: 2}, nil, world.Vec3{}, 1, 1)
	house.Locate(world.Cell{X: 1, Z: 1}, world.Vec3{})
	tube := tubes.NewTube(g.NextEntityID(), world.UnitSize, nil, nil)

	g.AddEntity(house)
	g.AddEntity(tube)
	assert.Equal(t, 1, house.ID())
	assert.Equal(t, 2, tube.ID())
	assert.Equal(t, []*tubes.Tube{tube}, g.Tubes().Tubes())
	assert.Same(t, g.Tubes(), tube.Network())

	assert.Equal(t, house, g.EntityAt(world.Cell{X: 2, Z: 2}))
	assert.Nil(t, g.EntityAt(world.Cell{X: 3, Z: 3}))

	assert.True(t, g.RemoveEntity(tube))
	assert.False(t, g.RemoveEntity(tube))
	assert.Empty(t, g.Tubes().Tubes())
	assert.Len(t, g.Entities(), 1)
}

func TestHatchAndDespawn(t *testing.T) {
	g := newTestGame(t)
	g.Advance(1.5)
	assert.Equal(t, 1.5, g.Now())

	a := g.Hatch(world.Vec3{X: 0.5})
	b := g.Hatch(world.Vec3{X: 1.5})
	require.Len(t, g.Hamsters(), 2)
	assert.Equal(t, 1, a.ID())
	assert.Equal(t, 2, b.ID())

	g.Despawn(a)
	require.Len(t, g.Hamsters(), 1)
	assert.Equal(t, 2, g.Hamsters()[0].ID())

	var kinds []events.Kind
	for _, ev := range g.DrainEvents() {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []events.Kind{events.KindSpawn, events.KindSpawn, events.KindState, events.KindDespawn}, kinds)
	assert.Empty(t, g.DrainEvents())
}

func TestInteractingWith(t *testing.T) {
	g := newTestGame(t)
	g.Tuning.ChillProbability = 0

	wheel := entities.NewWheel(g.NextEntityID(), world.UnitSize, []world.Vec3{{X: -1}}, world.Vec3{}, 5, 90)
	origin := world.Cell{X: 4, Z: 4}
	wheel.Locate(origin, g.Grid().GridToWorld(origin, wheel.Footprint()))
	g.Grid().Occupy(origin, wheel.Footprint())
	g.AddEntity(wheel)

	a := g.Hatch(g.Grid().GridToWorldCenter(world.Cell{X: 3, Z: 4})).(*hamster.Hamster)
	b := g.Hatch(g.Grid().GridToWorldCenter(world.Cell{X: 0, Z: 0})).(*hamster.Hamster)
	b.Stop()
	assert.False(t, g.InteractingWith(wheel, nil))

	for i := 0; i < 100 && a.State() != hamster.Interacting; i++ {
		g.Advance(0.05)
		wheel.Update(g.Now(), 0.05)
		a.Update(0.05)
	}
	require.Equal(t, hamster.Interacting, a.State())
	assert.Same(t, wheel, a.Target())
	assert.True(t, g.InteractingWith(wheel, b))
	assert.False(t, g.InteractingWith(wheel, a), "a hamster does not count itself")
}
