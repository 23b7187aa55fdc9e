package tubes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
)

type fakeAgent struct {
	pos          world.Vec3
	path         []world.Vec3
	tube         entities.Entity
	backtracking bool
	entry        world.Vec3
	traversals   int
}

func (a *fakeAgent) ID() int                        { return 1 }
func (a *fakeAgent) Position() world.Vec3           { return a.pos }
func (a *fakeAgent) SetPosition(p world.Vec3)       { a.pos = p }
func (a *fakeAgent) RotateToFace(target world.Vec3) {}
func (a *fakeAgent) StartInteraction()              {}
func (a *fakeAgent) EndInteraction()                {}
func (a *fakeAgent) AddFood()                       {}
func (a *fakeAgent) RemoveFood() bool               { return false }
func (a *fakeAgent) FoodCount() int                 { return 0 }

func (a *fakeAgent) StartTubeTraversal(path []world.Vec3, tube entities.Entity, backtracking bool, entry world.Vec3) {
	a.path = path
	a.tube = tube
	a.backtracking = backtracking
	a.entry = entry
	a.traversals++
}

// cage is a 10x10 grid with unit cells; cell (x,z) is centered at
// (x-4.5, 0, z-4.5)
func newCage(t *testing.T) (*world.Grid, *Network) {
	t.Helper()
	g, err := world.NewGrid(10, 10, 1)
	require.NoError(t, err)
	n, err := NewNetwork(g, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	return g, n
}

func straightX(id int) *Tube {
	return NewTube(id, world.UnitSize, []Slot{
		{Entry: world.Vec3{X: -1}, Connection: world.Vec3{X: -0.5}},
		{Entry: world.Vec3{X: 1}, Connection: world.Vec3{X: 0.5}},
	}, []world.Vec3{{}})
}

func straightZ(id int) *Tube {
	return NewTube(id, world.UnitSize, []Slot{
		{Entry: world.Vec3{Z: -1}, Connection: world.Vec3{Z: -0.5}},
		{Entry: world.Vec3{Z: 1}, Connection: world.Vec3{Z: 0.5}},
	}, []world.Vec3{{}})
}

func place(g *world.Grid, n *Network, tube *Tube, c world.Cell) *Tube {
	tube.Locate(c, g.GridToWorld(c, tube.Footprint()))
	g.Occupy(c, tube.Footprint())
	n.Add(tube)
	return tube
}

func v(x, z float64) world.Vec3 {
	return world.Vec3{X: x, Z: z}
}

func assertPath(t *testing.T, want, got []world.Vec3) {
	t.Helper()
	require.Len(t, got, len(want), "path %v", got)
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9, "x at %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9, "y at %d", i)
		assert.InDelta(t, want[i].Z, got[i].Z, 1e-9, "z at %d", i)
	}
}

func TestNewNetworkRequiresDependencies(t *testing.T) {
	g, err := world.NewGrid(2, 2, 1)
	require.NoError(t, err)

	_, err = NewNetwork(nil, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
	_, err = NewNetwork(g, nil)
	assert.Error(t, err)
}

func TestPathFromEntryTwoSlots(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})

	path, exit := n.PathFromEntry(a, v(-2.5, 0.5))
	assert.Equal(t, 1, exit)
	assertPath(t, []world.Vec3{v(-2, 0.5), v(-1.5, 0.5), v(-1, 0.5)}, path)

	path, exit = n.PathFromEntry(a, v(-0.5, 0.5))
	assert.Equal(t, 0, exit)
	assertPath(t, []world.Vec3{v(-1, 0.5), v(-1.5, 0.5), v(-2, 0.5)}, path)
}

func TestPathFromEntryReversesWaypoints(t *testing.T) {
	g, n := newCage(t)
	bent := NewTube(1, world.UnitSize, []Slot{
		{Entry: v(-1, 0), Connection: v(-0.5, 0)},
		{Entry: v(0, 1), Connection: v(0, 0.5)},
	}, []world.Vec3{v(-0.25, 0), v(0, 0.25)})
	place(g, n, bent, world.Cell{X: 5, Z: 5})

	forward, _ := n.PathFromEntry(bent, v(-0.5, 0.5))
	backward, _ := n.PathFromEntry(bent, v(0.5, 1.5))
	assertPath(t, Reverse(forward), backward)
}

func TestPathFromEntryManySlots(t *testing.T) {
	g, n := newCage(t)
	junction := NewTube(1, world.UnitSize, []Slot{
		{Entry: v(-1, 0), Connection: v(-0.5, 0)},
		{Entry: v(1, 0), Connection: v(0.5, 0)},
		{Entry: v(0, 1), Connection: v(0, 0.5)},
	}, []world.Vec3{{}})
	place(g, n, junction, world.Cell{X: 5, Z: 5})
	slots := junction.Slots()

	seen := map[int]int{}
	for i := 0; i < 300; i++ {
		path, exit := n.PathFromEntry(junction, slots[0].Entry)
		require.NotEqual(t, 0, exit)
		assert.Equal(t, slots[0].Connection, path[0])
		assert.Equal(t, slots[exit].Connection, path[len(path)-1])
		seen[exit]++
	}
	assert.Greater(t, seen[1], 100)
	assert.Greater(t, seen[2], 100)
}

func TestConnectedTubes(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	b := place(g, n, straightX(2), world.Cell{X: 4, Z: 5})
	place(g, n, straightX(3), world.Cell{X: 7, Z: 5})

	got := n.ConnectedTubes(a, a.Slots()[1].Connection)
	assert.Equal(t, []*Tube{b}, got)

	assert.Empty(t, n.ConnectedTubes(a, a.Slots()[0].Connection))

	n.Remove(b)
	assert.Empty(t, n.ConnectedTubes(a, a.Slots()[1].Connection))
	assert.Nil(t, b.Network())
}

func TestTwoTubeChainClean(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	b := place(g, n, straightX(2), world.Cell{X: 4, Z: 5})

	tr := n.BuildTraversal(a, v(-2.5, 0.5))

	assert.False(t, tr.Backtrack)
	assert.Same(t, b, tr.Last)
	assert.Equal(t, 1, tr.ExitSlot)
	assertPath(t, []world.Vec3{
		v(-2, 0.5),   // A connection
		v(-1.5, 0.5), // A waypoint
		v(-1, 0.5),   // shared connector
		v(-0.5, 0.5), // B waypoint
		v(0, 0.5),    // B far connection
	}, tr.Path)
}

func TestChainBlockedByObjectBacktracks(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	place(g, n, straightX(2), world.Cell{X: 4, Z: 5})
	// a house right behind B's far exit
	g.Occupy(world.Cell{X: 5, Z: 5}, world.UnitSize)

	tr := n.BuildTraversal(a, v(-2.5, 0.5))
	assert.True(t, tr.Backtrack)
	assert.Len(t, tr.Path, 5)

	walk := WalkBack(tr.Path)
	assert.Len(t, walk, 9)
	assert.Equal(t, a.Slots()[0].Connection, walk[len(walk)-1])
	assert.Equal(t, tr.Path[len(tr.Path)-1], walk[4])
}

func TestExitOutsideCageIsBlocked(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 9, Z: 5})

	tr := n.BuildTraversal(a, v(3.5, 0.5))
	assert.True(t, tr.Backtrack)
	assert.True(t, n.IsExitBlocked(a.Slots()[1].Entry))
}

func TestExitOntoTubeIsNotBlocked(t *testing.T) {
	g, n := newCage(t)
	place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	assert.False(t, n.IsExitBlocked(v(-1.5, 0.5)))
	assert.True(t, n.CoversCell(world.Cell{X: 3, Z: 5}))
	assert.False(t, n.CoversCell(world.Cell{X: 4, Z: 5}))
}

// branchCage builds A -> {B, C} where both B and C start at A's east
// connection. B runs east, C runs north.
func branchCage(t *testing.T) (*world.Grid, *Network, *Tube, *Tube, *Tube) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	b := place(g, n, straightX(2), world.Cell{X: 4, Z: 5})
	c := place(g, n, NewTube(3, world.UnitSize, []Slot{
		{Entry: v(-1, -1), Connection: v(-0.5, -1)},
		{Entry: v(0, 1), Connection: v(0, 0.5)},
	}, []world.Vec3{{}}), world.Cell{X: 4, Z: 6})
	return g, n, a, b, c
}

func TestBranchPrefersCleanExit(t *testing.T) {
	g, n, a, _, c := branchCage(t)
	g.Occupy(world.Cell{X: 5, Z: 5}, world.UnitSize)

	tr := n.BuildTraversal(a, v(-2.5, 0.5))
	assert.False(t, tr.Backtrack)
	assert.Same(t, c, tr.Last)
	assertPath(t, []world.Vec3{
		v(-2, 0.5), v(-1.5, 0.5), v(-1, 0.5),
		v(-0.5, 1.5), v(-0.5, 2),
	}, tr.Path)
}

func TestBranchLongestWhenAllBlocked(t *testing.T) {
	g, n, a, _, _ := branchCage(t)
	d := place(g, n, straightZ(4), world.Cell{X: 4, Z: 7})
	g.Occupy(world.Cell{X: 5, Z: 5}, world.UnitSize)
	g.Occupy(world.Cell{X: 4, Z: 8}, world.UnitSize)

	tr := n.BuildTraversal(a, v(-2.5, 0.5))
	assert.True(t, tr.Backtrack)
	assert.Same(t, d, tr.Last)
	assertPath(t, []world.Vec3{
		v(-2, 0.5), v(-1.5, 0.5), v(-1, 0.5),
		v(-0.5, 1.5), v(-0.5, 2),
		v(-0.5, 2.5), v(-0.5, 3),
	}, tr.Path)
}

func TestCycleTerminates(t *testing.T) {
	g, n := newCage(t)
	p0, p1, p2 := v(-1, 0), v(1, 0), v(0, 1.5)
	origin := world.Vec3{}

	t0 := NewTube(1, world.UnitSize, []Slot{
		{Entry: v(-1.5, -0.5), Connection: p0},
		{Entry: v(1.5, -0.5), Connection: p1},
	}, []world.Vec3{v(0, -0.5)})
	t1 := NewTube(2, world.UnitSize, []Slot{
		{Entry: v(1.5, 0.5), Connection: p1},
		{Entry: v(0.5, 2), Connection: p2},
	}, []world.Vec3{v(0.6, 0.8)})
	t2 := NewTube(3, world.UnitSize, []Slot{
		{Entry: v(-0.5, 2), Connection: p2},
		{Entry: v(-1.5, -0.5), Connection: p0},
	}, []world.Vec3{v(-0.6, 0.8)})
	for _, tube := range []*Tube{t0, t1, t2} {
		tube.Locate(world.Cell{}, origin)
		n.Add(tube)
	}

	tr := n.BuildTraversal(t0, v(-1.5, -0.5))
	assert.False(t, tr.Backtrack)
	assert.Same(t, t2, tr.Last)
	assertPath(t, []world.Vec3{p0, v(0, -0.5), p1, v(0.6, 0.8), p2, v(-0.6, 0.8), p0}, tr.Path)

	// block the way out: the search still terminates and asks to backtrack
	g.Occupy(g.WorldToGrid(v(-1.5, -0.5)), world.UnitSize)
	tr = n.BuildTraversal(t0, v(-1.5, -0.5))
	assert.True(t, tr.Backtrack)
	assert.Len(t, tr.Path, 7)
}

func TestTubeOnInteract(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	b := place(g, n, straightX(2), world.Cell{X: 4, Z: 5})

	agent := &fakeAgent{pos: v(-2.5, 0.5)}
	a.OnInteract(agent, 0)
	assert.Equal(t, 1, agent.traversals)
	assert.False(t, agent.backtracking)
	assert.Same(t, b, agent.tube)
	assert.Equal(t, v(-2.5, 0.5), agent.entry)
	assert.Len(t, agent.path, 5)

	g.Occupy(world.Cell{X: 5, Z: 5}, world.UnitSize)
	agent = &fakeAgent{pos: v(-2.5, 0.5)}
	a.OnInteract(agent, 0)
	assert.True(t, agent.backtracking)
	assert.Same(t, a, agent.tube)
	assert.Len(t, agent.path, 9)
	assert.Equal(t, a.Slots()[0].Connection, agent.path[len(agent.path)-1])
}

func TestTubeOutsideNetworkIgnoresInteract(t *testing.T) {
	agent := &fakeAgent{}
	straightX(1).OnInteract(agent, 0)
	assert.Equal(t, 0, agent.traversals)
}

func TestTubeEntryPoints(t *testing.T) {
	g, n := newCage(t)
	a := place(g, n, straightX(1), world.Cell{X: 3, Z: 5})
	assert.Equal(t, entities.TypeTube, a.Type())
	assert.Equal(t, []world.Vec3{v(-2.5, 0.5), v(-0.5, 0.5)}, a.EntryPoints())
}
