package tubes

import (
	"errors"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"hamstercage/pkg/engine/world"
)

// Network is the set of placed tubes on a grid
type Network struct {
	grid  *world.Grid
	rng   *rand.Rand
	tubes []*Tube
}

// Traversal is a planned walk through one or more tubes
type Traversal struct {
	Path      []world.Vec3
	Backtrack bool
	Last      *Tube // tube the walk ends in
	ExitSlot  int   // slot of Last the walk ends at
}

// NewNetwork creates an empty network
func NewNetwork(grid *world.Grid, rng *rand.Rand) (*Network, error) {
	if grid == nil {
		return nil, errors.New("tubes: network requires a grid")
	}
	if rng == nil {
		return nil, errors.New("tubes: network requires a random source")
	}
	return &Network{grid: grid, rng: rng}, nil
}

// Add registers a tube with the network
func (n *Network) Add(t *Tube) {
	for _, existing := range n.tubes {
		if existing == t {
			return
		}
	}
	t.network = n
	n.tubes = append(n.tubes, t)
}

// Remove unregisters a tube
func (n *Network) Remove(t *Tube) {
	for i, existing := range n.tubes {
		if existing == t {
			n.tubes = append(n.tubes[:i], n.tubes[i+1:]...)
			t.network = nil
			return
		}
	}
}

// Tubes returns the registered tubes in insertion order
func (n *Network) Tubes() []*Tube {
	return n.tubes
}

// PathFromEntry returns the walk through a single tube entered near entry,
// and the index of the exit slot. Two-slot tubes exit through the other slot;
// tubes with more slots pick a random non-entry slot. The tube must have at
// least one slot.
func (n *Network) PathFromEntry(t *Tube, entry world.Vec3) ([]world.Vec3, int) {
	slots := t.Slots()
	in := t.NearestSlot(entry)

	out := in
	switch {
	case len(slots) == 2:
		out = 1 - in
	case len(slots) > 2:
		out = n.rng.Intn(len(slots) - 1)
		if out >= in {
			out++
		}
	}

	waypoints := t.Waypoints()
	if in > out {
		waypoints = Reverse(waypoints)
	}

	path := make([]world.Vec3, 0, len(waypoints)+2)
	path = append(path, slots[in].Connection)
	path = append(path, waypoints...)
	path = append(path, slots[out].Connection)
	return path, out
}

// ConnectedTubes returns every tube other than t with a connection within
// reach of point
func (n *Network) ConnectedTubes(t *Tube, point world.Vec3) []*Tube {
	var out []*Tube
	for _, other := range n.tubes {
		if other == t {
			continue
		}
		if _, ok := other.SlotAt(point); ok {
			out = append(out, other)
		}
	}
	return out
}

// CoversCell reports whether any tube footprint contains c
func (n *Network) CoversCell(c world.Cell) bool {
	for _, t := range n.tubes {
		if t.Footprint().Contains(t.Origin(), c) {
			return true
		}
	}
	return false
}

// IsExitBlocked reports whether a hamster leaving towards entry would run into
// something. Cells outside the cage and cells held by non-tube objects block.
func (n *Network) IsExitBlocked(entry world.Vec3) bool {
	c := n.grid.WorldToGrid(entry)
	if !n.grid.IsWithinBounds(c) {
		return true
	}
	return n.grid.IsOccupied(c) && !n.CoversCell(c)
}

// BuildTraversal plans a walk starting at tube t entered near entry. It
// follows connected tubes depth first. The first branch that ends at an
// unblocked exit wins; if every branch dead-ends, the longest one is returned
// flagged for backtracking.
func (n *Network) BuildTraversal(t *Tube, entry world.Vec3) Traversal {
	return n.build(t, entry, mapset.New[*Tube](), nil)
}

func (n *Network) build(t *Tube, entry world.Vec3, visited mapset.Set[*Tube], prefix []world.Vec3) Traversal {
	segment, exit := n.PathFromEntry(t, entry)
	path := appendSegment(prefix, segment)
	visited.Put(t)

	exitSlot := t.Slots()[exit]

	var candidates []*Tube
	for _, other := range n.ConnectedTubes(t, exitSlot.Connection) {
		if !visited.Has(other) {
			candidates = append(candidates, other)
		}
	}

	if len(candidates) == 0 {
		return Traversal{
			Path:      path,
			Backtrack: n.IsExitBlocked(exitSlot.Entry),
			Last:      t,
			ExitSlot:  exit,
		}
	}

	var best Traversal
	for i, next := range candidates {
		slot, _ := next.SlotAt(exitSlot.Connection)
		nextEntry := next.Slots()[slot].Entry

		tr := n.build(next, nextEntry, cloneVisited(visited), path)
		if !tr.Backtrack {
			return tr
		}
		if i == 0 || len(tr.Path) > len(best.Path) {
			best = tr
		}
	}
	return best
}

// appendSegment returns a new slice holding prefix followed by segment. A
// segment starting where prefix ends does not repeat the shared point.
func appendSegment(prefix, segment []world.Vec3) []world.Vec3 {
	out := make([]world.Vec3, 0, len(prefix)+len(segment))
	out = append(out, prefix...)
	if len(out) > 0 && len(segment) > 0 && out[len(out)-1].Near(segment[0]) {
		segment = segment[1:]
	}
	return append(out, segment...)
}

func cloneVisited(s mapset.Set[*Tube]) mapset.Set[*Tube] {
	out := mapset.New[*Tube]()
	s.Each(func(t *Tube) {
		out.Put(t)
	})
	return out
}
