// Package nav provides path planning over the cage occupancy grid: A* between
// two cells and a randomized "somewhere nearby" search used for idle wandering.
package nav

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"hamstercage/pkg/engine/world"
)

// DefaultAttempts is the number of random samples RandomReachablePath tries
const DefaultAttempts = 15

// Planner finds paths on a grid. It never mutates the grid.
type Planner struct {
	grid *world.Grid
	rng  *rand.Rand
}

// NewPlanner creates a planner over grid. A nil rng gets a time-seeded source.
func NewPlanner(grid *world.Grid, rng *rand.Rand) (*Planner, error) {
	if grid == nil {
		return nil, errors.New("nav: planner requires a grid")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{grid: grid, rng: rng}, nil
}

// Grid returns the grid the planner searches
func (p *Planner) Grid() *world.Grid {
	return p.grid
}

// openNode is an entry of the A* open set. seq records insertion order.
type openNode struct {
	cell world.Cell
	g    int
	f    int
	seq  int
}

func lessOpenNode(a, b openNode) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

// FindPath returns the shortest 4-connected path from start to end inclusive,
// or nil when no path exists. The end cell must be free; occupied cells are
// never expanded. Equal f-scores are resolved by lower g-score, then by
// insertion order, so results are deterministic.
func (p *Planner) FindPath(start, end world.Cell) []world.Cell {
	if !p.grid.IsWithinBounds(start) || !p.grid.IsWithinBounds(end) {
		return nil
	}
	if p.grid.IsOccupied(end) {
		return nil
	}
	if start == end {
		return []world.Cell{start}
	}

	open := heap.New(lessOpenNode)
	closed := mapset.New[world.Cell]()
	cameFrom := make(map[world.Cell]world.Cell)
	gScore := map[world.Cell]int{start: 0}
	seq := 0

	open.Push(openNode{cell: start, g: 0, f: start.ManhattanDistance(end), seq: seq})

	for open.Size() > 0 {
		current, _ := open.Pop()
		if closed.Has(current.cell) {
			continue
		}
		if current.g > gScore[current.cell] {
			// stale entry, a cheaper one was pushed later
			continue
		}
		if current.cell == end {
			return reconstructPath(cameFrom, end)
		}
		closed.Put(current.cell)

		for _, neighbor := range current.cell.Neighbors() {
			if !p.grid.IsWithinBounds(neighbor) {
				continue
			}
			if neighbor != end && p.grid.IsOccupied(neighbor) {
				continue
			}
			if closed.Has(neighbor) {
				continue
			}
			tentative := current.g + 1
			if known, ok := gScore[neighbor]; ok && tentative >= known {
				continue
			}
			cameFrom[neighbor] = current.cell
			gScore[neighbor] = tentative
			seq++
			open.Push(openNode{
				cell: neighbor,
				g:    tentative,
				f:    tentative + neighbor.ManhattanDistance(end),
				seq:  seq,
			})
		}
	}

	return nil
}

func reconstructPath(cameFrom map[world.Cell]world.Cell, current world.Cell) []world.Cell {
	path := []world.Cell{current}
	for {
		prev, ok := cameFrom[current]
		if !ok {
			break
		}
		path = append(path, prev)
		current = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// RandomReachablePath samples up to attempts random points within radius of
// origin on the XZ plane and returns the path to the first one that is free
// and reachable. Returns nil if the origin is off the grid or every attempt
// fails.
func (p *Planner) RandomReachablePath(origin world.Vec3, radius float64, attempts int) []world.Cell {
	start := p.grid.WorldToGrid(origin)
	if !p.grid.IsWithinBounds(start) {
		return nil
	}

	for attempt := 0; attempt < attempts; attempt++ {
		angle := p.rng.Float64() * 360 * math.Pi / 180
		distance := p.rng.Float64() * radius

		target := world.Vec3{
			X: origin.X + distance*math.Cos(angle),
			Y: origin.Y,
			Z: origin.Z + distance*math.Sin(angle),
		}
		end := p.grid.WorldToGrid(target)

		if !p.grid.IsWithinBounds(end) {
			continue
		}
		if p.grid.IsOccupied(end) {
			continue
		}

		if path := p.FindPath(start, end); len(path) > 0 {
			return path
		}
	}

	return nil
}
