package hamster

import (
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
)

// entryOption is a reachable entry point of a candidate entity
type entryOption struct {
	point world.Vec3
	path  []world.Cell
}

type candidate struct {
	entity   entities.Entity
	options  []entryOption
	priority float64
}

// search picks the next thing to do. A hamster carrying food heads home
// first; if no house is reachable it searches like any other hamster.
func (h *Hamster) search() {
	if h.food > 0 && h.chooseTarget(func(e entities.Entity) bool { return e.Type() == entities.TypeHouse }) {
		return
	}
	if h.env.Rand().Float64() < h.tuning.ChillProbability {
		h.wander()
		return
	}
	if h.chooseTarget(nil) {
		return
	}
	h.wander()
}

// chooseTarget picks among the highest priority entities accepted by keep
// (all when nil), then among that entity's reachable entry points
func (h *Hamster) chooseTarget(keep func(entities.Entity) bool) bool {
	grid := h.env.Grid()
	planner := h.env.Planner()
	now := h.env.Now()
	start := grid.WorldToGrid(h.position)

	var best []candidate
	for _, e := range h.env.Entities() {
		if keep != nil && !keep(e) {
			continue
		}

		var options []entryOption
		for _, p := range e.EntryPoints() {
			if h.position.Distance(p) > h.tuning.LookDistance {
				continue
			}
			cell := grid.WorldToGrid(p)
			if grid.IsOccupied(cell) {
				continue
			}
			path := planner.FindPath(start, cell)
			if len(path) == 0 {
				continue
			}
			options = append(options, entryOption{point: p, path: path})
		}
		if len(options) == 0 {
			continue
		}

		c := candidate{entity: e, options: options, priority: h.priority(e, now)}
		switch {
		case len(best) == 0 || c.priority > best[0].priority:
			best = []candidate{c}
		case c.priority == best[0].priority:
			best = append(best, c)
		}
	}

	if len(best) == 0 {
		return false
	}

	rng := h.env.Rand()
	chosen := best[rng.Intn(len(best))]
	option := chosen.options[rng.Intn(len(chosen.options))]
	h.assign(chosen.entity, option.point, option.path)
	return true
}

// assign sends the hamster along path to entry of e
func (h *Hamster) assign(e entities.Entity, entry world.Vec3, path []world.Cell) {
	h.target = e
	h.targetEntry = entry
	h.gridPath = path
	h.cursor = 0
	h.setState(MovingToTarget)
	h.record(events.KindTarget, e, h.env.Grid().WorldToGrid(entry).String())
}
