package hamster

import (
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/events"
	"hamstercage/pkg/game/tubes"
)

// resolveTubeExit decides how to leave once the tube waypoints run out. A
// backtracking walk already ends at the entry tube's mouth. Otherwise the
// hamster steps out of the slot it stands at, unless that exit is blocked or
// leads into another tube, in which case it walks all the way back.
func (h *Hamster) resolveTubeExit() {
	if h.backtracking {
		h.exitVia([]world.Vec3{h.tubeEntry})
		return
	}

	tube, ok := h.exitTube.(*tubes.Tube)
	if !ok || tube.Network() == nil || len(tube.Slots()) == 0 {
		h.exitVia(h.walkBack())
		return
	}

	slot := tube.Slots()[tube.NearestConnection(h.position)]
	network := tube.Network()
	blocked := network.IsExitBlocked(slot.Entry) ||
		len(network.ConnectedTubes(tube, slot.Connection)) > 0

	if blocked {
		h.exitVia(h.walkBack())
		return
	}
	h.exitVia([]world.Vec3{slot.Entry})
}

// walkBack is the traveled tube path reversed, ending at the original entry
func (h *Hamster) walkBack() []world.Vec3 {
	back := tubes.Reverse(h.tubePath)
	if len(back) > 0 {
		back = back[1:]
	}
	return append(back, h.tubeEntry)
}

func (h *Hamster) exitVia(path []world.Vec3) {
	h.tubePath = path
	h.cursor = 0
	h.setState(ExitingTube)
}

// finishTube leaves tube mode. An entity with an entry point on the arrival
// cell is interacted with straight away.
func (h *Hamster) finishTube() {
	now := h.env.Now()
	if h.target != nil {
		h.lastInteraction[h.target.Type()] = now
		h.target.OnInteractEnd(h)
	}
	h.record(events.KindTubeExit, h.target, "")

	h.tubePath = nil
	h.cursor = 0
	h.exitTube = nil
	h.backtracking = false
	h.target = nil

	grid := h.env.Grid()
	cell := grid.WorldToGrid(h.position)
	for _, e := range h.env.Entities() {
		if e.Type() == entities.TypeTube {
			continue
		}
		for _, p := range e.EntryPoints() {
			if grid.WorldToGrid(p) != cell {
				continue
			}
			h.target = e
			h.targetEntry = p
			e.OnInteract(h, now)
			if h.state == Interacting {
				return
			}
			h.target = nil
			break
		}
	}
	h.restartSearch()
}
