// Package tubes models connectable tube segments and plans traversals across
// chains of them. Tubes that share a connection point (within
// world.ReachThreshold) are neighbors; no adjacency list is stored.
package tubes

import (
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
)

// Slot pairs an outside entry point with the connection point at the tube
// mouth
type Slot struct {
	Entry      world.Vec3
	Connection world.Vec3
}

// Tube is a placeable tube segment with two or more slots
type Tube struct {
	entities.Base

	slots     []Slot       // local offsets
	waypoints []world.Vec3 // local offsets, ordered from slot 0 toward the last slot
	network   *Network
}

// NewTube creates a tube. Slot and waypoint positions are offsets from the
// footprint center.
func NewTube(id int, size world.Size, slots []Slot, waypoints []world.Vec3) *Tube {
	entries := make([]world.Vec3, len(slots))
	for i, s := range slots {
		entries[i] = s.Entry
	}
	return &Tube{
		Base:      entities.NewBase(id, entities.TypeTube, size, entries),
		slots:     append([]Slot(nil), slots...),
		waypoints: append([]world.Vec3(nil), waypoints...),
	}
}

// Slots returns the slots in world space
func (t *Tube) Slots() []Slot {
	out := make([]Slot, len(t.slots))
	for i, s := range t.slots {
		out[i] = Slot{Entry: t.Local(s.Entry), Connection: t.Local(s.Connection)}
	}
	return out
}

// Waypoints returns the interior waypoints in world space
func (t *Tube) Waypoints() []world.Vec3 {
	out := make([]world.Vec3, len(t.waypoints))
	for i, w := range t.waypoints {
		out[i] = t.Local(w)
	}
	return out
}

// Network returns the network the tube belongs to, or nil
func (t *Tube) Network() *Network {
	return t.network
}

// NearestSlot returns the index of the slot whose entry point is closest to p
func (t *Tube) NearestSlot(p world.Vec3) int {
	best, bestDist := -1, 0.0
	for i, s := range t.Slots() {
		d := s.Entry.Distance(p)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// NearestConnection returns the index of the slot whose connection is closest
// to p
func (t *Tube) NearestConnection(p world.Vec3) int {
	best, bestDist := -1, 0.0
	for i, s := range t.Slots() {
		d := s.Connection.Distance(p)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// SlotAt returns the index of the slot whose connection is within reach of p
func (t *Tube) SlotAt(p world.Vec3) (int, bool) {
	for i, s := range t.Slots() {
		if s.Connection.Near(p) {
			return i, true
		}
	}
	return -1, false
}

// OnInteract plans a traversal from the hamster's position and hands it over.
// A traversal that has to backtrack is walked forward and then back out to
// the entry.
func (t *Tube) OnInteract(a entities.Agent, now float64) {
	if t.network == nil || len(t.slots) < 2 {
		return
	}
	entry := a.Position()
	tr := t.network.BuildTraversal(t, entry)

	if tr.Backtrack {
		a.StartTubeTraversal(WalkBack(tr.Path), t, true, entry)
		return
	}
	a.StartTubeTraversal(tr.Path, tr.Last, false, entry)
}

// WalkBack returns path followed by its own reverse, without repeating the
// turning point
func WalkBack(path []world.Vec3) []world.Vec3 {
	if len(path) == 0 {
		return nil
	}
	out := make([]world.Vec3, 0, 2*len(path)-1)
	out = append(out, path...)
	for i := len(path) - 2; i >= 0; i-- {
		out = append(out, path[i])
	}
	return out
}

// Reverse returns a reversed copy of path
func Reverse(path []world.Vec3) []world.Vec3 {
	out := make([]world.Vec3, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}
