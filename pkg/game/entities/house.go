package entities

import (
	"hamstercage/pkg/engine/world"
)

// House is a shelter. A visiting hamster is moved to the interior slot
// and either rests or unloads the food it carries, one piece per interval.
type House struct {
	Base

	Slot         world.Vec3 // interior position, relative to the center
	RestDuration float64    // seconds a hamster without food stays inside
	DropInterval float64    // seconds between stored food pieces

	stored   int
	sessions []*houseSession
}

type houseSession struct {
	agent    Agent
	original world.Vec3
	next     float64
	draining bool
}

// NewHouse creates a house
func NewHouse(id int, size world.Size, entries []world.Vec3, slot world.Vec3, rest, drop float64) *House {
	return &House{
		Base:         NewBase(id, TypeHouse, size, entries),
		Slot:         slot,
		RestDuration: rest,
		DropInterval: drop,
	}
}

// Stored returns the number of food pieces unloaded into the house
func (h *House) Stored() int {
	return h.stored
}

// Occupants returns the number of hamsters currently inside
func (h *House) Occupants() int {
	return len(h.sessions)
}

func (h *House) OnInteract(a Agent, now float64) {
	if h.session(a) != nil {
		return
	}
	a.StartInteraction()

	s := &houseSession{agent: a, original: a.Position()}
	a.SetPosition(h.Local(h.Slot))

	if a.FoodCount() > 0 {
		s.draining = true
		s.next = now + h.DropInterval
	} else {
		s.next = now + h.RestDuration
	}
	h.sessions = append(h.sessions, s)
}

func (h *House) OnInteractEnd(a Agent) {
	h.remove(a)
}

func (h *House) Update(now, dt float64) {
	var done []*houseSession
	kept := h.sessions[:0]

	for _, s := range h.sessions {
		finished := false
		for !finished && now >= s.next {
			if !s.draining {
				finished = true
				break
			}
			if s.agent.RemoveFood() {
				h.stored++
			}
			if s.agent.FoodCount() > 0 {
				s.next += h.DropInterval
			} else {
				finished = true
			}
		}
		if finished {
			done = append(done, s)
		} else {
			kept = append(kept, s)
		}
	}
	h.sessions = kept

	for _, s := range done {
		s.agent.SetPosition(s.original)
		s.agent.EndInteraction()
	}
}

// Stop abandons all sessions without touching the hamsters
func (h *House) Stop() {
	h.sessions = nil
}

func (h *House) session(a Agent) *houseSession {
	for _, s := range h.sessions {
		if s.agent == a {
			return s
		}
	}
	return nil
}

func (h *House) remove(a Agent) {
	for i, s := range h.sessions {
		if s.agent == a {
			h.sessions = append(h.sessions[:i], h.sessions[i+1:]...)
			return
		}
	}
}
