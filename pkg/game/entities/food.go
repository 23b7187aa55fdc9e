package entities

import (
	"hamstercage/pkg/engine/world"
)

// Food is a bowl of food pieces. A visiting hamster faces the bowl and
// picks up to PickUpCount pieces, one every PickUpInterval seconds.
type Food struct {
	Base

	PickUpCount    int
	PickUpInterval float64

	pieces   int
	sessions []*foodSession
}

type foodSession struct {
	agent  Agent
	picked int
	next   float64
}

// NewFood creates a bowl holding pieces food pieces
func NewFood(id int, size world.Size, entries []world.Vec3, pieces, pickUpCount int, interval float64) *Food {
	return &Food{
		Base:           NewBase(id, TypeFood, size, entries),
		PickUpCount:    pickUpCount,
		PickUpInterval: interval,
		pieces:         pieces,
	}
}

// Pieces returns the number of pieces left in the bowl
func (f *Food) Pieces() int {
	return f.pieces
}

// EntryPoints returns nothing once the bowl is empty, so hamsters stop
// considering it
func (f *Food) EntryPoints() []world.Vec3 {
	if f.pieces == 0 {
		return nil
	}
	return f.Base.EntryPoints()
}

func (f *Food) OnInteract(a Agent, now float64) {
	for _, s := range f.sessions {
		if s.agent == a {
			return
		}
	}
	a.StartInteraction()
	a.RotateToFace(f.Position())
	f.sessions = append(f.sessions, &foodSession{agent: a, next: now + f.PickUpInterval})
}

func (f *Food) OnInteractEnd(a Agent) {
	for i, s := range f.sessions {
		if s.agent == a {
			f.sessions = append(f.sessions[:i], f.sessions[i+1:]...)
			return
		}
	}
}

func (f *Food) Update(now, dt float64) {
	var done []*foodSession
	kept := f.sessions[:0]

	for _, s := range f.sessions {
		finished := s.picked >= f.PickUpCount
		for !finished && now >= s.next {
			if f.pieces == 0 {
				finished = true
				break
			}
			f.pieces--
			s.agent.AddFood()
			s.picked++
			if s.picked >= f.PickUpCount {
				finished = true
			} else {
				s.next += f.PickUpInterval
			}
		}
		if finished {
			done = append(done, s)
		} else {
			kept = append(kept, s)
		}
	}
	f.sessions = kept

	for _, s := range done {
		s.agent.EndInteraction()
	}
}

// Stop abandons all sessions without touching the hamsters
func (f *Food) Stop() {
	f.sessions = nil
}
