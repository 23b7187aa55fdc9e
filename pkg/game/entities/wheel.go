package entities

import (
	"math"

	"hamstercage/pkg/engine/world"
)

// Wheel is an exercise wheel. A hamster is held at the slot while the
// wheel spins for Duration seconds.
type Wheel struct {
	Base

	Slot      world.Vec3
	Duration  float64
	SpinSpeed float64 // degrees per second

	angle    float64
	sessions []*wheelSession
}

type wheelSession struct {
	agent    Agent
	original world.Vec3
	until    float64
}

// NewWheel creates a wheel
func NewWheel(id int, size world.Size, entries []world.Vec3, slot world.Vec3, duration, spinSpeed float64) *Wheel {
	return &Wheel{
		Base:      NewBase(id, TypeWheel, size, entries),
		Slot:      slot,
		Duration:  duration,
		SpinSpeed: spinSpeed,
	}
}

// Angle returns the current wheel rotation in degrees, in [0,360)
func (w *Wheel) Angle() float64 {
	return w.angle
}

// Spinning reports whether a hamster is running in the wheel
func (w *Wheel) Spinning() bool {
	return len(w.sessions) > 0
}

func (w *Wheel) OnInteract(a Agent, now float64) {
	for _, s := range w.sessions {
		if s.agent == a {
			return
		}
	}
	a.StartInteraction()
	s := &wheelSession{agent: a, original: a.Position(), until: now + w.Duration}
	a.SetPosition(w.Local(w.Slot))
	w.sessions = append(w.sessions, s)
}

func (w *Wheel) OnInteractEnd(a Agent) {
	for i, s := range w.sessions {
		if s.agent == a {
			w.sessions = append(w.sessions[:i], w.sessions[i+1:]...)
			return
		}
	}
}

func (w *Wheel) Update(now, dt float64) {
	if len(w.sessions) == 0 {
		return
	}
	w.angle = math.Mod(w.angle+w.SpinSpeed*dt, 360)
	if w.angle < 0 {
		w.angle += 360
	}

	var done []*wheelSession
	kept := w.sessions[:0]
	for _, s := range w.sessions {
		if now >= s.until {
			done = append(done, s)
		} else {
			kept = append(kept, s)
		}
	}
	w.sessions = kept

	for _, s := range done {
		s.agent.SetPosition(s.original)
		s.agent.EndInteraction()
	}
}

// Stop abandons all sessions without touching the hamsters
func (w *Wheel) Stop() {
	w.sessions = nil
}
