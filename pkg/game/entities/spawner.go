package entities

import (
	"hamstercage/pkg/engine/world"
)

// HatchFunc creates a hamster at a world position. It returns nil when no
// hamster could be created.
type HatchFunc func(position world.Vec3) Agent

// Spawner releases PerSpawner hamsters, one every Frequency seconds,
// while the shared registry allows it
type Spawner struct {
	Base

	SpawnPoint world.Vec3
	Frequency  float64
	PerSpawner int

	registry  *SpawnRegistry
	hatch     HatchFunc
	active    bool
	remaining int
	next      float64
	spawned   []Agent
}

// NewSpawner creates a spawner. Spawners have no entry points.
func NewSpawner(id int, size world.Size, spawnPoint world.Vec3, frequency float64, perSpawner int) *Spawner {
	return &Spawner{
		Base:       NewBase(id, TypeSpawner, size, nil),
		SpawnPoint: spawnPoint,
		Frequency:  frequency,
		PerSpawner: perSpawner,
	}
}

// Start begins a spawn cycle
func (s *Spawner) Start(now float64, registry *SpawnRegistry, hatch HatchFunc) {
	s.registry = registry
	s.hatch = hatch
	s.active = true
	s.remaining = s.PerSpawner
	s.next = now + s.Frequency
}

// Active reports whether the spawn cycle is still running
func (s *Spawner) Active() bool {
	return s.active
}

// Spawned returns the hamsters released by this spawner
func (s *Spawner) Spawned() []Agent {
	return s.spawned
}

func (s *Spawner) Update(now, dt float64) {
	for s.active && s.remaining > 0 && now >= s.next {
		s.remaining--
		s.next += s.Frequency

		if !s.registry.CanSpawn() {
			continue
		}
		a := s.hatch(s.Local(s.SpawnPoint))
		if a == nil {
			continue
		}
		s.spawned = append(s.spawned, a)
		s.registry.OnSpawned()
	}
	if s.remaining == 0 {
		s.active = false
	}
}

// Stop ends the spawn cycle
func (s *Spawner) Stop() {
	s.active = false
	s.remaining = 0
}

// Despawn hands every spawned hamster to release and forgets them. Returns
// the number released.
func (s *Spawner) Despawn(release func(Agent)) int {
	n := len(s.spawned)
	for _, a := range s.spawned {
		release(a)
	}
	s.spawned = nil
	return n
}
