package entities

// SpawnRegistry tracks how many hamsters have been spawned during the current
// play session against a global cap
type SpawnRegistry struct {
	max   int
	count int
}

// NewSpawnRegistry creates a registry allowing up to limit spawns
func NewSpawnRegistry(limit int) *SpawnRegistry {
	return &SpawnRegistry{max: limit}
}

// CanSpawn reports whether another hamster may be spawned
func (r *SpawnRegistry) CanSpawn() bool {
	return r.count < r.max
}

// OnSpawned records a spawn
func (r *SpawnRegistry) OnSpawned() {
	r.count++
}

// Count returns the number of spawns recorded since the last reset
func (r *SpawnRegistry) Count() int {
	return r.count
}

// Max returns the spawn cap
func (r *SpawnRegistry) Max() int {
	return r.max
}

// Reset clears the spawn count
func (r *SpawnRegistry) Reset() {
	r.count = 0
}
