package hamster

import "hamstercage/pkg/engine/world"

// Tuning holds the behavior constants shared by all hamsters
type Tuning struct {
	MoveSpeed        float64 // world units per second
	LookDistance     float64 // max distance to a candidate entry point
	MoveDelay        float64 // seconds before every target search
	ChillProbability float64 // chance to wander instead of searching
	ChillRadius      float64
	ChillMin         float64
	ChillMax         float64
	Front            world.Vec3 // local forward axis of the model
}

// DefaultTuning returns the stock hamster behavior
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:        2,
		LookDistance:     10,
		MoveDelay:        2,
		ChillProbability: 0.4,
		ChillRadius:      3,
		ChillMin:         2,
		ChillMax:         5,
		Front:            world.Vec3{Z: 1},
	}
}
