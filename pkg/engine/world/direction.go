package world

// Direction represents one of the four axis directions on the cage floor
type Direction int

// Direction constants. The order is the neighbour expansion order used by
// the path planner.
const (
	PosX Direction = iota
	NegX
	PosZ
	NegZ
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{PosX, NegX, PosZ, NegZ}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	default:
		return "Unknown"
	}
}

// Delta returns the x and z offsets for this direction
func (d Direction) Delta() (dx, dz int) {
	switch d {
	case PosX:
		return 1, 0
	case NegX:
		return -1, 0
	case PosZ:
		return 0, 1
	case NegZ:
		return 0, -1
	default:
		return 0, 0
	}
}
