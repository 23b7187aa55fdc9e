package hamster

import "fmt"

// State is the behavior a hamster is currently running
type State int

const (
	// Seeking waits for resumeAt, then picks a target
	Seeking State = iota
	// MovingToTarget follows a grid path to an entity entry point
	MovingToTarget
	// Wandering follows a random grid path before chilling
	Wandering
	// Interacting is suspended while an entity runs its routine
	Interacting
	// InTube follows tube waypoints
	InTube
	// Chilling idles until resumeAt
	Chilling
	// ExitingTube walks from the tube mouth to the outside entry point
	ExitingTube
	// Stopped is terminal once play mode ends
	Stopped
)

func (s State) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case MovingToTarget:
		return "moving"
	case Wandering:
		return "wandering"
	case Interacting:
		return "interacting"
	case InTube:
		return "in_tube"
	case Chilling:
		return "chilling"
	case ExitingTube:
		return "exiting_tube"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// FollowsGridPath reports whether the state walks a grid path
func (s State) FollowsGridPath() bool {
	return s == MovingToTarget || s == Wandering
}

// FollowsTubePath reports whether the state walks world waypoints
func (s State) FollowsTubePath() bool {
	return s == InTube || s == ExitingTube
}
