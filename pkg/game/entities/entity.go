// Package entities defines the objects a player places in the cage and the
// interaction contract hamsters use with them.
package entities

import (
	"fmt"
	"strings"

	"hamstercage/pkg/engine/world"
)

// ObjectType tags the kind of a placed object
type ObjectType int

const (
	TypeHouse ObjectType = iota
	TypeFood
	TypeWheel
	TypeTube
	TypeSpawner
)

// AllObjectTypes lists every object type in declaration order
var AllObjectTypes = []ObjectType{TypeHouse, TypeFood, TypeWheel, TypeTube, TypeSpawner}

func (t ObjectType) String() string {
	switch t {
	case TypeHouse:
		return "House"
	case TypeFood:
		return "Food"
	case TypeWheel:
		return "Wheel"
	case TypeTube:
		return "Tube"
	case TypeSpawner:
		return "Spawner"
	default:
		return fmt.Sprintf("ObjectType(%d)", int(t))
	}
}

// ParseObjectType converts a case-insensitive name to an ObjectType
func ParseObjectType(s string) (ObjectType, error) {
	for _, t := range AllObjectTypes {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown object type %q", s)
}

// Agent is the side of a hamster that entities drive during an interaction
type Agent interface {
	ID() int
	Position() world.Vec3
	SetPosition(p world.Vec3)
	RotateToFace(target world.Vec3)

	// StartInteraction and EndInteraction bracket every entity routine.
	StartInteraction()
	EndInteraction()

	AddFood()
	RemoveFood() bool
	FoodCount() int

	StartTubeTraversal(path []world.Vec3, tube Entity, backtracking bool, entry world.Vec3)
}

// Entity is a placed object occupying a footprint on the grid
type Entity interface {
	ID() int
	Type() ObjectType
	Origin() world.Cell
	Footprint() world.Size
	Position() world.Vec3
	Locate(origin world.Cell, position world.Vec3)

	// EntryPoints returns the world positions an agent must reach to interact
	EntryPoints() []world.Vec3
	OnInteract(a Agent, now float64)
	OnInteractEnd(a Agent)
}

// Ticker is implemented by entities running timed routines
type Ticker interface {
	Update(now, dt float64)
}

// Stopper is implemented by entities whose routines are abandoned when play
// mode ends
type Stopper interface {
	Stop()
}

// Base carries the placement data shared by every entity kind. Offsets are
// relative to the footprint center.
type Base struct {
	id       int
	kind     ObjectType
	origin   world.Cell
	size     world.Size
	position world.Vec3
	entries  []world.Vec3
}

// NewBase creates the common entity data. entries are local offsets.
func NewBase(id int, kind ObjectType, size world.Size, entries []world.Vec3) Base {
	return Base{
		id:      id,
		kind:    kind,
		size:    size,
		entries: append([]world.Vec3(nil), entries...),
	}
}

func (b *Base) ID() int {
	return b.id
}

func (b *Base) Type() ObjectType {
	return b.kind
}

func (b *Base) Origin() world.Cell {
	return b.origin
}

func (b *Base) Footprint() world.Size {
	return b.size
}

// Position returns the world position of the footprint center
func (b *Base) Position() world.Vec3 {
	return b.position
}

// Locate moves the entity to a new footprint origin and world center
func (b *Base) Locate(origin world.Cell, position world.Vec3) {
	b.origin = origin
	b.position = position
}

// Local converts an offset relative to the footprint center to world space
func (b *Base) Local(offset world.Vec3) world.Vec3 {
	return b.position.Add(offset)
}

// EntryPoints returns every configured entry point in world space
func (b *Base) EntryPoints() []world.Vec3 {
	points := make([]world.Vec3, len(b.entries))
	for i, e := range b.entries {
		points[i] = b.Local(e)
	}
	return points
}

// OnInteract does nothing for entities without a routine
func (b *Base) OnInteract(a Agent, now float64) {}

// OnInteractEnd does nothing for entities without a routine
func (b *Base) OnInteractEnd(a Agent) {}

func (b *Base) String() string {
	return fmt.Sprintf("%s#%d@%s", b.kind, b.id, b.origin)
}
