// Package placement adds, drags and removes objects on the cage grid, keeping
// grid occupancy in sync with the placed entities.
package placement

import (
	"errors"
	"fmt"

	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/state"
)

var (
	ErrOutOfBounds     = errors.New("footprint leaves the cage")
	ErrOccupied        = errors.New("footprint overlaps another object")
	ErrUnknownEntity   = errors.New("entity is not placed")
	ErrEditingDisabled = errors.New("editing is disabled during play")
)

// Definition describes a placeable object kind
type Definition struct {
	Name string
	Type entities.ObjectType
	Size world.Size
	// New builds an unplaced entity with the given id
	New func(id int) entities.Entity
}

// System owns entity placement for a game
type System struct {
	game    *state.Game
	editing bool
}

// New creates a placement system with editing enabled
func New(g *state.Game) *System {
	return &System{game: g, editing: true}
}

// Editing reports whether objects may be placed, moved or removed
func (s *System) Editing() bool {
	return s.editing
}

func (s *System) EnableEditing() {
	s.editing = true
}

func (s *System) DisableEditing() {
	s.editing = false
}

// IsPlacementValid checks that the footprint is inside the cage and free
func (s *System) IsPlacementValid(origin world.Cell, size world.Size) bool {
	return s.check(origin, size) == nil
}

func (s *System) check(origin world.Cell, size world.Size) error {
	grid := s.game.Grid()
	for _, c := range size.Cells(origin) {
		if !grid.IsWithinBounds(c) {
			return ErrOutOfBounds
		}
	}
	if !grid.IsFootprintFree(origin, size) {
		return ErrOccupied
	}
	return nil
}

// PlaceNew builds an entity from def and places it at origin
func (s *System) PlaceNew(def Definition, origin world.Cell) (entities.Entity, error) {
	if !s.editing {
		return nil, ErrEditingDisabled
	}
	if err := s.check(origin, def.Size); err != nil {
		return nil, fmt.Errorf("place %s at %s: %w", def.Name, origin, err)
	}
	e := def.New(s.game.NextEntityID())
	if err := s.Place(e, origin); err != nil {
		return nil, err
	}
	return e, nil
}

// Place puts an unplaced entity on the grid at origin
func (s *System) Place(e entities.Entity, origin world.Cell) error {
	if !s.editing {
		return ErrEditingDisabled
	}
	if err := s.check(origin, e.Footprint()); err != nil {
		return fmt.Errorf("place %s at %s: %w", e.Type(), origin, err)
	}
	s.locate(e, origin)
	s.game.AddEntity(e)
	return nil
}

// Move drags a placed entity to a new origin. On failure the entity stays
// where it was.
func (s *System) Move(e entities.Entity, origin world.Cell) error {
	if !s.editing {
		return ErrEditingDisabled
	}
	if !s.placed(e) {
		return ErrUnknownEntity
	}

	grid := s.game.Grid()
	previous := e.Origin()
	grid.Free(previous, e.Footprint())

	if err := s.check(origin, e.Footprint()); err != nil {
		grid.Occupy(previous, e.Footprint())
		return fmt.Errorf("move %s to %s: %w", e.Type(), origin, err)
	}
	s.locate(e, origin)
	return nil
}

// Remove deletes a placed entity and frees its footprint
func (s *System) Remove(e entities.Entity) error {
	if !s.editing {
		return ErrEditingDisabled
	}
	if !s.game.RemoveEntity(e) {
		return ErrUnknownEntity
	}
	s.game.Grid().Free(e.Origin(), e.Footprint())
	return nil
}

func (s *System) locate(e entities.Entity, origin world.Cell) {
	grid := s.game.Grid()
	e.Locate(origin, grid.GridToWorld(origin, e.Footprint()))
	grid.Occupy(origin, e.Footprint())
}

func (s *System) placed(e entities.Entity) bool {
	for _, existing := range s.game.Entities() {
		if existing == e {
			return true
		}
	}
	return false
}
