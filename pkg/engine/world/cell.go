// Package world provides the cage floor primitives: integer cells, world-space
// vectors and the occupancy index that every placement and agent consults.
package world

import "fmt"

// Cell is an integer (x,z) coordinate of a 1x1 tile on the cage floor.
type Cell struct {
	X int
	Z int
}

// Size is a rectangular footprint measured in cells.
type Size struct {
	W int
	H int
}

// UnitSize is the footprint of a single cell
var UnitSize = Size{W: 1, H: 1}

// String returns the "x:z" name of the cell
func (c Cell) String() string {
	return fmt.Sprintf("%v:%v", c.X, c.Z)
}

// Step returns the neighbouring cell in the given direction
func (c Cell) Step(dir Direction) Cell {
	dx, dz := dir.Delta()
	return Cell{X: c.X + dx, Z: c.Z + dz}
}

// Neighbors returns the four 4-connected neighbours in AllDirections order
func (c Cell) Neighbors() [4]Cell {
	var out [4]Cell
	for i, dir := range AllDirections() {
		out[i] = c.Step(dir)
	}
	return out
}

// ManhattanDistance returns |dx| + |dz| between two cells
func (c Cell) ManhattanDistance(o Cell) int {
	dx := c.X - o.X
	if dx < 0 {
		dx = -dx
	}
	dz := c.Z - o.Z
	if dz < 0 {
		dz = -dz
	}
	return dx + dz
}

// IsAdjacent returns true if o is one of the four neighbours of c
func (c Cell) IsAdjacent(o Cell) bool {
	return c.ManhattanDistance(o) == 1
}

// Cells returns every cell of a size footprint anchored at origin, x-major.
func (s Size) Cells(origin Cell) []Cell {
	if s.W <= 0 || s.H <= 0 {
		return nil
	}
	out := make([]Cell, 0, s.W*s.H)
	for x := 0; x < s.W; x++ {
		for z := 0; z < s.H; z++ {
			out = append(out, Cell{X: origin.X + x, Z: origin.Z + z})
		}
	}
	return out
}

// Contains reports whether cell lies inside the footprint anchored at origin
func (s Size) Contains(origin, cell Cell) bool {
	return cell.X >= origin.X && cell.X < origin.X+s.W &&
		cell.Z >= origin.Z && cell.Z < origin.Z+s.H
}
