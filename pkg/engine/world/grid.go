package world

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Grid is the occupancy index of the cage floor. The lattice is width x depth
// cells of cellSize world units, centered on the world origin.
type Grid struct {
	width    int
	depth    int
	cellSize float64

	occupied mapset.Set[Cell]
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, depth int, cellSize float64) (*Grid, error) {
	if width <= 0 || depth <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, depth)
	}
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("grid cell size must be a positive number, got %v", cellSize)
	}
	return &Grid{
		width:    width,
		depth:    depth,
		cellSize: cellSize,
		occupied: mapset.New[Cell](),
	}, nil
}

// Width returns the number of cells along X
func (g *Grid) Width() int {
	return g.width
}

// Depth returns the number of cells along Z
func (g *Grid) Depth() int {
	return g.depth
}

// CellSize returns the edge length of a cell in world units
func (g *Grid) CellSize() float64 {
	return g.cellSize
}

// IsWithinBounds checks if a cell is inside [0,width) x [0,depth)
func (g *Grid) IsWithinBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Z >= 0 && c.Z < g.depth
}

// IsOccupied reports whether a placed footprint covers the cell.
// Cells outside the grid are never occupied.
func (g *Grid) IsOccupied(c Cell) bool {
	return g.occupied.Has(c)
}

// IsFootprintFree checks that every cell of the footprint is in bounds and free
func (g *Grid) IsFootprintFree(origin Cell, size Size) bool {
	cells := size.Cells(origin)
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if !g.IsWithinBounds(c) || g.IsOccupied(c) {
			return false
		}
	}
	return true
}

// Occupy marks every cell of the footprint as occupied. Cells that are
// already occupied stay occupied.
func (g *Grid) Occupy(origin Cell, size Size) {
	for _, c := range size.Cells(origin) {
		g.occupied.Put(c)
	}
}

// Free marks every cell of the footprint as free
func (g *Grid) Free(origin Cell, size Size) {
	for _, c := range size.Cells(origin) {
		g.occupied.Remove(c)
	}
}

// OccupiedCount returns the number of occupied cells
func (g *Grid) OccupiedCount() int {
	return g.occupied.Size()
}

// halfExtents returns half the floor width and depth in world units
func (g *Grid) halfExtents() (float64, float64) {
	return float64(g.width) * g.cellSize / 2, float64(g.depth) * g.cellSize / 2
}

// WorldToGrid converts a world position to the cell that contains it
func (g *Grid) WorldToGrid(p Vec3) Cell {
	halfWidth, halfDepth := g.halfExtents()
	return Cell{
		X: int(math.Floor((p.X + halfWidth) / g.cellSize)),
		Z: int(math.Floor((p.Z + halfDepth) / g.cellSize)),
	}
}

// GridToWorld converts a footprint origin to the world position of the
// footprint's center. Y is always 0.
func (g *Grid) GridToWorld(c Cell, size Size) Vec3 {
	halfWidth, halfDepth := g.halfExtents()
	offsetX := float64(size.W) * g.cellSize / 2
	offsetZ := float64(size.H) * g.cellSize / 2
	return Vec3{
		X: float64(c.X)*g.cellSize - halfWidth + offsetX,
		Z: float64(c.Z)*g.cellSize - halfDepth + offsetZ,
	}
}

// GridToWorldCenter returns the world position of a cell's center
func (g *Grid) GridToWorldCenter(c Cell) Vec3 {
	return g.GridToWorld(c, UnitSize)
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(c Cell, occupied bool)) {
	for z := 0; z < g.depth; z++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Z: z}
			fn(c, g.occupied.Has(c))
		}
	}
}
