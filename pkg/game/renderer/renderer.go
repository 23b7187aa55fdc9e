package renderer

import (
	"strings"

	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/state"
)

// Map symbols
const (
	SymbolFree     = "."
	SymbolOccupied = "#"
	SymbolHouse    = "H"
	SymbolFood     = "F"
	SymbolWheel    = "W"
	SymbolTube     = "T"
	SymbolSpawner  = "S"
	SymbolHamster  = "@"
)

// EntitySymbol returns the map symbol for an object type
func EntitySymbol(t entities.ObjectType) string {
	switch t {
	case entities.TypeHouse:
		return SymbolHouse
	case entities.TypeFood:
		return SymbolFood
	case entities.TypeWheel:
		return SymbolWheel
	case entities.TypeTube:
		return SymbolTube
	case entities.TypeSpawner:
		return SymbolSpawner
	default:
		return SymbolOccupied
	}
}

// StyleFor returns the text style used to draw a map symbol
func StyleFor(symbol string) TextStyle {
	switch symbol {
	case SymbolFree:
		return StyleSubtle
	case SymbolHouse:
		return StyleHouse
	case SymbolFood:
		return StyleFood
	case SymbolWheel:
		return StyleWheel
	case SymbolTube:
		return StyleTube
	case SymbolSpawner:
		return StyleSpawner
	case SymbolHamster:
		return StyleHamster
	default:
		return StyleOccupied
	}
}

// MapSymbols returns one row of symbols per grid row, Z ascending. Hamsters
// are drawn over whatever they stand on.
func MapSymbols(g *state.Game) [][]string {
	grid := g.Grid()
	rows := make([][]string, grid.Depth())
	for z := range rows {
		rows[z] = make([]string, grid.Width())
	}

	grid.ForEachCell(func(c world.Cell, occupied bool) {
		symbol := SymbolFree
		if occupied {
			symbol = SymbolOccupied
		}
		rows[c.Z][c.X] = symbol
	})

	for _, e := range g.Entities() {
		symbol := EntitySymbol(e.Type())
		for _, c := range e.Footprint().Cells(e.Origin()) {
			if grid.IsWithinBounds(c) {
				rows[c.Z][c.X] = symbol
			}
		}
	}

	for _, h := range g.Hamsters() {
		c := grid.WorldToGrid(h.Position())
		if grid.IsWithinBounds(c) {
			rows[c.Z][c.X] = SymbolHamster
		}
	}
	return rows
}

// MapLines renders the map as plain text lines
func MapLines(g *state.Game) []string {
	rows := MapSymbols(g)
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, "")
	}
	return lines
}
