// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/dustin/go-humanize"

	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/renderer"
	"hamstercage/pkg/game/state"
	"hamstercage/pkg/game/tubes"
)

// DefaultMapDumpFilename is used when no path is given
const DefaultMapDumpFilename = "map.txt"

// DumpMapToFile writes a full debug dump of the cage to path and returns
// the absolute path written
func DumpMapToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = DefaultMapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpMap(f, g); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// DumpMap writes metadata, a legend, the symbol map and per entity and per
// hamster details. The format is sections of key: value lines.
func DumpMap(out io.Writer, g *state.Game) error {
	w := bufio.NewWriter(out)
	grid := g.Grid()

	// --- Metadata ---
	fmt.Fprintln(w, "=== CAGE DUMP ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "time: %.2f\n", g.Now())
	fmt.Fprintf(w, "playing: %v\n", g.Playing)
	fmt.Fprintf(w, "grid_width: %d\n", grid.Width())
	fmt.Fprintf(w, "grid_depth: %d\n", grid.Depth())
	fmt.Fprintf(w, "cell_size: %v\n", grid.CellSize())
	fmt.Fprintf(w, "coordinate_system: x,z (0-based, x=column, z=row)\n")
	fmt.Fprintf(w, "occupied_cells: %s\n", humanize.Comma(int64(grid.OccupiedCount())))
	fmt.Fprintf(w, "entities: %s\n", humanize.Comma(int64(len(g.Entities()))))
	fmt.Fprintf(w, "hamsters: %s\n", humanize.Comma(int64(len(g.Hamsters()))))
	fmt.Fprintf(w, "spawned_this_session: %d/%d\n", g.SpawnRegistry().Count(), g.SpawnRegistry().Max())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintf(w, "%s = free  %s = occupied  %s = house  %s = food  %s = wheel  %s = tube  %s = spawner  %s = hamster\n",
		renderer.SymbolFree, renderer.SymbolOccupied, renderer.SymbolHouse, renderer.SymbolFood,
		renderer.SymbolWheel, renderer.SymbolTube, renderer.SymbolSpawner, renderer.SymbolHamster)
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	for _, line := range renderer.MapLines(g) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, "")

	// --- Entities ---
	fmt.Fprintln(w, "--- Entities ---")
	byType := make(map[entities.ObjectType][]entities.Entity)
	for _, e := range g.Entities() {
		byType[e.Type()] = append(byType[e.Type()], e)
	}
	for _, t := range entities.AllObjectTypes {
		list := byType[t]
		sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
		fmt.Fprintf(w, "%s:\n", t)
		for _, e := range list {
			fmt.Fprintf(w, "  id: %d origin: %s size: %dx%d%s\n", e.ID(), e.Origin(), e.Footprint().W, e.Footprint().H, entityDetail(g, e))
		}
	}
	fmt.Fprintln(w, "")

	// --- Hamsters ---
	fmt.Fprintln(w, "--- Hamsters ---")
	for _, h := range g.Hamsters() {
		target := "-"
		if t := h.Target(); t != nil {
			target = fmt.Sprintf("%s#%d entry: %s", t.Type(), t.ID(), grid.WorldToGrid(h.TargetEntry()))
		}
		fmt.Fprintf(w, "  id: %d state: %s cell: %s food: %d resume_at: %.2f target: %s\n",
			h.ID(), h.State(), grid.WorldToGrid(h.Position()), h.FoodCount(), h.ResumeAt(), target)
	}

	return w.Flush()
}

func entityDetail(g *state.Game, e entities.Entity) string {
	switch v := e.(type) {
	case *entities.House:
		return fmt.Sprintf(" stored: %d occupants: %d", v.Stored(), v.Occupants())
	case *entities.Food:
		return fmt.Sprintf(" pieces: %d", v.Pieces())
	case *entities.Wheel:
		return fmt.Sprintf(" spinning: %v angle: %.1f", v.Spinning(), v.Angle())
	case *entities.Spawner:
		return fmt.Sprintf(" active: %v spawned: %d", v.Active(), len(v.Spawned()))
	case *tubes.Tube:
		connected := 0
		for _, s := range v.Slots() {
			connected += len(g.Tubes().ConnectedTubes(v, s.Connection))
		}
		return fmt.Sprintf(" slots: %d connections: %d exits: %s", len(v.Slots()), connected, exitCells(g.Grid(), v))
	default:
		return ""
	}
}

func exitCells(grid *world.Grid, t *tubes.Tube) string {
	out := ""
	for i, s := range t.Slots() {
		if i > 0 {
			out += ","
		}
		out += grid.WorldToGrid(s.Entry).String()
	}
	return "[" + out + "]"
}
