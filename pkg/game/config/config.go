// Package config loads cage configuration from YAML. Documents are validated
// against an embedded JSON schema before they are decoded over the defaults.
package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/entities"
	"hamstercage/pkg/game/hamster"
	"hamstercage/pkg/game/placement"
	"hamstercage/pkg/game/tubes"
)

//go:embed schema.json
var schemaText string

var schema = jsonschema.MustCompileString("config.schema.json", schemaText)

// Vec is an [x, y, z] triple. Object offsets are measured in cells.
type Vec [3]float64

// World scales an offset in cells to world units
func (v Vec) World(cellSize float64) world.Vec3 {
	return world.Vec3{X: v[0] * cellSize, Y: v[1] * cellSize, Z: v[2] * cellSize}
}

type Config struct {
	Cage     Cage        `yaml:"cage"`
	Hamster  Hamster     `yaml:"hamster"`
	Spawn    Spawn       `yaml:"spawn"`
	Objects  []Object    `yaml:"objects"`
	Scenario []Placement `yaml:"scenario"`
}

type Cage struct {
	Width    int     `yaml:"width"`
	Depth    int     `yaml:"depth"`
	CellSize float64 `yaml:"cell_size"`
}

type Hamster struct {
	MoveSpeed        float64 `yaml:"move_speed"`
	LookDistance     float64 `yaml:"look_distance"`
	MoveDelay        float64 `yaml:"move_delay"`
	ChillProbability float64 `yaml:"chill_probability"`
	ChillRadius      float64 `yaml:"chill_radius"`
	ChillMin         float64 `yaml:"chill_min"`
	ChillMax         float64 `yaml:"chill_max"`
	Front            Vec     `yaml:"front"`
}

type Spawn struct {
	MaxHamsters int `yaml:"max_hamsters"`
	PerSpawner  int `yaml:"per_spawner"`
}

// Object describes a placeable object kind. Which fields apply depends on
// Type.
type Object struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Size    [2]int `yaml:"size"`
	Entries []Vec  `yaml:"entries"`

	// house and wheel
	Slot Vec `yaml:"slot"`

	// house
	RestDuration float64 `yaml:"rest_duration"`
	DropInterval float64 `yaml:"drop_interval"`

	// food
	Pieces         int     `yaml:"pieces"`
	PickUpCount    int     `yaml:"pick_up_count"`
	PickUpInterval float64 `yaml:"pick_up_interval"`

	// wheel
	Duration  float64 `yaml:"duration"`
	SpinSpeed float64 `yaml:"spin_speed"`

	// spawner
	SpawnPoint Vec     `yaml:"spawn_point"`
	Frequency  float64 `yaml:"frequency"`

	// tube
	Slots     []TubeSlot `yaml:"slots"`
	Waypoints []Vec      `yaml:"waypoints"`
}

type TubeSlot struct {
	Entry      Vec `yaml:"entry"`
	Connection Vec `yaml:"connection"`
}

// Placement puts an object at a footprint origin
type Placement struct {
	Object string `yaml:"object"`
	X      int    `yaml:"x"`
	Z      int    `yaml:"z"`
}

// Load reads and validates a YAML config file
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates a YAML document and decodes it over Default. Objects are
// merged by name; a scenario replaces the default one.
func Parse(raw []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}

	cfg := Default()
	if doc == nil {
		return cfg, nil
	}

	if err := validateDocument(doc); err != nil {
		return Config{}, err
	}

	defaults := cfg.Objects
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml: %w", err)
	}
	cfg.Objects = mergeObjects(defaults, cfg.Objects)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validateDocument checks a decoded YAML document against the schema
func validateDocument(doc any) error {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config must be a mapping with string keys: %w", err)
	}
	var v any
	if err := json.Unmarshal(encoded, &v); err != nil {
		return err
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func mergeObjects(base, overrides []Object) []Object {
	out := append([]Object(nil), base...)
	for _, o := range overrides {
		replaced := false
		for i := range out {
			if out[i].Name == o.Name {
				out[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, o)
		}
	}
	return out
}

// Validate checks the cross-field rules the schema cannot express
func (c Config) Validate() error {
	var errs []error
	if c.Cage.Width <= 0 || c.Cage.Depth <= 0 || c.Cage.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cage: invalid dimensions %dx%d cell size %v", c.Cage.Width, c.Cage.Depth, c.Cage.CellSize))
	}
	if c.Hamster.ChillMin > c.Hamster.ChillMax {
		errs = append(errs, fmt.Errorf("hamster: chill_min %v exceeds chill_max %v", c.Hamster.ChillMin, c.Hamster.ChillMax))
	}

	names := mapset.New[string]()
	for _, o := range c.Objects {
		if names.Has(o.Name) {
			errs = append(errs, fmt.Errorf("objects: duplicate name %q", o.Name))
		}
		names.Put(o.Name)
		if _, err := entities.ParseObjectType(o.Type); err != nil {
			errs = append(errs, fmt.Errorf("objects: %s: %w", o.Name, err))
		}
	}
	for i, p := range c.Scenario {
		if !names.Has(p.Object) {
			errs = append(errs, fmt.Errorf("scenario[%d]: unknown object %q", i, p.Object))
		}
	}
	return errors.Join(errs...)
}

// Tuning returns the hamster behavior constants
func (c Config) Tuning() hamster.Tuning {
	return hamster.Tuning{
		MoveSpeed:        c.Hamster.MoveSpeed,
		LookDistance:     c.Hamster.LookDistance,
		MoveDelay:        c.Hamster.MoveDelay,
		ChillProbability: c.Hamster.ChillProbability,
		ChillRadius:      c.Hamster.ChillRadius,
		ChillMin:         c.Hamster.ChillMin,
		ChillMax:         c.Hamster.ChillMax,
		Front:            world.Vec3{X: c.Hamster.Front[0], Y: c.Hamster.Front[1], Z: c.Hamster.Front[2]},
	}
}

// Definitions returns a placement definition per configured object
func (c Config) Definitions() (map[string]placement.Definition, error) {
	defs := make(map[string]placement.Definition, len(c.Objects))
	for _, o := range c.Objects {
		def, err := c.definition(o)
		if err != nil {
			return nil, fmt.Errorf("objects: %s: %w", o.Name, err)
		}
		defs[o.Name] = def
	}
	return defs, nil
}

func (c Config) definition(o Object) (placement.Definition, error) {
	kind, err := entities.ParseObjectType(o.Type)
	if err != nil {
		return placement.Definition{}, err
	}
	cs := c.Cage.CellSize
	size := world.Size{W: o.Size[0], H: o.Size[1]}
	entries := vecs(o.Entries, cs)

	def := placement.Definition{Name: o.Name, Type: kind, Size: size}
	switch kind {
	case entities.TypeHouse:
		def.New = func(id int) entities.Entity {
			return entities.NewHouse(id, size, entries, o.Slot.World(cs), o.RestDuration, o.DropInterval)
		}
	case entities.TypeFood:
		def.New = func(id int) entities.Entity {
			return entities.NewFood(id, size, entries, o.Pieces, o.PickUpCount, o.PickUpInterval)
		}
	case entities.TypeWheel:
		def.New = func(id int) entities.Entity {
			return entities.NewWheel(id, size, entries, o.Slot.World(cs), o.Duration, o.SpinSpeed)
		}
	case entities.TypeSpawner:
		perSpawner := c.Spawn.PerSpawner
		def.New = func(id int) entities.Entity {
			return entities.NewSpawner(id, size, o.SpawnPoint.World(cs), o.Frequency, perSpawner)
		}
	case entities.TypeTube:
		if len(o.Slots) < 2 {
			return placement.Definition{}, fmt.Errorf("tube needs at least two slots, has %d", len(o.Slots))
		}
		slots := make([]tubes.Slot, len(o.Slots))
		for i, s := range o.Slots {
			slots[i] = tubes.Slot{Entry: s.Entry.World(cs), Connection: s.Connection.World(cs)}
		}
		waypoints := vecs(o.Waypoints, cs)
		def.New = func(id int) entities.Entity {
			return tubes.NewTube(id, size, slots, waypoints)
		}
	}
	return def, nil
}

func vecs(in []Vec, cellSize float64) []world.Vec3 {
	out := make([]world.Vec3, len(in))
	for i, v := range in {
		out[i] = v.World(cellSize)
	}
	return out
}
