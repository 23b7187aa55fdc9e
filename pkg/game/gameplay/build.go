package gameplay

import (
	"fmt"
	"math/rand"

	"hamstercage/pkg/engine/nav"
	"hamstercage/pkg/engine/world"
	"hamstercage/pkg/game/config"
	"hamstercage/pkg/game/placement"
	"hamstercage/pkg/game/state"
	"hamstercage/pkg/game/tubes"
)

// BuildGame creates a cage from cfg and places the scenario objects
func BuildGame(cfg config.Config, rng *rand.Rand) (*state.Game, *placement.System, error) {
	grid, err := world.NewGrid(cfg.Cage.Width, cfg.Cage.Depth, cfg.Cage.CellSize)
	if err != nil {
		return nil, nil, fmt.Errorf("build cage: %w", err)
	}
	planner, err := nav.NewPlanner(grid, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("build cage: %w", err)
	}
	network, err := tubes.NewNetwork(grid, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("build cage: %w", err)
	}
	g, err := state.NewGame(grid, planner, network, rng, cfg.Tuning(), cfg.Spawn.MaxHamsters)
	if err != nil {
		return nil, nil, fmt.Errorf("build cage: %w", err)
	}

	sys := placement.New(g)
	if err := PlaceScenario(sys, cfg); err != nil {
		return nil, nil, err
	}

	g.ClearMessages()
	logMessage(g, "GT{MSG_WELCOME}")
	return g, sys, nil
}

// PlaceScenario places every object listed in the config scenario
func PlaceScenario(sys *placement.System, cfg config.Config) error {
	defs, err := cfg.Definitions()
	if err != nil {
		return err
	}
	for i, p := range cfg.Scenario {
		def, ok := defs[p.Object]
		if !ok {
			return fmt.Errorf("scenario[%d]: unknown object %q", i, p.Object)
		}
		if _, err := sys.PlaceNew(def, world.Cell{X: p.X, Z: p.Z}); err != nil {
			return fmt.Errorf("scenario[%d]: %w", i, err)
		}
	}
	return nil
}
