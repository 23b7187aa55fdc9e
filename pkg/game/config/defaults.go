package config

// Default returns the stock cage: a 20x20 grid, the original hamster tuning
// and one definition per object kind, plus a small demo scenario
func Default() Config {
	return Config{
		Cage: Cage{Width: 20, Depth: 20, CellSize: 1},
		Hamster: Hamster{
			MoveSpeed:        2,
			LookDistance:     10,
			MoveDelay:        2,
			ChillProbability: 0.4,
			ChillRadius:      3,
			ChillMin:         2,
			ChillMax:         5,
			Front:            Vec{0, 0, 1},
		},
		Spawn: Spawn{MaxHamsters: 200, PerSpawner: 3},
		Objects: []Object{
			{
				Name:         "house",
				Type:         "house",
				Size:         [2]int{2, 2},
				Entries:      []Vec{{-1.5, 0, -0.5}, {1.5, 0, 0.5}},
				RestDuration: 4,
				DropInterval: 0.5,
			},
			{
				Name:           "food",
				Type:           "food",
				Size:           [2]int{1, 1},
				Entries:        []Vec{{0, 0, -1}, {0, 0, 1}},
				Pieces:         6,
				PickUpCount:    2,
				PickUpInterval: 1,
			},
			{
				Name:      "wheel",
				Type:      "wheel",
				Size:      [2]int{2, 1},
				Entries:   []Vec{{-1.5, 0, 0}},
				Slot:      Vec{0, 0.5, 0},
				Duration:  5,
				SpinSpeed: 360,
			},
			{
				Name:       "spawner",
				Type:       "spawner",
				Size:       [2]int{1, 1},
				SpawnPoint: Vec{0, 0, 0},
				Frequency:  1.5,
			},
			{
				Name: "tube_x",
				Type: "tube",
				Size: [2]int{1, 1},
				Slots: []TubeSlot{
					{Entry: Vec{-1, 0, 0}, Connection: Vec{-0.5, 0, 0}},
					{Entry: Vec{1, 0, 0}, Connection: Vec{0.5, 0, 0}},
				},
				Waypoints: []Vec{{0, 0, 0}},
			},
			{
				Name: "tube_z",
				Type: "tube",
				Size: [2]int{1, 1},
				Slots: []TubeSlot{
					{Entry: Vec{0, 0, -1}, Connection: Vec{0, 0, -0.5}},
					{Entry: Vec{0, 0, 1}, Connection: Vec{0, 0, 0.5}},
				},
				Waypoints: []Vec{{0, 0, 0}},
			},
			{
				Name: "tube_elbow",
				Type: "tube",
				Size: [2]int{1, 1},
				Slots: []TubeSlot{
					{Entry: Vec{-1, 0, 0}, Connection: Vec{-0.5, 0, 0}},
					{Entry: Vec{0, 0, 1}, Connection: Vec{0, 0, 0.5}},
				},
				Waypoints: []Vec{{-0.2, 0, 0}, {0, 0, 0.2}},
			},
			{
				Name: "tube_tee",
				Type: "tube",
				Size: [2]int{1, 1},
				Slots: []TubeSlot{
					{Entry: Vec{-1, 0, 0}, Connection: Vec{-0.5, 0, 0}},
					{Entry: Vec{1, 0, 0}, Connection: Vec{0.5, 0, 0}},
					{Entry: Vec{0, 0, 1}, Connection: Vec{0, 0, 0.5}},
				},
				Waypoints: []Vec{{0, 0, 0}},
			},
		},
		Scenario: []Placement{
			{Object: "spawner", X: 2, Z: 2},
			{Object: "house", X: 14, Z: 14},
			{Object: "food", X: 6, Z: 12},
			{Object: "wheel", X: 12, Z: 4},
			{Object: "tube_x", X: 6, Z: 8},
			{Object: "tube_x", X: 7, Z: 8},
			{Object: "tube_elbow", X: 8, Z: 8},
			{Object: "tube_z", X: 8, Z: 9},
		},
	}
}
