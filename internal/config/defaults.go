package config

import (
	_ "embed"
)

//go:embed defaults/galaxy.yaml
var defaultGalaxyYAML []byte

// Default returns the default gameplay configuration.
func Default() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  1024,
			Height: 768,
		},
		Ship: ShipConfig{
			Speed:        300,
			Health:       100,
			Width:        40,
			Height:       40,
			BottomOffset: 100,
		},
		Shield: ShieldConfig{
			Duration: 6.0,
		},
		Spawner: SpawnerConfig{
			FallSpeed:      220,
			StarInterval:   1.4,
			DebrisInterval: 1.1,
			ShieldInterval: 14.0,
			DebrisDamage:   10,
		},
		Scoring: ScoringConfig{
			SurvivalPerSecond: 10,
			StarPoints:        50,
			LevelStep:         1000,
		},
	}
}
