// Package config provides YAML-based gameplay configuration loading and
// difficulty presets for Galaxy Runner.
package config

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	World   WorldConfig   `yaml:"world"`
	Ship    ShipConfig    `yaml:"ship"`
	Shield  ShieldConfig  `yaml:"shield"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// WorldConfig defines the virtual play field. Simulation runs in this fixed
// coordinate space and is mapped to terminal cells at render time.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship parameters.
type ShipConfig struct {
	Speed        float64 `yaml:"speed"`         // horizontal speed in world px/s
	Health       int     `yaml:"health"`        // starting health
	Width        float64 `yaml:"width"`         // world px
	Height       float64 `yaml:"height"`        // world px
	BottomOffset float64 `yaml:"bottom_offset"` // distance from bottom edge
}

// ShieldConfig defines the temporary invulnerability window.
type ShieldConfig struct {
	Duration float64 `yaml:"duration"` // seconds
}

// SpawnerConfig defines falling object generation.
type SpawnerConfig struct {
	FallSpeed      float64 `yaml:"fall_speed"`      // world px/s
	StarInterval   float64 `yaml:"star_interval"`   // seconds between star drops
	DebrisInterval float64 `yaml:"debris_interval"` // seconds between debris drops
	ShieldInterval float64 `yaml:"shield_interval"` // seconds between shield pickups
	DebrisDamage   int     `yaml:"debris_damage"`   // health lost per debris hit
}

// ScoringConfig defines score accrual.
type ScoringConfig struct {
	SurvivalPerSecond int `yaml:"survival_per_second"` // points per second survived
	StarPoints        int `yaml:"star_points"`         // base points per star (scaled by combo)
	LevelStep         int `yaml:"level_step"`          // score needed per level
}

// Difficulty names as persisted in player settings.
const (
	DifficultyEasy   = "Easy"
	DifficultyNormal = "Normal"
	DifficultyHard   = "Hard"
)

// ApplyDifficulty adjusts spawner parameters for a named difficulty.
// Unknown names leave the config untouched (Normal).
func ApplyDifficulty(cfg *GameConfig, difficulty string) {
	switch difficulty {
	case DifficultyEasy:
		cfg.Spawner.DebrisInterval *= 1.5
		cfg.Spawner.FallSpeed *= 0.8
	case DifficultyHard:
		cfg.Spawner.DebrisInterval *= 0.6
		cfg.Spawner.FallSpeed *= 1.3
		cfg.Spawner.DebrisDamage += 5
	}
}
