package config

import (
	_ "embed"
)

//go:embed defaults/tank.yaml
var defaultTankYAML []byte

// DefaultTankConfig returns the built-in Tank Shooter configuration.
// Kept in sync with defaults/tank.yaml; used when the embedded YAML cannot be parsed.
func DefaultTankConfig() TankConfig {
	return TankConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX:       400,
			StartY:       500,
			Width:        40,
			Height:       40,
			Speed:        5,
			StartHealth:  3,
			MaxHealth:    5,
			ClampToField: true,
		},
		Projectile: ProjectileConfig{
			Width:        5,
			Height:       10,
			Speed:        -5,
			CullOffField: true,
		},
		Enemy: EnemyConfig{
			Width:        40,
			Height:       40,
			SpawnY:       50,
			SpawnXRange:  750,
			BaseSpeed:    1,
			MaxSpeed:     4,
			CullOffField: true,
		},
		Spawn: SpawnConfig{
			BaseInterval: 50,
			IntervalStep: 2,
			MinInterval:  20,
		},
		Scoring: ScoringConfig{
			KillPoints:       100,
			HealthBonusEvery: 500,
			LevelEvery:       1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			StartLevel:        1,
			SpeedLevelDivisor: 2,
		},
		Input: InputConfig{
			ReleaseTicks: 25, // ~750ms at 33 ticks/s, past the longest common key-repeat delay
		},
		HighScore: HighScoreConfig{
			Path: "highscore.txt",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTankYAML
}
