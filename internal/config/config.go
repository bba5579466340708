// Package config provides YAML-based game configuration loading and
// difficulty management for the tank game.
package config

import (
	"errors"
	"fmt"
)

// TankConfig contains all configuration for the Tank Shooter game.
type TankConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	HighScore  HighScoreConfig  `yaml:"highscore"`
}

// FieldConfig defines the logical play field in world units.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the tank.
type PlayerConfig struct {
	StartX       int  `yaml:"start_x"`
	StartY       int  `yaml:"start_y"`
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	Speed        int  `yaml:"speed"` // Units per tick per direction step
	StartHealth  int  `yaml:"start_health"`
	MaxHealth    int  `yaml:"max_health"`
	ClampToField bool `yaml:"clamp_to_field"` // false keeps the tank free to drift off-field
}

// ProjectileConfig defines projectiles fired by the tank.
type ProjectileConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	Speed        int  `yaml:"speed"` // Signed, negative = upward
	CullOffField bool `yaml:"cull_off_field"`
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	SpawnY       int  `yaml:"spawn_y"`
	SpawnXRange  int  `yaml:"spawn_x_range"` // Spawn x is uniform in [0, range)
	BaseSpeed    int  `yaml:"base_speed"`
	MaxSpeed     int  `yaml:"max_speed"`
	CullOffField bool `yaml:"cull_off_field"`
}

// SpawnConfig defines the spawn interval ramp: max(min, base - step*level).
type SpawnConfig struct {
	BaseInterval int `yaml:"base_interval"`
	IntervalStep int `yaml:"interval_step"`
	MinInterval  int `yaml:"min_interval"`
}

// ScoringConfig defines points and score milestones.
type ScoringConfig struct {
	KillPoints       int `yaml:"kill_points"`
	HealthBonusEvery int `yaml:"health_bonus_every"` // Score multiple that restores one health
	LevelEvery       int `yaml:"level_every"`        // Score per level
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled           bool `yaml:"enabled"`
	StartLevel        int  `yaml:"start_level"`
	SpeedLevelDivisor int  `yaml:"speed_level_divisor"` // enemy speed = base + level/divisor
}

// InputConfig tunes how terminal key events become steering.
type InputConfig struct {
	// ReleaseTicks is how many ticks a direction key stays held without a
	// repeat before it counts as released. 0 keeps it held until stopped.
	ReleaseTicks int `yaml:"release_ticks"`
}

// HighScoreConfig locates the high score file.
type HighScoreConfig struct {
	Path string `yaml:"path"`
}

// ErrInvalidConfig is returned when a config fails validation.
var ErrInvalidConfig = errors.New("config: invalid tank config")

// Validate checks values the simulation depends on for well-defined arithmetic.
func (c TankConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive"},
		{c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive"},
		{c.Projectile.Width > 0 && c.Projectile.Height > 0, "projectile size must be positive"},
		{c.Enemy.Width > 0 && c.Enemy.Height > 0, "enemy size must be positive"},
		{c.Player.MaxHealth > 0, "player.max_health must be positive"},
		{c.Player.StartHealth > 0 && c.Player.StartHealth <= c.Player.MaxHealth, "player.start_health must be in 1..max_health"},
		{c.Enemy.SpawnXRange > 0, "enemy.spawn_x_range must be positive"},
		{c.Enemy.MaxSpeed >= c.Enemy.BaseSpeed, "enemy.max_speed must be >= base_speed"},
		{c.Spawn.MinInterval > 0, "spawn.min_interval must be positive"},
		{c.Scoring.KillPoints > 0, "scoring.kill_points must be positive"},
		{c.Scoring.HealthBonusEvery > 0, "scoring.health_bonus_every must be positive"},
		{c.Scoring.LevelEvery > 0, "scoring.level_every must be positive"},
		{c.Difficulty.StartLevel >= 1, "difficulty.start_level must be >= 1"},
		{c.Difficulty.SpeedLevelDivisor > 0, "difficulty.speed_level_divisor must be positive"},
		{c.Input.ReleaseTicks >= 0, "input.release_ticks must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.msg)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Empty input yields an empty preset, meaning "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyTankPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyTankPreset(cfg *TankConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.BaseInterval = 60
		cfg.Spawn.MinInterval = 30
		cfg.Enemy.MaxSpeed = max(cfg.Enemy.BaseSpeed, 3)
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Spawn.BaseInterval = 40
		cfg.Spawn.MinInterval = 15
		cfg.Enemy.MaxSpeed = 5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	}
}
