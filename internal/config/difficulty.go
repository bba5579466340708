package config

// DifficultyManager calculates level-driven game parameters.
type DifficultyManager struct {
	cfg     DifficultyConfig
	enemy   EnemyConfig
	spawn   SpawnConfig
	scoring ScoringConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg TankConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg.Difficulty,
		enemy:   cfg.Enemy,
		spawn:   cfg.Spawn,
		scoring: cfg.Scoring,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// StartLevel returns the level a new run begins at.
func (d *DifficultyManager) StartLevel() int {
	return max(1, d.cfg.StartLevel)
}

// EnemySpeed returns the vertical enemy speed in units per tick:
// min(maxSpeed, baseSpeed + level/divisor). Saturates at maxSpeed.
func (d *DifficultyManager) EnemySpeed(level int) int {
	divisor := d.cfg.SpeedLevelDivisor
	if divisor <= 0 {
		divisor = 1 // Prevent division by zero
	}
	return min(d.enemy.MaxSpeed, d.enemy.BaseSpeed+level/divisor)
}

// SpawnInterval returns the number of ticks between spawns:
// max(minInterval, baseInterval - step*level).
func (d *DifficultyManager) SpawnInterval(level int) int {
	return max(d.spawn.MinInterval, d.spawn.BaseInterval-d.spawn.IntervalStep*level, 1)
}

// NextLevel returns the level after a tick ended with the given score.
// Advances by at most one level per call, even when the score has
// crossed several level thresholds at once.
func (d *DifficultyManager) NextLevel(score, level int) int {
	if !d.IsEnabled() || d.scoring.LevelEvery <= 0 {
		return level
	}
	if score/d.scoring.LevelEvery >= level {
		return level + 1
	}
	return level
}
