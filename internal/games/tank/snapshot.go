package tank

// Snapshot summarizes the world for determinism tests and run reports.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick         uint64
	State        string
	Score        int
	HighScore    int
	Level        int
	Health       int
	PlayerX      int
	PlayerY      int
	Direction    int
	SpawnCounter int
	Projectiles  int
	Enemies      int

	// EnemyData holds X, Y pairs in creation order.
	EnemyData []int
}

// Snapshot returns the current world summary.
func (w *World) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(w.enemies)*2)
	for _, e := range w.enemies {
		enemyData = append(enemyData, e.X, e.Y)
	}

	return Snapshot{
		Tick:         w.tick,
		State:        w.state.String(),
		Score:        w.score,
		HighScore:    w.HighScore(),
		Level:        w.level,
		Health:       w.player.Health,
		PlayerX:      w.player.X,
		PlayerY:      w.player.Y,
		Direction:    w.player.Direction,
		SpawnCounter: w.spawnCounter,
		Projectiles:  len(w.projectiles),
		Enemies:      len(w.enemies),
		EnemyData:    enemyData,
	}
}
