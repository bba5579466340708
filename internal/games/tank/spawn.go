package tank

// spawn advances the spawn counter and creates an enemy when it hits the
// level's interval.
func (w *World) spawn() {
	w.spawnCounter++
	if w.spawnCounter%w.difficulty.SpawnInterval(w.level) != 0 {
		return
	}

	e := Enemy{
		X: w.rng.Intn(w.cfg.Enemy.SpawnXRange),
		Y: w.cfg.Enemy.SpawnY,
		W: w.cfg.Enemy.Width,
		H: w.cfg.Enemy.Height,
	}
	w.enemies = append(w.enemies, e)
	w.emit(EventEnemySpawned, e.X, e.Y)
}

// progress applies the level-up rule, at most one level per tick.
func (w *World) progress() {
	next := w.difficulty.NextLevel(w.score, w.level)
	if next <= w.level {
		return
	}
	w.level = next
	w.emit(EventLevelUp, 0, 0)
}
