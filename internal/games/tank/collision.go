package tank

// resolveProjectileHits runs the projectile-enemy pass. Each projectile scans
// enemies in creation order and destroys at most the first one it overlaps;
// an enemy destroyed earlier in the pass can't be hit again.
func (w *World) resolveProjectileHits() {
	for i := range w.projectiles {
		shot := &w.projectiles[i]
		bounds := shot.Bounds()

		for j := range w.enemies {
			enemy := &w.enemies[j]
			if enemy.dead || !bounds.Intersects(enemy.Bounds()) {
				continue
			}

			enemy.dead = true
			shot.dead = true
			w.score += w.cfg.Scoring.KillPoints
			w.emit(EventEnemyDestroyed, enemy.X, enemy.Y)

			if w.score%w.cfg.Scoring.HealthBonusEvery == 0 && w.player.heal(w.cfg.Player.MaxHealth) {
				w.emit(EventHealthRestored, w.player.X, w.player.Y)
			}
			break
		}
	}

	w.compactProjectiles()
	w.compactEnemies()
}

// resolvePlayerHits runs the player-enemy pass. Every overlapping enemy is
// destroyed and costs one health. Reaching zero ends the game immediately.
func (w *World) resolvePlayerHits() {
	bounds := w.player.Bounds()

	for j := range w.enemies {
		enemy := &w.enemies[j]
		if !bounds.Intersects(enemy.Bounds()) {
			continue
		}

		enemy.dead = true
		w.player.Health--
		w.emit(EventPlayerHit, enemy.X, enemy.Y)

		if w.player.Health <= 0 {
			w.endGame()
			break
		}
	}

	w.compactEnemies()
}

// compactProjectiles drops destroyed projectiles and, when culling is on,
// projectiles that have fully left the field.
func (w *World) compactProjectiles() {
	cull := w.cfg.Projectile.CullOffField
	_, fieldH := w.Field()

	alive := w.projectiles[:0]
	for _, p := range w.projectiles {
		if p.dead {
			continue
		}
		if cull && (p.Y+p.H <= 0 || p.Y >= fieldH) {
			continue
		}
		alive = append(alive, p)
	}
	clear(w.projectiles[len(alive):])
	w.projectiles = alive
}

// compactEnemies drops destroyed enemies and, when culling is on, enemies
// that have fallen below the field.
func (w *World) compactEnemies() {
	cull := w.cfg.Enemy.CullOffField
	_, fieldH := w.Field()

	alive := w.enemies[:0]
	for _, e := range w.enemies {
		if e.dead {
			continue
		}
		if cull && e.Y >= fieldH {
			continue
		}
		alive = append(alive, e)
	}
	clear(w.enemies[len(alive):])
	w.enemies = alive
}
