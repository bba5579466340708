// Package tank implements a tank shooter arcade game.
// The player steers a tank along the bottom of the field and shoots down
// descending enemies. Touching an enemy costs health; the run ends at zero.
package tank

import (
	"math/rand"

	"github.com/vovakirdan/tui-tank/internal/config"
	"github.com/vovakirdan/tui-tank/internal/core"
)

// State is the lifecycle state of a World.
type State int

const (
	StateRunning  State = iota
	StateGameOver       // Terminal, ticks are no-ops
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// World owns all mutable simulation state. It performs no I/O and is driven by
// a single caller: SetDirection/Fire between ticks, Tick at a fixed cadence,
// read accessors between ticks for rendering.
type World struct {
	cfg        config.TankConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	player      Player
	projectiles []Projectile
	enemies     []Enemy

	level        int
	score        int
	highScore    int
	spawnCounter int
	tick         uint64
	state        State

	events []Event // Pending events for the current/next TickResult
}

// NewWorld creates a running world with the given config, RNG seed and the
// high score loaded from persistence.
func NewWorld(cfg config.TankConfig, seed int64, highScore int) *World {
	difficulty := config.NewDifficultyManager(cfg)
	return &World{
		cfg:        cfg,
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(seed)),
		player: Player{
			X:      cfg.Player.StartX,
			Y:      cfg.Player.StartY,
			W:      cfg.Player.Width,
			H:      cfg.Player.Height,
			Health: cfg.Player.StartHealth,
		},
		projectiles: make([]Projectile, 0, 16),
		enemies:     make([]Enemy, 0, 16),
		level:       difficulty.StartLevel(),
		highScore:   max(highScore, 0),
		state:       StateRunning,
	}
}

// SetDirection sets the player's horizontal direction. Any positive value
// means right, any negative value left.
func (w *World) SetDirection(dir int) {
	if w.state != StateRunning {
		return
	}
	w.player.Direction = core.Sign(dir)
}

// Fire appends a projectile at the player's current position.
// There is no cooldown: every call spawns one projectile.
func (w *World) Fire() {
	if w.state != StateRunning {
		return
	}
	p := Projectile{
		X:     w.player.X,
		Y:     w.player.Y,
		W:     w.cfg.Projectile.Width,
		H:     w.cfg.Projectile.Height,
		Speed: w.cfg.Projectile.Speed,
	}
	w.projectiles = append(w.projectiles, p)
	w.emit(EventFired, p.X, p.Y)
}

// Tick advances the simulation by one step: movement, collision resolution,
// spawning and difficulty progression. After the game is over Tick is a no-op.
func (w *World) Tick() TickResult {
	if w.state == StateGameOver {
		return TickResult{GameOver: true}
	}

	w.tick++

	w.move()
	w.resolveProjectileHits()
	w.resolvePlayerHits()

	// The terminal transition happens inside the player pass and ends the tick.
	if w.state == StateRunning {
		w.spawn()
		w.progress()
	}

	return w.flush()
}

// move integrates positions for one tick.
func (w *World) move() {
	p := &w.player
	p.X += p.Direction * w.cfg.Player.Speed
	if w.cfg.Player.ClampToField {
		p.X = core.Clamp(p.X, 0, max(w.cfg.Field.Width-p.W, 0))
	}

	for i := range w.projectiles {
		w.projectiles[i].Y += w.projectiles[i].Speed
	}

	speed := w.difficulty.EnemySpeed(w.level)
	for i := range w.enemies {
		w.enemies[i].Y += speed
	}
}

// endGame performs the terminal transition and records the final result.
func (w *World) endGame() {
	w.state = StateGameOver
	w.player.Direction = 0

	newRecord := w.score > w.highScore
	if newRecord {
		w.highScore = w.score
	}

	w.events = append(w.events, Event{
		Kind:      EventGameOver,
		Tick:      w.tick,
		Score:     w.score,
		Health:    w.player.Health,
		Level:     w.level,
		HighScore: w.highScore,
		NewRecord: newRecord,
	})
}

// emit queues an event stamped with the current world state.
func (w *World) emit(kind EventKind, x, y int) {
	w.events = append(w.events, Event{
		Kind:      kind,
		Tick:      w.tick,
		X:         x,
		Y:         y,
		Score:     w.score,
		Health:    w.player.Health,
		Level:     w.level,
		HighScore: w.highScore,
	})
}

// flush hands the pending events to the caller.
func (w *World) flush() TickResult {
	result := TickResult{
		Events:   w.events,
		GameOver: w.state == StateGameOver,
	}
	w.events = nil
	return result
}

// Player returns a copy of the player.
func (w *World) Player() Player { return w.player }

// Projectiles returns the live projectiles. Callers must not modify the slice.
func (w *World) Projectiles() []Projectile { return w.projectiles }

// Enemies returns the live enemies. Callers must not modify the slice.
func (w *World) Enemies() []Enemy { return w.enemies }

// Level returns the current difficulty level.
func (w *World) Level() int { return w.level }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// HighScore returns the best of the stored high score and this run.
func (w *World) HighScore() int { return max(w.highScore, w.score) }

// Ticks returns the number of ticks simulated so far.
func (w *World) Ticks() uint64 { return w.tick }

// State returns the lifecycle state.
func (w *World) State() State { return w.state }

// GameOver reports whether the world reached its terminal state.
func (w *World) GameOver() bool { return w.state == StateGameOver }

// Field returns the play field size in world units.
func (w *World) Field() (width, height int) {
	return w.cfg.Field.Width, w.cfg.Field.Height
}

// MaxHealth returns the health cap.
func (w *World) MaxHealth() int { return w.cfg.Player.MaxHealth }
