package tank

import "github.com/vovakirdan/tui-tank/internal/core"

// Player is the tank at the bottom of the field.
type Player struct {
	X, Y      int
	W, H      int
	Direction int // -1 left, 0 idle, 1 right
	Health    int
}

// Bounds returns the player's collision rectangle.
func (p Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// heal adds one health up to maxHealth and reports whether health changed.
func (p *Player) heal(maxHealth int) bool {
	if p.Health >= maxHealth {
		return false
	}
	p.Health++
	return true
}

// Projectile is a shot fired by the player.
type Projectile struct {
	X, Y  int
	W, H  int
	Speed int // Signed vertical speed, negative = upward

	dead bool
}

// Bounds returns the projectile's collision rectangle.
func (p Projectile) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Enemy descends from the top of the field. Its speed depends on the level.
type Enemy struct {
	X, Y int
	W, H int

	dead bool
}

// Bounds returns the enemy's collision rectangle.
func (e Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}
