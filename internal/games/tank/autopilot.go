package tank

import "github.com/vovakirdan/tui-tank/internal/core"

// Pilot produces the input for the next tick from the current world.
type Pilot interface {
	Next(w *World) core.InputFrame
}

// Autopilot is a simple deterministic bot: it chases the lowest enemy and
// fires once lined up under it.
type Autopilot struct {
	FireEvery uint64 // Minimum ticks between shots, 0 fires whenever lined up

	lastShot uint64
	fired    bool
}

// NewAutopilot creates a bot that fires at most every fireEvery ticks.
func NewAutopilot(fireEvery uint64) *Autopilot {
	return &Autopilot{FireEvery: fireEvery}
}

// Next implements Pilot.
func (a *Autopilot) Next(w *World) core.InputFrame {
	frame := core.NewInputFrame()

	target, ok := lowestEnemy(w.Enemies(), w.Player().Y)
	if !ok {
		frame.Set(core.ActionStop)
		return frame
	}

	// Shots leave from the player's left edge, so aim the barrel, not the hull
	barrel := w.Player().X + w.cfg.Projectile.Width/2
	centerX, _ := target.Bounds().Center()
	offset := centerX - barrel
	tolerance := max(target.W/4, 1)

	switch {
	case offset < -tolerance:
		frame.Set(core.ActionLeft)
	case offset > tolerance:
		frame.Set(core.ActionRight)
	default:
		frame.Set(core.ActionStop)
	}

	if core.Abs(offset) < target.W/2-w.cfg.Projectile.Width && a.ready(w.Ticks()) {
		frame.Set(core.ActionFire)
		a.lastShot = w.Ticks()
		a.fired = true
	}
	return frame
}

func (a *Autopilot) ready(tick uint64) bool {
	return !a.fired || tick-a.lastShot >= a.FireEvery
}

// lowestEnemy returns the enemy closest to the bottom of the field that is
// still fully above limitY. Ties go to the older enemy.
func lowestEnemy(enemies []Enemy, limitY int) (Enemy, bool) {
	var best Enemy
	found := false
	for _, e := range enemies {
		if e.Y+e.H > limitY {
			continue
		}
		if !found || e.Y > best.Y {
			best, found = e, true
		}
	}
	return best, found
}
