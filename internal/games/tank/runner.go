package tank

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/tui-tank/internal/core"
)

// ErrNotReset is returned when a Runner is started on a game without a world.
var ErrNotReset = errors.New("tank: game must be reset before running")

// Runner drives a Game without a terminal. Ticks come from a time.Ticker, or
// back to back when the interval is zero.
type Runner struct {
	game     *Game
	pilot    Pilot
	interval time.Duration
	maxTicks uint64

	// OnStep, when set, observes every step result.
	OnStep func(core.StepResult)
}

// NewRunner creates a runner. A nil pilot sends empty input; maxTicks 0
// runs until game over.
func NewRunner(game *Game, pilot Pilot, interval time.Duration, maxTicks uint64) *Runner {
	return &Runner{
		game:     game,
		pilot:    pilot,
		interval: interval,
		maxTicks: maxTicks,
	}
}

// Run ticks the game until game over, the tick limit, or ctx cancellation.
// The returned snapshot describes the world when the run stopped; the error
// is ctx.Err() on cancellation.
func (r *Runner) Run(ctx context.Context) (Snapshot, error) {
	w := r.game.World()
	if w == nil {
		return Snapshot{}, ErrNotReset
	}

	var ticks <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for !w.GameOver() && (r.maxTicks == 0 || w.Ticks() < r.maxTicks) {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return w.Snapshot(), ctx.Err()
			case <-ticks:
			}
		} else if err := ctx.Err(); err != nil {
			return w.Snapshot(), err
		}

		frame := core.NewInputFrame()
		if r.pilot != nil {
			frame = r.pilot.Next(w)
		}

		result := r.game.Step(frame)
		if r.OnStep != nil {
			r.OnStep(result)
		}
	}

	return w.Snapshot(), nil
}
