package tank

import "github.com/vovakirdan/tui-tank/internal/core"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventFired EventKind = iota
	EventEnemySpawned
	EventEnemyDestroyed
	EventPlayerHit
	EventHealthRestored
	EventLevelUp
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventFired:
		return "fired"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventHealthRestored:
		return "health_restored"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification for the presentation layer. Events never feed back
// into the simulation.
type Event struct {
	Kind EventKind
	Tick uint64
	X, Y int // Where it happened, when it has a position

	Score     int
	Health    int
	Level     int
	HighScore int
	NewRecord bool // GameOver only: the run beat the stored high score
}

// cue maps an event to the sound cue it triggers, if any.
func (e Event) cue() (core.Cue, bool) {
	switch e.Kind {
	case EventFired:
		return core.CueFire, true
	case EventEnemyDestroyed:
		return core.CueExplosion, true
	case EventPlayerHit:
		return core.CueHit, true
	case EventHealthRestored:
		return core.CueHeal, true
	case EventLevelUp:
		return core.CueLevelUp, true
	case EventGameOver:
		return core.CueGameOver, true
	default:
		return "", false
	}
}

// TickResult is what one World.Tick reports back to its driver.
type TickResult struct {
	Events   []Event
	GameOver bool
}

// Find returns the first event of the given kind.
func (r TickResult) Find(kind EventKind) (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

// Count returns how many events of the given kind happened.
func (r TickResult) Count(kind EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
