package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 33, ~30ms per tick)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate approximates one tick every 30ms.
const DefaultTickRate = 33

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best known score, including the current run
	Level     int  // Current difficulty level
	Health    int  // Remaining player health
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
	NewRecord bool // Whether the finished run beat the stored high score
}

// Cue names a presentation effect (sound) triggered by a simulation tick.
type Cue string

// Cues emitted by games.
const (
	CueFire      Cue = "fire"
	CueExplosion Cue = "explosion"
	CueHit       Cue = "hit"
	CueHeal      Cue = "heal"
	CueLevelUp   Cue = "level_up"
	CueGameOver  Cue = "game_over"
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// RunRecord summarizes a finished run for history storage.
type RunRecord struct {
	GameID    string
	Score     int
	Level     int
	Ticks     uint64
	Seed      int64
	NewRecord bool
}
