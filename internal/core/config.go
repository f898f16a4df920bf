package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the last run has ended
	Paused   bool // Whether the game is paused
}

// RunSummary describes a finished run. Platforms persist it.
type RunSummary struct {
	Score     int    `json:"score"`
	Length    int    `json:"length"`
	Ticks     uint64 `json:"ticks"`      // Board moves made during the run
	EndReason string `json:"end_reason"` // "collision", "cleared" or "quit"
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Finished is set on the exact frame a run ends, nil otherwise.
	Finished *RunSummary
}
