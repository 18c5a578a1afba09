package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host scheduler
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

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score     int  // Displayed score
	HighScore int  // Best displayed score this session
	Lives     int  // Remaining lives (0 for games without lives)
	GameOver  bool // Whether the run has ended
	Paused    bool // Whether the game is paused
	Countdown int  // Seconds left before the run starts, 0 when not counting down
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
