package core

// RuntimeConfig is what the host knows about the display when it starts a game.
type RuntimeConfig struct {
	ScreenW  int // Viewport width (cells in the terminal, pixels in a window)
	ScreenH  int // Viewport height
	TickRate int // Simulation ticks per second
}

// DefaultConfig returns a RuntimeConfig for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the session summary hosts read after each tick.
type GameState struct {
	Score     int
	HighScore int
	Level     int
	ShipsLeft int
	Active    bool // false before the first game and after game over
	Frozen    bool // true during the pause that follows a lost ship
}

// StepResult is returned by every simulation tick.
type StepResult struct {
	State GameState

	Started      bool // INACTIVE -> ACTIVE happened this tick
	LifeLost     bool // a ship was lost this tick
	LevelCleared bool // the fleet was destroyed this tick
	Ended        bool // ACTIVE -> INACTIVE happened this tick
	Quit         bool // a quit event was collected
}
