package config

// GameState is the top-level state the game is in.
type GameState int

const (
	// StateStartup loads the level and builds its entities.
	StateStartup GameState = iota
	// StateIngame runs the simulation.
	StateIngame
	// StatePaused freezes the simulation; input and state handling keep running.
	StatePaused
	// StateQuit asks the game loop to terminate.
	StateQuit
)

var gameStateNames = [...]string{"Startup", "Ingame", "Paused", "Quit"}

func (s GameState) String() string {
	if s < 0 || int(s) >= len(gameStateNames) {
		return "Unknown"
	}
	return gameStateNames[s]
}
