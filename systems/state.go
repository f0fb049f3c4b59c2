package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameState returns the singleton GameState component, creating
// it in Startup if needed.
func GetOrCreateGameState(ecs *ecs.ECS) *components.GameStateData {
	entry, ok := components.GameState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.GameState))
		components.GameState.SetValue(entry, components.GameStateData{
			Current:  cfg.StateStartup,
			Previous: cfg.StateStartup,
		})
	}
	return components.GameState.Get(entry)
}

// UpdateGameState counts ticks in the current state and handles quitting.
// Must run AFTER UpdateInput.
func UpdateGameState(ecs *ecs.ECS) {
	state := GetOrCreateGameState(ecs)
	input := GetOrCreateInput(ecs)

	if input.JustPressed(cfg.ActionQuit) {
		state.Set(cfg.StateQuit)
		return
	}
	state.Ticks++
}
