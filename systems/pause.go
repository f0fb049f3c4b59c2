package systems

import (
	cfg "github.com/automoto/wallhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles between Ingame and Paused.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	state := GetOrCreateGameState(ecs)
	input := GetOrCreateInput(ecs)

	if !input.JustPressed(cfg.ActionPause) {
		return
	}
	switch state.Current {
	case cfg.StateIngame:
		state.Set(cfg.StatePaused)
	case cfg.StatePaused:
		state.Set(cfg.StateIngame)
	}
}

// DrawPause renders the pause notice.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateGameState(ecs).Current != cfg.StatePaused {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen, "PAUSED", width/2-18, height/2-8)
}

// WithPauseCheck wraps a system to skip execution unless the game is running.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGameState(e).Current != cfg.StateIngame {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
