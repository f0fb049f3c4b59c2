package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/wallhop/assets"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/systems"
	"github.com/automoto/wallhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level from startup until the player quits.
type PlatformerScene struct {
	ecs     *ecs.ECS
	level   *assets.Level
	watcher *cfg.Watcher
	once    sync.Once
	err     error
}

// NewPlatformerScene creates a scene for level. A non-nil watcher is polled
// between ticks and live-reloads the settings file.
func NewPlatformerScene(level *assets.Level, watcher *cfg.Watcher) *PlatformerScene {
	return &PlatformerScene{level: level, watcher: watcher}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	if ps.err != nil {
		return ps.err
	}

	ps.pollSettings()
	ps.ecs.Update()
	return nil
}

// pollSettings applies a pending settings reload to the running world. It
// reports whether anything was reloaded.
func (ps *PlatformerScene) pollSettings() bool {
	if ps.watcher == nil {
		return false
	}
	reloaded, err := ps.watcher.Poll()
	if err != nil {
		log.Printf("Warning: settings reload: %v", err)
		return false
	}
	if reloaded {
		factory.ApplySettings(ps.ecs)
		log.Printf("Settings reloaded")
	}
	return reloaded
}

// Quit reports whether the player asked to leave the game.
func (ps *PlatformerScene) Quit() bool {
	if ps.ecs == nil {
		return false
	}
	return systems.GetOrCreateGameState(ps.ecs).Current == cfg.StateQuit
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateGameState)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))

	// Simulation, skipped while paused
	for _, system := range systems.GameplaySystems {
		ecs.AddSystem(systems.WithGameplayChecks(system))
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	if _, err := factory.CreateLevel(ps.ecs, ps.level); err != nil {
		ps.err = fmt.Errorf("create level: %w", err)
		return
	}

	// Startup ends once the level is built
	systems.GetOrCreateGameState(ps.ecs).Set(cfg.StateIngame)
}
