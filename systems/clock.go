package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one fixed tick.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	dt := 1.0 / float64(cfg.C.TPS)
	if cfg.Physics.MaxDeltaTime > 0 && dt > cfg.Physics.MaxDeltaTime {
		dt = cfg.Physics.MaxDeltaTime
	}
	clock.DT = dt
	clock.Tick++
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}

// deltaTime is the delta of the current tick. Systems read it instead of
// assuming a fixed rate.
func deltaTime(ecs *ecs.ECS) float64 {
	return GetOrCreateClock(ecs).DT
}
