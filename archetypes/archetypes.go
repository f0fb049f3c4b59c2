package archetypes

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.Solid,
		tags.Push,
		tags.CheckCollision,
		components.Player,
		components.Position,
		components.Size,
		components.Velocity,
		components.MaxVelocity,
		components.DecreaseVelocity,
		components.Gravity,
		components.Collision,
	)
	// Tile components come from the level file; only the placement is fixed.
	Tile = newArchetype(
		tags.Tile,
		components.Position,
		components.Size,
	)
	// Object is a generic level object configured entirely by its components.
	Object = newArchetype(
		components.Position,
		components.Size,
	)
	Parallax = newArchetype(
		tags.Parallax,
		components.Parallax,
		components.Position,
		components.Size,
	)
	Camera = newArchetype(
		components.Camera,
		components.Position,
		components.Size,
		components.Velocity,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
	)
	GameState = newArchetype(
		components.GameState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
