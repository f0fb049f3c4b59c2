package factory

import (
	"github.com/automoto/wallhop/archetypes"
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	playerData := components.NewPlayer()
	components.Player.SetValue(player, playerData)
	components.Position.SetValue(player, pos)
	components.Size.SetValue(player, cfg.Player.Size)
	components.MaxVelocity.SetValue(player, components.NewMaxVelocity(playerData.CurrentMaxVelocity()))
	components.DecreaseVelocity.SetValue(player, components.NewDecreaseVelocity(cfg.Player.DecrVelocity))
	components.Gravity.SetValue(player, cfg.Player.Gravity)
	components.Collision.SetValue(player, components.NewCollision())

	return player
}
