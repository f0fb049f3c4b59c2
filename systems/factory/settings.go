package factory

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ApplySettings pushes the current configuration into entities that copied it
// at spawn. Call it after the settings were reloaded, between ticks.
func ApplySettings(ecs *ecs.ECS) {
	RefreshPlayers(ecs)
	RefreshCameras(ecs)
}

// RefreshPlayers re-applies the player configuration to every player. Runtime
// state such as jump and wall flags is kept, and positions are not moved.
func RefreshPlayers(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Player) {
			return
		}
		player := components.Player.Get(e)
		fresh := components.NewPlayer()
		player.Acceleration = fresh.Acceleration
		player.RunAcceleration = fresh.RunAcceleration
		player.MaxVelocity = fresh.MaxVelocity
		player.RunMaxVelocity = fresh.RunMaxVelocity

		if e.HasComponent(components.MaxVelocity) {
			components.MaxVelocity.SetValue(e, components.NewMaxVelocity(player.CurrentMaxVelocity()))
		}
		if e.HasComponent(components.DecreaseVelocity) {
			components.DecreaseVelocity.Get(e).Amount = cfg.Player.DecrVelocity
		}
		if e.HasComponent(components.Size) {
			components.Size.SetValue(e, cfg.Player.Size)
		}
		if e.HasComponent(components.Gravity) {
			gravity := cfg.Player.Gravity
			if player.IsJumping {
				gravity = cfg.Player.JumpGravity
			}
			components.Gravity.SetValue(e, gravity)
		}
	})
}

// RefreshCameras re-applies the camera configuration, keeping each camera
// centred where it was.
func RefreshCameras(ecs *ecs.ECS) {
	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		camera := components.Camera.Get(e)
		inner := cfg.Camera.InnerSize
		camera.InnerSize = &inner
		camera.BaseSpeed = cfg.Camera.BaseSpeed
		camera.MoveInPadding = cfg.Camera.MoveInPadding

		if !e.HasComponent(components.Position) || !e.HasComponent(components.Size) {
			return
		}
		pos := components.Position.Get(e)
		old := *components.Size.Get(e)
		size := cfg.Camera.Size
		center := math.NewVec2(pos.X+old.X*0.5, pos.Y+old.Y*0.5)
		*pos = math.NewVec2(center.X-size.X*0.5, center.Y-size.Y*0.5)
		components.Size.SetValue(e, size)
	})
}
