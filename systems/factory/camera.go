package factory

import (
	"github.com/automoto/wallhop/archetypes"
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on target.
func CreateCamera(ecs *ecs.ECS, target math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	size := cfg.Camera.Size
	inner := cfg.Camera.InnerSize
	components.Camera.SetValue(camera, components.CameraData{
		InnerSize:     &inner,
		BaseSpeed:     cfg.Camera.BaseSpeed,
		MoveInPadding: cfg.Camera.MoveInPadding,
	})
	components.Size.SetValue(camera, size)
	components.Position.SetValue(camera, math.NewVec2(target.X-size.X*0.5, target.Y-size.Y*0.5))

	return camera
}
