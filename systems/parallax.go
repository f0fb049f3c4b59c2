package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateParallax moves background layers along with the camera centre, each
// at its own rate.
func UpdateParallax(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Position) {
		return
	}
	center := *components.Position.Get(cameraEntry)
	if cameraEntry.HasComponent(components.Size) {
		size := components.Size.Get(cameraEntry)
		center = math.NewVec2(center.X+size.X*0.5, center.Y+size.Y*0.5)
	}

	components.Parallax.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Position) {
			return
		}
		parallax := components.Parallax.Get(e)
		pos := components.Position.Get(e)
		pos.X = parallax.Offset.X + center.X*parallax.SpeedMult.X
		pos.Y = parallax.Offset.Y + center.Y*parallax.SpeedMult.Y
	})
}
