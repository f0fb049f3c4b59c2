package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGravity accelerates every Gravity holder. Velocity on an axis gravity
// acts on is not decreased this tick.
func UpdateGravity(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	components.Gravity.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) {
			return
		}
		gravity := components.Gravity.Get(e)
		vel := components.Velocity.Get(e)

		var decr *components.DecreaseVelocityData
		if e.HasComponent(components.DecreaseVelocity) {
			decr = components.DecreaseVelocity.Get(e)
		}

		if gravity.X != 0 {
			vel.X += gravity.X * dt
			if decr != nil {
				decr.DecreaseXPos = false
				decr.DecreaseXNeg = false
			}
		}
		if gravity.Y != 0 {
			vel.Y += gravity.Y * dt
			if decr != nil {
				decr.DecreaseYPos = false
				decr.DecreaseYNeg = false
			}
		}
	})
}
