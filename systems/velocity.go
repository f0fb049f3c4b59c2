package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/automoto/wallhop/geo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLimitVelocities clamps |velocity| to MaxVelocity on each limited axis.
func UpdateLimitVelocities(ecs *ecs.ECS) {
	components.MaxVelocity.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) {
			return
		}
		limits := components.MaxVelocity.Get(e)
		vel := components.Velocity.Get(e)

		if limits.X != nil {
			vel.X = clamp(vel.X, -*limits.X, *limits.X)
		}
		if limits.Y != nil {
			vel.Y = clamp(vel.Y, -*limits.Y, *limits.Y)
		}
	})
}

// UpdateDecreaseVelocities slows velocity toward zero on every direction whose
// flag is still set, then re-enables all flags for the next tick.
func UpdateDecreaseVelocities(ecs *ecs.ECS) {
	dt := deltaTime(ecs)

	components.DecreaseVelocity.Each(ecs.World, func(e *donburi.Entry) {
		decr := components.DecreaseVelocity.Get(e)
		if e.HasComponent(components.Velocity) {
			vel := components.Velocity.Get(e)
			geo.ForEachAxis(func(axis geo.Axis) {
				v := axis.Of(*vel)
				if v == 0 || !decr.ShouldDecrease(axis, v) {
					return
				}
				axis.Set(vel, decreaseToward0(v, axis.Of(decr.Amount)*dt))
			})
		}
		decr.Enable()
	})
}

// decreaseToward0 subtracts amount from |v| without crossing zero.
func decreaseToward0(v, amount float64) float64 {
	s := signum(v)
	v -= amount * s
	if signum(v) != s {
		return 0
	}
	return v
}
