package systems

import "github.com/yohamta/donburi/ecs"

// GameplaySystems is the per-tick simulation in dependency order. Player
// control reads the collision state refreshed at the end of the previous
// tick.
var GameplaySystems = []ecs.System{
	ControlPlayer,
	UpdateGravity,
	UpdateLimitVelocities,
	MoveEntities,
	UpdateCamera,
	UpdateParallax,
	UpdateCollisions,
	UpdateDecreaseVelocities,
}

// Step runs one tick of the simulation without input polling or state
// checks. Tests and headless runs drive the world through it.
func Step(ecs *ecs.ECS) {
	UpdateClock(ecs)
	for _, system := range GameplaySystems {
		system(ecs)
	}
}
