package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/geo"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collidable reports whether e takes part in collision tracking.
func collidable(e *donburi.Entry) bool {
	return e.HasComponent(tags.CheckCollision) ||
		e.HasComponent(tags.Solid) ||
		e.HasComponent(components.Collision)
}

// collisionGrid snapshots every collidable entity at its current position.
func collisionGrid(w donburi.World) *geo.Grid[struct{}] {
	var rects []geo.Rect[struct{}]
	components.Position.Each(w, func(e *donburi.Entry) {
		if collidable(e) {
			rects = append(rects, rectOf[struct{}](e))
		}
	})
	return geo.NewGrid(rects)
}

// UpdateCollisions refreshes every Collision component from the current
// positions. Rectangles are padded so entities resting against each other
// still register.
func UpdateCollisions(ecs *ecs.ECS) {
	grid := collisionGrid(ecs.World)
	padding := cfg.Physics.CollisionPadding

	components.Collision.Each(ecs.World, func(e *donburi.Entry) {
		collision := components.Collision.Get(e)

		if self, ok := grid.RectByID(e.Entity()); ok {
			for _, other := range grid.CollidingWith(self.Padded(padding)) {
				collision.SetCollisionWith(other.ID, geo.SideOf(self, other))
			}
		}

		collision.Update()
	})
}
