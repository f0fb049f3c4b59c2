package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/automoto/wallhop/geo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// sizeOf returns the entity's Size, or nil when it collides as a point.
func sizeOf(e *donburi.Entry) *math.Vec2 {
	if !e.HasComponent(components.Size) {
		return nil
	}
	size := *components.Size.Get(e)
	return &size
}

// rectAt builds e's rectangle as if it stood at pos.
func rectAt[T any](e *donburi.Entry, pos math.Vec2) geo.Rect[T] {
	return geo.NewRect[T](e.Entity(), pos, sizeOf(e))
}

// rectOf builds e's rectangle at its current position.
func rectOf[T any](e *donburi.Entry) geo.Rect[T] {
	return rectAt[T](e, *components.Position.Get(e))
}
