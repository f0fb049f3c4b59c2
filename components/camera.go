package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData marks the camera entity. The camera's Position is its
// bottom-left corner and its Size the viewport.
type CameraData struct {
	InnerSize     *math.Vec2 // Deadzone; nil centres the camera on the player every tick
	BaseSpeed     math.Vec2  // Move-in speed while the player is inside the deadzone
	MoveInPadding float64
}

var Camera = donburi.NewComponentType[CameraData]()
