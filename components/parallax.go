package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParallaxData makes a background layer trail the camera.
type ParallaxData struct {
	SpeedMult math.Vec2 // 0 stays fixed in the world, 1 moves with the camera
	Offset    math.Vec2
}

var Parallax = donburi.NewComponentType[ParallaxData]()
