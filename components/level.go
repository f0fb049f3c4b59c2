package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type LevelData struct {
	Name        string
	Size        math.Vec2 // World units
	PlayerSpawn math.Vec2
}

var Level = donburi.NewComponentType[LevelData]()
