package systems

import (
	"github.com/automoto/wallhop/components"
	"github.com/automoto/wallhop/geo"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// deadzoneStrips are the four bands between the camera's outer edge and its
// inner deadzone.
type deadzoneStrips struct {
	top, bottom, left, right geo.Rect[struct{}]
}

func newDeadzoneStrips(id donburi.Entity, center, size, inner math.Vec2) deadzoneStrips {
	sizeX := math.NewVec2((size.X-inner.X)*0.5, size.Y)
	sizeY := math.NewVec2(size.X, (size.Y-inner.Y)*0.5)
	return deadzoneStrips{
		top:    geo.NewRect[struct{}](id, math.NewVec2(center.X, center.Y+size.Y*0.5-sizeY.Y*0.5), &sizeY),
		bottom: geo.NewRect[struct{}](id, math.NewVec2(center.X, center.Y-size.Y*0.5+sizeY.Y*0.5), &sizeY),
		left:   geo.NewRect[struct{}](id, math.NewVec2(center.X-size.X*0.5+sizeX.X*0.5, center.Y), &sizeX),
		right:  geo.NewRect[struct{}](id, math.NewVec2(center.X+size.X*0.5-sizeX.X*0.5, center.Y), &sizeX),
	}
}

// UpdateCamera keeps the player inside the camera's deadzone. Leaving the
// deadzone snaps the camera so the player sits on its edge; inside it the
// camera eases toward the player.
func UpdateCamera(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Position) {
		return // no player, skip camera update
	}
	playerPos := *components.Position.Get(playerEntry)
	dt := deltaTime(ecs)

	components.Camera.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Position) || !e.HasComponent(components.Size) {
			return
		}
		camera := components.Camera.Get(e)
		pos := components.Position.Get(e)
		size := *components.Size.Get(e)

		// Bottom-left position that would centre the player
		centered := math.NewVec2(playerPos.X-size.X*0.5, playerPos.Y-size.Y*0.5)

		if camera.InnerSize == nil {
			*pos = centered
			return
		}
		inner := *camera.InnerSize

		cameraCenter := math.NewVec2(pos.X+size.X*0.5, pos.Y+size.Y*0.5)
		player := geo.NewRect[struct{}](playerEntry.Entity(), playerPos, nil)
		strips := newDeadzoneStrips(e.Entity(), cameraCenter, size, inner)

		var vel *math.Vec2
		if e.HasComponent(components.Velocity) {
			vel = components.Velocity.Get(e)
		}

		snappedX, snappedY := false, false
		if geo.Overlaps(player, strips.top) {
			pos.Y = centered.Y - inner.Y*0.5
			snappedY = true
		} else if geo.Overlaps(player, strips.bottom) {
			pos.Y = centered.Y + inner.Y*0.5
			snappedY = true
		}
		if geo.Overlaps(player, strips.left) {
			pos.X = centered.X + inner.X*0.5
			snappedX = true
		} else if geo.Overlaps(player, strips.right) {
			pos.X = centered.X - inner.X*0.5
			snappedX = true
		}

		if vel == nil {
			return
		}
		if snappedX || snappedY {
			if snappedX {
				vel.X = 0
			}
			if snappedY {
				vel.Y = 0
			}
			return
		}

		geo.ForEachAxis(func(axis geo.Axis) {
			diff := axis.Of(playerPos) - axis.Of(cameraCenter)
			dist := abs(diff)
			if dist <= camera.MoveInPadding {
				axis.Set(vel, 0)
				return
			}
			axis.Set(vel, signum(diff)*axis.Of(camera.BaseSpeed)*dist*dt)
		})
	})
}
