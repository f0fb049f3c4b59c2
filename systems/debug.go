package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSolid    = color.RGBA{100, 100, 100, 255} // Grey
	colorPlayer   = color.RGBA{0, 0, 255, 255}     // Blue
	colorPushable = color.RGBA{255, 165, 0, 255}   // Orange
	colorRecharge = color.RGBA{0, 255, 0, 255}     // Green
	colorOther    = color.RGBA{0, 255, 255, 255}   // Cyan
	colorDeadzone = color.RGBA{255, 0, 255, 120}
)

// UpdateDebug toggles the collision overlay on F1.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.DrawCollision = !cfg.Debug.DrawCollision
	}
}

// screenTransform maps y-up world coordinates into the y-down screen through
// the camera viewport.
type screenTransform struct {
	camX, camY     float64
	scaleX, scaleY float64
	height         float64
}

func newScreenTransform(ecs *ecs.ECS, screen *ebiten.Image) (screenTransform, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Position) || !cameraEntry.HasComponent(components.Size) {
		return screenTransform{}, false // No camera yet
	}
	pos := components.Position.Get(cameraEntry)
	size := components.Size.Get(cameraEntry)
	if size.X == 0 || size.Y == 0 {
		return screenTransform{}, false
	}
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return screenTransform{
		camX:   pos.X,
		camY:   pos.Y,
		scaleX: width / size.X,
		scaleY: height / size.Y,
		height: height,
	}, true
}

func (t screenTransform) strokeRect(screen *ebiten.Image, left, bottom, right, top float64, c color.Color) {
	x := float32((left - t.camX) * t.scaleX)
	y := float32(t.height - (top-t.camY)*t.scaleY)
	w := float32((right - left) * t.scaleX)
	h := float32((top - bottom) * t.scaleY)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	vector.StrokeRect(screen, x, y, w, h, 1, c, false)
}

// DrawDebug outlines every collidable rectangle and the camera deadzone, and
// prints the player's movement flags.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawCollision {
		return
	}
	t, ok := newScreenTransform(ecs, screen)
	if !ok {
		return
	}

	components.Position.Each(ecs.World, func(e *donburi.Entry) {
		if !collidable(e) {
			return
		}
		r := rectOf[struct{}](e)
		t.strokeRect(screen, r.Left, r.Bottom, r.Right, r.Top, debugColor(e))
	})

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		if camera.InnerSize != nil {
			pos := components.Position.Get(cameraEntry)
			size := components.Size.Get(cameraEntry)
			inner := *camera.InnerSize
			left := pos.X + (size.X-inner.X)*0.5
			bottom := pos.Y + (size.Y-inner.Y)*0.5
			t.strokeRect(screen, left, bottom, left+inner.X, bottom+inner.Y, colorDeadzone)
		}
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok && playerEntry.HasComponent(components.Player) {
		p := components.Player.Get(playerEntry)
		vel := components.Velocity.Get(playerEntry)
		msg := fmt.Sprintf("TPS: %0.1f\nvel: %0.1f, %0.1f\nin air: %t\non wall: %t\ndouble jumped: %t\nrunning: %t",
			ebiten.ActualTPS(), vel.X, vel.Y, p.IsInAir, p.IsOnWall, p.HasDoubleJumped, p.IsRunButtonDown)
		if playerEntry.HasComponent(components.Collision) {
			c := components.Collision.Get(playerEntry)
			c.Each(func(other donburi.Entity, entry components.CollisionEntry) {
				msg += fmt.Sprintf("\n  %v: %s %s", other, entry.Side, entry.State)
			})
		}
		ebitenutil.DebugPrint(screen, msg)
	}
}

func debugColor(e *donburi.Entry) color.Color {
	switch {
	case e.HasComponent(tags.Player):
		return colorPlayer
	case e.HasComponent(tags.Pushable):
		return colorPushable
	case e.HasComponent(tags.JumpRecharge):
		return colorRecharge
	case e.HasComponent(tags.Solid):
		return colorSolid
	}
	return colorOther
}

