package systems

import (
	"testing"

	"github.com/automoto/wallhop/components"
	"github.com/automoto/wallhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// newCameraScene places a 600x400 camera with a 200x150 deadzone at the
// origin, so its centre is (300, 200).
func newCameraScene(t *testing.T, inner *math.Vec2) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	e := newTestECS(t)

	player := spawn(e, math.NewVec2(300, 200), vec(16, 32), tags.Player)
	camera := spawn(e, math.NewVec2(0, 0), vec(600, 400), components.Camera, components.Velocity)
	components.Camera.SetValue(camera, components.CameraData{
		InnerSize:     inner,
		BaseSpeed:     math.NewVec2(6, 6),
		MoveInPadding: 10,
	})
	return e, player, camera
}

func TestCameraSnapsOutsideDeadzone(t *testing.T) {
	tests := []struct {
		name     string
		player   math.Vec2
		wantPos  math.Vec2
		wantVelX bool
		wantVelY bool
	}{
		{"right", math.NewVec2(550, 200), math.NewVec2(150, 0), true, false},
		{"left", math.NewVec2(50, 200), math.NewVec2(-150, 0), true, false},
		{"top", math.NewVec2(300, 350), math.NewVec2(0, 75), false, true},
		{"bottom", math.NewVec2(300, 20), math.NewVec2(0, -105), false, true},
		{"corner", math.NewVec2(580, 390), math.NewVec2(180, 115), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, player, camera := newCameraScene(t, vec(200, 150))
			components.Position.SetValue(player, tt.player)
			setVel(camera, 7, 7)

			UpdateCamera(e)

			assert.Equal(t, tt.wantPos, posOf(camera))
			vel := velOf(camera)
			if tt.wantVelX {
				assert.Equal(t, 0.0, vel.X)
			} else {
				assert.Equal(t, 7.0, vel.X)
			}
			if tt.wantVelY {
				assert.Equal(t, 0.0, vel.Y)
			} else {
				assert.Equal(t, 7.0, vel.Y)
			}
		})
	}
}

func TestCameraEasesInsideDeadzone(t *testing.T) {
	e, player, camera := newCameraScene(t, vec(200, 150))
	components.Position.SetValue(player, math.NewVec2(360, 195))

	UpdateCamera(e)

	assert.Equal(t, math.NewVec2(0, 0), posOf(camera))
	vel := velOf(camera)
	assert.InDelta(t, 6*60*testDT, vel.X, 1e-9)
	assert.Equal(t, 0.0, vel.Y, "within move-in padding")
}

func TestCameraEaseTowardNegative(t *testing.T) {
	e, player, camera := newCameraScene(t, vec(200, 150))
	components.Position.SetValue(player, math.NewVec2(300, 150))

	UpdateCamera(e)

	assert.InDelta(t, -6*50*testDT, velOf(camera).Y, 1e-9)
}

func TestCameraWithoutDeadzoneCentres(t *testing.T) {
	e, player, camera := newCameraScene(t, nil)
	components.Position.SetValue(player, math.NewVec2(1000, -40))

	UpdateCamera(e)

	assert.Equal(t, math.NewVec2(700, -240), posOf(camera))
}

func TestCameraWithoutPlayer(t *testing.T) {
	e, player, camera := newCameraScene(t, vec(200, 150))
	e.World.Remove(player.Entity())

	UpdateCamera(e)

	assert.Equal(t, math.NewVec2(0, 0), posOf(camera))
}

func TestParallaxFollowsCameraCentre(t *testing.T) {
	e, _, _ := newCameraScene(t, vec(200, 150))
	layer := spawn(e, math.NewVec2(0, 0), vec(600, 400), tags.Parallax, components.Parallax)
	components.Parallax.SetValue(layer, components.ParallaxData{
		SpeedMult: math.NewVec2(0.5, 0),
		Offset:    math.NewVec2(10, 20),
	})

	UpdateParallax(e)

	assert.Equal(t, math.NewVec2(160, 20), posOf(layer))
}
