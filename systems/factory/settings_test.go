package factory

import (
	"testing"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestApplySettingsReachesPlayer(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	e := newECS()
	player := CreatePlayer(e, math.NewVec2(10, 20))

	p := components.Player.Get(player)
	p.IsRunButtonDown = true
	p.HasDoubleJumped = true
	p.IsJumping = true
	components.DecreaseVelocity.Get(player).DecreaseXPos = false

	require.NoError(t, cfg.Parse([]byte(`
player:
  acceleration: {x: 9000}
  run_max_velocity: {x: 1200}
  decr_velocity: {x: 50}
  size: {x: 12, y: 24}
  jump_gravity: {x: 0, y: -300}
`)))
	ApplySettings(e)

	assert.Equal(t, 9000.0, p.Acceleration.X)
	assert.Equal(t, 1200.0, *components.MaxVelocity.Get(player).X, "running, so the run cap applies")
	decr := components.DecreaseVelocity.Get(player)
	assert.Equal(t, math.NewVec2(50, 0), decr.Amount)
	assert.False(t, decr.DecreaseXPos, "per-tick flags are kept")
	assert.Equal(t, math.NewVec2(12, 24), *components.Size.Get(player))
	assert.Equal(t, math.NewVec2(0, -300), *components.Gravity.Get(player), "jump gravity while jumping")
	assert.Equal(t, math.NewVec2(10, 20), *components.Position.Get(player))
	assert.True(t, p.HasDoubleJumped)
}

func TestApplySettingsKeepsCameraCentre(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	e := newECS()
	camera := CreateCamera(e, math.NewVec2(100, 100))

	require.NoError(t, cfg.Parse([]byte(`
camera:
  size: {x: 300, y: 200}
  inner_size: {x: 100, y: 50}
  move_in_padding: 4
`)))
	ApplySettings(e)

	c := components.Camera.Get(camera)
	assert.Equal(t, math.NewVec2(100, 50), *c.InnerSize)
	assert.Equal(t, 4.0, c.MoveInPadding)
	assert.Equal(t, math.NewVec2(300, 200), *components.Size.Get(camera))
	assert.Equal(t, math.NewVec2(-50, 0), *components.Position.Get(camera))
}
