package systems

import (
	"testing"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestGravityDisablesDecreaseOnItsAxis(t *testing.T) {
	e := newTestECS(t)
	body := spawn(e, math.NewVec2(0, 0), vec(1, 1),
		components.Velocity, components.Gravity, components.DecreaseVelocity)
	components.Gravity.SetValue(body, math.NewVec2(0, -600))
	components.DecreaseVelocity.SetValue(body, components.NewDecreaseVelocity(math.NewVec2(600, 600)))
	setVel(body, 100, 0)

	UpdateGravity(e)

	assert.InDelta(t, -10, velOf(body).Y, 1e-9)
	decr := components.DecreaseVelocity.Get(body)
	assert.False(t, decr.DecreaseYPos)
	assert.False(t, decr.DecreaseYNeg)
	assert.True(t, decr.DecreaseXPos)

	UpdateDecreaseVelocities(e)

	assert.InDelta(t, 90, velOf(body).X, 1e-9)
	assert.InDelta(t, -10, velOf(body).Y, 1e-9)
	assert.True(t, decr.DecreaseYNeg, "flags are re-enabled after each tick")
}

func TestDecreaseDoesNotOvershoot(t *testing.T) {
	e := newTestECS(t)
	body := spawn(e, math.NewVec2(0, 0), vec(1, 1), components.Velocity, components.DecreaseVelocity)
	components.DecreaseVelocity.SetValue(body, components.NewDecreaseVelocity(math.NewVec2(600, 600)))
	setVel(body, 5, -3)

	UpdateDecreaseVelocities(e)

	assert.Equal(t, math.NewVec2(0, 0), velOf(body))
}

func TestDecreaseRespectsDirectionFlags(t *testing.T) {
	e := newTestECS(t)
	body := spawn(e, math.NewVec2(0, 0), vec(1, 1), components.Velocity, components.DecreaseVelocity)
	decr := components.NewDecreaseVelocity(math.NewVec2(600, 600))
	decr.DecreaseXPos = false
	components.DecreaseVelocity.SetValue(body, decr)
	setVel(body, 100, 0)

	UpdateDecreaseVelocities(e)
	assert.Equal(t, 100.0, velOf(body).X)

	setVel(body, -100, 0)
	components.DecreaseVelocity.Get(body).DecreaseXPos = false

	UpdateDecreaseVelocities(e)
	assert.InDelta(t, -90, velOf(body).X, 1e-9, "only the positive direction was disabled")
}

func TestLimitVelocities(t *testing.T) {
	e := newTestECS(t)
	body := spawn(e, math.NewVec2(0, 0), vec(1, 1), components.Velocity, components.MaxVelocity)
	components.MaxVelocity.SetValue(body, components.NewMaxVelocity(cfg.AxisLimits{X: cfg.Limit(400)}))
	setVel(body, -900, 5000)

	UpdateLimitVelocities(e)

	assert.Equal(t, math.NewVec2(-400, 5000), velOf(body))
}

func TestClock(t *testing.T) {
	e := newTestECS(t)

	UpdateClock(e)
	clock := GetOrCreateClock(e)
	assert.InDelta(t, 1.0/60, clock.DT, 1e-12)
	assert.Equal(t, uint64(1), clock.Tick)

	cfg.C.TPS = 5
	UpdateClock(e)
	assert.Equal(t, cfg.Physics.MaxDeltaTime, clock.DT)
}
