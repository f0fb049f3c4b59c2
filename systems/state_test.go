package systems

import (
	"testing"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/ecs"
)

func press(actions ...cfg.ActionID) InputSample {
	var s InputSample
	for _, a := range actions {
		s.Pressed[a] = true
	}
	return s
}

func TestApplyInputAxes(t *testing.T) {
	tests := []struct {
		name   string
		sample InputSample
		want   float64
	}{
		{"right", press(cfg.ActionMoveRight), 1},
		{"left", press(cfg.ActionMoveLeft), -1},
		{"both cancel", press(cfg.ActionMoveLeft, cfg.ActionMoveRight), 0},
		{"stick", InputSample{Sticks: [cfg.AxisCount]float64{0.5}}, 0.5},
		{"stick in deadzone", InputSample{Sticks: [cfg.AxisCount]float64{0.1}}, 0},
		{"stick clamped", InputSample{Sticks: [cfg.AxisCount]float64{-1.5}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)

			ApplyInput(e, tt.sample)

			assert.Equal(t, tt.want, GetOrCreateInput(e).Axis(cfg.AxisPlayerX))
		})
	}
}

func TestApplyInputButtonsOverrideStick(t *testing.T) {
	e := newTestECS(t)
	s := press(cfg.ActionMoveLeft)
	s.Sticks[cfg.AxisPlayerX] = 0.8

	ApplyInput(e, s)

	assert.Equal(t, -1.0, GetOrCreateInput(e).Axis(cfg.AxisPlayerX))
}

func TestApplyInputEdges(t *testing.T) {
	e := newTestECS(t)
	input := GetOrCreateInput(e)

	ApplyInput(e, press(cfg.ActionJump))
	assert.True(t, input.JustPressed(cfg.ActionJump))

	ApplyInput(e, press(cfg.ActionJump))
	assert.False(t, input.JustPressed(cfg.ActionJump))
	assert.True(t, input.IsDown(cfg.ActionJump))

	ApplyInput(e, InputSample{UsedPad: true})
	assert.True(t, input.JustReleased(cfg.ActionJump))
	assert.Equal(t, components.InputGamepad, input.LastInputMethod)
}

func TestPauseToggles(t *testing.T) {
	e := newTestECS(t)
	state := GetOrCreateGameState(e)
	state.Set(cfg.StateIngame)

	ApplyInput(e, press(cfg.ActionPause))
	UpdatePause(e)
	assert.Equal(t, cfg.StatePaused, state.Current)

	// Holding pause does not toggle again
	ApplyInput(e, press(cfg.ActionPause))
	UpdatePause(e)
	assert.Equal(t, cfg.StatePaused, state.Current)

	ApplyInput(e, InputSample{})
	ApplyInput(e, press(cfg.ActionPause))
	UpdatePause(e)
	assert.Equal(t, cfg.StateIngame, state.Current)
	assert.Equal(t, cfg.StatePaused, state.Previous)
}

func TestPauseIgnoredOutsideGameplay(t *testing.T) {
	e := newTestECS(t)

	ApplyInput(e, press(cfg.ActionPause))
	UpdatePause(e)

	assert.Equal(t, cfg.StateStartup, GetOrCreateGameState(e).Current)
}

func TestQuit(t *testing.T) {
	e := newTestECS(t)
	state := GetOrCreateGameState(e)
	state.Set(cfg.StateIngame)

	UpdateGameState(e)
	UpdateGameState(e)
	assert.Equal(t, 2, state.Ticks)

	ApplyInput(e, press(cfg.ActionQuit))
	UpdateGameState(e)
	assert.Equal(t, cfg.StateQuit, state.Current)
}

func TestGameplayChecks(t *testing.T) {
	e := newTestECS(t)
	state := GetOrCreateGameState(e)
	runs := 0
	system := WithGameplayChecks(func(*ecs.ECS) { runs++ })

	system(e)
	state.Set(cfg.StateIngame)
	system(e)
	state.Set(cfg.StatePaused)
	system(e)

	assert.Equal(t, 1, runs)
}
