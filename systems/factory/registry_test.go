package factory

import (
	"testing"

	"github.com/automoto/wallhop/components"
	"github.com/automoto/wallhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newEntry(t *testing.T) *donburi.Entry {
	t.Helper()
	w := donburi.NewWorld()
	return w.Entry(w.Create(components.Position))
}

func TestParseComponent(t *testing.T) {
	tests := []struct {
		in         string
		wantName   string
		wantParams string
		wantErr    bool
	}{
		{"Solid", "Solid", "", false},
		{"  Push ", "Push", "", false},
		{`Velocity{"x": 1, "y": 2}`, "Velocity", `{"x": 1, "y": 2}`, false},
		{"Gravity {y: -10}", "Gravity", "{y: -10}", false},
		{"Velocity{x: 1", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			name, params, err := ParseComponent(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadParams)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestApplyTags(t *testing.T) {
	e := newEntry(t)
	require.NoError(t, ApplyComponents(e, []string{"Solid", "Push", "Pushable", "JumpRecharge", "CheckCollision"}))

	for _, tag := range []donburi.IComponentType{tags.Solid, tags.Push, tags.Pushable, tags.JumpRecharge, tags.CheckCollision} {
		assert.True(t, e.HasComponent(tag))
	}

	// Applying twice is harmless
	require.NoError(t, ApplyComponent(e, "Solid"))
}

func TestApplyValueComponents(t *testing.T) {
	e := newEntry(t)
	require.NoError(t, ApplyComponents(e, []string{
		`Velocity{"x": 10, "y": -2}`,
		"Gravity{y: -100}",
		"Size{x: 16, y: 8}",
		"MaxVelocity{x: 50}",
		"DecreaseVelocity{x: 3}",
		"Collision",
	}))

	assert.Equal(t, math.NewVec2(10, -2), *components.Velocity.Get(e))
	assert.Equal(t, math.NewVec2(0, -100), *components.Gravity.Get(e))
	assert.Equal(t, math.NewVec2(16, 8), *components.Size.Get(e))

	limits := components.MaxVelocity.Get(e)
	require.NotNil(t, limits.X)
	assert.Equal(t, 50.0, *limits.X)
	assert.Nil(t, limits.Y)

	decr := components.DecreaseVelocity.Get(e)
	assert.Equal(t, 3.0, decr.Amount.X)
	assert.True(t, decr.DecreaseXPos)

	assert.Equal(t, 0, components.Collision.Get(e).Len())
}

func TestApplyOverwritesExisting(t *testing.T) {
	e := newEntry(t)
	require.NoError(t, ApplyComponent(e, "Velocity{x: 1}"))
	require.NoError(t, ApplyComponent(e, "Velocity{x: 2}"))
	assert.Equal(t, 2.0, components.Velocity.Get(e).X)
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		entry string
		want  error
	}{
		{"Teleporter", ErrUnknownComponent},
		{"Solid{x: 1}", ErrBadParams},
		{"Velocity{z: 1}", ErrBadParams},
		{"Velocity{x: fast}", ErrBadParams},
		{"Collision{}", ErrBadParams},
	}
	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			err := ApplyComponent(newEntry(t), tt.entry)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestComponentNamesSorted(t *testing.T) {
	names := ComponentNames()
	assert.Len(t, names, len(ComponentRegistry))
	assert.IsIncreasing(t, names)
}

func newECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}
