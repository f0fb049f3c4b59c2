package components

import (
	"testing"

	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var testTag = donburi.NewTag().SetName("ComponentsTest")

func entities(n int) []donburi.Entity {
	w := donburi.NewWorld()
	out := make([]donburi.Entity, n)
	for i := range out {
		out[i] = w.Create(testTag)
	}
	return out
}

func TestCollisionLifecycle(t *testing.T) {
	ids := entities(1)
	other := ids[0]
	c := NewCollision()

	// Tick N: hit
	c.SetCollisionWith(other, geo.SideTop)
	c.Update()
	entry, ok := c.CollisionWith(other)
	require.True(t, ok)
	assert.Equal(t, CollisionEnter, entry.State)
	assert.Equal(t, geo.SideTop, entry.Side)
	assert.True(t, c.InCollisionWith(other))

	// Tick N+1: no hit
	c.Update()
	entry, ok = c.CollisionWith(other)
	require.True(t, ok)
	assert.Equal(t, CollisionLeave, entry.State)
	assert.False(t, c.InCollisionWith(other))
	assert.True(t, c.InCollision(), "leaving entries still count")

	// Tick N+2: removed
	c.Update()
	_, ok = c.CollisionWith(other)
	assert.False(t, ok)
	assert.False(t, c.InCollision())
	assert.False(t, c.InCollisionWith(other))
}

func TestCollisionSteady(t *testing.T) {
	other := entities(1)[0]
	c := NewCollision()

	c.SetCollisionWith(other, geo.SideBottom)
	c.Update()
	c.SetCollisionWith(other, geo.SideLeft)
	c.Update()

	entry, ok := c.CollisionWith(other)
	require.True(t, ok)
	assert.Equal(t, CollisionSteady, entry.State)
	assert.Equal(t, geo.SideLeft, entry.Side, "side is overwritten by the latest hit")
}

func TestCollisionReenterFromLeave(t *testing.T) {
	other := entities(1)[0]
	c := NewCollision()

	c.SetCollisionWith(other, geo.SideBottom)
	c.Update()
	c.Update()
	entry, _ := c.CollisionWith(other)
	require.Equal(t, CollisionLeave, entry.State)

	c.SetCollisionWith(other, geo.SideBottom)
	c.Update()
	entry, ok := c.CollisionWith(other)
	require.True(t, ok)
	assert.Equal(t, CollisionEnter, entry.State)
}

func TestCollisionZeroValueIsUsable(t *testing.T) {
	other := entities(1)[0]
	var c CollisionData

	assert.False(t, c.InCollision())
	_, ok := c.CollisionWith(other)
	assert.False(t, ok)
	c.Update()

	c.SetCollisionWith(other, geo.SideInner)
	assert.Equal(t, 1, c.Len())
}

func TestCollisionIndependentEntries(t *testing.T) {
	ids := entities(2)
	c := NewCollision()

	c.SetCollisionWith(ids[0], geo.SideBottom)
	c.SetCollisionWith(ids[1], geo.SideRight)
	c.Update()

	c.SetCollisionWith(ids[0], geo.SideBottom)
	c.Update()

	assert.True(t, c.InCollisionWith(ids[0]))
	assert.False(t, c.InCollisionWith(ids[1]))

	seen := map[donburi.Entity]CollisionState{}
	c.Each(func(id donburi.Entity, e CollisionEntry) { seen[id] = e.State })
	assert.Equal(t, map[donburi.Entity]CollisionState{
		ids[0]: CollisionSteady,
		ids[1]: CollisionLeave,
	}, seen)

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestPlayerCurrentSets(t *testing.T) {
	p := NewPlayer()
	assert.Equal(t, 1500.0, p.CurrentAcceleration().X)
	assert.Equal(t, 400.0, *p.CurrentMaxVelocity().X)

	p.IsRunButtonDown = true
	assert.Equal(t, 2000.0, p.CurrentAcceleration().X)
	assert.Equal(t, 800.0, *p.CurrentMaxVelocity().X)
	assert.Nil(t, p.CurrentMaxVelocity().Y)
}

func TestInputEdges(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionJump] = true
	assert.True(t, in.JustPressed(cfg.ActionJump))

	in.Advance()
	assert.True(t, in.IsDown(cfg.ActionJump))
	assert.False(t, in.JustPressed(cfg.ActionJump))

	in.Advance()
	in.Current[cfg.ActionJump] = false
	assert.True(t, in.JustReleased(cfg.ActionJump))
}

func TestGameStateSet(t *testing.T) {
	g := GameStateData{Current: cfg.StateIngame, Ticks: 12}
	g.Set(cfg.StateIngame)
	assert.Equal(t, 12, g.Ticks)

	g.Set(cfg.StatePaused)
	assert.Equal(t, cfg.StatePaused, g.Current)
	assert.Equal(t, cfg.StateIngame, g.Previous)
	assert.Equal(t, 0, g.Ticks)
}
