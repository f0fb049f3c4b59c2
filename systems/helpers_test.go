package systems

import (
	"testing"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const testDT = 1.0 / 60

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateClock(e).DT = testDT
	return e
}

// spawn creates an entity at pos. A nil size makes it a point.
func spawn(e *ecs.ECS, pos math.Vec2, size *math.Vec2, cs ...donburi.IComponentType) *donburi.Entry {
	all := append([]donburi.IComponentType{components.Position}, cs...)
	if size != nil {
		all = append(all, components.Size)
	}
	entry := e.World.Entry(e.World.Create(all...))
	components.Position.SetValue(entry, pos)
	if size != nil {
		components.Size.SetValue(entry, *size)
	}
	return entry
}

func vec(x, y float64) *math.Vec2 {
	v := math.NewVec2(x, y)
	return &v
}

func posOf(e *donburi.Entry) math.Vec2 {
	return *components.Position.Get(e)
}

func velOf(e *donburi.Entry) math.Vec2 {
	return *components.Velocity.Get(e)
}

func setVel(e *donburi.Entry, x, y float64) {
	components.Velocity.SetValue(e, math.NewVec2(x, y))
}

// unitDT makes one tick last one second so displacements equal velocities.
func unitDT(e *ecs.ECS) {
	GetOrCreateClock(e).DT = 1
}
