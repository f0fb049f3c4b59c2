package systems

import (
	"math"

	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/geo"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// MoveEntities integrates velocity into position. Non-solid entities move
// freely; solid entities sweep each axis in unit steps against a snapshot of
// every solid entity, stopping at the first blocked step.
func MoveEntities(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	moveWithoutCollision(ecs.World, dt)
	moveWithCollision(ecs.World, dt)
}

func moveWithoutCollision(w donburi.World, dt float64) {
	components.Velocity.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(tags.Solid) || !e.HasComponent(components.Position) {
			return
		}
		vel := components.Velocity.Get(e)
		pos := components.Position.Get(e)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
}

// solidGrid snapshots every solid entity. The payload marks pushable ones.
func solidGrid(w donburi.World) *geo.Grid[bool] {
	var rects []geo.Rect[bool]
	tags.Solid.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Position) {
			return
		}
		rects = append(rects, geo.NewRectWithCustom(
			e.Entity(),
			*components.Position.Get(e),
			sizeOf(e),
			e.HasComponent(tags.Pushable),
		))
	})
	return geo.NewGrid(rects)
}

// pushes accumulates the signed unit nudges owed to pushed entities.
type pushes map[donburi.Entity]dmath.Vec2

func (p pushes) add(hits []geo.Rect[bool], axis geo.Axis, amount float64) {
	for _, hit := range hits {
		v := p[hit.ID]
		axis.Add(&v, amount)
		p[hit.ID] = v
	}
}

// stepResult is the outcome of one attempted step.
type stepResult int

const (
	stepMoved stepResult = iota
	stepPushed
	stepBlocked
)

func moveWithCollision(w donburi.World, dt float64) {
	grid := solidGrid(w)
	pending := pushes{}

	tags.Solid.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Velocity) || !e.HasComponent(components.Position) {
			return
		}
		vel := components.Velocity.Get(e)
		pos := components.Position.Get(e)
		canPush := e.HasComponent(tags.Push)

		// try attempts to move pos by step along axis. A blocked step still
		// closes the gap to the nearest blocking edge.
		try := func(axis geo.Axis, step, pushAmount float64) stepResult {
			next := *pos
			axis.Add(&next, step)
			hits := grid.CollidingWith(rectAt[bool](e, next))
			if len(hits) == 0 {
				*pos = next
				return stepMoved
			}
			if canPush && allPushable(hits) {
				pending.add(hits, axis, pushAmount)
				return stepPushed
			}
			closeGap(grid, e, pos, axis, step, hits)
			return stepBlocked
		}

		geo.ForEachAxis(func(axis geo.Axis) {
			d := axis.Of(*vel) * dt
			steps := int(math.Abs(d))
			sign := signum(d)
			rem := math.Mod(d, 1)
			if cfg.Physics.InclusiveStepBound {
				steps++
			}

			blocked := false
			for i := 0; i < steps; i++ {
				if try(axis, sign, sign) == stepBlocked {
					blocked = sign != 0
					break
				}
			}
			if rem != 0 && try(axis, rem, sign) == stepBlocked {
				blocked = true
			}

			if blocked {
				axis.Set(vel, 0)
			}
		})
	})

	// Pushed entities are moved without checking their own collisions.
	for id, delta := range pending {
		if !w.Valid(id) {
			continue
		}
		e := w.Entry(id)
		if !e.HasComponent(tags.Pushable) || !e.HasComponent(components.Position) {
			continue
		}
		pos := components.Position.Get(e)
		pos.X += delta.X
		pos.Y += delta.Y
	}
}

// closeGap moves pos toward the nearest of hits along axis, by at most |step|,
// so a blocked mover ends up touching instead of hovering short of the wall.
// The move is dropped if rounding would leave it overlapping anything.
func closeGap(grid *geo.Grid[bool], e *donburi.Entry, pos *dmath.Vec2, axis geo.Axis, step float64, hits []geo.Rect[bool]) {
	cur := rectAt[bool](e, *pos)
	free := math.Abs(step)
	for _, hit := range hits {
		if d := gapTo(cur, hit, axis, step); d < free {
			free = d
		}
	}
	if free <= 0 {
		return
	}

	next := *pos
	axis.Add(&next, free*signum(step))
	if grid.CollidesAny(rectAt[bool](e, next)) {
		return
	}
	*pos = next
}

// gapTo is the distance from cur to hit in the direction of step.
func gapTo(cur, hit geo.Rect[bool], axis geo.Axis, step float64) float64 {
	switch {
	case axis.IsX() && step > 0:
		return hit.Left - cur.Right
	case axis.IsX():
		return cur.Left - hit.Right
	case step > 0:
		return hit.Bottom - cur.Top
	default:
		return cur.Bottom - hit.Top
	}
}

func allPushable(hits []geo.Rect[bool]) bool {
	for _, hit := range hits {
		if !hit.CustomOr(false) {
			return false
		}
	}
	return true
}
