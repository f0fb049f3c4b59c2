package components

import (
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/geo"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Position is the centre of an entity in world units (y-up).
var Position = donburi.NewComponentType[math.Vec2]()

// Size is the full width and height of an entity. Entities without it
// collide as points.
var Size = donburi.NewComponentType[math.Vec2]()

// Velocity is in world units per second.
var Velocity = donburi.NewComponentType[math.Vec2]()

// Gravity is added to Velocity every tick, scaled by dt.
var Gravity = donburi.NewComponentType[math.Vec2]()

// MaxVelocityData caps |velocity| per axis. A nil axis is unlimited.
type MaxVelocityData struct {
	X *float64
	Y *float64
}

// NewMaxVelocity copies limits so later edits to the source don't leak in.
func NewMaxVelocity(l cfg.AxisLimits) MaxVelocityData {
	var m MaxVelocityData
	if l.X != nil {
		m.X = cfg.Limit(*l.X)
	}
	if l.Y != nil {
		m.Y = cfg.Limit(*l.Y)
	}
	return m
}

var MaxVelocity = donburi.NewComponentType[MaxVelocityData]()

// DecreaseVelocityData slows velocity toward zero by Amount per second.
// The four flags gate each axis direction for the current tick and are reset
// after the decrease is applied.
type DecreaseVelocityData struct {
	Amount math.Vec2

	DecreaseXPos bool
	DecreaseXNeg bool
	DecreaseYPos bool
	DecreaseYNeg bool
}

func NewDecreaseVelocity(amount math.Vec2) DecreaseVelocityData {
	d := DecreaseVelocityData{Amount: amount}
	d.Enable()
	return d
}

// Enable turns decreasing back on for every direction.
func (d *DecreaseVelocityData) Enable() {
	d.DecreaseXPos = true
	d.DecreaseXNeg = true
	d.DecreaseYPos = true
	d.DecreaseYNeg = true
}

var DecreaseVelocity = donburi.NewComponentType[DecreaseVelocityData]()

// ShouldDecrease reports whether velocity v on axis may be decreased this tick.
func (d *DecreaseVelocityData) ShouldDecrease(axis geo.Axis, v float64) bool {
	switch {
	case axis.IsX() && v > 0:
		return d.DecreaseXPos
	case axis.IsX() && v < 0:
		return d.DecreaseXNeg
	case axis.IsY() && v > 0:
		return d.DecreaseYPos
	case axis.IsY() && v < 0:
		return d.DecreaseYNeg
	}
	return false
}
