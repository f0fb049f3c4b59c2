package geo

import "github.com/yohamta/donburi/features/math"

// Axis is one of the two movement axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ForEachAxis calls fn for X, then Y. Movement resolution relies on this order
// being the same every tick.
func ForEachAxis(fn func(Axis)) {
	fn(AxisX)
	fn(AxisY)
}

func (a Axis) IsX() bool { return a == AxisX }
func (a Axis) IsY() bool { return a == AxisY }

func (a Axis) String() string {
	if a == AxisX {
		return "X"
	}
	return "Y"
}

// Of returns the component of v along a.
func (a Axis) Of(v math.Vec2) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Y
}

// Set overwrites the component of v along a.
func (a Axis) Set(v *math.Vec2, value float64) {
	if a == AxisX {
		v.X = value
	} else {
		v.Y = value
	}
}

// Add adds delta to the component of v along a.
func (a Axis) Add(v *math.Vec2, delta float64) {
	a.Set(v, a.Of(*v)+delta)
}
