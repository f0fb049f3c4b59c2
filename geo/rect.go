// Package geo holds the collision geometry shared by the movement, collision,
// player and camera systems. Coordinates are y-up.
package geo

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned collision rectangle owned by an entity. Custom
// carries optional per-rectangle data such as a pushable flag.
type Rect[T any] struct {
	ID     donburi.Entity
	Top    float64
	Bottom float64
	Left   float64
	Right  float64

	Custom    T
	HasCustom bool
}

// NewRect builds a rectangle centred on pos. A nil size yields a point.
func NewRect[T any](id donburi.Entity, pos math.Vec2, size *math.Vec2) Rect[T] {
	if size == nil {
		return Rect[T]{
			ID:     id,
			Top:    pos.Y,
			Bottom: pos.Y,
			Left:   pos.X,
			Right:  pos.X,
		}
	}
	return Rect[T]{
		ID:     id,
		Top:    pos.Y + size.Y*0.5,
		Bottom: pos.Y - size.Y*0.5,
		Left:   pos.X - size.X*0.5,
		Right:  pos.X + size.X*0.5,
	}
}

// NewRectWithCustom is NewRect with a payload attached.
func NewRectWithCustom[T any](id donburi.Entity, pos math.Vec2, size *math.Vec2, custom T) Rect[T] {
	r := NewRect[T](id, pos, size)
	r.Custom = custom
	r.HasCustom = true
	return r
}

// CustomOr returns the payload, or fallback when none is attached.
func (r Rect[T]) CustomOr(fallback T) T {
	if !r.HasCustom {
		return fallback
	}
	return r.Custom
}

// Padded returns r grown by p on every edge.
func (r Rect[T]) Padded(p float64) Rect[T] {
	r.Top += p
	r.Bottom -= p
	r.Left -= p
	r.Right += p
	return r
}

func (r Rect[T]) Width() float64  { return r.Right - r.Left }
func (r Rect[T]) Height() float64 { return r.Top - r.Bottom }

func (r Rect[T]) Center() math.Vec2 {
	return math.NewVec2((r.Left+r.Right)*0.5, (r.Top+r.Bottom)*0.5)
}

// Overlaps reports whether a and b collide. Rectangles with the same ID never
// collide. The intervals are half-open: a rectangle whose left edge sits exactly
// on another's right edge does not collide with it, but any shared interior
// does, so the result is symmetric.
func Overlaps[A, B any](a Rect[A], b Rect[B]) bool {
	if a.ID == b.ID {
		return false
	}
	horizontal := (a.Left >= b.Left && a.Left < b.Right) ||
		(a.Left <= b.Left && a.Right > b.Left)
	vertical := (a.Top <= b.Top && a.Top > b.Bottom) ||
		(a.Top >= b.Top && a.Bottom < b.Top)
	return horizontal && vertical
}

// OverlapX is the width of the horizontal interior a and b share. Zero means
// touching edges and a negative value is the gap between them.
func OverlapX[A, B any](a Rect[A], b Rect[B]) float64 {
	return min(a.Right, b.Right) - max(a.Left, b.Left)
}

// OverlapY is OverlapX for the vertical extent.
func OverlapY[A, B any](a Rect[A], b Rect[B]) float64 {
	return min(a.Top, b.Top) - max(a.Bottom, b.Bottom)
}

// SideOf classifies where b lies relative to a. Rectangles sharing interior on
// both axes are SideInner. Rectangles sharing vertical extent are on the Left
// or Right and rectangles sharing horizontal extent are on the Top or Bottom.
// A corner contact goes to the axis it is closer to touching on, so the tile
// below a seam in a wall still reads as wall. Exact corner ties are Top or
// Bottom.
func SideOf[A, B any](a Rect[A], b Rect[B]) Side {
	overlapX := OverlapX(a, b)
	overlapY := OverlapY(a, b)
	ac, bc := a.Center(), b.Center()

	var horizontal bool
	switch {
	case overlapX > 0 && overlapY > 0:
		return SideInner
	case overlapY > 0:
		horizontal = true
	case overlapX > 0:
		// above or below
	default:
		horizontal = overlapX > overlapY
	}

	if horizontal {
		if bc.X < ac.X {
			return SideLeft
		}
		return SideRight
	}
	if bc.Y < ac.Y {
		return SideBottom
	}
	return SideTop
}
