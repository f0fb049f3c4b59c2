package geo

import "github.com/yohamta/donburi"

// Grid is a read-only snapshot of collision rectangles for a single tick.
// Build a new one every tick; positions go stale as soon as entities move.
type Grid[T any] struct {
	rects []Rect[T]
}

func NewGrid[T any](rects []Rect[T]) *Grid[T] {
	return &Grid[T]{rects: rects}
}

func (g *Grid[T]) Len() int {
	return len(g.rects)
}

// Rects returns a copy of the grid's rectangles.
func (g *Grid[T]) Rects() []Rect[T] {
	out := make([]Rect[T], len(g.rects))
	copy(out, g.rects)
	return out
}

func (g *Grid[T]) RectByID(id donburi.Entity) (Rect[T], bool) {
	for _, r := range g.rects {
		if r.ID == id {
			return r, true
		}
	}
	return Rect[T]{}, false
}

// CollidesAny reports whether target collides with any rectangle in the grid.
func (g *Grid[T]) CollidesAny(target Rect[T]) bool {
	for _, r := range g.rects {
		if Overlaps(target, r) {
			return true
		}
	}
	return false
}

// CollidingWith returns every rectangle colliding with target, in grid order.
func (g *Grid[T]) CollidingWith(target Rect[T]) []Rect[T] {
	var out []Rect[T]
	for _, r := range g.rects {
		if Overlaps(target, r) {
			out = append(out, r)
		}
	}
	return out
}

// CollidingWithID is CollidingWith for the grid's own rectangle with the given
// ID. It returns nil when the ID is not in the grid.
func (g *Grid[T]) CollidingWithID(id donburi.Entity) []Rect[T] {
	target, ok := g.RectByID(id)
	if !ok {
		return nil
	}
	return g.CollidingWith(target)
}
