package components

import (
	"github.com/automoto/wallhop/geo"
	"github.com/yohamta/donburi"
)

// CollisionState is where a tracked collision is in its lifecycle. There is
// no stored "none" state; an entry that leaves and is not refreshed is
// removed.
type CollisionState int

const (
	CollisionEnter CollisionState = iota
	CollisionSteady
	CollisionLeave
)

func (s CollisionState) String() string {
	switch s {
	case CollisionEnter:
		return "Enter"
	case CollisionSteady:
		return "Steady"
	default:
		return "Leave"
	}
}

// CollisionEntry is what an entity knows about one other entity it touches.
type CollisionEntry struct {
	Side  geo.Side
	State CollisionState

	fresh bool
}

// CollisionData tracks every entity this entity has collided with recently.
// It is written by the collision system only: SetCollisionWith for every hit
// of the tick, then Update exactly once.
type CollisionData struct {
	entries map[donburi.Entity]*CollisionEntry
}

func NewCollision() CollisionData {
	return CollisionData{entries: make(map[donburi.Entity]*CollisionEntry)}
}

// SetCollisionWith records a hit with other for this tick.
func (c *CollisionData) SetCollisionWith(other donburi.Entity, side geo.Side) {
	if c.entries == nil {
		c.entries = make(map[donburi.Entity]*CollisionEntry)
	}

	e, ok := c.entries[other]
	if !ok {
		c.entries[other] = &CollisionEntry{Side: side, State: CollisionEnter, fresh: true}
		return
	}

	if e.State == CollisionLeave {
		e.State = CollisionEnter
	} else {
		e.State = CollisionSteady
	}
	e.Side = side
	e.fresh = true
}

// Update ends the tick. Entries that were not hit move to Leave, and entries
// already in Leave are dropped.
func (c *CollisionData) Update() {
	for id, e := range c.entries {
		if e.fresh {
			e.fresh = false
			continue
		}
		if e.State == CollisionLeave {
			delete(c.entries, id)
			continue
		}
		e.State = CollisionLeave
	}
}

// InCollision reports whether any entry exists, including ones in Leave.
func (c *CollisionData) InCollision() bool {
	return len(c.entries) > 0
}

// InCollisionWith reports whether other is tracked and not leaving.
func (c *CollisionData) InCollisionWith(other donburi.Entity) bool {
	e, ok := c.entries[other]
	return ok && e.State != CollisionLeave
}

// CollisionWith returns a copy of the entry for other.
func (c *CollisionData) CollisionWith(other donburi.Entity) (CollisionEntry, bool) {
	e, ok := c.entries[other]
	if !ok {
		return CollisionEntry{}, false
	}
	return *e, true
}

// Each calls fn for every tracked entity. Order is unspecified.
func (c *CollisionData) Each(fn func(other donburi.Entity, entry CollisionEntry)) {
	for id, e := range c.entries {
		fn(id, *e)
	}
}

func (c *CollisionData) Len() int {
	return len(c.entries)
}

// Reset forgets every entry.
func (c *CollisionData) Reset() {
	c.entries = make(map[donburi.Entity]*CollisionEntry)
}

var Collision = donburi.NewComponentType[CollisionData]()
