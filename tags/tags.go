package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Tile     = donburi.NewTag().SetName("Tile")
	Parallax = donburi.NewTag().SetName("Parallax")

	// Solid entities block movement and are resolved with the stepped sweep.
	Solid = donburi.NewTag().SetName("Solid")
	// Push entities shove Pushable entities instead of stopping at them.
	Push     = donburi.NewTag().SetName("Push")
	Pushable = donburi.NewTag().SetName("Pushable")
	// JumpRecharge restores the double jump when the player passes through it.
	JumpRecharge = donburi.NewTag().SetName("JumpRecharge")
	// CheckCollision entities show up in other entities' Collision state.
	CheckCollision = donburi.NewTag().SetName("CheckCollision")
)
