package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/automoto/wallhop/geo"
	"github.com/automoto/wallhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// playerInput is what the player control system reads from the input state
// each tick.
type playerInput struct {
	X    float64
	Jump bool
	Run  bool
}

func readPlayerInput(in *components.InputData) playerInput {
	return playerInput{
		X:    in.Axis(cfg.AxisPlayerX),
		Jump: in.IsDown(cfg.ActionJump),
		Run:  in.IsDown(cfg.ActionRun),
	}
}

// ControlPlayer turns input and the player's collision state into velocity
// changes: walking, running, jumping, double jumping and wall jumping.
func ControlPlayer(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	input := readPlayerInput(GetOrCreateInput(ecs))

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Player) || !e.HasComponent(components.Velocity) ||
			!e.HasComponent(components.Collision) || !e.HasComponent(components.Position) {
			return
		}
		controlPlayer(ecs.World, e, input, dt)
	})
}

func controlPlayer(w donburi.World, e *donburi.Entry, input playerInput, dt float64) {
	player := components.Player.Get(e)
	vel := components.Velocity.Get(e)
	collision := components.Collision.Get(e)

	horizontal, vertical := touchingSides(w, e, collision)

	// Passing through a recharge restores the double jump
	tags.JumpRecharge.Each(w, func(other *donburi.Entry) {
		entry, ok := collision.CollisionWith(other.Entity())
		if ok && entry.Side == geo.SideInner && entry.State == components.CollisionEnter {
			player.HasDoubleJumped = false
		}
	})

	updateRun(e, player, input.Run)

	// Wall cling and wall jump
	wallJumped := false
	player.IsOnWall = horizontal != nil && vertical == nil
	if player.IsOnWall {
		player.HasDoubleJumped = false

		if (*horizontal == geo.SideLeft && vel.X < 0) || (*horizontal == geo.SideRight && vel.X > 0) {
			vel.X = 0
		}
		if vel.Y < -cfg.Player.SlideStrength {
			vel.Y = -cfg.Player.SlideStrength
		}

		if input.Jump && !player.IsJumpButtonDown {
			away := 1.0
			if *horizontal == geo.SideRight {
				away = -1.0
			}
			vel.Y = 0
			vel.Y += cfg.Player.WallJumpStrength.Y
			vel.X += cfg.Player.WallJumpStrength.X * away
			startJumpPhase(e, player)
			wallJumped = true
		}
	}

	// Ground and air
	player.IsInAir = vertical == nil || *vertical != geo.SideBottom
	if vertical != nil {
		if *vertical == geo.SideBottom {
			player.HasDoubleJumped = false
			if vel.Y < 0 {
				vel.Y = 0
			}
		} else if *vertical == geo.SideTop && vel.Y > 0 {
			vel.Y = 0
		}
	}

	// Horizontal movement
	if input.X != 0 {
		dir := signum(input.X)
		if vel.X != 0 && signum(vel.X) != dir {
			policy := cfg.Player.QuickTurnaroundAir
			if player.OnGround() {
				policy = cfg.Player.QuickTurnaroundGround
			}
			switch policy {
			case cfg.TurnaroundResetVelocity:
				vel.X = 0
			case cfg.TurnaroundInvertVelocity:
				vel.X = -vel.X
			}
		}

		vel.X += player.CurrentAcceleration().X * dt * dir

		if e.HasComponent(components.DecreaseVelocity) {
			decr := components.DecreaseVelocity.Get(e)
			if dir > 0 {
				decr.DecreaseXPos = false
			} else {
				decr.DecreaseXNeg = false
			}
		}
	}

	// Jump, edge-triggered
	canJump := player.OnGround() || (cfg.Player.DoubleJump && !player.HasDoubleJumped)
	if !wallJumped && input.Jump && !player.IsJumpButtonDown && canJump {
		player.HasDoubleJumped = player.InAir()
		if vel.Y < 0 {
			vel.Y = 0
		}
		vel.Y += cfg.Player.JumpStrength
		startJumpPhase(e, player)
	}

	// Jump phase ends early on release, or naturally once rising stops
	if player.IsJumping {
		if !input.Jump {
			if clip := cfg.Player.JumpStrength * cfg.Player.JumpReleaseFactor; vel.Y > clip {
				vel.Y = clip
			}
			endJumpPhase(e, player)
		} else if vel.Y <= 0 {
			endJumpPhase(e, player)
		}
	}

	player.IsJumpButtonDown = input.Jump
}

// touchingSides finds the first horizontal and first vertical side on which
// the player touches a solid entity. Leaving collisions are ignored, as are
// contacts that share no extent with the player along the touching edge: a
// floor must be under the player, a wall beside it.
func touchingSides(w donburi.World, self *donburi.Entry, collision *components.CollisionData) (horizontal, vertical *geo.Side) {
	selfRect := rectOf[struct{}](self)

	tags.Solid.Each(w, func(other *donburi.Entry) {
		if horizontal != nil && vertical != nil {
			return
		}
		id := other.Entity()
		if id == self.Entity() || !collision.InCollisionWith(id) || !other.HasComponent(components.Position) {
			return
		}
		entry, _ := collision.CollisionWith(id)
		side := entry.Side
		otherRect := rectOf[struct{}](other)
		switch {
		case side.IsHorizontal() && horizontal == nil && geo.OverlapY(selfRect, otherRect) > 0:
			horizontal = &side
		case side.IsVertical() && vertical == nil && geo.OverlapX(selfRect, otherRect) > 0:
			vertical = &side
		}
	})
	return horizontal, vertical
}

// updateRun swaps between the base and run movement sets on run press and
// release.
func updateRun(e *donburi.Entry, player *components.PlayerData, runDown bool) {
	pressed := runDown && !player.IsRunButtonDown
	released := !runDown && player.IsRunButtonDown
	player.IsRunButtonDown = runDown

	if !pressed && !released {
		return
	}
	if e.HasComponent(components.MaxVelocity) {
		components.MaxVelocity.SetValue(e, components.NewMaxVelocity(player.CurrentMaxVelocity()))
	}
}

func startJumpPhase(e *donburi.Entry, player *components.PlayerData) {
	player.IsJumping = true
	if e.HasComponent(components.Gravity) {
		components.Gravity.SetValue(e, cfg.Player.JumpGravity)
	}
}

func endJumpPhase(e *donburi.Entry, player *components.PlayerData) {
	player.IsJumping = false
	if e.HasComponent(components.Gravity) {
		components.Gravity.SetValue(e, cfg.Player.Gravity)
	}
}
