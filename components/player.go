package components

import (
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Acceleration    math.Vec2
	RunAcceleration math.Vec2
	MaxVelocity     cfg.AxisLimits
	RunMaxVelocity  cfg.AxisLimits

	IsJumpButtonDown bool
	IsRunButtonDown  bool
	IsInAir          bool
	IsOnWall         bool
	HasDoubleJumped  bool
	IsJumping        bool // Rising from a held jump, on jump-phase gravity
}

// NewPlayer builds player data from the current player configuration.
func NewPlayer() PlayerData {
	return PlayerData{
		Acceleration:    cfg.Player.Acceleration,
		RunAcceleration: cfg.Player.RunAcceleration,
		MaxVelocity:     cfg.Player.MaxVelocity,
		RunMaxVelocity:  cfg.Player.RunMaxVelocity,
	}
}

// CurrentAcceleration is the run acceleration while run is held.
func (p *PlayerData) CurrentAcceleration() math.Vec2 {
	if p.IsRunButtonDown {
		return p.RunAcceleration
	}
	return p.Acceleration
}

// CurrentMaxVelocity is the run cap while run is held.
func (p *PlayerData) CurrentMaxVelocity() cfg.AxisLimits {
	if p.IsRunButtonDown {
		return p.RunMaxVelocity
	}
	return p.MaxVelocity
}

func (p *PlayerData) OnGround() bool { return !p.IsInAir }
func (p *PlayerData) InAir() bool    { return p.IsInAir }
func (p *PlayerData) OnWall() bool   { return p.IsOnWall }

var Player = donburi.NewComponentType[PlayerData]()
