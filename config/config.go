package config

import "github.com/yohamta/donburi/features/math"

// QuickTurnaround decides what happens to horizontal velocity when the player
// reverses direction mid-motion.
type QuickTurnaround int

const (
	// TurnaroundNo keeps the current velocity and lets acceleration win over time.
	TurnaroundNo QuickTurnaround = iota
	// TurnaroundResetVelocity zeroes horizontal velocity before accelerating.
	TurnaroundResetVelocity
	// TurnaroundInvertVelocity negates horizontal velocity before accelerating.
	TurnaroundInvertVelocity
)

// AxisLimits holds optional per-axis caps. A nil axis is unlimited.
type AxisLimits struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

// Limit is a helper for building AxisLimits literals.
func Limit(v float64) *float64 {
	return &v
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Size math.Vec2 `yaml:"size"`

	// Movement
	Acceleration    math.Vec2  `yaml:"acceleration"`
	RunAcceleration math.Vec2  `yaml:"run_acceleration"`
	MaxVelocity     AxisLimits `yaml:"max_velocity"`
	RunMaxVelocity  AxisLimits `yaml:"run_max_velocity"`
	DecrVelocity    math.Vec2  `yaml:"decr_velocity"`

	// Quick turnaround policy on direction reversal
	QuickTurnaroundGround QuickTurnaround `yaml:"quick_turnaround_ground"`
	QuickTurnaroundAir    QuickTurnaround `yaml:"quick_turnaround_air"`

	// Jumping
	JumpStrength      float64   `yaml:"jump_strength"`
	JumpReleaseFactor float64   `yaml:"jump_release_factor"` // Fraction of JumpStrength kept when jump is released early
	WallJumpStrength  math.Vec2 `yaml:"wall_jump_strength"`  // X is pushed away from the wall, Y replaces vertical velocity
	DoubleJump        bool      `yaml:"double_jump"`

	// Gravity
	Gravity     math.Vec2 `yaml:"gravity"`
	JumpGravity math.Vec2 `yaml:"jump_gravity"` // Used while rising from a held jump

	// Wall sliding
	SlideStrength float64 `yaml:"slide_strength"` // Max downward speed while clinging to a wall
}

// PhysicsConfig contains movement resolution configuration values
type PhysicsConfig struct {
	// Collision rectangles are grown by this much when refreshing collision
	// state, so resting contact registers.
	CollisionPadding float64 `yaml:"collision_padding"`

	// InclusiveStepBound attempts floor(|d|)+1 unit steps per axis instead of
	// floor(|d|). Matches the legacy stepping loop.
	InclusiveStepBound bool `yaml:"inclusive_step_bound"`

	// MaxDeltaTime caps the per-tick delta so a stalled frame can't launch
	// entities across the level.
	MaxDeltaTime float64 `yaml:"max_delta_time"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Size          math.Vec2 `yaml:"size"`
	InnerSize     math.Vec2 `yaml:"inner_size"` // Deadzone; the camera only snaps once the player leaves it
	BaseSpeed     math.Vec2 `yaml:"base_speed"` // Move-in speed while the player is inside the deadzone
	MoveInPadding float64   `yaml:"move_in_padding"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawCollision bool // Outline collision rectangles
	Watch         bool // Reload the settings file when it changes
}

// Settings is the on-disk shape of the settings file. Every section is
// optional; missing fields keep their defaults.
type Settings struct {
	Window  *Config        `yaml:"window"`
	Player  *PlayerConfig  `yaml:"player"`
	Physics *PhysicsConfig `yaml:"physics"`
	Camera  *CameraConfig  `yaml:"camera"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	Reset()
}

// Reset restores every global configuration instance to its default.
func Reset() {
	C = &Config{
		Width:  600,
		Height: 400,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		CollisionPadding:   1.0,
		InclusiveStepBound: false,
		MaxDeltaTime:       0.1,
	}

	Player = PlayerConfig{
		Size: math.NewVec2(16, 32),

		Acceleration:    math.NewVec2(1500, 0),
		RunAcceleration: math.NewVec2(2000, 0),
		MaxVelocity:     AxisLimits{X: Limit(400)},
		RunMaxVelocity:  AxisLimits{X: Limit(800)},
		DecrVelocity:    math.NewVec2(2000, 0),

		QuickTurnaroundGround: TurnaroundResetVelocity,
		QuickTurnaroundAir:    TurnaroundNo,

		JumpStrength:      500,
		JumpReleaseFactor: 0.25,
		WallJumpStrength:  math.NewVec2(400, 500),
		DoubleJump:        true,

		Gravity:     math.NewVec2(0, -1400),
		JumpGravity: math.NewVec2(0, -900),

		SlideStrength: 100,
	}

	Camera = CameraConfig{
		Size:          math.NewVec2(600, 400),
		InnerSize:     math.NewVec2(200, 150),
		BaseSpeed:     math.NewVec2(250, 250),
		MoveInPadding: 10,
	}

	Debug = DebugConfig{}
}
