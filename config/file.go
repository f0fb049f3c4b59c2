package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var quickTurnaroundNames = map[string]QuickTurnaround{
	"no":             TurnaroundNo,
	"resetvelocity":  TurnaroundResetVelocity,
	"invertvelocity": TurnaroundInvertVelocity,
}

func (q QuickTurnaround) String() string {
	switch q {
	case TurnaroundResetVelocity:
		return "ResetVelocity"
	case TurnaroundInvertVelocity:
		return "InvertVelocity"
	default:
		return "No"
	}
}

// UnmarshalYAML accepts the policy by name, case-insensitively, with or
// without underscores ("ResetVelocity", "reset_velocity").
func (q *QuickTurnaround) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	key := strings.ToLower(strings.ReplaceAll(name, "_", ""))
	v, ok := quickTurnaroundNames[key]
	if !ok {
		return fmt.Errorf("config: unknown quick turnaround %q at line %d", name, value.Line)
	}
	*q = v
	return nil
}

// LoadFile reads a settings file and overlays it onto the global
// configuration. A missing file is an error; callers that treat the file as
// optional should check os.IsNotExist.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Parse overlays YAML settings onto the global configuration. Fields absent
// from the document keep their current values. On error the globals are left
// untouched.
func Parse(data []byte) error {
	window := *C
	player := Player
	player.MaxVelocity = player.MaxVelocity.clone()
	player.RunMaxVelocity = player.RunMaxVelocity.clone()
	physics := Physics
	camera := Camera

	s := Settings{
		Window:  &window,
		Player:  &player,
		Physics: &physics,
		Camera:  &camera,
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := validate(&s); err != nil {
		return err
	}

	if s.Window != nil {
		C = s.Window
	}
	if s.Player != nil {
		Player = *s.Player
	}
	if s.Physics != nil {
		Physics = *s.Physics
	}
	if s.Camera != nil {
		Camera = *s.Camera
	}
	return nil
}

func validate(s *Settings) error {
	if s.Window != nil && (s.Window.Width <= 0 || s.Window.Height <= 0 || s.Window.TPS <= 0) {
		return fmt.Errorf("window: width, height and tps must be positive")
	}
	if s.Physics != nil && s.Physics.CollisionPadding < 0 {
		return fmt.Errorf("physics: collision_padding must not be negative")
	}
	if s.Camera != nil {
		c := s.Camera
		if c.InnerSize.X > c.Size.X || c.InnerSize.Y > c.Size.Y {
			return fmt.Errorf("camera: inner_size must fit inside size")
		}
	}
	return nil
}

func (l AxisLimits) clone() AxisLimits {
	var out AxisLimits
	if l.X != nil {
		out.X = Limit(*l.X)
	}
	if l.Y != nil {
		out.Y = Limit(*l.Y)
	}
	return out
}
