package systems

import (
	"github.com/automoto/wallhop/components"
	cfg "github.com/automoto/wallhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// InputSample is one frame of raw device state.
type InputSample struct {
	Pressed      [cfg.ActionCount]bool
	Sticks       [cfg.AxisCount]float64 // Raw analog values, before the deadzone
	UsedPad      bool
	UsedKeyboard bool
}

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE ControlPlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	ApplyInput(ecs, pollInput())
}

// ApplyInput advances the input buffers and stores sample as the current
// frame. Tests drive input through this instead of a real device.
func ApplyInput(ecs *ecs.ECS, sample InputSample) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous
	input.Advance()
	input.Current = sample.Pressed

	deadzone := cfg.Input.AnalogDeadzone
	for axisID, binding := range cfg.Input.Axes {
		var v float64
		if input.Current[binding.Positive] {
			v++
		}
		if input.Current[binding.Negative] {
			v--
		}
		// Analog stick only counts when the digital buttons are neutral
		if stick := sample.Sticks[axisID]; v == 0 && (stick < -deadzone || stick > deadzone) {
			v = clamp(stick, -1, 1)
		}
		input.Axes[axisID] = v
	}

	// Update last input method - gamepad takes priority if both used
	if sample.UsedPad {
		input.LastInputMethod = components.InputGamepad
	} else if sample.UsedKeyboard {
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollInput() InputSample {
	var s InputSample

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.Pressed[actionID] = true
				s.UsedKeyboard = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					s.Pressed[actionID] = true
					s.UsedPad = true
				}
			}
		}
	}

	// Strongest stick deflection across all pads wins
	for axisID, binding := range cfg.Input.Axes {
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			v := ebiten.StandardGamepadAxisValue(gpID, binding.StandardGamepadAxis)
			if abs(v) > abs(s.Sticks[axisID]) {
				s.Sticks[axisID] = v
			}
		}
		if abs(s.Sticks[axisID]) > cfg.Input.AnalogDeadzone {
			s.UsedPad = true
		}
	}

	return s
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
