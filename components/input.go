package components

import (
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Axes            [cfg.AxisCount]float64
	LastInputMethod InputMethod // Most recently used input method
}

func (i *InputData) IsDown(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

func (i *InputData) Axis(a cfg.AxisID) float64 {
	return i.Axes[a]
}

// Advance moves Current into Previous before a new frame is sampled.
func (i *InputData) Advance() {
	i.Previous = i.Current
}

var Input = donburi.NewComponentType[InputData]()
