package components

import (
	cfg "github.com/automoto/wallhop/config"
	"github.com/yohamta/donburi"
)

type GameStateData struct {
	Current  cfg.GameState
	Previous cfg.GameState
	Ticks    int // Ticks spent in Current
}

// Set switches state, remembering the previous one.
func (g *GameStateData) Set(s cfg.GameState) {
	if g.Current == s {
		return
	}
	g.Previous = g.Current
	g.Current = s
	g.Ticks = 0
}

var GameState = donburi.NewComponentType[GameStateData]()
