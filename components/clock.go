package components

import "github.com/yohamta/donburi"

// ClockData is the simulation clock. DT is the delta of the current tick in
// seconds.
type ClockData struct {
	DT   float64
	Tick uint64
}

var Clock = donburi.NewComponentType[ClockData]()
