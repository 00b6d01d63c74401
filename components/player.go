package components

import (
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing float64 // config.DirectionLeft or config.DirectionRight
	Spawn  gamemath.Vec2
	Shots  int // accepted shots since spawn
}

var Player = donburi.NewComponentType[PlayerData]()
