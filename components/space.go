package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space mirrors the level's blocks for debug drawing.
var Space = donburi.NewComponentType[resolv.Space]()
