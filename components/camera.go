package components

import (
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData holds the world-space point at the center of the view.
type CameraData struct {
	Position gamemath.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
