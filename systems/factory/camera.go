package factory

import (
	"github.com/automoto/platformkit/archetypes"
	"github.com/automoto/platformkit/components"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, at gamemath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{Position: at})
	return camera
}
