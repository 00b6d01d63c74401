package factory

import (
	"github.com/automoto/platformkit/archetypes"
	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace mirrors the handler's blocks into a resolv space.
func CreateSpace(ecs *ecs.ECS, geometry *collision.Handler, width, height, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, geometry.Space(width, height, cellSize, cellSize))
	return space
}
