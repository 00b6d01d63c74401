package factory

import (
	"fmt"

	"github.com/automoto/platformkit/archetypes"
	"github.com/automoto/platformkit/assets"
	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/components"
	"github.com/automoto/platformkit/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named TMX map from the store and spawns the level
// entity with its collision handler.
func CreateLevel(ecs *ecs.ECS, store *assets.Store, name string) (*donburi.Entry, error) {
	if _, err := store.Load(name); err != nil {
		return nil, err
	}
	level, err := store.Level(name)
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}
	return CreateLevelFrom(ecs, level, name), nil
}

// CreateLevelFrom spawns a level entity for an already parsed map.
func CreateLevelFrom(ecs *ecs.ECS, level *leveldata.Level, path string) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Geometry:     collision.NewHandlerFromLevel(level),
		Path:         path,
	})

	log.Info("level ready",
		"name", level.Name,
		"hard", len(level.HardBlocks),
		"soft", len(level.SoftBlocks),
		"spawns", len(level.SpawnPoints))
	return entry
}
