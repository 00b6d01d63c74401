package components

import (
	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Geometry     *collision.Handler
	Path         string
}

var Level = donburi.NewComponentType[LevelData]()
