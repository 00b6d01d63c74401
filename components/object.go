package components

import (
	"github.com/automoto/platformkit/object"
	"github.com/yohamta/donburi"
)

// ObjectData is the moving body of an entity, resolved against level geometry.
type ObjectData struct {
	*object.GameObject
}

var Object = donburi.NewComponentType[ObjectData]()
