package components

import (
	"github.com/automoto/platformkit/projectile"
	"github.com/automoto/platformkit/weapon"
	"github.com/yohamta/donburi"
)

// WeaponData is the firearm an entity carries and the projectile it fires.
type WeaponData struct {
	Firearm  weapon.Firearm
	Template *projectile.Projectile
	Kind     string
}

var Weapon = donburi.NewComponentType[WeaponData]()
