package factory

import (
	"fmt"

	"github.com/automoto/platformkit/weapon"
)

// Weapon kinds accepted by NewFirearm.
const (
	WeaponSemi    = "semi"
	WeaponAuto    = "auto"
	WeaponShotgun = "shotgun"
)

// NewFirearm builds a firearm of the given kind. Semi-automatic weapons and
// the shotgun read the shoot button from trigger.
func NewFirearm(kind string, trigger weapon.Trigger, cfg weapon.Config, spreadAngle float64) (weapon.Firearm, error) {
	switch kind {
	case WeaponSemi:
		return weapon.NewSemiAutomatic(trigger, cfg), nil
	case WeaponAuto:
		return weapon.NewAutomatic(cfg), nil
	case WeaponShotgun:
		return weapon.NewShotgun(weapon.Semi, weapon.FiveSpread, spreadAngle, trigger, cfg), nil
	default:
		return nil, fmt.Errorf("unknown weapon kind %q", kind)
	}
}
