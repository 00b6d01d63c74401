package systems

import (
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// muzzleHeight is where shots leave the body, as a fraction of its height.
const muzzleHeight = 0.6

// UpdateWeapons advances every firearm and fires the carried ones while
// shoot is held. Must run after UpdatePlayer so shots leave from the
// resolved position.
func UpdateWeapons(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := 1.0 / float64(ebiten.TPS())

	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		if fireWeapon(entry, input.IsShootButtonPressed(), dt) {
			PlaySFX(ecs, SoundShoot)
		}
	})
}

// fireWeapon ticks the entry's firearm and, when shooting, fires the template
// from the muzzle. It reports whether a shot was accepted.
func fireWeapon(entry *donburi.Entry, shooting bool, dt float64) bool {
	w := components.Weapon.Get(entry)
	if w.Firearm == nil {
		return false
	}
	w.Firearm.Tick(dt)

	if !shooting || w.Template == nil || !entry.HasComponent(components.Object) {
		return false
	}
	facing := cfg.DirectionRight
	if entry.HasComponent(components.Player) {
		facing = components.Player.Get(entry).Facing
	}
	aim(w, components.Object.Get(entry).Bounds(), facing)

	if !w.Firearm.Shoot(w.Template) {
		return false
	}
	if entry.HasComponent(components.Player) {
		components.Player.Get(entry).Shots++
	}
	return true
}

// aim places the template at the muzzle of body and points it along facing.
func aim(w *components.WeaponData, body gamemath.Rect, facing float64) {
	width, _ := w.Template.Size()
	x := body.Right()
	if facing < 0 {
		x = body.X - width
	}
	w.Template.SetPosition(gamemath.Vec2{X: x, Y: body.Y + body.H*muzzleHeight})
	w.Template.Velocity = gamemath.Vec2{X: facing * cfg.Projectile.Speed}
}

// DisposeWeapons returns every live projectile to its pool.
func DisposeWeapons(ecs *ecs.ECS) {
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		if w := components.Weapon.Get(entry); w.Firearm != nil {
			w.Firearm.Dispose()
		}
	})
}
