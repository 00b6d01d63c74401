package factory

import (
	"github.com/automoto/platformkit/archetypes"
	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/object"
	"github.com/automoto/platformkit/projectile"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at spawn carrying firearm. The player and
// its projectile template collide against geometry. tex may be nil.
func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vec2, geometry *collision.Handler, firearm weapon.Firearm, kind string, tex projectile.Texture) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	var (
		geo  object.Geometry
		hits projectile.Geometry
	)
	if geometry != nil {
		geo, hits = geometry, geometry
	}
	obj := object.New(spawn, geo,
		cfg.Player.Width, cfg.Player.Height,
		cfg.Player.Right, cfg.Player.Bottom, cfg.Player.Left, cfg.Player.Top)
	obj.Speed = cfg.Physics.MaxSpeed
	obj.Direction = object.Right
	components.Object.SetValue(player, components.ObjectData{GameObject: obj})

	components.Player.SetValue(player, components.PlayerData{
		Facing: cfg.DirectionRight,
		Spawn:  spawn,
	})

	template := projectile.NewTemplate(spawn, gamemath.Vec2{X: cfg.Projectile.Speed}, hits,
		cfg.Projectile.Width, cfg.Projectile.Height)
	template.Damage = cfg.Projectile.Damage
	template.Texture = tex

	components.Weapon.SetValue(player, components.WeaponData{
		Firearm:  firearm,
		Template: template,
		Kind:     kind,
	})
	return player
}
