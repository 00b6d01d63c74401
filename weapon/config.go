package weapon

import "github.com/automoto/platformkit/config"

// Config is the construction-time setup of a weapon.
type Config struct {
	InitialCapacity   int
	MaxCapacity       int     // live projectiles at once; <= 0 means no cap
	ShootingInterval  float64 // seconds
	Ammo              int16
	UnlimitedAmmo     bool
	UnlimitedInterval bool
	Range             float64 // distance before a projectile is culled; 0 = unlimited
	Damage            float64 // used when the fired template carries no damage
}

// DefaultConfig returns the weapon defaults from config.Weapon.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:  config.Weapon.InitialCapacity,
		MaxCapacity:      config.Weapon.MaxCapacity,
		ShootingInterval: config.Weapon.ShootingInterval,
		Ammo:             config.Weapon.Ammo,
		UnlimitedAmmo:    config.Weapon.UnlimitedAmmo,
		Range:            config.Weapon.Range,
		Damage:           config.Weapon.Damage,
	}
}
