package weapon

import "github.com/automoto/platformkit/projectile"

// Shotgun fires a fan of pellets per shot. A shot counts once against the
// interval and ammo no matter how many pellets it carries.
type Shotgun struct {
	*Weapon
	spreadMode  SpreadMode
	spreadAngle float64
}

// NewShotgun returns a shotgun firing spread pellets fanned across
// spreadAngle radians. trigger is only polled in Semi mode.
func NewShotgun(mode FiringMode, spread SpreadMode, spreadAngle float64, trigger Trigger, cfg Config) *Shotgun {
	return &Shotgun{
		Weapon:      newWeapon(mode, trigger, cfg),
		spreadMode:  spread,
		spreadAngle: spreadAngle,
	}
}

// Shoot fires the whole volley, or nothing when the weapon cannot shoot or
// there is no room for every pellet. A volley the pool cannot fill is taken
// back and leaves the interval and ammo untouched.
func (s *Shotgun) Shoot(template *projectile.Projectile) bool {
	n := s.spreadMode.Pellets()
	if !s.CanShoot() || len(s.live)+n > s.maxCapacity {
		return false
	}
	start := len(s.live)
	for i := 0; i < n; i++ {
		if !s.launch(template, s.PelletAngle(i)) {
			s.pool.FreeAll(s.live[start:])
			clear(s.live[start:])
			s.live = s.live[:start]
			return false
		}
	}
	s.consume()
	return true
}

// PelletAngle is the rotation applied to pellet i of a volley.
func (s *Shotgun) PelletAngle(i int) float64 {
	n := s.spreadMode.Pellets()
	return s.spreadAngle * float64(i-n/2) / float64(n)
}

func (s *Shotgun) SpreadMode() SpreadMode { return s.spreadMode }
func (s *Shotgun) SetSpreadMode(m SpreadMode) { s.spreadMode = m }
func (s *Shotgun) SpreadAngle() float64 { return s.spreadAngle }
func (s *Shotgun) SetSpreadAngle(a float64) { s.spreadAngle = a }
func (s *Shotgun) IsSpreadWeapon() bool { return true }
