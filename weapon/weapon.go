// Package weapon fires pooled projectiles and keeps the live ones moving.
package weapon

import (
	"math"
	"slices"

	"github.com/automoto/platformkit/pool"
	"github.com/automoto/platformkit/projectile"
	"github.com/charmbracelet/log"
)

// Firearm is what hosts hold on to; both *Weapon and *Shotgun implement it.
type Firearm interface {
	Shoot(template *projectile.Projectile) bool
	CanShoot() bool
	Tick(dt float64)
	Render(batch projectile.Batch)
	Live() []*projectile.Projectile
	IsSpreadWeapon() bool
	Dispose()
}

var (
	_ Firearm = (*Weapon)(nil)
	_ Firearm = (*Shotgun)(nil)
)

// Weapon owns a projectile pool and the list of projectiles in flight.
type Weapon struct {
	mode    FiringMode
	trigger Trigger

	// Semi-automatic latch: set on a press edge, cleared on release or by
	// a successful shot.
	armed      bool
	wasPressed bool

	interval          float64
	timer             float64
	unlimitedInterval bool

	ammo          int16
	unlimitedAmmo bool

	maxCapacity int
	rng         float64
	damage      float64
	texture     projectile.Texture

	live     []*projectile.Projectile
	pool     *pool.Pool[*projectile.Projectile]
	disposed bool
}

func newWeapon(mode FiringMode, trigger Trigger, cfg Config) *Weapon {
	maxCapacity := cfg.MaxCapacity
	if maxCapacity <= 0 {
		maxCapacity = math.MaxInt
	}
	return &Weapon{
		mode:              mode,
		trigger:           trigger,
		interval:          cfg.ShootingInterval,
		timer:             cfg.ShootingInterval, // ready on the first frame
		unlimitedInterval: cfg.UnlimitedInterval,
		ammo:              cfg.Ammo,
		unlimitedAmmo:     cfg.UnlimitedAmmo,
		maxCapacity:       maxCapacity,
		rng:               cfg.Range,
		damage:            cfg.Damage,
		live:              make([]*projectile.Projectile, 0, cfg.InitialCapacity),
		pool:              projectile.NewPool(cfg.InitialCapacity, cfg.MaxCapacity),
	}
}

// NewAutomatic returns a weapon that fires once per interval while Shoot
// keeps being called.
func NewAutomatic(cfg Config) *Weapon {
	return newWeapon(Automatic, nil, cfg)
}

// NewSemiAutomatic returns a weapon that fires once per press of trigger.
func NewSemiAutomatic(trigger Trigger, cfg Config) *Weapon {
	return newWeapon(Semi, trigger, cfg)
}

// Shoot fires one projectile shaped like template. It returns false without
// side effects when the weapon cannot shoot.
func (w *Weapon) Shoot(template *projectile.Projectile) bool {
	return w.ShootAngled(template, 0)
}

// ShootAngled is Shoot with the template's velocity rotated by angle radians.
func (w *Weapon) ShootAngled(template *projectile.Projectile, angle float64) bool {
	if !w.CanShoot() {
		return false
	}
	if !w.launch(template, angle) {
		return false
	}
	w.consume()
	return true
}

// CanShoot reports whether a shot fired now would be accepted.
func (w *Weapon) CanShoot() bool {
	switch {
	case w.disposed:
		return false
	case !w.unlimitedInterval && w.timer < w.interval:
		return false
	case w.IsMaxedOut():
		return false
	case !w.unlimitedAmmo && w.ammo <= 0:
		return false
	case w.mode == Semi && !w.armed:
		return false
	}
	return true
}

// launch obtains a projectile from the pool and puts it in flight.
func (w *Weapon) launch(template *projectile.Projectile, angle float64) bool {
	p, err := w.pool.Obtain()
	if err != nil {
		log.Warn("cannot fire", "mode", w.mode, "live", len(w.live), "err", err)
		return false
	}
	p.Launch(template, angle)
	if p.Damage == 0 {
		p.Damage = w.damage
	}
	w.live = append(w.live, p)
	return true
}

// consume charges the weapon for one accepted shot.
func (w *Weapon) consume() {
	w.timer = 0
	w.armed = false
	if !w.unlimitedAmmo {
		w.ammo--
	}
}

// Tick advances the firing timer and every live projectile. Projectiles that
// hit hard geometry, flew past the weapon's range, or overflow the live list
// go back to the pool.
func (w *Weapon) Tick(dt float64) {
	if w.mode == Semi && w.trigger != nil {
		w.pollTrigger()
	}

	if w.timer > w.interval {
		w.timer = 0
	}
	w.timer += dt

	for i := 0; i < len(w.live); {
		p := w.live[i]
		p.Tick(dt)
		if p.Collided() || w.outOfRange(p) || w.IsMaxedOut() {
			w.live = slices.Delete(w.live, i, i+1)
			w.pool.Free(p)
			continue
		}
		i++
	}
}

func (w *Weapon) pollTrigger() {
	pressed := w.trigger.IsShootButtonPressed()
	switch {
	case pressed && !w.wasPressed:
		w.armed = true
	case !pressed:
		w.armed = false
	}
	w.wasPressed = pressed
}

func (w *Weapon) outOfRange(p *projectile.Projectile) bool {
	return w.rng > 0 && p.Travelled() >= w.rng
}

// Render draws every live projectile.
func (w *Weapon) Render(batch projectile.Batch) {
	for _, p := range w.live {
		p.Render(batch)
	}
}

// IsMaxedOut reports whether the live list is at capacity.
func (w *Weapon) IsMaxedOut() bool {
	return len(w.live) >= w.maxCapacity
}

// Populate moves up to n idle projectiles from the pool onto the live list
// and returns how many were added.
func (w *Weapon) Populate(n int) int {
	added := 0
	for ; added < n; added++ {
		p, err := w.pool.Obtain()
		if err != nil {
			break
		}
		w.live = append(w.live, p)
	}
	return added
}

// Fill populates the live list up to its capacity. It does nothing for
// uncapped weapons.
func (w *Weapon) Fill() int {
	if w.maxCapacity == math.MaxInt {
		return 0
	}
	return w.Populate(w.maxCapacity - len(w.live))
}

// Dispose returns every live projectile to the pool. Later calls do nothing
// and the weapon no longer shoots.
func (w *Weapon) Dispose() {
	if w.disposed {
		return
	}
	w.pool.FreeAll(w.live)
	w.live = nil
	w.disposed = true
}

func (w *Weapon) Live() []*projectile.Projectile { return w.live }
func (w *Weapon) Pool() *pool.Pool[*projectile.Projectile] { return w.pool }
func (w *Weapon) Disposed() bool { return w.disposed }

func (w *Weapon) ShootingInterval() float64 { return w.interval }
func (w *Weapon) SetShootingInterval(s float64) { w.interval = s }
func (w *Weapon) Timer() float64 { return w.timer }
func (w *Weapon) SetTimer(t float64) { w.timer = t }
func (w *Weapon) UnlimitedInterval() bool { return w.unlimitedInterval }
func (w *Weapon) SetUnlimitedInterval(b bool) { w.unlimitedInterval = b }
func (w *Weapon) Ammo() int16 { return w.ammo }
func (w *Weapon) SetAmmo(a int16) { w.ammo = a }
func (w *Weapon) UnlimitedAmmo() bool { return w.unlimitedAmmo }
func (w *Weapon) SetUnlimitedAmmo(b bool) { w.unlimitedAmmo = b }
func (w *Weapon) FiringMode() FiringMode { return w.mode }
func (w *Weapon) SetFiringMode(m FiringMode) { w.mode = m }
func (w *Weapon) Trigger() Trigger { return w.trigger }
func (w *Weapon) SetTrigger(t Trigger) { w.trigger = t }
func (w *Weapon) Range() float64 { return w.rng }
func (w *Weapon) SetRange(r float64) { w.rng = r }
func (w *Weapon) Damage() float64 { return w.damage }
func (w *Weapon) SetDamage(d float64) { w.damage = d }
func (w *Weapon) Texture() projectile.Texture { return w.texture }
func (w *Weapon) SetTexture(t projectile.Texture) { w.texture = t }
func (w *Weapon) IsAutomaticMode() bool { return w.mode == Automatic }
func (w *Weapon) IsSemiAutomaticMode() bool { return w.mode == Semi }
func (w *Weapon) IsSpreadWeapon() bool { return false }

// MaxCapacity returns the live cap, or 0 when uncapped.
func (w *Weapon) MaxCapacity() int {
	if w.maxCapacity == math.MaxInt {
		return 0
	}
	return w.maxCapacity
}
