package weapon

import (
	"image"
	"math"
	"testing"

	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/projectile"
	pmocks "github.com/automoto/platformkit/projectile/mocks"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/weapon/mocks"
	"go.uber.org/mock/gomock"
)

type fakeTexture struct{}

func (fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 2, 2) }

func testConfig() Config {
	return Config{
		MaxCapacity:      0,
		ShootingInterval: 0.1,
		UnlimitedAmmo:    true,
	}
}

func bullet(geo projectile.Geometry) *projectile.Projectile {
	return projectile.NewTemplate(gamemath.Vec2{}, gamemath.NewVec2(100, 0), geo, 4, 2)
}

func TestShootingIntervalGate(t *testing.T) {
	tests := []struct {
		name     string
		interval float64
		dt       float64
		ticks    int
	}{
		{"dt well below interval", 0.1, 0.03, 100},
		{"dt just below interval", 0.1, 0.099, 50},
		{"tiny interval", 0.01, 0.004, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.ShootingInterval = tt.interval
			w := NewAutomatic(cfg)
			tmpl := bullet(nil)

			shots, elapsed := 0, 0.0
			for i := 0; i < tt.ticks; i++ {
				w.Tick(tt.dt)
				elapsed += tt.dt
				if w.Shoot(tmpl) {
					shots++
				}
			}

			limit := int(math.Floor(elapsed/tt.interval+1e-9)) + 1
			if shots == 0 || shots > limit {
				t.Errorf("shots = %d, want 1..%d", shots, limit)
			}
		})
	}
}

func TestUnlimitedIntervalIgnoresTimer(t *testing.T) {
	cfg := testConfig()
	cfg.UnlimitedInterval = true
	w := NewAutomatic(cfg)

	for i := 0; i < 3; i++ {
		if !w.Shoot(bullet(nil)) {
			t.Fatalf("shot %d rejected", i)
		}
	}
}

func TestSemiAutomaticFiresOncePerPress(t *testing.T) {
	ctrl := gomock.NewController(t)
	trigger := mocks.NewMockTrigger(ctrl)

	cfg := testConfig()
	cfg.ShootingInterval = 0.01
	w := NewSemiAutomatic(trigger, cfg)
	tmpl := bullet(nil)

	gomock.InOrder(
		trigger.EXPECT().IsShootButtonPressed().Return(true).Times(10),
		trigger.EXPECT().IsShootButtonPressed().Return(false).Times(2),
		trigger.EXPECT().IsShootButtonPressed().Return(true).Times(5),
	)

	shots := 0
	fire := func(ticks int) {
		for i := 0; i < ticks; i++ {
			w.Tick(0.05)
			if w.Shoot(tmpl) {
				shots++
			}
		}
	}

	fire(10)
	if shots != 1 {
		t.Fatalf("held for 10 ticks: shots = %d, want 1", shots)
	}
	fire(2)
	if shots != 1 {
		t.Fatalf("released: shots = %d, want 1", shots)
	}
	fire(5)
	if shots != 2 {
		t.Errorf("pressed again: shots = %d, want 2", shots)
	}
}

func TestSemiAutomaticWithoutTriggerNeverFires(t *testing.T) {
	w := NewSemiAutomatic(nil, testConfig())
	w.Tick(1)
	if w.Shoot(bullet(nil)) {
		t.Error("semi weapon without a trigger fired")
	}
}

func TestAmmoDecrement(t *testing.T) {
	cfg := testConfig()
	cfg.UnlimitedAmmo = false
	cfg.Ammo = 3
	cfg.ShootingInterval = 0
	w := NewAutomatic(cfg)

	shots := 0
	for i := 0; i < 10; i++ {
		w.Tick(0.016)
		if w.Shoot(bullet(nil)) {
			shots++
		}
	}

	if shots != 3 {
		t.Errorf("shots = %d, want 3", shots)
	}
	if w.Ammo() != 0 {
		t.Errorf("Ammo = %d, want 0", w.Ammo())
	}
	if w.CanShoot() {
		t.Error("CanShoot with no ammo left")
	}
}

func TestShotgunVolley(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCapacity = 7
	s := NewShotgun(Automatic, FiveSpread, 0.5, nil, cfg)

	if !s.Shoot(bullet(nil)) {
		t.Fatal("first volley rejected")
	}
	if got := len(s.Live()); got != 5 {
		t.Fatalf("live = %d, want 5", got)
	}

	wantAngles := []float64{-0.2, -0.1, 0, 0.1, 0.2}
	for i, p := range s.Live() {
		if math.Abs(p.Angle-wantAngles[i]) > 1e-9 {
			t.Errorf("pellet %d angle = %v, want %v", i, p.Angle, wantAngles[i])
		}
	}

	s.Tick(0.2)
	if s.Shoot(bullet(nil)) {
		t.Error("second volley should not fit in the live list")
	}
	if got := len(s.Live()); got != 5 {
		t.Errorf("live = %d after rejected volley, want 5", got)
	}
	if !s.IsSpreadWeapon() {
		t.Error("IsSpreadWeapon = false")
	}
}

func TestShotgunCountsOneShotOfAmmo(t *testing.T) {
	cfg := testConfig()
	cfg.UnlimitedAmmo = false
	cfg.Ammo = 2
	s := NewShotgun(Automatic, Triple, 0.3, nil, cfg)

	s.Shoot(bullet(nil))
	if s.Ammo() != 1 {
		t.Errorf("Ammo = %d, want 1", s.Ammo())
	}
	if len(s.Live()) != 3 {
		t.Errorf("live = %d, want 3", len(s.Live()))
	}
}

func TestShotgunTakesBackUnfilledVolley(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCapacity = 5
	cfg.UnlimitedAmmo = false
	cfg.Ammo = 3
	s := NewShotgun(Automatic, Triple, 0.3, nil, cfg)

	// Three projectiles held outside the weapon leave the pool two short.
	for i := 0; i < 3; i++ {
		if _, err := s.Pool().Obtain(); err != nil {
			t.Fatalf("Obtain %d: %v", i, err)
		}
	}
	timer := s.Timer()

	if s.Shoot(bullet(nil)) {
		t.Fatal("volley reported fired with only two pellets available")
	}
	if len(s.Live()) != 0 {
		t.Errorf("live = %d, want 0", len(s.Live()))
	}
	if s.Ammo() != 3 || s.Timer() != timer {
		t.Errorf("ammo=%d timer=%v, want 3/%v", s.Ammo(), s.Timer(), timer)
	}
	if s.Pool().FreeCount() != 2 {
		t.Errorf("FreeCount = %d, want 2 pellets returned", s.Pool().FreeCount())
	}
}

func TestTickCullsCollidedProjectiles(t *testing.T) {
	wall := collision.NewHandler([]gamemath.Rect{gamemath.NewRect(15, -5, 10, 20)}, nil)
	cfg := testConfig()
	w := NewAutomatic(cfg)

	w.Shoot(bullet(wall))
	w.Tick(0.05) // x = 5
	if len(w.Live()) != 1 {
		t.Fatalf("live = %d, want 1", len(w.Live()))
	}
	w.Tick(0.1) // x = 15, inside the wall
	if len(w.Live()) != 0 {
		t.Fatalf("live = %d, want 0", len(w.Live()))
	}
	if w.Pool().FreeCount() != 1 {
		t.Errorf("FreeCount = %d, want 1", w.Pool().FreeCount())
	}
}

func TestTickCullsOutOfRange(t *testing.T) {
	cfg := testConfig()
	cfg.Range = 50
	w := NewAutomatic(cfg)

	w.Shoot(bullet(nil))
	w.Tick(0.3)
	if len(w.Live()) != 1 {
		t.Fatalf("live = %d after 30 units, want 1", len(w.Live()))
	}
	w.Tick(0.3)
	if len(w.Live()) != 0 {
		t.Errorf("live = %d after 60 units, want 0", len(w.Live()))
	}
}

func TestTickCullsWhenMaxedOut(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCapacity = 3
	w := NewAutomatic(cfg)

	if n := w.Fill(); n != 3 {
		t.Fatalf("Fill = %d, want 3", n)
	}
	first := w.Live()[0]
	if !w.IsMaxedOut() || w.CanShoot() {
		t.Fatal("full weapon should be maxed out")
	}

	w.Tick(0.016)
	if len(w.Live()) != 2 {
		t.Fatalf("live = %d, want 2", len(w.Live()))
	}
	for _, p := range w.Live() {
		if p == first {
			t.Error("oldest projectile should be culled first")
		}
	}
}

func TestPoolNeverExceedsCapacity(t *testing.T) {
	cfg := testConfig()
	cfg.MaxCapacity = 4
	cfg.ShootingInterval = 0
	wall := collision.NewHandler([]gamemath.Rect{gamemath.NewRect(3, -5, 10, 20)}, nil)
	w := NewAutomatic(cfg)

	for i := 0; i < 50; i++ {
		w.Shoot(bullet(wall))
		w.Tick(0.016)
		if created := w.Pool().Created(); created > 4 {
			t.Fatalf("tick %d: created %d projectiles, cap is 4", i, created)
		}
	}
}

func TestDispose(t *testing.T) {
	w := NewAutomatic(testConfig())
	w.Shoot(bullet(nil))
	w.Tick(0.2)
	w.Shoot(bullet(nil))

	w.Dispose()
	if len(w.Live()) != 0 {
		t.Errorf("live = %d after Dispose, want 0", len(w.Live()))
	}
	if w.Pool().FreeCount() != 2 {
		t.Errorf("FreeCount = %d, want 2", w.Pool().FreeCount())
	}

	w.Dispose()
	if w.Pool().FreeCount() != 2 {
		t.Errorf("second Dispose changed the pool: FreeCount = %d", w.Pool().FreeCount())
	}
	w.Tick(1)
	if w.Shoot(bullet(nil)) {
		t.Error("Shoot after Dispose succeeded")
	}
}

func TestRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	batch := pmocks.NewMockBatch(ctrl)

	w := NewAutomatic(testConfig())
	tmpl := bullet(nil)
	tmpl.Texture = fakeTexture{}
	w.Shoot(tmpl)

	batch.EXPECT().Draw(fakeTexture{}, 0.0, 0.0).Times(1)
	w.Render(batch)
}

func TestDamageFallsBackToWeapon(t *testing.T) {
	cfg := testConfig()
	cfg.Damage = 4
	w := NewAutomatic(cfg)

	w.Shoot(bullet(nil))
	if got := w.Live()[0].Damage; got != 4 {
		t.Errorf("Damage = %v, want 4", got)
	}

	tmpl := bullet(nil)
	tmpl.Damage = 9
	w.Tick(0.2)
	w.Shoot(tmpl)
	if got := w.Live()[1].Damage; got != 9 {
		t.Errorf("Damage = %v, want 9", got)
	}
}

func TestModePredicates(t *testing.T) {
	auto := NewAutomatic(testConfig())
	semi := NewSemiAutomatic(nil, testConfig())
	if !auto.IsAutomaticMode() || auto.IsSemiAutomaticMode() {
		t.Error("automatic predicates")
	}
	if !semi.IsSemiAutomaticMode() || semi.IsAutomaticMode() {
		t.Error("semi predicates")
	}
	if auto.MaxCapacity() != 0 {
		t.Errorf("uncapped MaxCapacity = %d, want 0", auto.MaxCapacity())
	}
}
