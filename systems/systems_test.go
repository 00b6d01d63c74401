package systems

import (
	"math"
	"testing"

	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/systems/factory"
	"github.com/automoto/platformkit/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

func newTestWorld(t *testing.T, kind string) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	floor := gamemath.NewRect(-1000, 0, 2400, 16)
	ceiling := gamemath.NewRect(0, 80, 400, 16)
	geometry := collision.NewHandler([]gamemath.Rect{floor, ceiling}, nil)

	wcfg := weapon.DefaultConfig()
	wcfg.UnlimitedAmmo = true
	wcfg.MaxCapacity = 8
	firearm, err := factory.NewFirearm(kind, InputTrigger{ECS: e}, wcfg, cfg.Weapon.SpreadAngle)
	if err != nil {
		t.Fatalf("NewFirearm: %v", err)
	}
	player := factory.CreatePlayer(e, gamemath.Vec2{X: 100, Y: 16}, geometry, firearm, kind, nil)
	return e, player
}

func press(input *components.InputData, ids ...cfg.ActionID) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func TestPlayerRestsOnFloor(t *testing.T) {
	e, player := newTestWorld(t, factory.WeaponAuto)
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	obj := components.Object.Get(player).GameObject

	for i := 0; i < 30; i++ {
		press(input)
		stepPlayer(player, input, settings, testDT)
	}

	if obj.Position.Y != 16 {
		t.Errorf("Position.Y = %v, want 16", obj.Position.Y)
	}
	if !obj.OnGround() {
		t.Error("expected the player to be on the ground")
	}
}

func TestPlayerJumpAndHeadBump(t *testing.T) {
	e, player := newTestWorld(t, factory.WeaponAuto)
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	obj := components.Object.Get(player).GameObject

	// Land first so the jump starts from the ground.
	press(input)
	stepPlayer(player, input, settings, testDT)

	press(input, cfg.ActionJump)
	stepPlayer(player, input, settings, testDT)
	if obj.Position.Y <= 16 {
		t.Fatalf("Position.Y = %v after jumping, want above the floor", obj.Position.Y)
	}

	peak := obj.Position.Y
	for i := 0; i < 60; i++ {
		press(input, cfg.ActionJump)
		stepPlayer(player, input, settings, testDT)
		peak = math.Max(peak, obj.Position.Y)
	}

	// The ceiling's underside is at 80 and the body is 24 tall.
	if peak+24 > 80 {
		t.Errorf("peak top = %v, want at most 80", peak+24)
	}
	if !obj.OnGround() || obj.Position.Y != 16 {
		t.Errorf("expected to land back on the floor, got y=%v onGround=%v", obj.Position.Y, obj.OnGround())
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name    string
		actions []cfg.ActionID
		facing  float64
		sign    float64
	}{
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, cfg.DirectionRight, 1},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, cfg.DirectionLeft, -1},
		{"both cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, cfg.DirectionRight, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, player := newTestWorld(t, factory.WeaponAuto)
			input := getOrCreateInput(e)
			settings := GetOrCreateSettings(e)
			obj := components.Object.Get(player).GameObject

			for i := 0; i < 120; i++ {
				press(input, tc.actions...)
				stepPlayer(player, input, settings, testDT)
			}

			moved := obj.Position.X - 100
			if math.Signbit(moved) != math.Signbit(tc.sign) || (tc.sign == 0) != (moved == 0) {
				t.Errorf("moved %v, want sign %v", moved, tc.sign)
			}
			if math.Abs(obj.Velocity.X) > obj.Speed {
				t.Errorf("Velocity.X = %v exceeds max speed %v", obj.Velocity.X, obj.Speed)
			}
			if got := components.Player.Get(player).Facing; got != tc.facing {
				t.Errorf("Facing = %v, want %v", got, tc.facing)
			}
		})
	}
}

func TestFreeFlying(t *testing.T) {
	e, player := newTestWorld(t, factory.WeaponAuto)
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	settings.FreeFlying = true
	obj := components.Object.Get(player).GameObject

	press(input, cfg.ActionMoveUp)
	stepPlayer(player, input, settings, testDT)
	y := obj.Position.Y
	if y <= 16 {
		t.Fatalf("Position.Y = %v, want above the floor", y)
	}

	// Hovering keeps the height.
	press(input)
	stepPlayer(player, input, settings, testDT)
	if obj.Position.Y != y {
		t.Errorf("Position.Y = %v while hovering, want %v", obj.Position.Y, y)
	}
}

func TestRespawn(t *testing.T) {
	_, player := newTestWorld(t, factory.WeaponAuto)
	obj := components.Object.Get(player).GameObject
	obj.SetPosition(300, -500)
	obj.Gravity = 400

	Respawn(player)

	if obj.Position != (gamemath.Vec2{X: 100, Y: 16}) || obj.Gravity != 0 {
		t.Errorf("after Respawn: pos=%+v gravity=%v", obj.Position, obj.Gravity)
	}
}

func TestRespawnIfFallen(t *testing.T) {
	tests := []struct {
		name    string
		y       float64
		respawn bool
	}{
		{"standing on the floor", 16, false},
		{"partly below the edge", -5, false},
		{"just below the edge", -40, true},
		{"far below", -5000, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, player := newTestWorld(t, factory.WeaponAuto)
			obj := components.Object.Get(player).GameObject
			obj.SetPosition(300, tc.y)

			if got := respawnIfFallen(player); got != tc.respawn {
				t.Fatalf("respawnIfFallen = %v, want %v", got, tc.respawn)
			}
			if tc.respawn && obj.Position != (gamemath.Vec2{X: 100, Y: 16}) {
				t.Errorf("pos = %+v, want spawn", obj.Position)
			}
		})
	}
}

func TestFireWeapon(t *testing.T) {
	tests := []struct {
		name   string
		facing float64
	}{
		{"right", cfg.DirectionRight},
		{"left", cfg.DirectionLeft},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, player := newTestWorld(t, factory.WeaponAuto)
			components.Player.Get(player).Facing = tc.facing
			w := components.Weapon.Get(player)

			if !fireWeapon(player, true, testDT) {
				t.Fatal("expected the first shot to be accepted")
			}
			live := w.Firearm.Live()
			if len(live) != 1 {
				t.Fatalf("live = %d, want 1", len(live))
			}
			if got := live[0].Velocity.X; got != tc.facing*cfg.Projectile.Speed {
				t.Errorf("Velocity.X = %v, want %v", got, tc.facing*cfg.Projectile.Speed)
			}

			body := components.Object.Get(player).Bounds()
			if tc.facing > 0 && live[0].Position.X != body.Right() {
				t.Errorf("muzzle x = %v, want %v", live[0].Position.X, body.Right())
			}
			if got := components.Player.Get(player).Shots; got != 1 {
				t.Errorf("Shots = %d, want 1", got)
			}
		})
	}
}

func TestFireWeaponNotShooting(t *testing.T) {
	_, player := newTestWorld(t, factory.WeaponAuto)

	if fireWeapon(player, false, testDT) {
		t.Error("fired without the shoot button")
	}
	if n := len(components.Weapon.Get(player).Firearm.Live()); n != 0 {
		t.Errorf("live = %d, want 0", n)
	}
}

func TestSemiWeaponReadsInputTrigger(t *testing.T) {
	e, player := newTestWorld(t, factory.WeaponSemi)
	input := getOrCreateInput(e)

	shots := 0
	for i := 0; i < 10; i++ {
		press(input, cfg.ActionShoot)
		if fireWeapon(player, input.IsShootButtonPressed(), testDT) {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("shots while holding = %d, want 1", shots)
	}

	press(input)
	fireWeapon(player, false, testDT)
	press(input, cfg.ActionShoot)
	if !fireWeapon(player, true, testDT) {
		t.Error("expected a shot after releasing and pressing again")
	}
}

func TestGodModeLiftsAmmoLimit(t *testing.T) {
	e, player := newTestWorld(t, factory.WeaponAuto)
	w := components.Weapon.Get(player).Firearm.(*weapon.Weapon)
	w.SetUnlimitedAmmo(false)
	w.SetAmmo(0)

	GetOrCreateSettings(e).GodMode = true
	ApplySettings(e)

	if !w.UnlimitedAmmo() || !w.CanShoot() {
		t.Error("god mode should allow shooting with an empty magazine")
	}
}

func TestFollowTarget(t *testing.T) {
	tests := []struct {
		name     string
		target   gamemath.Vec2
		levelW   float64
		levelH   float64
		expected gamemath.Vec2
	}{
		{"inside", gamemath.Vec2{X: 500, Y: 300}, 1000, 800, gamemath.Vec2{X: 500, Y: 300}},
		{"clamped low", gamemath.Vec2{X: 10, Y: 10}, 1000, 800, gamemath.Vec2{X: 320, Y: 184}},
		{"clamped high", gamemath.Vec2{X: 990, Y: 790}, 1000, 800, gamemath.Vec2{X: 680, Y: 616}},
		{"small level centered", gamemath.Vec2{X: 10, Y: 10}, 200, 100, gamemath.Vec2{X: 100, Y: 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := followTarget(tc.target, 640, 368, tc.levelW, tc.levelH)
			if got != tc.expected {
				t.Errorf("followTarget() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestViewFlipsY(t *testing.T) {
	v := View{Camera: gamemath.Vec2{X: 100, Y: 100}, Width: 200, Height: 100}

	x, y := v.ToScreen(100, 100)
	if x != 100 || y != 50 {
		t.Errorf("camera center maps to (%v, %v), want (100, 50)", x, y)
	}

	// Higher in the world is further up the screen.
	_, above := v.ToScreen(100, 120)
	if above >= y {
		t.Errorf("y=120 maps to %v, want less than %v", above, y)
	}

	r := gamemath.NewRect(90, 100, 10, 20)
	rx, ry := v.RectToScreen(r)
	if rx != 90 || ry != 30 {
		t.Errorf("RectToScreen = (%v, %v), want (90, 30)", rx, ry)
	}
	if !v.Visible(r) || v.Visible(gamemath.NewRect(500, 500, 10, 10)) {
		t.Error("Visible gave the wrong answer")
	}
}
