package systems

import (
	"math"

	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/object"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	dt := 1.0 / float64(ebiten.TPS())

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		stepPlayer(playerEntry, input, settings, dt)
		respawnIfFallen(playerEntry)
	})
}

// stepPlayer applies one tick of input, gravity and collision to a player.
func stepPlayer(playerEntry *donburi.Entry, input *components.InputData, settings *components.SettingsData, dt float64) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry).GameObject

	handleMovementInput(input, player, obj, dt)
	if settings.FreeFlying {
		handleFlyingInput(input, obj)
	} else {
		handleJumpInput(input, obj)
		applyGravity(obj, dt)
	}

	newPos := gamemath.Vec2{
		X: obj.Position.X + obj.Velocity.X*dt,
		Y: obj.Position.Y - obj.Gravity*dt,
	}
	obj.TryMove(newPos)

	if obj.OnGround() && obj.Gravity > 0 {
		obj.Gravity = 0
		obj.SetJumping(false)
	}
	obj.Animate(dt)
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, obj *object.GameObject, dt float64) {
	accel := cfg.Physics.Acceleration * dt
	switch {
	case input.IsLeftPressed() && !input.IsRightPressed():
		obj.Velocity.X -= accel
		obj.Direction = object.Left
		player.Facing = cfg.DirectionLeft
	case input.IsRightPressed() && !input.IsLeftPressed():
		obj.Velocity.X += accel
		obj.Direction = object.Right
		player.Facing = cfg.DirectionRight
	default:
		obj.Velocity.X = gamemath.ApplyFriction(obj.Velocity.X, cfg.Physics.Friction*cfg.Physics.GameSpeed)
	}
	obj.Velocity.X = gamemath.ClampSpeed(obj.Velocity.X, obj.Speed)
}

// handleJumpInput starts a jump from the ground. Releasing jump early cuts
// the ascent short.
func handleJumpInput(input *components.InputData, obj *object.GameObject) {
	jump := input.Action(cfg.ActionJump)
	if jump.JustPressed && obj.OnGround() {
		obj.Gravity = -cfg.Physics.Jump
		obj.SetJumping(true)
		return
	}
	if jump.JustReleased && obj.Jumping() && obj.Gravity < 0 {
		obj.Gravity /= 2
		obj.SetJumping(false)
	}
}

// handleFlyingInput moves the player vertically at full speed, ignoring gravity.
func handleFlyingInput(input *components.InputData, obj *object.GameObject) {
	obj.Gravity = 0
	if input.IsUpPressed() {
		obj.Gravity = -obj.Speed
	} else if input.IsDownPressed() {
		obj.Gravity = obj.Speed
	}
}

// applyGravity accelerates the fall. Gravity is the downward speed, negative
// while rising.
func applyGravity(obj *object.GameObject, dt float64) {
	obj.Gravity = math.Min(obj.Gravity+cfg.Physics.Gravity*dt, cfg.Physics.TerminalVelocity)
}

// respawnIfFallen puts a player whose whole body dropped below the level's
// bottom edge (y = 0) back on its spawn.
func respawnIfFallen(playerEntry *donburi.Entry) bool {
	obj := components.Object.Get(playerEntry).GameObject
	if obj.Bounds().Top() >= 0 {
		return false
	}
	Respawn(playerEntry)
	return true
}

// Respawn returns the player to its spawn point at rest.
func Respawn(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry).GameObject
	obj.SetPosition(player.Spawn.X, player.Spawn.Y)
	obj.Velocity = gamemath.Vec2{}
	obj.Gravity = 0
	obj.SetJumping(false)
}
