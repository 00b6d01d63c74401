// Package object moves actors through level geometry using a three-phase
// resolve: landing, head bump, then walls.
package object

import (
	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/shared/gamemath"
)

// Direction is the way an object is heading.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// Geometry answers first-overlap queries against static blocks.
// *collision.Handler satisfies it.
type Geometry interface {
	BoundsAt(probe gamemath.Rect, mask collision.Filter) (gamemath.Rect, bool)
}

type GameObject struct {
	Position  gamemath.Vec2
	Velocity  gamemath.Vec2
	Speed     float64
	Gravity   float64
	Direction Direction
	StateTime float64

	geometry Geometry
	bounds   gamemath.Rect

	// Crop insets; positive values shrink the collision box.
	right, bottom, left, top float64

	onGround bool
	jumping  bool
}

// New creates an object at pos with a w*h box cropped by the given insets.
func New(pos gamemath.Vec2, geometry Geometry, w, h, right, bottom, left, top float64) *GameObject {
	return &GameObject{
		Position: pos,
		geometry: geometry,
		bounds:   gamemath.NewRect(pos.X+left, pos.Y+top, w-(left+right), h-(bottom+top)),
		right:    right,
		bottom:   bottom,
		left:     left,
		top:      top,
	}
}

// SetPosition moves the object and re-derives its bounds from the insets.
func (o *GameObject) SetPosition(x, y float64) {
	o.Position = gamemath.NewVec2(x, y)
	o.bounds.SetPosition(x+o.left, y+o.top)
}

// TryMove moves the object toward newPos, stopping it on floors, under
// ceilings and against walls. Vertical resolution runs before horizontal.
func (o *GameObject) TryMove(newPos gamemath.Vec2) {
	o.onGround = false

	if newPos.Y < o.Position.Y {
		o.ResolveFromAbove(newPos)
	} else {
		o.SetPosition(o.Position.X, newPos.Y)
	}

	o.ResolveFromBelow(newPos)
	o.ResolveHorizontal(newPos)
}

// ResolveFromAbove sweeps the box down to newPos.Y. Landing on a hard or
// soft block snaps the object onto the block's top.
func (o *GameObject) ResolveFromAbove(newPos gamemath.Vec2) {
	probe := o.bounds
	probe.Y = newPos.Y + o.top
	probe.H = o.bounds.Y - probe.Y

	if hit, ok := o.boundsAt(probe, collision.Hard|collision.Soft); ok {
		o.onGround = true
		o.SetPosition(o.Position.X, hit.Top())
		return
	}
	o.onGround = false
	o.SetPosition(o.Position.X, newPos.Y)
}

// ResolveFromBelow checks a one-unit strip above the box against hard
// blocks. A hit ends the jump, damps gravity and pushes the object down.
func (o *GameObject) ResolveFromBelow(gamemath.Vec2) {
	probe := gamemath.NewRect(o.bounds.X, o.bounds.Top(), o.bounds.W, 1)

	if hit, ok := o.boundsAt(probe, collision.Hard); ok {
		o.jumping = false
		o.Gravity *= config.Physics.HeadBumpDamping
		o.SetPosition(o.Position.X, hit.Y-o.bounds.H-1)
	}
}

// ResolveHorizontal moves to newPos.X unless a hard block is in the way.
func (o *GameObject) ResolveHorizontal(newPos gamemath.Vec2) {
	probe := o.bounds
	probe.X = newPos.X + o.left

	if _, ok := o.boundsAt(probe, collision.Hard); ok {
		return
	}
	o.SetPosition(newPos.X, o.Position.Y)
}

func (o *GameObject) boundsAt(probe gamemath.Rect, mask collision.Filter) (gamemath.Rect, bool) {
	if o.geometry == nil {
		return gamemath.Rect{}, false
	}
	return o.geometry.BoundsAt(probe, mask)
}

// Animate advances the animation clock.
func (o *GameObject) Animate(dt float64) {
	o.StateTime += dt
}

// SwitchXDirection flips between left and right.
func (o *GameObject) SwitchXDirection() {
	switch o.Direction {
	case Left:
		o.Direction = Right
	case Right:
		o.Direction = Left
	}
	o.Velocity.X = -o.Velocity.X
}

// SwitchYDirection flips between up and down.
func (o *GameObject) SwitchYDirection() {
	switch o.Direction {
	case Up:
		o.Direction = Down
	case Down:
		o.Direction = Up
	}
	o.Velocity.Y = -o.Velocity.Y
}

func (o *GameObject) IsFalling() bool { return !o.onGround && o.Gravity >= 0 }
func (o *GameObject) IsMoving() bool { return o.Velocity.X != 0 || o.Velocity.Y != 0 }

func (o *GameObject) IsHeadingLeft() bool { return o.Direction == Left }
func (o *GameObject) IsHeadingRight() bool { return o.Direction == Right }
func (o *GameObject) IsHeadingUp() bool { return o.Direction == Up }
func (o *GameObject) IsHeadingDown() bool { return o.Direction == Down }

func (o *GameObject) Bounds() gamemath.Rect { return o.bounds }
func (o *GameObject) OnGround() bool { return o.onGround }
func (o *GameObject) Jumping() bool { return o.jumping }
func (o *GameObject) SetJumping(j bool) { o.jumping = j }
func (o *GameObject) Geometry() Geometry { return o.geometry }
func (o *GameObject) SetGeometry(g Geometry) { o.geometry = g }
