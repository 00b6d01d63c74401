// Package projectile implements pooled bullets that fly in a straight line
// until they hit hard geometry.
package projectile

//go:generate go tool mockgen -destination=./mocks/batch_mock.go -package=mocks . Batch

import (
	"image"

	"github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/pool"
	"github.com/automoto/platformkit/shared/gamemath"
)

// Texture is anything with pixel bounds. *ebiten.Image satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Batch draws textures at world positions.
type Batch interface {
	Draw(tex Texture, x, y float64)
}

// Geometry answers whether a box overlaps solid level geometry.
// *collision.Handler satisfies it.
type Geometry interface {
	IsCollisionWithHardBlock(box gamemath.Rect) bool
}

type Projectile struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Speed    float64
	Damage   float64
	Angle    float64 // radians the velocity was rotated by when fired
	Texture  Texture

	geometry Geometry
	bounds   gamemath.Rect
	width    float64
	height   float64

	// Crop insets; positive values shrink the collision box.
	right, bottom, left, top float64

	origin    gamemath.Vec2
	travelled float64
	collided  bool
}

// New creates a projectile at pos with a w*h box cropped by the given insets.
func New(pos gamemath.Vec2, geometry Geometry, w, h, right, bottom, left, top float64) *Projectile {
	p := &Projectile{
		Position: pos,
		Velocity: gamemath.NewVec2(config.Projectile.DefaultSpeed, 0),
		geometry: geometry,
		width:    w,
		height:   h,
		right:    right,
		bottom:   bottom,
		left:     left,
		top:      top,
		origin:   pos,
	}
	p.updateBounds()
	return p
}

// NewTemplate creates an uncropped projectile meant to be passed to a
// weapon's Shoot.
func NewTemplate(pos, vel gamemath.Vec2, geometry Geometry, w, h float64) *Projectile {
	p := New(pos, geometry, w, h, 0, 0, 0, 0)
	p.Velocity = vel
	p.Speed = vel.Len()
	return p
}

// Copy returns a projectile with template's size, insets and geometry.
// Position and velocity are left for the firer to set.
func Copy(template *Projectile) *Projectile {
	return New(gamemath.Vec2{}, template.geometry, template.width, template.height,
		template.right, template.bottom, template.left, template.top)
}

// Launch loads the firing state of template onto p and rotates its velocity
// by angle radians. The launch position becomes p's origin for range checks.
func (p *Projectile) Launch(template *Projectile, angle float64) {
	p.width, p.height = template.width, template.height
	p.right, p.bottom, p.left, p.top = template.right, template.bottom, template.left, template.top
	p.geometry = template.geometry
	p.Texture = template.Texture
	p.Speed = template.Speed
	p.Damage = template.Damage
	p.Angle = angle
	p.Velocity = template.Velocity
	if angle != 0 {
		p.Velocity = p.Velocity.Rotate(angle)
	}
	p.Position = template.Position
	p.origin = template.Position
	p.travelled = 0
	p.collided = false
	p.updateBounds()
}

// Tick moves the projectile by its velocity and checks it against hard
// geometry. A projectile without geometry never collides.
func (p *Projectile) Tick(dt float64) {
	step := gamemath.Vec2{X: p.Velocity.X * dt}
	if p.Velocity.Y != 0 {
		step.Y = p.Velocity.Y * dt
	}
	p.Position = p.Position.Add(step)
	p.travelled += step.Len()
	p.updateBounds()
	p.collided = p.geometry != nil && p.geometry.IsCollisionWithHardBlock(p.bounds)
}

// Render draws the texture at the projectile's position.
func (p *Projectile) Render(batch Batch) {
	if p.Texture == nil {
		return
	}
	batch.Draw(p.Texture, p.Position.X, p.Position.Y)
}

// Reset returns the projectile to its idle state: at the origin, moving at
// the default speed, with no insets, size or damage. The texture is kept.
func (p *Projectile) Reset() {
	p.Position = gamemath.Vec2{}
	p.origin = gamemath.Vec2{}
	p.Velocity = gamemath.NewVec2(config.Projectile.DefaultSpeed, 0)
	p.right, p.bottom, p.left, p.top = 0, 0, 0, 0
	p.width, p.height = 0, 0
	p.Speed = 0
	p.Damage = 0
	p.Angle = 0
	p.travelled = 0
	p.collided = false
	p.updateBounds()
}

// SetPosition moves the projectile and its collision box.
func (p *Projectile) SetPosition(pos gamemath.Vec2) {
	p.Position = pos
	p.updateBounds()
}

func (p *Projectile) updateBounds() {
	p.bounds = gamemath.NewRect(
		p.Position.X+p.left,
		p.Position.Y+p.top,
		p.width-(p.left+p.right),
		p.height-(p.bottom+p.top),
	)
}

func (p *Projectile) Bounds() gamemath.Rect { return p.bounds }
func (p *Projectile) Collided() bool { return p.collided }
func (p *Projectile) Travelled() float64 { return p.travelled }
func (p *Projectile) Origin() gamemath.Vec2 { return p.origin }
func (p *Projectile) Geometry() Geometry { return p.geometry }
func (p *Projectile) SetGeometry(g Geometry) { p.geometry = g }
func (p *Projectile) Size() (w, h float64) { return p.width, p.height }
func (p *Projectile) Insets() (r, b, l, t float64) { return p.right, p.bottom, p.left, p.top }

// NewPool returns a pool of idle projectiles. max <= 0 leaves it uncapped.
func NewPool(initialCapacity, max int) *pool.Pool[*Projectile] {
	return pool.New(func() *Projectile {
		p := &Projectile{}
		p.Reset()
		return p
	}, initialCapacity, max)
}
