package systems

import (
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/projectile"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// View maps y-up world coordinates onto the screen around a camera.
type View struct {
	Camera        gamemath.Vec2
	Width, Height float64
}

func viewFor(e *ecs.ECS, screen *ebiten.Image) (View, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return View{}, false
	}
	return View{
		Camera: components.Camera.Get(cameraEntry).Position,
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}, true
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	return x - v.Camera.X + v.Width/2, v.Height/2 - (y - v.Camera.Y)
}

// RectToScreen returns the screen-space top-left corner of a world rectangle.
func (v View) RectToScreen(r gamemath.Rect) (float64, float64) {
	return v.ToScreen(r.X, r.Top())
}

// Visible reports whether any part of r is on screen.
func (v View) Visible(r gamemath.Rect) bool {
	return r.Right() >= v.Camera.X-v.Width/2 && r.X <= v.Camera.X+v.Width/2 &&
		r.Top() >= v.Camera.Y-v.Height/2 && r.Y <= v.Camera.Y+v.Height/2
}

// ScreenBatch draws projectile textures through a View.
type ScreenBatch struct {
	Screen *ebiten.Image
	View   View
	op     ebiten.DrawImageOptions
}

var _ projectile.Batch = (*ScreenBatch)(nil)

// Draw places tex with its bottom-left corner at world (x, y). Textures that
// are not ebiten images are skipped.
func (b *ScreenBatch) Draw(tex projectile.Texture, x, y float64) {
	img, ok := tex.(*ebiten.Image)
	if !ok {
		return
	}
	sx, sy := b.View.ToScreen(x, y+float64(img.Bounds().Dy()))
	b.op.GeoM.Reset()
	b.op.GeoM.Translate(sx, sy)
	b.Screen.DrawImage(img, &b.op)
}

func DrawPlayers(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := viewFor(ecs, screen)
	if !ok {
		return
	}
	components.Player.Each(ecs.World, func(entry *donburi.Entry) {
		body := components.Object.Get(entry).Bounds()
		x, y := view.RectToScreen(body)
		vector.FillRect(screen, float32(x), float32(y), float32(body.W), float32(body.H), cfg.UI.PlayerColor, false)

		// Facing marker
		player := components.Player.Get(entry)
		eyeX := x + body.W/2 + player.Facing*body.W/4 - 1
		vector.FillRect(screen, float32(eyeX), float32(y+body.H/4), 2, 2, cfg.UI.HUDTextColor, false)
	})
}

func DrawProjectiles(ecs *ecs.ECS, screen *ebiten.Image) {
	view, ok := viewFor(ecs, screen)
	if !ok {
		return
	}
	batch := &ScreenBatch{Screen: screen, View: view}
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		if w := components.Weapon.Get(entry); w.Firearm != nil {
			w.Firearm.Render(batch)
		}
	})
}
