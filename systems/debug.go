package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformkit/collision"
	"github.com/automoto/platformkit/components"
	"github.com/automoto/platformkit/fonts"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugHardColor       = color.RGBA{100, 100, 100, 255}
	debugSoftColor       = color.RGBA{0, 255, 255, 255}
	debugDoorColor       = color.RGBA{255, 160, 0, 255}
	debugSandColor       = color.RGBA{255, 255, 0, 255}
	debugPlayerColor     = color.RGBA{0, 0, 255, 255}
	debugProjectileColor = color.RGBA{0, 255, 0, 255}
)

// DrawDebug outlines the resolv mirror of the level plus every body and
// projectile when the bounds overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowBounds {
		return
	}
	view, ok := viewFor(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			r := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
			if !view.Visible(r) {
				continue
			}

			// Determine color based on tags
			c := debugSoftColor
			switch {
			case obj.HasTags(collision.TagHard):
				c = debugHardColor
			case obj.HasTags(collision.TagDoor):
				c = debugDoorColor
			case obj.HasTags(collision.TagSand):
				c = debugSandColor
			}
			strokeRect(screen, view, r, c)
		}
	}

	components.Object.Each(ecs.World, func(entry *donburi.Entry) {
		strokeRect(screen, view, components.Object.Get(entry).Bounds(), debugPlayerColor)
	})

	live := 0
	components.Weapon.Each(ecs.World, func(entry *donburi.Entry) {
		w := components.Weapon.Get(entry)
		if w.Firearm == nil {
			return
		}
		for _, p := range w.Firearm.Live() {
			strokeRect(screen, view, p.Bounds(), debugProjectileColor)
			live++
		}
	})

	msg := fmt.Sprintf("TPS %.0f  FPS %.0f  projectiles %d", ebiten.ActualTPS(), ebiten.ActualFPS(), live)
	text.Draw(screen, msg, fonts.Small.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, debugSoftColor)
}

// strokeRect draws a one-pixel outline of a world rectangle.
func strokeRect(screen *ebiten.Image, view View, r gamemath.Rect, c color.Color) {
	x, y := view.RectToScreen(r)
	vector.FillRect(screen, float32(x), float32(y), float32(r.W), 1, c, false)         // Top
	vector.FillRect(screen, float32(x), float32(y+r.H-1), float32(r.W), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(r.H), c, false)         // Left
	vector.FillRect(screen, float32(x+r.W-1), float32(y), 1, float32(r.H), c, false) // Right
}
