package systems

import (
	"image/color"

	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills every block, colored by category.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	geometry := components.Level.Get(levelEntry).Geometry
	view, ok := viewFor(ecs, screen)
	if !ok || geometry == nil {
		return
	}

	drawBlocks(screen, view, geometry.HardBlocks(), cfg.UI.HardBlockColor)
	drawBlocks(screen, view, geometry.SoftBlocks(), cfg.UI.SoftBlockColor)
	drawBlocks(screen, view, geometry.DoorBlocks(), cfg.UI.DoorBlockColor)
	drawBlocks(screen, view, geometry.SandBlocks(), cfg.UI.SandBlockColor)
}

func drawBlocks(screen *ebiten.Image, view View, blocks []gamemath.Rect, c color.Color) {
	for _, b := range blocks {
		if !view.Visible(b) {
			continue
		}
		x, y := view.RectToScreen(b)
		vector.FillRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), c, false)
	}
}
