package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 6
	hudMargin    = 10
	hudLineGap   = 14
)

// weaponStats is the read-only view of a firearm the HUD shows.
type weaponStats interface {
	Ammo() int16
	UnlimitedAmmo() bool
	MaxCapacity() int
}

// DrawHUD renders the weapon readout in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	w := components.Weapon.Get(playerEntry)
	if w.Firearm == nil {
		return
	}
	player := components.Player.Get(playerEntry)
	face := fonts.Regular.Get()

	lines := []string{
		fmt.Sprintf("%s  shots %d", w.Kind, player.Shots),
		fmt.Sprintf("live %d", len(w.Firearm.Live())),
	}
	if stats, ok := w.Firearm.(weaponStats); ok {
		lines = append(lines, ammoLine(stats))
		drawCapacityBar(screen, len(w.Firearm.Live()), stats.MaxCapacity())
	}

	y := hudMargin + hudBarHeight + hudLineGap
	for _, line := range lines {
		text.Draw(screen, line, face, hudMargin, y, cfg.UI.HUDTextColor)
		y += hudLineGap
	}
}

func ammoLine(stats weaponStats) string {
	if stats.UnlimitedAmmo() {
		return "ammo inf"
	}
	return fmt.Sprintf("ammo %d", stats.Ammo())
}

// drawCapacityBar shows how full the live list is. Uncapped weapons draw
// only the background.
func drawCapacityBar(screen *ebiten.Image, live, capacity int) {
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)
	if capacity <= 0 {
		return
	}
	ratio := float32(live) / float32(capacity)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		cfg.UI.ProjectileColor, false)
}
