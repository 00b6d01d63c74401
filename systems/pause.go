package systems

import (
	"github.com/automoto/platformkit/components"
	cfg "github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if !input.IsPausePressed() {
		return
	}
	pause.IsPaused = !pause.IsPaused
	if pause.IsPaused {
		PauseMusic(ecs)
	} else {
		ResumeMusic(ecs)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.OverlayColor, false)

	const title = "PAUSED"
	// Approximate width for the bold face
	textWidth := len(title) * int(cfg.UI.HUDFontSize)
	text.Draw(screen, title, fonts.Bold.Get(), int(width-float64(textWidth))/2, int(height/2), cfg.UI.HUDTextColor)

	hint := getPauseHint(getOrCreateInput(ecs).LastInputMethod)
	hintWidth := len(hint) * 6
	text.Draw(screen, hint, fonts.Small.Get(), int(width-float64(hintWidth))/2, int(height)-12, cfg.UI.HUDTextColor)
}

// getPauseHint returns the resume hint for the last used device
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Options: Resume"
	case components.InputXbox:
		return "Start: Resume"
	}
	return "P: Resume   Esc: Quit"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
