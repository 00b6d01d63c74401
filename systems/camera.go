package systems

import (
	"math"

	"github.com/automoto/platformkit/components"
	"github.com/automoto/platformkit/config"
	"github.com/automoto/platformkit/shared/gamemath"
	"github.com/automoto/platformkit/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Bounds()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	target := followTarget(
		gamemath.Vec2{X: body.X + body.W/2, Y: body.Y + body.H/2},
		float64(config.C.Width), float64(config.C.Height),
		float64(levelData.CurrentLevel.MapWidth), float64(levelData.CurrentLevel.MapHeight),
	)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// followTarget clamps target so the view stays inside the level. A level
// smaller than the screen is centered on that axis.
func followTarget(target gamemath.Vec2, screenW, screenH, levelW, levelH float64) gamemath.Vec2 {
	return gamemath.Vec2{
		X: clampAxis(target.X, screenW, levelW),
		Y: clampAxis(target.Y, screenH, levelH),
	}
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
