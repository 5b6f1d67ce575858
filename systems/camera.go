package systems

import (
	"github.com/automoto/boltrunner/components"
	"github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/automoto/boltrunner/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player centred without scrolling past the level edges.
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
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	camera.Position.X, camera.Position.Y = gamemath.CameraWindow(
		playerObject.Rect(),
		float64(config.C.Width),
		float64(config.C.Height),
		float64(levelData.CurrentLevel.Width),
		float64(levelData.CurrentLevel.Height),
	)
}
