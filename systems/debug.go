package systems

import (
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object in the space when enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBoxes {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if obj.HasTags(tags.ResolvProbe) {
			continue
		}
		x := obj.X + camera.Position.X
		y := obj.Y + camera.Position.Y
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, cfg.Debug.BoxColor, false)
	}
}
