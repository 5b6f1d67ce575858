package systems

import (
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills every visible platform tile with the colour of its kind.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x := o.X + camera.Position.X
		y := o.Y + camera.Position.Y

		// Viewport culling
		if x+o.W < 0 || x > width || y+o.H < 0 || y > height {
			return
		}

		kind := components.Platform.Get(e).Kind
		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), cfg.TileColors[kind], false)
	})
}
