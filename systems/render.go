package systems

import (
	"image"

	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ebitenSurface draws timeline frames onto an ebiten image. Frames are
// uploaded to the GPU on first use and reused after.
type ebitenSurface struct {
	dst   *ebiten.Image
	cache map[image.Image]*ebiten.Image
	op    ebiten.DrawImageOptions
}

func (s *ebitenSurface) DrawImage(img image.Image, at image.Point) {
	eimg, ok := s.cache[img]
	if !ok {
		eimg = ebiten.NewImageFromImage(img)
		s.cache[img] = eimg
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.dst.DrawImage(eimg, &s.op)
}

var frameSurface = &ebitenSurface{cache: make(map[image.Image]*ebiten.Image)}

// DrawBackground fills the screen with the sky colour.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.C.Background)
}

// DrawPlayer renders the active pose of every player, offset by the camera.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	frameSurface.dst = screen
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		tl := player.Timeline()
		if tl == nil {
			return
		}
		o := components.Object.Get(e)
		at := image.Pt(int(o.X+camera.Position.X), int(o.Y+camera.Position.Y))
		tl.Draw(frameSurface, at)
	})
}
