package systems

import (
	"fmt"

	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/fonts"
	"github.com/automoto/boltrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD prints the player's pose, animation position and body state in the
// top-left corner. F3 toggles it.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil()
	x := cfg.UI.HUDMargin
	y := cfg.UI.HUDMargin + face.Metrics().Ascent.Ceil()

	for _, line := range hudLines(playerEntry) {
		text.Draw(screen, line, face, x+1, y+1, cfg.TextShadow)
		text.Draw(screen, line, face, x, y, cfg.UI.HUDTextColor)
		y += lineHeight
	}
}

func hudLines(e *donburi.Entry) []string {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	o := components.Object.Get(e)

	lines := make([]string, 0, 3)
	if tl := player.Timeline(); tl != nil {
		lines = append(lines, fmt.Sprintf("pose %s  frame %d/%d  %.2fs %s",
			player.Pose, tl.FrameIndex()+1, tl.Len(), tl.Elapsed(), tl.State()))
	}
	lines = append(lines,
		fmt.Sprintf("pos %.0f,%.0f  vel %.2f,%.2f", o.X, o.Y, physics.VX, physics.VY),
		fmt.Sprintf("grounded %t  tps %.0f  fps %.0f", physics.OnGround, ebiten.ActualTPS(), ebiten.ActualFPS()),
	)
	return lines
}
