package scenes

import (
	"sync"

	"github.com/automoto/boltrunner/assets"
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/systems"
	factory2 "github.com/automoto/boltrunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs       *ecs.ECS
	levelPath string
	once      sync.Once
}

// NewPlatformerScene creates a scene playing the level at levelPath in the
// embedded assets.
func NewPlatformerScene(levelPath string) *PlatformerScene {
	return &PlatformerScene{levelPath: levelPath}
}

// Update runs one fixed tick. It returns ebiten.Termination once the player
// asks to quit.
func (ps *PlatformerScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.QuitRequested(ps.ecs) {
		systems.StopMusic(ps.ecs)
		return ebiten.Termination
	}
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		screen.Fill(cfg.C.Background)
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// camera follows last tick's position, then the player moves
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))

	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	level := assets.MustLoadLevel(ps.levelPath)
	populate(ps.ecs, level)
	log.Info().
		Str("level", level.Name).
		Int("tiles", len(level.Tiles)).
		Int("width", level.Width).
		Int("height", level.Height).
		Msg("level loaded")

	systems.PlayMusic(ps.ecs, cfg.Sound.LevelMusic)
}

// populate spawns the level, its platforms, the camera and the player, and
// links the collision lookup to the level entity.
func populate(e *ecs.ECS, level *assets.Level) *donburi.Entry {
	levelEntry := factory2.CreateLevel(e, level)

	spaceEntry := factory2.CreateSpace(e,
		level.Width,
		level.Height,
		cfg.Level.CellSize, cfg.Level.CellSize,
	)
	space := components.Space.Get(spaceEntry)

	for i, tile := range level.Tiles {
		platform := factory2.CreatePlatform(e, tile, i)
		space.Add(components.Object.Get(platform).Object)
	}
	components.Level.Get(levelEntry).Solids = components.NewSpaceSolids(space)

	factory2.CreateCamera(e)

	player := factory2.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)
	space.Add(components.Object.Get(player).Object)

	return player
}
