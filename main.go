package main

import (
	"errors"
	"image"
	"os"
	"time"

	"github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/fonts"
	"github.com/automoto/boltrunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	tuning *config.TuningWatcher
}

func NewGame() (*Game, error) {
	if err := fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, config.UI.HUDFontSize); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Bold, gobold.TTF, config.UI.TitleFontSize); err != nil {
		return nil, err
	}

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewPlatformerScene(config.Level.File),
	}, nil
}

func (g *Game) Update() error {
	if g.tuning != nil {
		g.reloadTuning()
	}
	return g.scene.Update()
}

// reloadTuning re-applies the tuning file after an edit. Values read every
// tick take effect immediately; the level file only applies on restart.
func (g *Game) reloadTuning() {
	select {
	case err := <-g.tuning.Errors:
		log.Warn().Err(err).Msg("tuning watcher")
	default:
	}
	if !g.tuning.Poll() {
		return
	}
	if _, err := config.LoadTuning(config.TuningFile); err != nil {
		log.Warn().Err(err).Msg("tuning reload rejected")
		return
	}
	ebiten.SetTPS(config.Physics.TicksPerSecond)
	log.Info().Str("path", config.TuningFile).Msg("tuning reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	loaded, err := config.LoadTuning(config.TuningFile)
	if err != nil {
		log.Fatal().Err(err).Msg("bad tuning file")
	}
	if loaded {
		log.Info().Str("path", config.TuningFile).Msg("tuning overrides applied")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Physics.TicksPerSecond)

	game, err := NewGame()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	if loaded {
		if game.tuning, err = config.WatchTuning(config.TuningFile); err != nil {
			log.Warn().Err(err).Msg("tuning hot reload disabled")
		} else {
			defer game.tuning.Close()
		}
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game crashed")
	}
}
