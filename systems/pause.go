package systems

import (
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/fonts"
	"github.com/automoto/boltrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause. Player animations freeze on the frame they
// show and pick up from there on resume.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if !input.Action(cfg.ActionPause).JustPressed {
		return
	}

	pause.IsPaused = !pause.IsPaused
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		timelines := components.Player.Get(e).Timelines
		if pause.IsPaused {
			timelines.Pause()
		} else {
			timelines.Play()
		}
	})
	if pause.IsPaused {
		PauseMusic(ecs)
	} else {
		ResumeMusic(ecs)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	face := fonts.Bold.Get()
	bounds := text.BoundString(face, cfg.Pause.Label)
	x := (width - bounds.Dx()) / 2
	y := (height + bounds.Dy()) / 2
	text.Draw(screen, cfg.Pause.Label, face, x, y, cfg.Pause.TextColor)
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

// WithGameplayChecks wraps systems that only run during live gameplay.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
