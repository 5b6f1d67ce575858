package systems

import (
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/automoto/boltrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).Solids
	if world == nil {
		return
	}

	controls := playerControls(getOrCreateInput(ecs))
	dt := 1.0 / float64(ebiten.TPS())

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		StepPlayer(playerEntry, controls, dt, world)
	})
}

func playerControls(input *components.InputData) gamemath.Controls {
	return gamemath.Controls{
		Left:  input.Current[cfg.ActionMoveLeft],
		Right: input.Current[cfg.ActionMoveRight],
		Jump:  input.Current[cfg.ActionJump],
	}
}

func playerTuning() gamemath.Tuning {
	return gamemath.Tuning{
		MoveSpeed: cfg.Player.MoveSpeed,
		JumpPower: cfg.Player.JumpPower,
		Gravity:   cfg.Physics.Gravity,
		FixedStep: cfg.Physics.FixedStep,
	}
}

// StepPlayer picks the pose for in and moves the player dt seconds through world.
func StepPlayer(playerEntry *donburi.Entry, in gamemath.Controls, dt float64, world gamemath.World) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	player.SetControls(in)

	body := gamemath.Body{
		Rect:     obj.Rect(),
		VX:       physics.VX,
		VY:       physics.VY,
		OnGround: physics.OnGround,
	}
	gamemath.Step(&body, in, playerTuning(), dt, world)

	obj.MoveTo(body.Rect)
	physics.VX = body.VX
	physics.VY = body.VY
	physics.OnGround = body.OnGround
}
