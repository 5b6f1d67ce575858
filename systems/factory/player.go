package factory

import (
	"github.com/automoto/boltrunner/archetypes"
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player

	poses, timelines := GeneratePlayerPoses()
	// every pose runs from spawn on; the active one is only picked at draw time
	timelines.Play()

	components.Player.SetValue(player, components.PlayerData{
		Poses:     poses,
		Timelines: timelines,
		Pose:      cfg.PoseStand,
	})
	components.Physics.SetValue(player, components.PhysicsData{})

	return player
}
