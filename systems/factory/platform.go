package factory

import (
	"github.com/automoto/boltrunner/archetypes"
	"github.com/automoto/boltrunner/assets"
	"github.com/automoto/boltrunner/components"
	"github.com/automoto/boltrunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a solid tile. index orders collision resolution.
func CreatePlatform(ecs *ecs.ECS, tile assets.Tile, index int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	object := resolv.NewObject(tile.X, tile.Y, tile.Width, tile.Height, tags.ResolvSolid)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{
		Kind:  tile.Kind,
		Index: index,
	})

	return platform
}
