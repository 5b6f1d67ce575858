package factory

import (
	"github.com/automoto/boltrunner/archetypes"
	"github.com/automoto/boltrunner/assets"
	"github.com/automoto/boltrunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for an already loaded level.
func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}
