package components

import (
	"github.com/automoto/boltrunner/assets"
	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	Solids       gamemath.World // collision lookup over the level's platforms
}

var Level = donburi.NewComponentType[LevelData]()
