package components

import (
	cfg "github.com/automoto/boltrunner/config"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Kind  cfg.TileKind
	Index int // position in level order; collisions resolve in this order
}

var Platform = donburi.NewComponentType[PlatformData]()
