package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvProbe  = "probe" // broad-phase query box
)
