package components

import (
	"github.com/automoto/boltrunner/assets"
	"github.com/automoto/boltrunner/assets/animations"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Poses assets.Poses
	// Every pose timeline, started together so switching poses never
	// restarts a cycle.
	Timelines *animations.Conductor
	Pose      cfg.PoseID
	Controls  gamemath.Controls
}

var Player = donburi.NewComponentType[PlayerData]()

// PoseFor picks the pose shown for the held controls. Right wins over left,
// and a jump only shows while no direction is held or combined with one.
func PoseFor(in gamemath.Controls) cfg.PoseID {
	switch {
	case in.Right && in.Jump:
		return cfg.PoseJumpRight
	case in.Right:
		return cfg.PoseRight
	case in.Left && in.Jump:
		return cfg.PoseJumpLeft
	case in.Left:
		return cfg.PoseLeft
	case in.Jump:
		return cfg.PoseJump
	}
	return cfg.PoseStand
}

// SetControls records this tick's input and the pose it selects.
func (p *PlayerData) SetControls(in gamemath.Controls) {
	p.Controls = in
	p.Pose = PoseFor(in)
}

// Timeline is the timeline of the active pose.
func (p *PlayerData) Timeline() *animations.Timeline {
	return p.Poses[p.Pose]
}
