package factory

import (
	"fmt"
	"sync"

	"github.com/automoto/boltrunner/assets"
	"github.com/automoto/boltrunner/assets/animations"
	cfg "github.com/automoto/boltrunner/config"
)

var (
	playerPoseTemplate assets.Poses
	playerPoseOnce     sync.Once
)

// GeneratePlayerPoses returns fresh, stopped timelines for every player pose.
// Frame images are decoded once and shared between players.
func GeneratePlayerPoses() (assets.Poses, *animations.Conductor) {
	playerPoseOnce.Do(func() {
		playerPoseTemplate = assets.MustLoadPlayerPoses()
	})

	poses := make(assets.Poses, len(playerPoseTemplate))
	timelines := make([]*animations.Timeline, 0, len(playerPoseTemplate))
	for id := cfg.PoseID(0); id < cfg.PoseCount; id++ {
		tl := playerPoseTemplate[id].Copy()
		poses[id] = tl
		timelines = append(timelines, tl)
	}

	conductor, err := animations.NewConductor(timelines...)
	if err != nil {
		panic(fmt.Sprintf("Failed to group player poses: %v", err))
	}
	return poses, conductor
}
