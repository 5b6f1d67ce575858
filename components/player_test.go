package components

import (
	"testing"

	cfg "github.com/automoto/boltrunner/config"
	"github.com/automoto/boltrunner/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestPoseFor(t *testing.T) {
	tests := []struct {
		name string
		in   gamemath.Controls
		want cfg.PoseID
	}{
		{"nothing", gamemath.Controls{}, cfg.PoseStand},
		{"jump", gamemath.Controls{Jump: true}, cfg.PoseJump},
		{"left", gamemath.Controls{Left: true}, cfg.PoseLeft},
		{"right", gamemath.Controls{Right: true}, cfg.PoseRight},
		{"jump left", gamemath.Controls{Left: true, Jump: true}, cfg.PoseJumpLeft},
		{"jump right", gamemath.Controls{Right: true, Jump: true}, cfg.PoseJumpRight},
		{"both", gamemath.Controls{Left: true, Right: true}, cfg.PoseRight},
		{"both jumping", gamemath.Controls{Left: true, Right: true, Jump: true}, cfg.PoseJumpRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PoseFor(tt.in))
		})
	}
}

func TestSetControls(t *testing.T) {
	p := &PlayerData{}
	in := gamemath.Controls{Left: true}
	p.SetControls(in)
	assert.Equal(t, in, p.Controls)
	assert.Equal(t, cfg.PoseLeft, p.Pose)
	assert.Nil(t, p.Timeline())
}

func TestInputAction(t *testing.T) {
	in := &InputData{}
	in.Current[cfg.ActionJump] = true
	in.Previous[cfg.ActionQuit] = true
	in.Current[cfg.ActionMoveLeft] = true
	in.Previous[cfg.ActionMoveLeft] = true

	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionJump))
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionQuit))
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionMoveLeft))
	assert.Equal(t, ActionState{}, in.Action(cfg.ActionPause))
}
