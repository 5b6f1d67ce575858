package config

// PoseID identifies one of the player's animation timelines.
type PoseID int

const (
	PoseStand PoseID = iota
	PoseLeft
	PoseRight
	PoseJump
	PoseJumpLeft
	PoseJumpRight
	PoseCount // Must be last - used for array sizing
)

// PoseToName maps a pose to its key in the pose definition file.
var PoseToName = map[PoseID]string{
	PoseStand:     "stand",
	PoseLeft:      "left",
	PoseRight:     "right",
	PoseJump:      "jump",
	PoseJumpLeft:  "jump_left",
	PoseJumpRight: "jump_right",
}

func (p PoseID) String() string {
	if name, ok := PoseToName[p]; ok {
		return name
	}
	return "unknown"
}

// PoseFromName is the inverse of PoseToName.
func PoseFromName(name string) (PoseID, bool) {
	for id, n := range PoseToName {
		if n == name {
			return id, true
		}
	}
	return 0, false
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	File string // pose definitions in the asset FS
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		File: "animations.yaml",
	}
}
