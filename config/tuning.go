package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// TuningFile is the name of the optional override file looked up in the
// working directory.
const TuningFile = "boltrunner.toml"

// tuning mirrors the overridable settings. Absent keys stay nil and leave
// the defaults alone.
type tuning struct {
	Player struct {
		MoveSpeed *float64 `toml:"move_speed"`
		JumpPower *float64 `toml:"jump_power"`
		StartX    *float64 `toml:"start_x"`
		StartY    *float64 `toml:"start_y"`
	} `toml:"player"`
	Physics struct {
		Gravity        *float64 `toml:"gravity"`
		TicksPerSecond *int     `toml:"ticks_per_second"`
	} `toml:"physics"`
	Level struct {
		File *string `toml:"file"`
	} `toml:"level"`
	Audio struct {
		MusicVolume *float64 `toml:"music_volume"`
	} `toml:"audio"`
	Debug struct {
		ShowHUD   *bool `toml:"show_hud"`
		ShowBoxes *bool `toml:"show_boxes"`
	} `toml:"debug"`
}

// LoadTuning applies overrides from the TOML file at path. A missing file is
// not an error; loaded reports whether one was read.
func LoadTuning(path string) (loaded bool, err error) {
	var t tuning
	md, err := toml.DecodeFile(path, &t)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read tuning %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return false, fmt.Errorf("tuning %s: unknown key %s", path, undecoded[0])
	}
	if err := t.validate(); err != nil {
		return false, fmt.Errorf("tuning %s: %w", path, err)
	}

	override(&Player.MoveSpeed, t.Player.MoveSpeed)
	override(&Player.JumpPower, t.Player.JumpPower)
	override(&Player.StartX, t.Player.StartX)
	override(&Player.StartY, t.Player.StartY)
	override(&Physics.Gravity, t.Physics.Gravity)
	override(&Physics.TicksPerSecond, t.Physics.TicksPerSecond)
	override(&Level.File, t.Level.File)
	override(&Audio.DefaultMusicVol, t.Audio.MusicVolume)
	override(&Debug.ShowHUD, t.Debug.ShowHUD)
	override(&Debug.ShowBoxes, t.Debug.ShowBoxes)
	return true, nil
}

func (t *tuning) validate() error {
	if v := t.Player.MoveSpeed; v != nil && *v < 0 {
		return fmt.Errorf("player.move_speed must not be negative, got %v", *v)
	}
	if v := t.Player.JumpPower; v != nil && *v < 0 {
		return fmt.Errorf("player.jump_power must not be negative, got %v", *v)
	}
	if v := t.Physics.TicksPerSecond; v != nil && *v <= 0 {
		return fmt.Errorf("physics.ticks_per_second must be positive, got %d", *v)
	}
	if v := t.Audio.MusicVolume; v != nil && (*v < 0 || *v > 1) {
		return fmt.Errorf("audio.music_volume must be within [0, 1], got %v", *v)
	}
	return nil
}

func override[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
