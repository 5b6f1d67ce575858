package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AudioData stores the music state of a scene (singleton component)
type AudioData struct {
	MusicPlayer     *audio.Player
	MusicVolume     float64 // 0.0 - 1.0
	CurrentMusicKey string
	FadeIn          *gween.Tween // nil once the fade is done
}

var Audio = donburi.NewComponentType[AudioData]()
