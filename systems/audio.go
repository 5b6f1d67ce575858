package systems

import (
	"sync"

	"github.com/automoto/boltrunner/archetypes"
	"github.com/automoto/boltrunner/assets/sound"
	"github.com/automoto/boltrunner/components"
	cfg "github.com/automoto/boltrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSoundLoader  *sound.Loader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSoundLoader = sound.NewLoader(globalAudioContext)
	})
}

// UpdateAudio advances the music fade-in.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.FadeIn == nil || audioData.MusicPlayer == nil {
		return
	}

	volume, done := audioData.FadeIn.Update(float32(1.0 / float64(ebiten.TPS())))
	audioData.MusicPlayer.SetVolume(float64(volume))
	if done {
		audioData.FadeIn = nil
	}
}

// PlayMusic starts looping the music at path, fading it in. Music that fails
// to load is skipped; the game runs silent.
func PlayMusic(e *ecs.ECS, path string) {
	initGlobalAudio()
	audioData := GetOrCreateAudio(e)

	// Already playing this music
	if audioData.CurrentMusicKey == path {
		return
	}

	player, err := globalSoundLoader.LoadMusic(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("music unavailable; running silent")
		return
	}

	stopMusic(audioData)

	player.SetVolume(0)
	player.Play()

	audioData.MusicPlayer = player
	audioData.CurrentMusicKey = path
	audioData.FadeIn = gween.New(0, float32(audioData.MusicVolume), cfg.Audio.MusicFadeInSecs, ease.OutQuad)
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	stopMusic(components.Audio.Get(entry))
}

func stopMusic(audioData *components.AudioData) {
	if audioData.MusicPlayer != nil {
		_ = audioData.MusicPlayer.Close()
	}
	audioData.MusicPlayer = nil
	audioData.CurrentMusicKey = ""
	audioData.FadeIn = nil
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if entry, ok := components.Audio.First(e.World); ok {
		if p := components.Audio.Get(entry).MusicPlayer; p != nil {
			p.Pause()
		}
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if entry, ok := components.Audio.First(e.World); ok {
		if p := components.Audio.Get(entry).MusicPlayer; p != nil {
			p.Play()
		}
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: cfg.Audio.DefaultMusicVol,
		})
	}
	return components.Audio.Get(entry)
}
