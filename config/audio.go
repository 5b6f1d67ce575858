package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	MusicFadeInSecs float32
}

// SoundConfig maps music to file paths
type SoundConfig struct {
	LevelMusic string
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.6,
		MusicFadeInSecs: 2,
	}

	Sound = SoundConfig{
		LevelMusic: "audio/music/level.wav",
	}
}
