package sound

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed all:audio
var audioFS embed.FS

// Loader builds music players from the embedded audio files.
type Loader struct {
	context *audio.Context
}

func NewLoader(ctx *audio.Context) *Loader {
	return &Loader{context: ctx}
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

func (l *Loader) decode(path string, data []byte) (stream, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// LoadMusic returns a looping player for path. Music streams from the
// embedded file and is not cached.
func (l *Loader) LoadMusic(path string) (*audio.Player, error) {
	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", path, err)
	}

	s, err := l.decode(path, data)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(s, s.Length())
	return l.context.NewPlayer(loop)
}
