package animations

import (
	"fmt"
	"image"
	"io/fs"

	// frame files are png
	_ "image/png"
)

// FrameDef describes a frame by file path or by an already decoded image.
// Exactly one of Path and Image is set.
type FrameDef struct {
	Path     string
	Image    image.Image
	Duration float64
}

// Load decodes every Path in defs from fsys and builds a timeline from them.
func Load(fsys fs.FS, defs []FrameDef, opts ...Option) (*Timeline, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("must contain at least one frame: %w", ErrInvalidFrame)
	}

	frames := make([]Frame, 0, len(defs))
	for i, def := range defs {
		img, err := def.resolve(fsys)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, Frame{Image: img, Duration: def.Duration})
	}
	return New(frames, opts...)
}

func (d FrameDef) resolve(fsys fs.FS) (image.Image, error) {
	switch {
	case d.Path != "" && d.Image != nil:
		return nil, fmt.Errorf("both path %q and image set: %w", d.Path, ErrInvalidFrame)
	case d.Image != nil:
		return d.Image, nil
	case d.Path == "":
		return nil, fmt.Errorf("neither path nor image set: %w", ErrInvalidFrame)
	}
	return DecodeImage(fsys, d.Path)
}

// DecodeImage reads and decodes one image file from fsys.
func DecodeImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode frame image %s: %w", path, err)
	}
	return img, nil
}
