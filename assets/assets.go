package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"

	"github.com/automoto/boltrunner/assets/animations"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images animations.yaml
	animationFS embed.FS
)

// ImageLoader decodes frame images once and hands out the cached copy after.
type ImageLoader struct {
	fsys  fs.FS
	cache map[string]image.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:  fsys,
		cache: make(map[string]image.Image),
	}
}

func (l *ImageLoader) LoadImage(path string) (image.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	img, err := animations.DecodeImage(l.fsys, path)
	if err != nil {
		return nil, err
	}

	l.cache[path] = img
	return img, nil
}

func (l *ImageLoader) MustLoadImage(path string) image.Image {
	img, err := l.LoadImage(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load image %s: %v", path, err))
	}
	return img
}

var (
	imageLoader = NewImageLoader(animationFS)
)

// GetImage returns an embedded image, decoding it on first use.
func GetImage(path string) image.Image {
	return imageLoader.MustLoadImage(path)
}
