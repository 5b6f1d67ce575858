package animations

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(s float64) { c.now = c.now.Add(seconds(s)) }

type blit struct {
	img image.Image
	at  image.Point
}

type recordingSurface struct {
	blits []blit
}

func (s *recordingSurface) DrawImage(img image.Image, at image.Point) {
	s.blits = append(s.blits, blit{img: img, at: at})
}

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pixel(img image.Image, x, y int) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

// threeFrames is the red, green, blue timeline lasting 1, 1 and 2.5 seconds.
func threeFrames(t *testing.T, opts ...Option) (*Timeline, []image.Image) {
	t.Helper()
	imgs := []image.Image{solid(2, 2, red), solid(2, 2, green), solid(2, 2, blue)}
	tl, err := New([]Frame{
		{Image: imgs[0], Duration: 1},
		{Image: imgs[1], Duration: 1},
		{Image: imgs[2], Duration: 2.5},
	}, opts...)
	require.NoError(t, err)
	return tl, imgs
}
