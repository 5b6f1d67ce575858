package animations

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraw(t *testing.T) {
	clock := newFakeClock()
	at := image.Pt(10, 20)

	t.Run("stopped draws nothing", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		s := &recordingSurface{}
		tl.Draw(s, at)
		tl.DrawFrame(1, s, at)
		tl.DrawFrameAtTime(1.5, s, at)
		assert.Empty(t, s.blits)
	})

	t.Run("hidden draws nothing", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		tl.Play()
		tl.SetVisible(false)
		s := &recordingSurface{}
		tl.Draw(s, at)
		assert.Empty(t, s.blits)
		assert.Equal(t, Playing, tl.State())
	})

	t.Run("playing draws current frame", func(t *testing.T) {
		tl, imgs := threeFrames(t, WithClock(clock))
		tl.Play()
		clock.advance(1.5)
		s := &recordingSurface{}
		tl.Draw(s, at)
		require.Len(t, s.blits, 1)
		assert.Same(t, imgs[1], s.blits[0].img)
		assert.Equal(t, at, s.blits[0].at)
	})

	t.Run("explicit frame and time", func(t *testing.T) {
		tl, imgs := threeFrames(t, WithClock(clock))
		tl.Pause()
		s := &recordingSurface{}
		tl.DrawFrame(2, s, at)
		tl.DrawFrameAtTime(1.2, s, at)
		tl.DrawFrame(99, s, at)
		require.Len(t, s.blits, 3)
		assert.Same(t, imgs[2], s.blits[0].img)
		assert.Same(t, imgs[1], s.blits[1].img)
		assert.Same(t, imgs[2], s.blits[2].img)
	})

	t.Run("finished one-shot settles to stopped", func(t *testing.T) {
		tl, _ := threeFrames(t, WithLoop(false), WithClock(clock))
		tl.Play()
		clock.advance(4.6)
		s := &recordingSurface{}
		tl.Draw(s, at)
		assert.Empty(t, s.blits)
		assert.Equal(t, Stopped, tl.State())
		assert.Equal(t, 0.0, tl.Elapsed())
	})

	t.Run("transformed frames are drawn", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		require.NoError(t, tl.Scale(6, 4))
		tl.Play()
		s := &recordingSurface{}
		tl.Draw(s, at)
		require.Len(t, s.blits, 1)
		assert.Equal(t, image.Rect(0, 0, 6, 4), s.blits[0].img.Bounds())
	})
}
