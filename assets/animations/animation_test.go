package animations

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func TestNewRejectsMalformedFrames(t *testing.T) {
	img := solid(1, 1, red)
	tests := []struct {
		name   string
		frames []Frame
	}{
		{"empty", nil},
		{"nil image", []Frame{{Image: nil, Duration: 1}}},
		{"zero duration", []Frame{{Image: img, Duration: 0}}},
		{"negative duration", []Frame{{Image: img, Duration: 1}, {Image: img, Duration: -0.5}}},
		{"nan duration", []Frame{{Image: img, Duration: math.NaN()}}},
		{"infinite duration", []Frame{{Image: img, Duration: math.Inf(1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, err := New(tt.frames)
			assert.ErrorIs(t, err, ErrInvalidFrame)
			assert.Nil(t, tl)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	tl, _ := threeFrames(t)
	assert.Equal(t, Stopped, tl.State())
	assert.True(t, tl.Loop())
	assert.True(t, tl.Visible())
	assert.Equal(t, 1.0, tl.Rate())
	assert.Equal(t, 3, tl.Len())
	assert.Equal(t, 0.0, tl.Elapsed())
	assert.Equal(t, 0, tl.FrameIndex())
}

func TestStartTimesAndFrameLookup(t *testing.T) {
	tl, _ := threeFrames(t)
	assert.Equal(t, []float64{0, 1, 2, 4.5}, tl.StartTimes())
	assert.Equal(t, 4.5, tl.TotalDuration())

	tests := []struct {
		elapsed float64
		want    int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 0},
		{1, 1},
		{1.5, 1},
		{2, 2},
		{4.0, 2},
		{4.499999, 2},
		{4.5, 2},
		{100, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tl.FrameIndexAt(tt.elapsed), "elapsed %v", tt.elapsed)
	}
}

func TestFrameLookupSingleFrame(t *testing.T) {
	tl, err := New([]Frame{{Image: solid(1, 1, red), Duration: 0.1}})
	require.NoError(t, err)
	assert.Equal(t, 0, tl.FrameIndexAt(0))
	assert.Equal(t, 0, tl.FrameIndexAt(0.1))
	assert.Equal(t, 0, tl.FrameIndexAt(7))
}

func TestNonLoopingElapsedIsMonotonicAndCapped(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithLoop(false), WithClock(clock))
	total := tl.TotalDuration()

	tl.Play()
	prev := tl.Elapsed()
	for i := 0; i < 25; i++ {
		clock.advance(0.3)
		e := tl.Elapsed()
		assert.GreaterOrEqual(t, e, prev)
		assert.LessOrEqual(t, e, total)
		prev = e
	}

	assert.Equal(t, total, tl.Elapsed())
	assert.Equal(t, 2, tl.FrameIndex())
	assert.Equal(t, tl.Len()-1, tl.FrameIndexAt(total-elapsedEpsilon))
	assert.True(t, tl.IsFinished())
	assert.Equal(t, Stopped, tl.State())
}

func TestNonLoopingLandsOnLastFrameAtEnd(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithLoop(false), WithClock(clock))
	tl.Play()
	clock.advance(4.5 - elapsedEpsilon)
	assert.Equal(t, 2, tl.FrameIndex())
	assert.False(t, tl.IsFinished())
}

func TestLoopingElapsedWraps(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))
	tl.Play()

	for _, at := range []float64{0.2, 1.3, 2.9, 4.4} {
		clock.advance(at)
		before := tl.Elapsed()
		clock.advance(tl.TotalDuration())
		assert.InDelta(t, before, tl.Elapsed(), tolerance)
		assert.False(t, tl.IsFinished())
		assert.Equal(t, Playing, tl.State())
	}
}

func TestPauseAndResumeKeepPosition(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))

	tl.Play()
	clock.advance(1.5)
	tl.Pause()
	assert.Equal(t, Paused, tl.State())

	clock.advance(10)
	assert.InDelta(t, 1.5, tl.Elapsed(), tolerance)
	assert.Equal(t, 1, tl.FrameIndex())

	tl.Pause()
	clock.advance(3)
	assert.InDelta(t, 1.5, tl.Elapsed(), tolerance, "pausing twice is a no-op")

	tl.Play()
	clock.advance(0.75)
	assert.InDelta(t, 2.25, tl.Elapsed(), tolerance)
	assert.Equal(t, 2, tl.FrameIndex())
}

func TestPauseFromStoppedParksOnFirstFrame(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))
	tl.Pause()
	clock.advance(3)
	assert.Equal(t, Paused, tl.State())
	assert.InDelta(t, 0, tl.Elapsed(), tolerance)
	assert.Equal(t, 0, tl.FrameIndex())
}

func TestPlayAtAnchorsToGivenTime(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))
	tl.PlayAt(clock.Now().Add(-seconds(1.25)))
	assert.InDelta(t, 1.25, tl.Elapsed(), tolerance)

	tl.PauseAt(clock.Now().Add(-seconds(0.25)))
	assert.InDelta(t, 1.0, tl.Elapsed(), tolerance)
}

func TestPlayRestartsFinishedTimeline(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithLoop(false), WithClock(clock))
	tl.Play()
	clock.advance(6)
	require.True(t, tl.IsFinished())

	tl.Play()
	assert.False(t, tl.IsFinished())
	assert.Equal(t, Playing, tl.State())
	assert.InDelta(t, 0, tl.Elapsed(), tolerance)
}

func TestPlayWhilePlayingKeepsPosition(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))
	tl.Play()
	clock.advance(1.2)
	tl.Play()
	assert.InDelta(t, 1.2, tl.Elapsed(), tolerance)
}

func TestStopIsIdempotent(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))
	tl.Play()
	clock.advance(2)
	tl.Stop()
	tl.Stop()
	assert.Equal(t, Stopped, tl.State())
	assert.Equal(t, 0.0, tl.Elapsed())

	tl.Play()
	clock.advance(0.5)
	assert.InDelta(t, 0.5, tl.Elapsed(), tolerance)
}

func TestTogglePause(t *testing.T) {
	clock := newFakeClock()

	t.Run("cycles playing and paused", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		tl.TogglePause()
		assert.Equal(t, Playing, tl.State())
		clock.advance(1)
		tl.TogglePause()
		assert.Equal(t, Paused, tl.State())
		clock.advance(1)
		tl.TogglePause()
		assert.Equal(t, Playing, tl.State())
		assert.InDelta(t, 1, tl.Elapsed(), tolerance)
	})

	t.Run("finished timeline restarts", func(t *testing.T) {
		tl, _ := threeFrames(t, WithLoop(false), WithClock(clock))
		tl.Play()
		clock.advance(5)
		tl.TogglePause()
		assert.Equal(t, Playing, tl.State())
		assert.InDelta(t, 0, tl.Elapsed(), tolerance)
	})
}

func TestSetState(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))

	require.NoError(t, tl.SetState(Playing))
	assert.Equal(t, Playing, tl.State())
	require.NoError(t, tl.SetState(Paused))
	assert.Equal(t, Paused, tl.State())
	require.NoError(t, tl.SetState(Stopped))
	assert.Equal(t, Stopped, tl.State())

	err := tl.SetState(State(42))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, Stopped, tl.State())
}

func TestSetElapsed(t *testing.T) {
	clock := newFakeClock()

	t.Run("stopped becomes paused", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		tl.SetElapsed(2.2)
		assert.Equal(t, Paused, tl.State())
		assert.InDelta(t, 2.2, tl.Elapsed(), tolerance)
		assert.Equal(t, 2, tl.FrameIndex())
	})

	t.Run("playing keeps playing", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		tl.Play()
		tl.SetElapsed(1.1)
		assert.Equal(t, Playing, tl.State())
		clock.advance(0.5)
		assert.InDelta(t, 1.6, tl.Elapsed(), tolerance)
	})

	t.Run("looping wraps", func(t *testing.T) {
		tl, _ := threeFrames(t, WithClock(clock))
		tl.SetElapsed(5.5)
		assert.InDelta(t, 1.0, tl.Elapsed(), tolerance)
		assert.Equal(t, 1, tl.FrameIndex())
		tl.SetElapsed(-0.5)
		assert.InDelta(t, 4.0, tl.Elapsed(), tolerance)
	})

	t.Run("one-shot clamps", func(t *testing.T) {
		tl, _ := threeFrames(t, WithLoop(false), WithClock(clock))
		tl.SetElapsed(-3)
		assert.InDelta(t, 0, tl.Elapsed(), tolerance)
		tl.SetElapsed(9)
		assert.Equal(t, 4.5, tl.Elapsed())
		assert.Equal(t, 2, tl.FrameIndex())
	})
}

func TestSetFrameIndex(t *testing.T) {
	clock := newFakeClock()
	tests := []struct {
		name  string
		loop  bool
		index int
		want  int
	}{
		{"in range", true, 1, 1},
		{"looping wraps past end", true, 4, 1},
		{"looping wraps negative", true, -1, 2},
		{"one-shot clamps past end", false, 7, 2},
		{"one-shot clamps negative", false, -4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl, _ := threeFrames(t, WithLoop(tt.loop), WithClock(clock))
			tl.SetFrameIndex(tt.index)
			assert.Equal(t, tt.want, tl.FrameIndex())
		})
	}
}

func TestSeeking(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))

	tl.NextFrame(1)
	assert.Equal(t, 1, tl.FrameIndex())
	tl.NextFrame(2)
	assert.Equal(t, 0, tl.FrameIndex())
	tl.PrevFrame(1)
	assert.Equal(t, 2, tl.FrameIndex())

	tl.RewindToStart()
	assert.InDelta(t, 0, tl.Elapsed(), tolerance)
	tl.FastForward(1.5)
	assert.InDelta(t, 1.5, tl.Elapsed(), tolerance)
	tl.Rewind(0.5)
	assert.InDelta(t, 1.0, tl.Elapsed(), tolerance)

	tl.FastForwardToEnd()
	assert.Equal(t, 2, tl.FrameIndex())
	assert.InDelta(t, 4.5, tl.Elapsed(), tolerance)
}

func TestSetRate(t *testing.T) {
	clock := newFakeClock()

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		tl, _ := threeFrames(t, WithClock(clock))
		assert.ErrorIs(t, tl.SetRate(bad), ErrInvalidArgument)
		assert.Equal(t, 1.0, tl.Rate())
	}

	tl, _ := threeFrames(t, WithClock(clock))
	require.NoError(t, tl.SetRate(2))
	tl.Play()
	clock.advance(1)
	assert.InDelta(t, 2, tl.Elapsed(), tolerance)

	// switching speed mid-play keeps the position
	require.NoError(t, tl.SetRate(0.5))
	assert.InDelta(t, 2, tl.Elapsed(), tolerance)
	clock.advance(1)
	assert.InDelta(t, 2.5, tl.Elapsed(), tolerance)

	tl.Pause()
	require.NoError(t, tl.SetRate(4))
	assert.InDelta(t, 2.5, tl.Elapsed(), tolerance)
	assert.Equal(t, Paused, tl.State())
}

func TestSetLoopKeepsVisualPosition(t *testing.T) {
	clock := newFakeClock()
	tl, _ := threeFrames(t, WithClock(clock))
	tl.Play()
	clock.advance(5)
	require.InDelta(t, 0.5, tl.Elapsed(), tolerance)

	tl.SetLoop(false)
	assert.False(t, tl.Loop())
	assert.InDelta(t, 0.5, tl.Elapsed(), tolerance)
	assert.False(t, tl.IsFinished())

	clock.advance(10)
	assert.True(t, tl.IsFinished())
}

func TestReverseIsAnInvolution(t *testing.T) {
	tl, imgs := threeFrames(t)
	tl.Flip(true, false)
	flipped := []image.Image{tl.Image(0), tl.Image(1), tl.Image(2)}

	tl.Reverse()
	assert.Equal(t, []float64{2.5, 1, 1}, tl.Durations())
	assert.Equal(t, []float64{0, 2.5, 3.5, 4.5}, tl.StartTimes())
	assert.Same(t, flipped[2], tl.Image(0))

	tl.Reverse()
	assert.Equal(t, []float64{1, 1, 2.5}, tl.Durations())
	assert.Equal(t, []float64{0, 1, 2, 4.5}, tl.StartTimes())
	for i := range flipped {
		assert.Same(t, flipped[i], tl.Image(i))
	}

	tl.ClearTransforms()
	for i := range imgs {
		assert.Same(t, imgs[i], tl.Image(i))
	}
}

func TestReverseKeepsVisualInstant(t *testing.T) {
	clock := newFakeClock()
	tl, imgs := threeFrames(t, WithClock(clock))
	tl.Play()
	clock.advance(0.5)
	require.Same(t, imgs[0], tl.CurrentImage())

	tl.Reverse()
	assert.Equal(t, Playing, tl.State())
	assert.InDelta(t, 4.0, tl.Elapsed(), tolerance)
	assert.Same(t, imgs[0], tl.CurrentImage())
}

func TestCopiesAreIndependent(t *testing.T) {
	clock := newFakeClock()
	orig, imgs := threeFrames(t, WithLoop(false), WithClock(clock))
	require.NoError(t, orig.SetRate(2))
	orig.Play()

	cp := orig.Copy()
	assert.Equal(t, Stopped, cp.State())
	assert.False(t, cp.Loop())
	assert.Equal(t, 2.0, cp.Rate())
	assert.Same(t, imgs[1], cp.Image(1))

	cp.Play()
	clock.advance(0.25)
	orig.Pause()
	assert.Equal(t, Paused, orig.State())
	assert.Equal(t, Playing, cp.State())

	cp.Stop()
	assert.Equal(t, Paused, orig.State())

	cp.Reverse()
	assert.Equal(t, []float64{1, 1, 2.5}, orig.Durations())

	copies := orig.Copies(3)
	require.Len(t, copies, 3)
	copies[0].Flip(true, true)
	assert.False(t, orig.Transformed())
	assert.False(t, copies[1].Transformed())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "playing", Playing.String())
	assert.Equal(t, "paused", Paused.String())
	assert.Equal(t, "stopped", Stopped.String())
	assert.Equal(t, "unknown", State(9).String())
}
