package animations

import (
	"fmt"
	"math"
	"time"
)

// elapsedEpsilon is added to every elapsed read so that floating point error
// at a frame boundary lands on the frame that starts there.
const elapsedEpsilon = 0.00001

// fastForwardMargin keeps FastForwardToEnd on the last frame of a looping timeline.
const fastForwardMargin = 0.00002

// Play starts or resumes playback now.
func (t *Timeline) Play() { t.PlayAt(t.clock.Now()) }

// PlayAt starts or resumes playback as if Play had been called at at.
//
// A stopped timeline starts from the beginning. A paused timeline continues
// from where it was paused. A playing one-shot timeline that has finished
// restarts; any other playing timeline is left alone.
func (t *Timeline) PlayAt(at time.Time) {
	switch t.state {
	case Playing:
		if t.finishedAt(at) {
			t.playingStart = at
		}
	case Stopped:
		t.playingStart = at
	case Paused:
		t.playingStart = at.Add(-t.pausedStart.Sub(t.playingStart))
	}
	t.state = Playing
}

// Pause freezes playback now.
func (t *Timeline) Pause() { t.PauseAt(t.clock.Now()) }

// PauseAt freezes playback as if Pause had been called at at. Pausing a
// stopped timeline parks it on the first frame.
func (t *Timeline) PauseAt(at time.Time) {
	switch t.state {
	case Paused:
		return
	case Playing:
		t.pausedStart = at
	case Stopped:
		t.playingStart = at
		t.pausedStart = at
	}
	t.state = Paused
}

// Stop halts playback and rewinds. Stopping twice is harmless.
func (t *Timeline) Stop() { t.state = Stopped }

// TogglePause pauses a playing timeline and plays anything else. A finished
// one-shot timeline restarts instead of pausing.
func (t *Timeline) TogglePause() {
	now := t.clock.Now()
	switch t.state {
	case Playing:
		if t.finishedAt(now) {
			t.PlayAt(now)
			return
		}
		t.PauseAt(now)
	case Paused, Stopped:
		t.PlayAt(now)
	}
}

// State reports the playback state. A one-shot timeline that has run past
// its end reports Stopped even before a draw settles it.
func (t *Timeline) State() State {
	if t.IsFinished() {
		return Stopped
	}
	return t.state
}

// SetState drives the timeline into s through Play, Pause or Stop.
func (t *Timeline) SetState(s State) error {
	if !s.valid() {
		return fmt.Errorf("state %d is not playing, paused or stopped: %w", int(s), ErrInvalidArgument)
	}
	switch s {
	case Playing:
		t.Play()
	case Paused:
		t.Pause()
	case Stopped:
		t.Stop()
	}
	return nil
}

// IsFinished reports whether a one-shot timeline has played past its end.
func (t *Timeline) IsFinished() bool {
	return t.finishedAt(t.clock.Now())
}

func (t *Timeline) finishedAt(now time.Time) bool {
	return !t.loop && t.rawElapsed(now) >= t.TotalDuration()
}

// settle moves a finished timeline to Stopped.
func (t *Timeline) settle() {
	if t.IsFinished() {
		t.state = Stopped
	}
}

// rawElapsed is the unwrapped playback position at now.
func (t *Timeline) rawElapsed(now time.Time) float64 {
	switch t.state {
	case Playing:
		return now.Sub(t.playingStart).Seconds() * t.rate
	case Paused:
		return t.pausedStart.Sub(t.playingStart).Seconds() * t.rate
	}
	return 0
}

// wrap folds a raw position into one pass of the animation.
func (t *Timeline) wrap(elapsed float64) float64 {
	total := t.TotalDuration()
	if t.loop {
		e := math.Mod(elapsed, total)
		if e < 0 {
			e += total
		}
		return e
	}
	return clamp(elapsed, 0, total)
}

// Elapsed is the playback position in seconds within one pass.
func (t *Timeline) Elapsed() float64 {
	if t.state == Stopped {
		return 0
	}
	return t.elapsedFrom(t.rawElapsed(t.clock.Now()))
}

func (t *Timeline) elapsedFrom(raw float64) float64 {
	total := t.TotalDuration()
	e := t.wrap(raw) + elapsedEpsilon
	if e > total {
		e = total
	}
	return e
}

// SetElapsed seeks to elapsed seconds, wrapped or clamped like reads are. A
// stopped or paused timeline ends up paused at the new position.
func (t *Timeline) SetElapsed(elapsed float64) {
	t.anchorElapsed(t.wrap(elapsed), t.clock.Now())
}

func (t *Timeline) anchorElapsed(elapsed float64, now time.Time) {
	t.playingStart = now.Add(-seconds(elapsed / t.rate))
	if t.state != Playing {
		t.state = Paused
		t.pausedStart = now
	}
}

// FrameIndex is the index of the frame showing at the current elapsed time.
func (t *Timeline) FrameIndex() int {
	return t.FrameIndexAt(t.Elapsed())
}

// FrameIndexAt returns the frame showing at elapsed seconds into one pass.
func (t *Timeline) FrameIndexAt(elapsed float64) int {
	return findStartTime(t.startTimes, elapsed)
}

// SetFrameIndex seeks to the start of frame i. The index wraps on looping
// timelines and clamps on one-shot ones.
func (t *Timeline) SetFrameIndex(i int) {
	n := len(t.images)
	if t.loop {
		i %= n
		if i < 0 {
			i += n
		}
	} else {
		i = clampInt(i, 0, n-1)
	}
	t.SetElapsed(t.startTimes[i])
}

// NextFrame seeks jump frames ahead. Negative values go back.
func (t *Timeline) NextFrame(jump int) {
	t.SetFrameIndex(t.FrameIndex() + jump)
}

// PrevFrame seeks jump frames back.
func (t *Timeline) PrevFrame(jump int) {
	t.SetFrameIndex(t.FrameIndex() - jump)
}

// Rewind moves the playback position back by s seconds.
func (t *Timeline) Rewind(s float64) {
	t.SetElapsed(t.Elapsed() - s)
}

// RewindToStart seeks to the first frame.
func (t *Timeline) RewindToStart() {
	t.SetElapsed(0)
}

// FastForward moves the playback position ahead by s seconds.
func (t *Timeline) FastForward(s float64) {
	t.SetElapsed(t.Elapsed() + s)
}

// FastForwardToEnd seeks to just before the end of the last frame.
func (t *Timeline) FastForwardToEnd() {
	t.SetElapsed(t.TotalDuration() - fastForwardMargin)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
