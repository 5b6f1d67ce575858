package animations

import (
	"fmt"
	"image"
	"math"
	"time"
)

// State is the playback state of a Timeline.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	}
	return "unknown"
}

func (s State) valid() bool {
	return s == Stopped || s == Playing || s == Paused
}

// Frame is one image of an animation and how long it stays on screen, in seconds.
type Frame struct {
	Image    image.Image
	Duration float64
}

// Clock supplies wall-clock time to timelines.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// Option configures a Timeline at construction.
type Option func(*Timeline)

// WithLoop sets whether the timeline wraps back to the first frame. Defaults to true.
func WithLoop(loop bool) Option {
	return func(t *Timeline) { t.loop = loop }
}

// WithClock replaces the wall clock used to derive elapsed time.
func WithClock(c Clock) Option {
	return func(t *Timeline) {
		if c != nil {
			t.clock = c
		}
	}
}

// Timeline plays an ordered sequence of frames against wall-clock time.
//
// Elapsed time is never accumulated per tick; it is derived from the anchors
// recorded by Play and Pause, so a timeline drawn at an irregular cadence still
// shows the right frame.
type Timeline struct {
	images      []image.Image
	transformed []image.Image
	durations   []float64
	startTimes  []float64

	state   State
	loop    bool
	rate    float64
	visible bool

	playingStart time.Time
	pausedStart  time.Time

	clock Clock
}

// New builds a stopped timeline from frames.
func New(frames []Frame, opts ...Option) (*Timeline, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("must contain at least one frame: %w", ErrInvalidFrame)
	}

	t := newTimeline(opts...)
	t.images = make([]image.Image, 0, len(frames))
	t.durations = make([]float64, 0, len(frames))
	for i, f := range frames {
		if f.Image == nil {
			return nil, fmt.Errorf("frame %d has no image: %w", i, ErrInvalidFrame)
		}
		if err := checkDuration(i, f.Duration); err != nil {
			return nil, err
		}
		t.images = append(t.images, f.Image)
		t.durations = append(t.durations, f.Duration)
	}
	t.startTimes = startTimes(t.durations)
	return t, nil
}

func newTimeline(opts ...Option) *Timeline {
	t := &Timeline{
		state:   Stopped,
		loop:    true,
		rate:    1.0,
		visible: true,
		clock:   SystemClock,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func checkDuration(i int, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return fmt.Errorf("frame %d duration must be greater than zero, got %v: %w", i, d, ErrInvalidFrame)
	}
	return nil
}

// Copy returns an independent stopped timeline over the same images.
func (t *Timeline) Copy() *Timeline {
	return t.Copies(1)[0]
}

// Copies returns n independent stopped timelines over the same images. Loop,
// rate and visibility carry over; playback state and anchors do not.
func (t *Timeline) Copies(n int) []*Timeline {
	out := make([]*Timeline, 0, n)
	for i := 0; i < n; i++ {
		c := newTimeline(WithClock(t.clock), WithLoop(t.loop))
		c.rate = t.rate
		c.visible = t.visible
		c.images = append([]image.Image(nil), t.images...)
		if len(t.transformed) > 0 {
			c.transformed = append([]image.Image(nil), t.transformed...)
		}
		c.durations = append([]float64(nil), t.durations...)
		c.startTimes = append([]float64(nil), t.startTimes...)
		out = append(out, c)
	}
	return out
}

// Len is the number of frames.
func (t *Timeline) Len() int { return len(t.images) }

// TotalDuration is the length of one pass over every frame, in seconds.
func (t *Timeline) TotalDuration() float64 { return t.startTimes[len(t.startTimes)-1] }

// StartTimes returns a copy of the cumulative frame start times. It has one
// more entry than there are frames; the last entry is the total duration.
func (t *Timeline) StartTimes() []float64 {
	return append([]float64(nil), t.startTimes...)
}

// Durations returns a copy of the frame durations in playback order.
func (t *Timeline) Durations() []float64 {
	return append([]float64(nil), t.durations...)
}

func (t *Timeline) Rate() float64 { return t.rate }

// SetRate changes how fast elapsed time accumulates. 2 plays twice as fast.
func (t *Timeline) SetRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return fmt.Errorf("rate must be greater than zero, got %v: %w", rate, ErrInvalidArgument)
	}
	if t.state == Stopped {
		t.rate = rate
		return nil
	}
	// keep the current position when the speed changes
	now := t.clock.Now()
	elapsed := t.rawElapsed(now)
	t.rate = rate
	t.anchorElapsed(elapsed, now)
	return nil
}

func (t *Timeline) Loop() bool { return t.loop }

// SetLoop toggles looping. A playing timeline switched from looping to
// one-shot keeps showing the frame it is on.
func (t *Timeline) SetLoop(loop bool) {
	if t.state == Playing && t.loop && !loop {
		now := t.clock.Now()
		e := t.wrap(t.rawElapsed(now))
		t.playingStart = now.Add(-seconds(e / t.rate))
	}
	t.loop = loop
}

func (t *Timeline) Visible() bool { return t.visible }

// SetVisible hides or shows the timeline. Hidden timelines keep playing.
func (t *Timeline) SetVisible(v bool) { t.visible = v }

// Image returns frame i, transformed if any transform is active.
func (t *Timeline) Image(i int) image.Image {
	if len(t.transformed) == 0 {
		return t.images[i]
	}
	return t.transformed[i]
}

// CurrentImage is the image for the frame under the current elapsed time.
func (t *Timeline) CurrentImage() image.Image {
	return t.Image(t.FrameIndex())
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
