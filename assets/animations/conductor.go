package animations

import (
	"errors"
	"fmt"
	"time"
)

// Conductor drives a group of timelines as one, e.g. the walk cycles of a
// character facing each way. It keeps no playback state of its own.
type Conductor struct {
	timelines []*Timeline
}

// NewConductor groups ts. At least one timeline is required.
func NewConductor(ts ...*Timeline) (*Conductor, error) {
	c := &Conductor{}
	if err := c.Add(ts...); err != nil {
		return nil, err
	}
	if len(c.timelines) == 0 {
		return nil, fmt.Errorf("conductor needs at least one timeline: %w", ErrInvalidArgument)
	}
	return c, nil
}

// Add appends timelines to the group.
func (c *Conductor) Add(ts ...*Timeline) error {
	for i, t := range ts {
		if t == nil {
			return fmt.Errorf("timeline %d is nil: %w", i, ErrInvalidArgument)
		}
	}
	c.timelines = append(c.timelines, ts...)
	return nil
}

// Timelines returns the members in the order they were added.
func (c *Conductor) Timelines() []*Timeline {
	return append([]*Timeline(nil), c.timelines...)
}

func (c *Conductor) now() time.Time {
	return c.timelines[0].clock.Now()
}

func (c *Conductor) each(fn func(*Timeline)) {
	for _, t := range c.timelines {
		fn(t)
	}
}

func (c *Conductor) eachErr(fn func(*Timeline) error) error {
	var errs []error
	for _, t := range c.timelines {
		if err := fn(t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Play starts every member from the same instant.
func (c *Conductor) Play() { c.PlayAt(c.now()) }

func (c *Conductor) PlayAt(at time.Time) {
	c.each(func(t *Timeline) { t.PlayAt(at) })
}

// Pause freezes every member at the same instant.
func (c *Conductor) Pause() { c.PauseAt(c.now()) }

func (c *Conductor) PauseAt(at time.Time) {
	c.each(func(t *Timeline) { t.PauseAt(at) })
}

func (c *Conductor) Stop() { c.each((*Timeline).Stop) }
func (c *Conductor) TogglePause() { c.each((*Timeline).TogglePause) }
func (c *Conductor) Reverse() { c.each((*Timeline).Reverse) }

func (c *Conductor) SetState(s State) error {
	return c.eachErr(func(t *Timeline) error { return t.SetState(s) })
}

func (c *Conductor) SetRate(rate float64) error {
	return c.eachErr(func(t *Timeline) error { return t.SetRate(rate) })
}

func (c *Conductor) SetLoop(loop bool) {
	c.each(func(t *Timeline) { t.SetLoop(loop) })
}

func (c *Conductor) SetVisible(v bool) {
	c.each(func(t *Timeline) { t.SetVisible(v) })
}

func (c *Conductor) SetElapsed(elapsed float64) {
	c.each(func(t *Timeline) { t.SetElapsed(elapsed) })
}

func (c *Conductor) SetFrameIndex(i int) {
	c.each(func(t *Timeline) { t.SetFrameIndex(i) })
}

func (c *Conductor) NextFrame(jump int) {
	c.each(func(t *Timeline) { t.NextFrame(jump) })
}

func (c *Conductor) PrevFrame(jump int) {
	c.each(func(t *Timeline) { t.PrevFrame(jump) })
}

func (c *Conductor) Rewind(s float64) {
	c.each(func(t *Timeline) { t.Rewind(s) })
}

func (c *Conductor) RewindToStart() { c.each((*Timeline).RewindToStart) }

func (c *Conductor) FastForward(s float64) {
	c.each(func(t *Timeline) { t.FastForward(s) })
}

func (c *Conductor) FastForwardToEnd() { c.each((*Timeline).FastForwardToEnd) }

func (c *Conductor) Flip(horizontal, vertical bool) {
	c.each(func(t *Timeline) { t.Flip(horizontal, vertical) })
}

func (c *Conductor) Scale(w, h int) error {
	return c.eachErr(func(t *Timeline) error { return t.Scale(w, h) })
}

func (c *Conductor) SmoothScale(w, h int) error {
	return c.eachErr(func(t *Timeline) error { return t.SmoothScale(w, h) })
}

func (c *Conductor) Rotate(degrees float64) {
	c.each(func(t *Timeline) { t.Rotate(degrees) })
}

func (c *Conductor) RotateAndScale(degrees, factor float64) error {
	return c.eachErr(func(t *Timeline) error { return t.RotateAndScale(degrees, factor) })
}

func (c *Conductor) Scale2x() { c.each((*Timeline).Scale2x) }
func (c *Conductor) ClearTransforms() { c.each((*Timeline).ClearTransforms) }
func (c *Conductor) MakeTransformsPermanent() { c.each((*Timeline).MakeTransformsPermanent) }

func (c *Conductor) Anchor(p AnchorPoint) {
	c.each(func(t *Timeline) { t.Anchor(p) })
}
