package animations

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Transforms are applied to every frame and stack: each one works on the
// output of the previous. The original images are kept untouched until
// MakeTransformsPermanent.

// Flip mirrors every frame horizontally, vertically or both.
func (t *Timeline) Flip(horizontal, vertical bool) {
	t.transform(func(img image.Image) image.Image {
		out := imaging.Clone(img)
		if horizontal {
			out = imaging.FlipH(out)
		}
		if vertical {
			out = imaging.FlipV(out)
		}
		return out
	})
}

// Scale resizes every frame to w by h pixels without smoothing.
func (t *Timeline) Scale(w, h int) error {
	if err := checkSize(w, h); err != nil {
		return err
	}
	t.transform(func(img image.Image) image.Image {
		return imaging.Resize(img, w, h, imaging.NearestNeighbor)
	})
	return nil
}

// SmoothScale resizes every frame to w by h pixels with bilinear filtering.
func (t *Timeline) SmoothScale(w, h int) error {
	if err := checkSize(w, h); err != nil {
		return err
	}
	t.transform(func(img image.Image) image.Image {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		return dst
	})
	return nil
}

// Rotate turns every frame counter-clockwise by degrees. The frame grows to
// fit the rotated image; uncovered pixels are transparent.
func (t *Timeline) Rotate(degrees float64) {
	t.transform(func(img image.Image) image.Image {
		return imaging.Rotate(img, degrees, color.Transparent)
	})
}

// RotateAndScale rotates every frame counter-clockwise by degrees and scales
// it by factor, filtering the result.
func (t *Timeline) RotateAndScale(degrees, factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("scale factor must be greater than zero, got %v: %w", factor, ErrInvalidArgument)
	}
	t.transform(func(img image.Image) image.Image {
		b := img.Bounds()
		w := max(1, int(math.Round(float64(b.Dx())*factor)))
		h := max(1, int(math.Round(float64(b.Dy())*factor)))
		filter := imaging.Linear
		if factor < 1 {
			filter = imaging.Lanczos
		}
		return imaging.Rotate(imaging.Resize(img, w, h, filter), degrees, color.Transparent)
	})
	return nil
}

// Scale2x doubles every frame with the EPX pixel art scaler.
func (t *Timeline) Scale2x() {
	t.transform(scale2x)
}

// ClearTransforms drops every transform and goes back to the original frames.
func (t *Timeline) ClearTransforms() {
	t.transformed = nil
}

// MakeTransformsPermanent replaces the original frames with the transformed
// ones and clears the transforms.
func (t *Timeline) MakeTransformsPermanent() {
	if len(t.transformed) > 0 {
		copy(t.images, t.transformed)
	}
	t.transformed = nil
}

// Transformed reports whether draws use transformed frames.
func (t *Timeline) Transformed() bool { return len(t.transformed) > 0 }

// Reverse plays the frames backwards from now on. A playing or paused
// timeline keeps showing the same instant of the animation.
func (t *Timeline) Reverse() {
	now := t.clock.Now()
	var elapsed float64
	if t.state != Stopped {
		elapsed = t.wrap(t.rawElapsed(now))
	}

	slices.Reverse(t.images)
	slices.Reverse(t.transformed)
	slices.Reverse(t.durations)
	t.startTimes = startTimes(t.durations)

	if t.state != Stopped {
		t.anchorElapsed(t.wrap(t.TotalDuration()-elapsed), now)
	}
}

func (t *Timeline) transform(fn func(image.Image) image.Image) {
	if len(t.transformed) == 0 {
		t.transformed = append([]image.Image(nil), t.images...)
	}
	for i, img := range t.transformed {
		t.transformed[i] = fn(img)
	}
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d: %w", w, h, ErrInvalidArgument)
	}
	return nil
}
