package animations

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// AnchorPoint selects where a smaller frame sits inside the padded frame.
type AnchorPoint int

const (
	NorthWest AnchorPoint = iota
	North
	NorthEast
	West
	Center
	East
	SouthWest
	South
	SouthEast
)

// MaxSize is the largest width and height over the original frames.
func (t *Timeline) MaxSize() image.Point {
	var size image.Point
	for _, img := range t.images {
		b := img.Bounds()
		size.X = max(size.X, b.Dx())
		size.Y = max(size.Y, b.Dy())
	}
	return size
}

// Bounds is a rectangle at the origin big enough for any original frame.
func (t *Timeline) Bounds() image.Rectangle {
	return image.Rectangle{Max: t.MaxSize()}
}

// FramesSameSize reports whether every frame, transformed if transforms are
// active, has the same dimensions.
func (t *Timeline) FramesSameSize() bool {
	first := t.Image(0).Bounds().Size()
	for i := 1; i < len(t.images); i++ {
		if t.Image(i).Bounds().Size() != first {
			return false
		}
	}
	return true
}

// Anchor pads every original frame with transparency to MaxSize, placing the
// frame at p. Transforms are cleared since the originals change.
func (t *Timeline) Anchor(p AnchorPoint) {
	if t.FramesSameSize() {
		return
	}
	t.ClearTransforms()

	size := t.MaxSize()
	for i, img := range t.images {
		bg := imaging.New(size.X, size.Y, color.Transparent)
		t.images[i] = imaging.Paste(bg, img, anchorOffset(p, size, img.Bounds().Size()))
	}
}

func anchorOffset(p AnchorPoint, outer, inner image.Point) image.Point {
	var x, y int
	switch p {
	case North, Center, South:
		x = outer.X/2 - inner.X/2
	case NorthEast, East, SouthEast:
		x = outer.X - inner.X
	}
	switch p {
	case West, Center, East:
		y = outer.Y/2 - inner.Y/2
	case SouthWest, South, SouthEast:
		y = outer.Y - inner.Y
	}
	return image.Pt(x, y)
}
