package animations

import "image"

// Surface receives frame images. Renderers wrap their canvas in one.
type Surface interface {
	DrawImage(img image.Image, at image.Point)
}

// Draw blits the current frame onto dst at at. Hidden and stopped timelines
// draw nothing; a one-shot timeline that has run out is stopped first.
func (t *Timeline) Draw(dst Surface, at image.Point) {
	if !t.drawable() {
		return
	}
	dst.DrawImage(t.CurrentImage(), at)
}

// DrawFrame blits frame i regardless of the elapsed time.
func (t *Timeline) DrawFrame(i int, dst Surface, at image.Point) {
	if !t.drawable() {
		return
	}
	dst.DrawImage(t.Image(clampInt(i, 0, len(t.images)-1)), at)
}

// DrawFrameAtTime blits the frame showing at elapsed seconds into one pass.
func (t *Timeline) DrawFrameAtTime(elapsed float64, dst Surface, at image.Point) {
	if !t.drawable() {
		return
	}
	dst.DrawImage(t.Image(t.FrameIndexAt(elapsed)), at)
}

func (t *Timeline) drawable() bool {
	t.settle()
	return t.visible && t.state != Stopped
}
