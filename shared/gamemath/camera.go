package gamemath

import "math"

// CameraWindow returns the world-to-screen offset that centres target in a
// viewW by viewH view without showing anything outside the level.
func CameraWindow(target Rect, viewW, viewH, levelW, levelH float64) (left, top float64) {
	left = -target.X + viewW/2
	top = -target.Y + viewH/2

	// a level narrower than the view is pinned to its right edge, a shorter
	// one to its top edge
	left = math.Max(-(levelW - viewW), math.Min(0, left))
	top = math.Min(0, math.Max(-(levelH - viewH), top))
	return left, top
}
