package animations

import "sort"

// startTimes returns the cumulative start time of every frame followed by the
// total duration.
func startTimes(durations []float64) []float64 {
	out := make([]float64, len(durations)+1)
	for i, d := range durations {
		out[i+1] = out[i] + d
	}
	return out
}

// findStartTime returns the greatest i with starts[i] <= elapsed, limited to
// the last frame. starts is the slice built by startTimes.
func findStartTime(starts []float64, elapsed float64) int {
	frames := len(starts) - 1
	if elapsed >= starts[frames] {
		return frames - 1
	}
	// first start strictly after elapsed, minus one
	i := sort.Search(frames, func(i int) bool { return starts[i] > elapsed }) - 1
	if i < 0 {
		return 0
	}
	return i
}
