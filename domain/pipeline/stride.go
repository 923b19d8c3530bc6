package pipeline

import "math"

// DefaultFrameStride is used when the video duration is unknown. It equals
// the floor of the stride formula, so an unprobeable video is sampled at the
// densest rate rather than skipped.
const DefaultFrameStride = 5

// FrameStride derives the frame-sampling stride from the video duration:
// the stride grows in steps of 5 for every 10 seconds of video, with a floor
// of 5. Longer videos are sampled more sparsely to bound the number of
// recognition calls.
func FrameStride(durationSeconds float64) int {
	stride := int(math.Floor(durationSeconds/10)) * 5
	if stride < DefaultFrameStride {
		return DefaultFrameStride
	}
	return stride
}
