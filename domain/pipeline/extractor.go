package pipeline

import "context"

// AudioExtractor defines the interface for stripping the audio stream from
// a local video file. This is a port implemented by infrastructure adapters.
type AudioExtractor interface {
	// Extract writes the best-quality audio stream of videoPath to
	// audioPath, overwriting any existing file
	Extract(ctx context.Context, videoPath, audioPath string) error
}
