package pipeline

import "context"

// FrameTextScanner defines the interface for extracting on-screen text from
// a video by sampling frames at a fixed stride
type FrameTextScanner interface {
	// Scan decodes the video sequentially, runs character recognition on
	// every frame whose zero-based index is divisible by stride, and joins
	// the non-empty results with single spaces in chronological order
	Scan(ctx context.Context, videoPath string, stride int) (string, error)
}
